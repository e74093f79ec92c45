// Package avtransport issues playback commands to a discovered renderer
// over the UPnP AVTransport:1 service.
//
// Every command is one fixed SOAP 1.1 envelope wrapped in a hand-built HTTP
// POST and delivered in a single TCP send to the device's control endpoint.
// The response is not read; commands are fire-and-forget and a failure is
// always a transport error from the send itself.
//
// # Commands
//
//	avtransport.SetMediaURI(device, "http://host/movie.mp4", 0)
//	avtransport.Play(device, 0)
//	avtransport.Pause(device, 0)
//	avtransport.Stop(device, 0)
//
// PlayURI is the usual entry point. It sets the transport URI and starts
// playback in two sequential sends, without verifying that the first one
// succeeded before issuing the second:
//
//	if err := avtransport.PlayURI(device, url, 0); err != nil {
//	    return err
//	}
package avtransport
