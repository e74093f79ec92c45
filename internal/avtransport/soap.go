package avtransport

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dlnacast/dlnacast/internal/logging"
	"github.com/dlnacast/dlnacast/internal/ssdp"
	"github.com/dlnacast/dlnacast/internal/transport"
	"github.com/dlnacast/dlnacast/internal/version"
)

// DefaultInstanceID is the AVTransport instance most renderers expose.
const DefaultInstanceID = 0

// SetMediaURI points the renderer's transport at the given media URI.
func SetMediaURI(d *ssdp.Device, uri string, instanceID int) error {
	body := envelope(fmt.Sprintf(
		`<u:SetAVTransportURI xmlns:u="%s">`+
			`<InstanceID>%d</InstanceID>`+
			`<CurrentURI>%s</CurrentURI>`+
			`<CurrentURIMetaData />`+
			`</u:SetAVTransportURI>`,
		ssdp.URNAVTransport, instanceID, uri))
	return send(d, "SetAVTransportURI", body)
}

// Play starts playback of the current transport URI at normal speed.
func Play(d *ssdp.Device, instanceID int) error {
	body := envelope(fmt.Sprintf(
		`<u:Play xmlns:u="%s">`+
			`<InstanceID>%d</InstanceID>`+
			`<Speed>1</Speed>`+
			`</u:Play>`,
		ssdp.URNAVTransport, instanceID))
	return send(d, "Play", body)
}

// Pause pauses playback.
func Pause(d *ssdp.Device, instanceID int) error {
	body := envelope(fmt.Sprintf(
		`<u:Pause xmlns:u="%s">`+
			`<InstanceID>%d</InstanceID>`+
			`</u:Pause>`,
		ssdp.URNAVTransport, instanceID))
	return send(d, "Pause", body)
}

// Stop halts playback.
func Stop(d *ssdp.Device, instanceID int) error {
	body := envelope(fmt.Sprintf(
		`<u:Stop xmlns:u="%s">`+
			`<InstanceID>%d</InstanceID>`+
			`</u:Stop>`,
		ssdp.URNAVTransport, instanceID))
	return send(d, "Stop", body)
}

// PlayURI sets the transport URI and starts playback, in that order. The
// second send is issued without verifying the first; any transport error
// propagates to the caller.
func PlayURI(d *ssdp.Device, uri string, instanceID int) error {
	if err := SetMediaURI(d, uri, instanceID); err != nil {
		return err
	}
	return Play(d, instanceID)
}

// envelope wraps an action body in the SOAP 1.1 envelope.
func envelope(inner string) string {
	return `<?xml version="1.0" encoding="utf-8"?>` + "\r\n" +
		`<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/" ` +
		`s:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/">` +
		`<s:Body>` + inner + `</s:Body></s:Envelope>`
}

// request assembles the raw HTTP POST for one SOAP action against the
// device's control URL. Content-Length is the exact byte length of the
// body; SOAPACTION carries the quoted service URN and action name.
func request(d *ssdp.Device, action, body string) []byte {
	header := strings.Join([]string{
		fmt.Sprintf("POST %s HTTP/1.1", d.ControlURL),
		fmt.Sprintf("User-Agent: dlnacast/%s", version.Version),
		"Accept: */*",
		`Content-Type: text/xml; charset="utf-8"`,
		fmt.Sprintf("HOST: %s", d.Endpoint()),
		fmt.Sprintf("Content-Length: %d", len(body)),
		fmt.Sprintf(`SOAPACTION: "%s#%s"`, ssdp.URNAVTransport, action),
		"Connection: close",
		"",
		body,
	}, "\r\n")
	return []byte(header)
}

// send delivers one SOAP request in a single unicast TCP write to the
// device's control endpoint.
func send(d *ssdp.Device, action, body string) error {
	logging.Debug("Sending AVTransport command",
		zap.String("action", action),
		zap.String("device", d.String()),
		zap.String("endpoint", d.Endpoint()),
	)
	if err := transport.SendUnicast(d.Endpoint(), request(d, action, body)); err != nil {
		return fmt.Errorf("%s failed: %w", action, err)
	}
	return nil
}
