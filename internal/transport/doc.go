// Package transport provides the two low-level network sends used by the
// DLNA pipeline: a one-shot UDP multicast probe and a one-shot TCP payload
// delivery.
//
// Both helpers make exactly one attempt. There is no retry logic anywhere in
// this package; callers decide what a failure means.
//
// # Multicast
//
// SendMulticast writes a single datagram to a multicast group and hands the
// open socket back to the caller, who reads the responses and owns the close:
//
//	conn, err := transport.SendMulticast("239.255.255.250:1900", probe)
//	if err != nil {
//	    return err
//	}
//	defer conn.Close()
//
// # Unicast
//
// SendUnicast opens a TCP connection, writes the entire payload and closes
// the connection on every path. Connect and write failures are returned to
// the caller unchanged apart from wrapping.
package transport
