package transport

import (
	"fmt"
	"net"

	"go.uber.org/zap"

	"github.com/dlnacast/dlnacast/internal/logging"
)

// SendMulticast opens a UDP socket, sends payload once to the group address
// (host:port) and returns the socket so the caller can read the responses.
// The caller owns the returned socket and must close it; on error no socket
// is returned and nothing is left open.
//
// Only IPv4 is supported.
func SendMulticast(group string, payload []byte) (*net.UDPConn, error) {
	addr, err := net.ResolveUDPAddr("udp4", group)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve multicast group %s: %w", group, err)
	}

	conn, err := net.ListenUDP("udp4", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open UDP socket: %w", err)
	}

	if _, err := conn.WriteToUDP(payload, addr); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to send to multicast group %s: %w", group, err)
	}

	logging.Debug("Multicast probe sent",
		zap.String("group", group),
		zap.Int("length", len(payload)),
	)

	return conn, nil
}

// SendUnicast opens a TCP connection to addr (host:port), writes the whole
// payload and closes the connection. The connection is closed on every exit
// path; connect and write failures are returned to the caller.
func SendUnicast(addr string, payload []byte) error {
	conn, err := net.Dial("tcp4", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	defer conn.Close()

	if _, err := conn.Write(payload); err != nil {
		return fmt.Errorf("failed to write to %s: %w", addr, err)
	}

	logging.Debug("Unicast payload sent",
		zap.String("addr", addr),
		zap.Int("length", len(payload)),
	)

	return nil
}
