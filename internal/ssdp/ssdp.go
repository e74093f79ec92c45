package ssdp

import (
	"fmt"
	"net"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dlnacast/dlnacast/internal/logging"
	"github.com/dlnacast/dlnacast/internal/transport"
)

const (
	// MulticastGroup is the standard SSDP multicast group and port.
	MulticastGroup = "239.255.255.250:1900"

	// DefaultSearchTarget matches every SSDP-capable device.
	DefaultSearchTarget = "ssdp:all"

	// DefaultMX is the maximum response delay advertised in the probe.
	DefaultMX = 3

	// DefaultScanTimeout is the default wall-clock bound for one discovery
	// call.
	DefaultScanTimeout = 3 * time.Second

	// readSlice is how long each individual socket wait may last. The scan
	// deadline is checked between slices, so discovery overruns its timeout
	// by at most one slice.
	readSlice = 1 * time.Second

	// readBufferSize bounds one discovery response read. Responses larger
	// than this are truncated, which can lose the LOCATION header; kept at
	// the size real renderers stay under.
	readBufferSize = 1024
)

// Scanner performs SSDP discovery of media renderers.
type Scanner struct {
	// Timeout is the wall-clock bound for collecting responses. It does
	// not cover per-device description fetches.
	Timeout time.Duration

	// SearchTarget is the ST header value of the probe.
	SearchTarget string

	// MX is the MX header value of the probe, in seconds.
	MX int

	// NameFilter, when non-empty, keeps only devices whose name contains
	// it (case-sensitive substring match).
	NameFilter string
}

// NewScanner creates a Scanner with default settings.
func NewScanner() *Scanner {
	return &Scanner{
		Timeout:      DefaultScanTimeout,
		SearchTarget: DefaultSearchTarget,
		MX:           DefaultMX,
	}
}

// SearchRequest returns the M-SEARCH probe for this scanner's settings.
// The header block is CRLF-framed and closed by a blank line.
func (s *Scanner) SearchRequest() []byte {
	lines := []string{
		"M-SEARCH * HTTP/1.1",
		"HOST: " + MulticastGroup,
		"Accept: */*",
		`MAN: "ssdp:discover"`,
		"ST: " + s.SearchTarget,
		fmt.Sprintf("MX: %d", s.MX),
		"",
		"",
	}
	return []byte(strings.Join(lines, "\r\n"))
}

// Discover probes the SSDP multicast group and collects responding devices
// until the timeout elapses. Responses are resolved into Devices one at a
// time (including the blocking description fetch), deduplicated by device
// identity and filtered by NameFilter.
//
// A socket error during the wait aborts the call with no partial result.
// The deadline is soft: an in-flight read slice is not interrupted, so the
// call returns within Timeout plus at most one slice.
func (s *Scanner) Discover() ([]*Device, error) {
	conn, err := transport.SendMulticast(MulticastGroup, s.SearchRequest())
	if err != nil {
		return nil, fmt.Errorf("ssdp probe failed: %w", err)
	}
	defer conn.Close()

	logging.LogDiscoveryEvent("scan_started",
		zap.String("st", s.SearchTarget),
		zap.Duration("timeout", s.Timeout),
		zap.String("filter", s.NameFilter),
	)

	devices := make([]*Device, 0)
	buf := make([]byte, readBufferSize)
	start := time.Now()

	for time.Since(start) <= s.Timeout {
		if err := conn.SetReadDeadline(time.Now().Add(readSlice)); err != nil {
			return nil, fmt.Errorf("ssdp socket failed: %w", err)
		}

		n, src, err := conn.ReadFromUDP(buf)
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				continue
			}
			return nil, fmt.Errorf("ssdp read failed: %w", err)
		}

		logging.LogDatagram(src.String(), buf[:n])
		device := NewDevice(buf[:n], src.IP.String())
		devices = appendDevice(devices, device, s.NameFilter)
	}

	logging.LogDiscoveryEvent("scan_finished", zap.Int("devices", len(devices)))
	return devices, nil
}

// appendDevice adds device to devices unless an identical device (by
// identity, see Device.Equal) was already collected or the name filter
// rejects it. An empty filter keeps everything.
func appendDevice(devices []*Device, device *Device, filter string) []*Device {
	for _, d := range devices {
		if d.Equal(device) {
			return devices
		}
	}
	if filter != "" && !strings.Contains(device.Name, filter) {
		return devices
	}

	logging.Info("Device discovered",
		zap.String("name", device.Name),
		zap.String("ip", device.IP),
		zap.Bool("av_transport", device.HasAVTransport),
	)
	return append(devices, device)
}

// Discover is a convenience function running one discovery call with the
// given name filter and timeout and otherwise default settings.
func Discover(nameFilter string, timeout time.Duration) ([]*Device, error) {
	scanner := NewScanner()
	scanner.NameFilter = nameFilter
	if timeout > 0 {
		scanner.Timeout = timeout
	}
	return scanner.Discover()
}
