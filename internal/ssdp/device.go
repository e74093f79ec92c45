package ssdp

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/dlnacast/dlnacast/internal/logging"
)

// Device represents a discovered DLNA/UPnP device on the network.
type Device struct {
	// IP is the source address of the discovery response.
	IP string

	// Name is the human-readable device name from the description XML,
	// or UnknownName when the description could not be read.
	Name string

	// Port is the HTTP port derived from the location URL (default 80).
	Port int

	// ControlURL is the AVTransport control path on the device, or ""
	// when the device advertises no AVTransport service.
	ControlURL string

	// Location is the description-document URL from the discovery response.
	Location string

	// HasAVTransport reports whether the description document advertises
	// the AVTransport service type.
	HasAVTransport bool
}

// NewDevice builds a Device from one raw discovery datagram and the sender's
// IP address. Construction is best-effort: fetching and parsing the
// description document at the advertised location happens here, and any
// failure along that chain is logged and swallowed, leaving the affected
// fields at their defaults. NewDevice never fails outward; one unreachable
// renderer must not abort discovery of the others.
func NewDevice(raw []byte, ip string) *Device {
	d := &Device{
		IP:   ip,
		Name: UnknownName,
		Port: DefaultPort,
	}

	d.Location = ExtractLocation(string(raw))
	if d.Location == "" {
		logging.Debug("Discovery response carried no LOCATION header",
			zap.String("ip", ip),
		)
		return d
	}
	d.Port = ExtractPort(d.Location)

	desc, err := fetchDescription(d.Location)
	if err != nil {
		logging.Error("Failed to read device description",
			zap.Error(err),
			zap.String("ip", d.IP),
			zap.String("location", d.Location),
		)
		return d
	}

	d.Name = ExtractFriendlyName(desc)
	d.HasAVTransport = strings.Contains(desc, "<serviceType>"+URNAVTransport+"</serviceType>")
	d.ControlURL = ExtractControlURL(desc, URNAVTransport)

	return d
}

// Equal reports device identity: two devices are the same iff name and IP
// match. Port and control-URL differences do not affect identity; this is
// the dedup key during discovery.
func (d *Device) Equal(other *Device) bool {
	return d.Name == other.Name && d.IP == other.IP
}

// String returns a human-readable representation of the device.
func (d *Device) String() string {
	return fmt.Sprintf("%s @ %s", d.Name, d.IP)
}

// Endpoint returns the host:port the device's control server listens on.
func (d *Device) Endpoint() string {
	return fmt.Sprintf("%s:%d", d.IP, d.Port)
}

// fetchDescription performs a plain HTTP GET of the description document.
// The call is blocking with no timeout of its own; the discovery wall-clock
// deadline does not cover it.
func fetchDescription(location string) (string, error) {
	resp, err := http.Get(location)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", location, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read description from %s: %w", location, err)
	}
	return string(body), nil
}
