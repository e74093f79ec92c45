package ssdp

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// URNAVTransport is the UPnP service type used for playback control.
	URNAVTransport = "urn:schemas-upnp-org:service:AVTransport:1"

	// UnknownName is the sentinel used when a description document carries
	// no friendlyName element.
	UnknownName = "Unknown"

	// DefaultPort is assumed when a location URL has no port segment.
	DefaultPort = 80

	locationPrefix = "LOCATION: "
)

var (
	portPattern         = regexp.MustCompile(`^http://[^/:]+:(\d+)`)
	friendlyNamePattern = regexp.MustCompile(`<friendlyName>(.*?)</friendlyName>`)
)

// ExtractPort returns the port segment of a location URL such as
// "http://host:port/path", or DefaultPort when the URL has none.
func ExtractPort(location string) int {
	m := portPattern.FindStringSubmatch(location)
	if m == nil {
		return DefaultPort
	}
	port, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultPort
	}
	return port
}

// ExtractControlURL returns the controlURL text associated with the given
// serviceType URN in a raw description document, or "" when the URN is
// absent. Newlines are flattened first because the service block commonly
// spans lines.
func ExtractControlURL(raw, serviceURN string) string {
	flat := strings.ReplaceAll(raw, "\n", "")
	pattern := regexp.MustCompile(
		`<serviceType>` + regexp.QuoteMeta(serviceURN) + `</serviceType>.*?<controlURL>(.*?)</controlURL>`)
	m := pattern.FindStringSubmatch(flat)
	if m == nil {
		return ""
	}
	return m[1]
}

// ExtractFriendlyName returns the first friendlyName text in a raw
// description document, or UnknownName when there is none.
func ExtractFriendlyName(raw string) string {
	m := friendlyNamePattern.FindStringSubmatch(raw)
	if m == nil {
		return UnknownName
	}
	return m[1]
}

// ExtractLocation scans the CRLF-delimited header lines of a raw discovery
// response for a line beginning "LOCATION:" and returns its value, or ""
// when no such line exists. The match is case-sensitive.
func ExtractLocation(raw string) string {
	for _, line := range strings.Split(raw, "\r\n") {
		if strings.HasPrefix(line, "LOCATION:") {
			return strings.TrimPrefix(line, locationPrefix)
		}
	}
	return ""
}
