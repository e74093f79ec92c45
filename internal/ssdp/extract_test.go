package ssdp

import "testing"

func TestExtractPort(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     int
	}{
		{
			name:     "explicit port",
			location: "http://10.0.0.5:8080/desc.xml",
			want:     8080,
		},
		{
			name:     "no port segment defaults to 80",
			location: "http://10.0.0.5/desc.xml",
			want:     80,
		},
		{
			name:     "standard SSDP description port",
			location: "http://192.168.1.40:49152/description.xml",
			want:     49152,
		},
		{
			name:     "empty string",
			location: "",
			want:     80,
		},
		{
			name:     "port in path only",
			location: "http://10.0.0.5/desc:8080.xml",
			want:     80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPort(tt.location); got != tt.want {
				t.Errorf("ExtractPort(%q) = %v, want %v", tt.location, got, tt.want)
			}
		})
	}
}

func TestExtractControlURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "service block on one line",
			raw:  "<serviceType>" + URNAVTransport + "</serviceType><controlURL>/ctrl</controlURL>",
			want: "/ctrl",
		},
		{
			name: "service block split across lines",
			raw: "<service>\n  <serviceType>" + URNAVTransport + "</serviceType>\n" +
				"  <SCPDURL>/scpd.xml</SCPDURL>\n  <controlURL>/ctrl</controlURL>\n</service>",
			want: "/ctrl",
		},
		{
			name: "unrelated service type only",
			raw: "<serviceType>urn:schemas-upnp-org:service:ConnectionManager:1</serviceType>" +
				"<controlURL>/cm</controlURL>",
			want: "",
		},
		{
			name: "empty document",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractControlURL(tt.raw, URNAVTransport); got != tt.want {
				t.Errorf("ExtractControlURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractFriendlyName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "present",
			raw:  "<friendlyName>Living Room TV</friendlyName>",
			want: "Living Room TV",
		},
		{
			name: "first of several wins",
			raw:  "<friendlyName>First</friendlyName><friendlyName>Second</friendlyName>",
			want: "First",
		},
		{
			name: "absent tag yields sentinel",
			raw:  "<root><device></device></root>",
			want: UnknownName,
		},
		{
			name: "empty document yields sentinel",
			raw:  "",
			want: UnknownName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractFriendlyName(tt.raw); got != tt.want {
				t.Errorf("ExtractFriendlyName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "typical discovery response",
			raw: "HTTP/1.1 200 OK\r\nCACHE-CONTROL: max-age=1800\r\n" +
				"LOCATION: http://10.0.0.5:80/desc.xml\r\nST: ssdp:all\r\n\r\n",
			want: "http://10.0.0.5:80/desc.xml",
		},
		{
			name: "no location line",
			raw:  "HTTP/1.1 200 OK\r\nST: ssdp:all\r\n\r\n",
			want: "",
		},
		{
			name: "lowercase header is not matched",
			raw:  "HTTP/1.1 200 OK\r\nlocation: http://10.0.0.5/desc.xml\r\n\r\n",
			want: "",
		},
		{
			name: "empty response",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractLocation(tt.raw); got != tt.want {
				t.Errorf("ExtractLocation() = %q, want %q", got, tt.want)
			}
		})
	}
}
