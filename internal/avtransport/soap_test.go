package avtransport

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dlnacast/dlnacast/internal/ssdp"
)

// captureServer accepts TCP connections and collects each connection's full
// payload until the listener is closed.
func captureServer(t *testing.T) (addr string, payloads <-chan string, closeFn func()) {
	t.Helper()

	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to start capture server: %v", err)
	}

	ch := make(chan string, 8)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			data, _ := io.ReadAll(conn)
			conn.Close()
			ch <- string(data)
		}
	}()

	return ln.Addr().String(), ch, func() { ln.Close() }
}

func deviceAt(t *testing.T, addr string) *ssdp.Device {
	t.Helper()

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("bad capture address %q: %v", addr, err)
	}
	port, _ := strconv.Atoi(portStr)
	return &ssdp.Device{
		Name:           "Test Renderer",
		IP:             host,
		Port:           port,
		ControlURL:     "/AVTransport/ctrl",
		HasAVTransport: true,
	}
}

func recvPayload(t *testing.T, payloads <-chan string) string {
	t.Helper()
	select {
	case p := <-payloads:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for request")
		return ""
	}
}

func TestSetMediaURI(t *testing.T) {
	addr, payloads, closeFn := captureServer(t)
	defer closeFn()
	device := deviceAt(t, addr)

	uri := "http://10.0.0.2:8000/movie.mp4"
	if err := SetMediaURI(device, uri, 0); err != nil {
		t.Fatalf("SetMediaURI() error = %v", err)
	}

	req := recvPayload(t, payloads)

	if !strings.HasPrefix(req, "POST /AVTransport/ctrl HTTP/1.1\r\n") {
		t.Errorf("request line wrong: %q", req[:strings.Index(req, "\r\n")])
	}
	for _, want := range []string{
		"\r\nHOST: " + addr + "\r\n",
		"\r\nContent-Type: text/xml; charset=\"utf-8\"\r\n",
		"\r\nSOAPACTION: \"" + ssdp.URNAVTransport + "#SetAVTransportURI\"\r\n",
		"\r\nConnection: close\r\n",
		"<CurrentURI>" + uri + "</CurrentURI>",
		"<InstanceID>0</InstanceID>",
		"<CurrentURIMetaData />",
	} {
		if !strings.Contains(req, want) {
			t.Errorf("request missing %q", want)
		}
	}

	// Content-Length must be the exact byte length of the body.
	parts := strings.SplitN(req, "\r\n\r\n", 2)
	if len(parts) != 2 {
		t.Fatal("request has no header/body separator")
	}
	var declared int
	for _, line := range strings.Split(parts[0], "\r\n") {
		if strings.HasPrefix(line, "Content-Length: ") {
			fmt.Sscanf(line, "Content-Length: %d", &declared)
		}
	}
	if declared != len(parts[1]) {
		t.Errorf("Content-Length = %d, body is %d bytes", declared, len(parts[1]))
	}
}

func TestPlay(t *testing.T) {
	addr, payloads, closeFn := captureServer(t)
	defer closeFn()
	device := deviceAt(t, addr)

	if err := Play(device, 0); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	req := recvPayload(t, payloads)
	if !strings.Contains(req, "SOAPACTION: \""+ssdp.URNAVTransport+"#Play\"") {
		t.Errorf("request missing Play SOAPACTION header: %q", req)
	}
	if !strings.Contains(req, "<Speed>1</Speed>") {
		t.Error("Play body missing Speed element")
	}
}

func TestPauseAndStop(t *testing.T) {
	tests := []struct {
		name   string
		call   func(*ssdp.Device) error
		action string
	}{
		{"pause", func(d *ssdp.Device) error { return Pause(d, 0) }, "Pause"},
		{"stop", func(d *ssdp.Device) error { return Stop(d, 0) }, "Stop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, payloads, closeFn := captureServer(t)
			defer closeFn()
			device := deviceAt(t, addr)

			if err := tt.call(device); err != nil {
				t.Fatalf("%s error = %v", tt.action, err)
			}

			req := recvPayload(t, payloads)
			if !strings.Contains(req, "SOAPACTION: \""+ssdp.URNAVTransport+"#"+tt.action+"\"") {
				t.Errorf("request missing %s SOAPACTION header", tt.action)
			}
			if !strings.Contains(req, "<InstanceID>0</InstanceID>") {
				t.Errorf("%s body missing InstanceID", tt.action)
			}
		})
	}
}

func TestPlayURI_TwoSendsInOrder(t *testing.T) {
	addr, payloads, closeFn := captureServer(t)
	defer closeFn()
	device := deviceAt(t, addr)

	uri := "http://10.0.0.2:8000/movie.mp4"
	if err := PlayURI(device, uri, 0); err != nil {
		t.Fatalf("PlayURI() error = %v", err)
	}

	first := recvPayload(t, payloads)
	second := recvPayload(t, payloads)

	if !strings.Contains(first, "#SetAVTransportURI\"") {
		t.Error("first send is not SetAVTransportURI")
	}
	if !strings.Contains(first, "<CurrentURI>"+uri+"</CurrentURI>") {
		t.Error("SetAVTransportURI body missing the URI")
	}
	if !strings.Contains(second, "#Play\"") {
		t.Error("second send is not Play")
	}
	if !strings.Contains(second, "<Speed>1</Speed>") {
		t.Error("Play body missing Speed = 1")
	}

	select {
	case extra := <-payloads:
		t.Errorf("unexpected third send: %q", extra)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestPlayURI_TransportErrorPropagates(t *testing.T) {
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve port: %v", err)
	}
	device := deviceAt(t, ln.Addr().String())
	ln.Close()

	if err := PlayURI(device, "http://10.0.0.2/movie.mp4", 0); err == nil {
		t.Error("PlayURI() against closed port should return an error")
	}
}
