// Package ssdp implements SSDP-based discovery of DLNA/UPnP media renderers
// on the local network.
//
// # Discovery Process
//
// The discovery process works as follows:
//  1. Sends an M-SEARCH probe to the SSDP multicast group (239.255.255.250:1900)
//  2. Collects unicast responses on the same socket until the timeout elapses
//  3. Extracts the LOCATION header from each response
//  4. Fetches and parses the device description XML behind it
//  5. Deduplicates devices by (name, IP) and applies an optional name filter
//
// # Usage Example
//
//	scanner := ssdp.NewScanner()
//	scanner.Timeout = 5 * time.Second
//	devices, err := scanner.Discover()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, device := range devices {
//	    fmt.Println(device)
//	}
//
// # Parsing
//
// Renderer description documents vary wildly across vendors and are often not
// well-formed XML, so the extractor functions in this package deliberately use
// pattern matching over raw text instead of a structured XML decoder. Each
// extractor returns a defined default when its pattern is absent; a parse miss
// is never an error. They are the single seam to swap in a structured parser
// later without touching call sites.
//
// # Failure Model
//
// A device whose description fetch or parse fails is logged and kept in the
// result list with whatever fields were already populated. One unreachable
// renderer must not abort discovery of the others. A socket error during the
// response wait, by contrast, aborts the whole discovery call.
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Devices must be on the same local network segment
// - IPv4 only
package ssdp
