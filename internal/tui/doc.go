// Package tui implements the interactive device picker.
//
// The picker runs one discovery scan with a spinner, then shows the
// discovered renderers as a selectable list of cards. Selecting a device
// returns it to the caller; the caller decides what command to run against
// it. Devices without an AVTransport service are shown but marked, since
// playback commands will not work on them.
//
// # Key Bindings
//
//   - up/k, down/j: move
//   - enter: select device
//   - r: rescan
//   - q/esc: quit without selecting
//
// # Usage
//
//	device, err := tui.PickDevice(scanner)
//	if err != nil {
//	    return err
//	}
//	if device == nil {
//	    // user quit without choosing
//	}
package tui
