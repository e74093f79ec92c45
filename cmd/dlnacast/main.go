// Dlnacast discovers DLNA/UPnP media renderers on the local network and
// sends them basic playback commands.
//
// It probes the SSDP multicast group, lists the renderers that respond, and
// can point the first matching device at a media URL and start playback.
//
// Usage:
//
//	dlnacast [flags]
//
// Running without flags lists the discovered devices. See 'dlnacast --help'
// for the full flag surface.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dlnacast/dlnacast/internal/logging"
	"github.com/dlnacast/dlnacast/internal/version"
)

// errNoDevices marks the "nothing responded" terminal state. The message is
// printed where it occurs; main only maps it to a non-zero exit.
var errNoDevices = errors.New("no devices found")

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errNoDevices) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dlnacast",
	Short: "Discover and control DLNA media renderers",
	Long: `Discover DLNA/UPnP media renderers on the local network and send them
basic playback commands.

Without an action flag the discovered devices are listed, one per line,
prefixed '+' when the device supports playback control (AVTransport) and
'-' when it does not. With an action flag the first discovered device
matching the name filter is targeted.`,
	Example: `  # List every renderer on the network
  dlnacast --list

  # Cast a video to the living room TV
  dlnacast -d "Living Room" --play http://10.0.0.2:8000/movie.mp4

  # Longer discovery window for slow networks
  dlnacast -t 10 --list

  # Choose the target interactively
  dlnacast --interactive --play http://10.0.0.2:8000/movie.mp4`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dlnacast %s\n", version.Full())
	},
}
