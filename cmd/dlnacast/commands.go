package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dlnacast/dlnacast/internal/avtransport"
	"github.com/dlnacast/dlnacast/internal/config"
	"github.com/dlnacast/dlnacast/internal/logging"
	"github.com/dlnacast/dlnacast/internal/ssdp"
	"github.com/dlnacast/dlnacast/internal/tui"
)

var (
	listDevices  bool
	deviceFilter string
	scanTimeout  int
	searchTarget string
	playURL      string
	pauseFlag    bool
	stopFlag     bool
	interactive  bool
)

func init() {
	rootCmd.Flags().BoolVar(&listDevices, "list", false, "List discovered devices")
	rootCmd.Flags().StringVarP(&deviceFilter, "device", "d", "", "Device name filter (case-sensitive substring)")
	rootCmd.Flags().IntVarP(&scanTimeout, "timeout", "t", 0, "Discovery timeout in seconds")
	rootCmd.Flags().StringVar(&searchTarget, "st", "", "SSDP search target")
	rootCmd.Flags().StringVar(&playURL, "play", "", "Set the media URL on the target device and start playback")
	rootCmd.Flags().BoolVar(&pauseFlag, "pause", false, "Pause playback on the target device")
	rootCmd.Flags().BoolVar(&stopFlag, "stop", false, "Stop playback on the target device")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick the target device interactively")
}

func runRoot(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	prefs := loadPreferences()
	scanner := buildScanner(cmd, prefs)
	instanceID := prefs.InstanceID

	// An action flag targets one device; anything else is a listing run.
	// --list wins over action flags.
	wantsAction := !listDevices && (playURL != "" || pauseFlag || stopFlag)

	if usePicker(listDevices, interactive, prefs.Interactive) {
		device, err := tui.PickDevice(scanner)
		if err != nil {
			return err
		}
		if device == nil {
			// User quit the picker without choosing.
			return nil
		}
		if wantsAction {
			return runAction(device, instanceID)
		}
		printDevices([]*ssdp.Device{device})
		return nil
	}

	devices, err := scanner.Discover()
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		fmt.Println("No devices found.")
		return errNoDevices
	}

	if !wantsAction {
		printDevices(devices)
		return nil
	}
	return runAction(devices[0], instanceID)
}

// loadPreferences returns the user's configured preferences, falling back to
// defaults when the config file is absent or unreadable.
func loadPreferences() *config.Preferences {
	reg, err := config.LoadRegistry()
	if err != nil {
		logging.Warn("Failed to load configuration, using defaults", zap.Error(err))
		return config.NewRegistry().Preferences
	}

	// First run: persist the defaults so there is a file to edit.
	if err := reg.SaveIfMissing(); err != nil {
		logging.Warn("Failed to write default configuration", zap.Error(err))
	}
	return reg.Preferences
}

// usePicker reports whether device selection goes through the interactive
// picker. The --list flag asks for the full listing, so it always bypasses
// the picker; otherwise either the -i flag or the configured preference
// enables it.
func usePicker(listFlag, interactiveFlag, interactivePref bool) bool {
	return !listFlag && (interactiveFlag || interactivePref)
}

// buildScanner merges flags over configured preferences. Flags win.
func buildScanner(cmd *cobra.Command, prefs *config.Preferences) *ssdp.Scanner {
	scanner := ssdp.NewScanner()
	scanner.Timeout = time.Duration(prefs.ScanTimeout) * time.Second
	scanner.SearchTarget = prefs.SearchTarget
	scanner.NameFilter = prefs.DeviceFilter

	if cmd.Flags().Changed("timeout") && scanTimeout > 0 {
		scanner.Timeout = time.Duration(scanTimeout) * time.Second
	}
	if cmd.Flags().Changed("st") && searchTarget != "" {
		scanner.SearchTarget = searchTarget
	}
	if cmd.Flags().Changed("device") {
		scanner.NameFilter = deviceFilter
	}
	return scanner
}

func printDevices(devices []*ssdp.Device) {
	fmt.Println("Discovered devices:")
	for _, d := range devices {
		marker := "-"
		if d.HasAVTransport {
			marker = "+"
		}
		fmt.Printf(" %s %s\n", marker, d)
	}
}

func runAction(device *ssdp.Device, instanceID int) error {
	switch {
	case playURL != "":
		fmt.Printf("Playing %s on %s\n", playURL, device)
		return avtransport.PlayURI(device, playURL, instanceID)
	case pauseFlag:
		fmt.Printf("Pausing %s\n", device)
		return avtransport.Pause(device, instanceID)
	case stopFlag:
		fmt.Printf("Stopping %s\n", device)
		return avtransport.Stop(device, instanceID)
	}
	return nil
}
