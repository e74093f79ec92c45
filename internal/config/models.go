package config

// Registry represents the entire user configuration file.
// It stores application preferences only; discovered devices are never
// cached across runs.
type Registry struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// Preferences represents application-wide user preferences. Command-line
// flags always override these values.
type Preferences struct {
	ScanTimeout  int    `yaml:"scan_timeout"`            // Discovery timeout in seconds
	SearchTarget string `yaml:"search_target,omitempty"` // SSDP ST header value
	DeviceFilter string `yaml:"device_filter,omitempty"` // Default device name filter
	InstanceID   int    `yaml:"instance_id"`             // AVTransport instance to address
	Interactive  bool   `yaml:"interactive"`             // Use the interactive picker for device selection
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Preferences: &Preferences{
			ScanTimeout:  3,
			SearchTarget: "ssdp:all",
			InstanceID:   0,
			Interactive:  false,
		},
	}
}
