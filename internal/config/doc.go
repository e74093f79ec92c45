// Package config manages the dlnacast user configuration file.
//
// The configuration stores user preferences such as the default discovery
// timeout, search target and device name filter. Discovered devices are
// deliberately not persisted; every run starts with a fresh discovery.
//
// The file lives in the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/dlnacast/config.yaml or $HOME/.config/dlnacast/config.yaml
//   - macOS: $HOME/.config/dlnacast/config.yaml
//   - Windows: %LOCALAPPDATA%\dlnacast\config.yaml
//
// Loading is lazy and cached; saving uses an atomic write (temp file plus
// rename) to prevent corruption on crash. Command-line flags always take
// precedence over configured preferences.
package config
