// Package logging provides structured logging for dlnacast.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the tool. Logging is silent by default so normal
// CLI output stays clean; set DLNACAST_LOG_LEVEL to enable it.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (raw datagram dumps, probe/command payloads)
//   - Info: Normal operations (discovery events, devices found, commands sent)
//   - Warn: Non-fatal issues (responses without LOCATION headers)
//   - Error: Failures (unreachable description documents, socket errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Device discovered",
//	    zap.String("name", "Living Room TV"),
//	    zap.String("ip", "10.0.0.5"),
//	)
//
// # Specialized Logging
//
// The package provides domain-specific logging functions:
//
//	logging.LogDatagram(srcAddr, rawResponse)
//	logging.LogDiscoveryEvent("scan_started", zap.Duration("timeout", timeout))
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
