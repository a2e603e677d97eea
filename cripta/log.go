package cripta

import "github.com/btcsuite/btclog/v2"

// Subsystem defines the logging code for this subsystem.
const Subsystem = "CRPT"

// log is a logger that is initialized with the btclog.Disabled logger. The
// package performs no logging until the caller requests it with UseLogger.
var log = btclog.Disabled

// DisableLog disables all library log output.
func DisableLog() {
	UseLogger(btclog.Disabled)
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger btclog.Logger) {
	log = logger
}
