package mempool

import "github.com/btcsuite/btclog/v2"

// log is a logger that is initialized to a no-op logger by default so the
// package may be used without any configured logging. A caller that wires
// the pool into a service should call UseLogger to set a real one.
var log = btclog.Disabled

// DisableLog disables all library log output. Logging is disabled by
// default until UseLogger is called.
func DisableLog() {
	log = btclog.Disabled
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger btclog.Logger) {
	log = logger
}
