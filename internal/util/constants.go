package util

// Values of server.mode.
const (
	ModeDebug = "debug"
	ModeTest  = "test"
)
