package webrtc

import "sync/atomic"

// debugPayloads controls whether every data channel payload is logged.
var debugPayloads atomic.Bool

// SetDebugLogging enables/disables verbose data channel logs.
func SetDebugLogging(enabled bool) {
	debugPayloads.Store(enabled)
}

// debugEnabled reports whether payload debug logs are enabled.
func debugEnabled() bool {
	return debugPayloads.Load()
}
