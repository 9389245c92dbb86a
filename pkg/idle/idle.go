package idle

// FixedVendorRelease is the first X server release that reports the idle
// counter correctly while DPMS is in a power-saving state. Older servers
// reset the counter to zero on every power-state transition; see Correct.
// The value is the server's release_number from the connection setup block
// and is only ever compared against this constant.
const FixedVendorRelease = 12000000

// Mode is a DPMS power level.
type Mode uint8

const (
	ModeOn Mode = iota
	ModeStandby
	ModeSuspend
	ModeOff
)

func (m Mode) String() string {
	switch m {
	case ModeOn:
		return "on"
	case ModeStandby:
		return "standby"
	case ModeSuspend:
		return "suspend"
	case ModeOff:
		return "off"
	}
	return "unknown"
}

// Info is a single sample of the server's idle counter.
type Info struct {
	RawIdle       uint64 // milliseconds since the last user input event
	VendorRelease int64  // server release number from the setup block
}

// DPMSState is a snapshot of the display power management subsystem.
// The zero value means "DPMS unavailable", which callers use when the
// DPMS query itself fails.
type DPMSState struct {
	Capable bool // server supports DPMS at all
	Enabled bool // DPMS currently active
	Mode    Mode

	// Configured delays, in seconds, before the server enters each
	// power-saving state.
	StandbySec uint16
	SuspendSec uint16
	OffSec     uint16
}

// Threshold returns the cumulative dwell time, in milliseconds, implied
// by the current power-saving mode: the sum of the configured timeouts
// of every state passed through to reach it. It is zero for ModeOn and
// for unrecognized modes.
func (st DPMSState) Threshold() uint64 {
	switch st.Mode {
	case ModeStandby:
		return uint64(st.StandbySec) * 1000
	case ModeSuspend:
		return (uint64(st.SuspendSec) + uint64(st.StandbySec)) * 1000
	case ModeOff:
		return (uint64(st.OffSec) + uint64(st.SuspendSec) + uint64(st.StandbySec)) * 1000
	}
	return 0
}

// Correct compensates for X servers older than FixedVendorRelease, which
// zero the idle counter whenever DPMS enters a power-saving state. When
// that can have happened, the cumulative timeout that led to the current
// state is added back, reconstructing an approximation of the true idle
// time. The result is never less than rawIdle, and identical to it when
// the server is new enough, DPMS is off, or the screen is still on.
func Correct(rawIdle uint64, vendorRelease int64, st DPMSState) uint64 {
	if vendorRelease >= FixedVendorRelease {
		return rawIdle
	}
	if !st.Capable || !st.Enabled {
		return rawIdle
	}

	threshold := st.Threshold()
	// Guard against double-correction: a counter already past the
	// threshold was not reset by this state transition.
	if threshold > 0 && rawIdle < threshold {
		return rawIdle + threshold
	}
	return rawIdle
}
