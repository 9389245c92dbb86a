package x11

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/dpms"
	"github.com/jezek/xgb/screensaver"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"

	"xprintidle/pkg/idle"
)

// Session is an open connection to an X server with the MIT-SCREEN-SAVER
// extension initialized. A Session is intended to live for a single
// query; it is not safe for concurrent use.
type Session struct {
	conn    *xgb.Conn
	root    xproto.Window
	release uint32
}

// Open connects to the X server named by display (":0" form) and
// initializes the screen saver extension. On every failure path the
// connection is closed before returning; a non-nil Session owns the
// connection until Close.
func Open(display string) (*Session, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, errors.Wrapf(ErrConnection, "display %q: %v", display, err)
	}

	if err := screensaver.Init(conn); err != nil {
		conn.Close()
		return nil, errors.Wrapf(ErrExtension, "%v", err)
	}

	setup := xproto.Setup(conn)
	if conn.DefaultScreen >= len(setup.Roots) {
		conn.Close()
		return nil, errors.Wrapf(ErrInfoAllocation,
			"display %q: no screen %d in setup block", display, conn.DefaultScreen)
	}

	return &Session{
		conn:    conn,
		root:    setup.DefaultScreen(conn).Root,
		release: setup.ReleaseNumber,
	}, nil
}

// Close releases the connection to the X server.
func (s *Session) Close() {
	s.conn.Close()
}

// QueryIdle reads the idle counter from the screen saver extension. The
// counter and the server's vendor release come from the same connection,
// so they describe the same server.
func (s *Session) QueryIdle() (idle.Info, error) {
	reply, err := screensaver.QueryInfo(s.conn, xproto.Drawable(s.root)).Reply()
	if err != nil {
		return idle.Info{}, errors.Wrapf(ErrInfoQuery, "%v", err)
	}

	return idle.Info{
		RawIdle:       uint64(reply.MsSinceUserInput),
		VendorRelease: int64(s.release),
	}, nil
}

// DPMS takes a best-effort snapshot of the display power management
// state. Any failure along the way yields the zero (not-capable)
// snapshot rather than an error: the idle value is still valid without
// a correction.
func (s *Session) DPMS() idle.DPMSState {
	var st idle.DPMSState

	if err := dpms.Init(s.conn); err != nil {
		return st
	}

	capable, err := dpms.Capable(s.conn).Reply()
	if err != nil || capable == nil || !capable.Capable {
		return st
	}
	st.Capable = true

	timeouts, err := dpms.GetTimeouts(s.conn).Reply()
	if err != nil || timeouts == nil {
		return idle.DPMSState{}
	}
	st.StandbySec = timeouts.StandbyTimeout
	st.SuspendSec = timeouts.SuspendTimeout
	st.OffSec = timeouts.OffTimeout

	info, err := dpms.Info(s.conn).Reply()
	if err != nil || info == nil {
		return idle.DPMSState{}
	}
	st.Enabled = info.State
	st.Mode = powerLevelMode(info.PowerLevel)

	return st
}

func powerLevelMode(level uint16) idle.Mode {
	switch level {
	case dpms.DPMSModeStandby:
		return idle.ModeStandby
	case dpms.DPMSModeSuspend:
		return idle.ModeSuspend
	case dpms.DPMSModeOff:
		return idle.ModeOff
	}
	return idle.ModeOn
}

// QueryIdleTime is the one-shot composition: open a session on display,
// read the idle counter, apply the idle-reset workaround when the server
// is older than idle.FixedVendorRelease, and release the connection.
func QueryIdleTime(display string) (uint64, error) {
	s, err := Open(display)
	if err != nil {
		return 0, err
	}
	defer s.Close()

	info, err := s.QueryIdle()
	if err != nil {
		return 0, err
	}

	if info.VendorRelease >= idle.FixedVendorRelease {
		return info.RawIdle, nil
	}
	return idle.Correct(info.RawIdle, info.VendorRelease, s.DPMS()), nil
}
