package x11

import "github.com/pkg/errors"

// Sentinel errors, one per step of an idle query. Callers classify a
// failure with errors.Is; the wrapped chain carries the underlying
// protocol detail.
var (
	// ErrConnection means no connection to the X server could be
	// established.
	ErrConnection = errors.New("couldn't open display")

	// ErrExtension means the server does not expose the
	// MIT-SCREEN-SAVER extension.
	ErrExtension = errors.New("screen saver extension not supported")

	// ErrInfoAllocation means the connection setup block carried no
	// usable screen to query against.
	ErrInfoAllocation = errors.New("couldn't allocate screen saver info")

	// ErrInfoQuery means the screen saver info request itself failed.
	ErrInfoQuery = errors.New("couldn't query screen saver info")
)
