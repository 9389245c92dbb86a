package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects how an idle duration is rendered.
type Mode int

const (
	// Raw prints the bare millisecond count.
	Raw Mode = iota
	// HumanReadable decomposes the duration into days, hours, minutes,
	// seconds and milliseconds.
	HumanReadable
)

type component struct {
	divisor uint64
	name    string
}

var components = []component{
	{86400000, "day"},
	{3600000, "hour"},
	{60000, "minute"},
	{1000, "second"},
	{1, "millisecond"},
}

// Duration renders ms in the given mode. In HumanReadable mode only
// non-zero components are printed, comma-separated, with the unit name
// pluralized unless the magnitude is exactly 1; a zero duration renders
// as "0 milliseconds".
func Duration(ms uint64, mode Mode) string {
	if mode == Raw {
		return strconv.FormatUint(ms, 10)
	}

	var parts []string
	rest := ms
	for _, c := range components {
		n := rest / c.divisor
		rest %= c.divisor
		if n == 0 {
			continue
		}
		name := c.name
		if n != 1 {
			name += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, name))
	}

	if len(parts) == 0 {
		return "0 milliseconds"
	}
	return strings.Join(parts, ", ")
}
