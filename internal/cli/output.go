package cli

import (
	"fmt"
	"io"

	"github.com/skyline-sdi/sdi-rss/internal/skyline"
)

// Formatter renders per-arrival status lines in the original tools' format:
// "[# ]<stamp> <+|-> <runtime> <skyline size> <count>", with time-mode runs
// appending the current window length as a trailing field.
type Formatter struct {
	w    io.Writer
	time bool
}

// NewFormatter builds a Formatter. timeMode selects the time-window line
// shape (float stamps, trailing window-length field) over the count-window
// shape (1-based integer stamps).
func NewFormatter(w io.Writer, timeMode bool) *Formatter {
	return &Formatter{w: w, time: timeMode}
}

// Line writes one status line for res.
func (f *Formatter) Line(res skyline.Result) {
	sign := '+'
	if res.Dominated {
		sign = '-'
	}
	prefix := ""
	if res.PreWarmup {
		prefix = "# "
	}
	if f.time {
		fmt.Fprintf(f.w, "%s%.6f %c %.6f %d %d %d\n",
			prefix, float64(res.Stamp), sign, res.Elapsed.Seconds(), res.SkylineSize, res.Count, res.WindowLen)
		return
	}
	fmt.Fprintf(f.w, "%s%.0f %c %.6f %d %d\n",
		prefix, float64(res.Stamp)+1, sign, res.Elapsed.Seconds(), res.SkylineSize, res.Count)
}

// Footer writes the final mean-processing-time summary line.
func (f *Formatter) Footer(meanSeconds float64) {
	fmt.Fprintf(f.w, "# Mean processing time: %.9f sec/tuple\n", meanSeconds)
}
