package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner to w, coloured for the terminal's profile.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)

	lines := []struct {
		text  string
		color string
	}{
		{`        _ _     _`, "#818cf8"},
		{` __   _(_) |__ (_)_ __`, "#a78bfa"},
		{` \ \ / / | '_ \| | '_ \`, "#c084fc"},
		{`  \ V /| | |_) | | | | |  remote`, "#e879f9"},
		{`   \_/ |_|_.__/|_|_| |_|  ` + version, "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
