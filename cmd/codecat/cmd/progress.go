package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// progress renders a live file counter on stderr when it is a terminal
// and stays silent otherwise (pipes, CI logs, redirects).
type progress struct {
	out     *os.File
	enabled bool
}

func newProgress(out *os.File) *progress {
	return &progress{
		out:     out,
		enabled: isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()),
	}
}

func (p *progress) update(files int) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.out, "\rcombining... %d files", files)
}

// clear erases the counter line so the summary is not appended to it.
func (p *progress) clear() {
	if !p.enabled {
		return
	}
	fmt.Fprint(p.out, "\r\033[K")
}
