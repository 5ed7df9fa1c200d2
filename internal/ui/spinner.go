package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// newSpinner returns the "- \ | /" spinner advancing fps frames per second.
func newSpinner(fps int) spinner.Spinner {
	if fps < 1 {
		fps = 1
	}
	return spinner.Spinner{
		Frames: []string{"-", "\\", "|", "/"},
		FPS:    time.Second / time.Duration(fps),
	}
}

// frameCount is the fixed number of frames shown for an animation of length d.
func frameCount(s spinner.Spinner, d time.Duration) int {
	if s.FPS <= 0 || d <= 0 {
		return 0
	}
	return int(d / s.FPS)
}

// Spin prints message followed by an in-place spinner for the configured
// duration, then a check mark. Off a terminal only the check mark is
// printed after the message.
func (p *Presenter) Spin(message string) {
	fmt.Fprint(p.out, p.styles.warning.Render(message+"... "))

	if p.animate {
		frames := p.spinner.Frames
		for i := 0; i < frameCount(p.spinner, p.spinDuration); i++ {
			fmt.Fprint(p.out, frames[i%len(frames)])
			p.sleep(p.spinner.FPS)
			fmt.Fprint(p.out, "\b")
		}
	}

	fmt.Fprintln(p.out, "✓")
}
