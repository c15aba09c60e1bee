package model

import (
	"bytes"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// Renderer draws one generation from its alive cells
type Renderer interface {
	Clear() error
	Display(width, height int, alive []Cell) error
}

// TerminalRenderer implements basic terminal rendering.
// Row maps to the horizontal axis and Col to the vertical one.
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the alive cells of a width x height board
func (r *TerminalRenderer) Display(width, height int, alive []Cell) error {
	lit := make([]bool, width*height)
	for _, c := range alive {
		if c.Row < 0 || c.Row >= width || c.Col < 0 || c.Col >= height {
			return errors.Wrapf(ErrIndexOutOfBounds, "[Display] cell (%d, %d) on %dx%d board", c.Row, c.Col, width, height)
		}
		lit[c.Col*width+c.Row] = true
	}

	var frame bytes.Buffer
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if lit[y*width+x] {
				frame.WriteString(gridPosBlock)
			} else {
				frame.WriteString(gridPosEmpty)
			}
		}
		frame.WriteByte('\n')
	}

	if _, err := r.Out.Write(frame.Bytes()); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
