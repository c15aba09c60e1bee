package model

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalRendererDisplay(t *testing.T) {
	var out bytes.Buffer
	r := &TerminalRenderer{Out: &out}

	// Rows run across the screen, cols run down it.
	require.NoError(t, r.Display(3, 2, []Cell{{Row: 0, Col: 0}, {Row: 2, Col: 1}}))

	want := gridPosBlock + gridPosEmpty + gridPosEmpty + "\n" +
		gridPosEmpty + gridPosEmpty + gridPosBlock + "\n"
	assert.Equal(t, want, out.String())
}

func TestTerminalRendererDisplayRejectsOutOfRange(t *testing.T) {
	var out bytes.Buffer
	r := &TerminalRenderer{Out: &out}

	err := r.Display(3, 2, []Cell{{Row: 1, Col: 2}})
	assert.True(t, errors.Is(err, ErrIndexOutOfBounds))
	assert.Zero(t, out.Len())
}
