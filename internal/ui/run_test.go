package ui

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Johannes-Berggren/gco/internal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keyInput feeds keys to the program and then blocks like an idle
// terminal, so the program ends on a key rather than on end of input.
func keyInput(t *testing.T, keys string) io.Reader {
	t.Helper()
	pr, pw := io.Pipe()
	go func() {
		_, _ = pw.Write([]byte(keys))
	}()
	t.Cleanup(func() { _ = pw.Close() })
	return pr
}

func runWithInput(t *testing.T, in io.Reader, refs []models.Ref) (Outcome, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return RunInput(ctx, refs, in, tea.WithOutput(io.Discard))
}

func TestRunCheckoutScenario(t *testing.T) {
	out, err := runWithInput(t, keyInput(t, "jjkc"), sampleRefs())
	require.NoError(t, err)
	assert.Equal(t, ActionCheckout, out.Action)
	assert.Equal(t, "feature/x", out.Ref.Name)
}

func TestRunQuit(t *testing.T) {
	out, err := runWithInput(t, keyInput(t, "jxq"), sampleRefs())
	require.NoError(t, err)
	assert.Equal(t, Outcome{Action: ActionQuit}, out)
}

func TestRunEmptyListOnlyQuits(t *testing.T) {
	out, err := runWithInput(t, keyInput(t, "cjcq"), nil)
	require.NoError(t, err)
	assert.Equal(t, Outcome{Action: ActionQuit}, out)
}

func TestRunEndOfInputFails(t *testing.T) {
	for _, keys := range []string{"", "jj"} {
		start := time.Now()
		out, err := runWithInput(t, strings.NewReader(keys), sampleRefs())

		require.Error(t, err, "keys %q", keys)
		assert.Contains(t, err.Error(), ErrInputClosed.Error())
		assert.False(t, errors.Is(err, context.DeadlineExceeded), "keys %q", keys)
		assert.Less(t, time.Since(start), 4*time.Second)
		assert.Equal(t, Outcome{}, out)
	}
}

func TestRunClosedDeviceFails(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	require.NoError(t, w.Close())
	defer r.Close()

	_, err = runWithInput(t, r, sampleRefs())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrInputClosed.Error())
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pr, pw := io.Pipe()
	defer pw.Close()

	_, err := RunInput(ctx, sampleRefs(), pr, tea.WithOutput(io.Discard))
	assert.Error(t, err)
}

func TestGuardEOFKeepsFileMethods(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	require.NoError(t, w.Close())
	defer r.Close()

	in := guardEOF(r)
	f, ok := in.(interface {
		io.ReadWriteCloser
		Fd() uintptr
		Name() string
	})
	require.True(t, ok, "guarded file lost its file methods")
	assert.Equal(t, r.Fd(), f.Fd())

	_, err = in.Read(make([]byte, 8))
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestGuardEOFPassesOtherErrors(t *testing.T) {
	boom := errors.New("tty closed")
	_, err := guardEOF(failingReader{err: boom}).Read(make([]byte, 8))
	assert.ErrorIs(t, err, boom)
}

func TestFinishWithoutOutcomeFails(t *testing.T) {
	_, err := finish(NewModel(sampleRefs()), nil)
	assert.ErrorIs(t, err, ErrNoOutcome)

	m, _ := NewModel(sampleRefs()).Update(runes("q"))
	out, err := finish(m, nil)
	require.NoError(t, err)
	assert.Equal(t, ActionQuit, out.Action)

	boom := errors.New("interrupted")
	_, err = finish(nil, boom)
	assert.ErrorIs(t, err, boom)
}

type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) {
	return 0, r.err
}
