package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Johannes-Berggren/gco/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

const ttyPath = "/dev/tty"

var (
	// ErrInputClosed reports that the terminal reached end of input.
	ErrInputClosed = errors.New("terminal input closed")
	// ErrNoOutcome reports a picker that stopped without q or c, e.g. on SIGTERM.
	ErrNoOutcome = errors.New("picker stopped without a selection")
)

// Run shows the picker on the controlling terminal until a ref is chosen
// or the user quits. The terminal is restored before Run returns, on every
// path.
func Run(ctx context.Context, refs []models.Ref, opts ...tea.ProgramOption) (Outcome, error) {
	tty, err := os.Open(ttyPath)
	if err != nil {
		return Outcome{}, fmt.Errorf("open terminal: %w", err)
	}
	defer tty.Close()

	return RunInput(ctx, refs, tty, opts...)
}

// RunInput is Run reading keys from in. End of input ends the program with
// ErrInputClosed instead of leaving it waiting for keys that never come.
// Extra options are applied last.
func RunInput(ctx context.Context, refs []models.Ref, in io.Reader, opts ...tea.ProgramOption) (Outcome, error) {
	options := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(guardEOF(in)),
		tea.WithAltScreen(),
	}
	options = append(options, opts...)

	p := tea.NewProgram(NewModel(refs), options...)
	return finish(p.Run())
}

func finish(final tea.Model, err error) (Outcome, error) {
	if err != nil {
		return Outcome{}, fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Outcome{}, fmt.Errorf("run picker: unexpected final model %T", final)
	}
	if !m.Terminated() {
		return Outcome{}, fmt.Errorf("run picker: %w", ErrNoOutcome)
	}
	return m.Outcome(), nil
}

// ttyFile keeps the *os.File methods (Fd, Name, Write, Close) so bubbletea
// still puts the device in raw mode and can cancel reads on it.
type ttyFile struct {
	*os.File
}

func (t ttyFile) Read(p []byte) (int, error) {
	n, err := t.File.Read(p)
	if errors.Is(err, io.EOF) {
		return n, ErrInputClosed
	}
	return n, err
}

type eofReader struct {
	io.Reader
}

func (r eofReader) Read(p []byte) (int, error) {
	n, err := r.Reader.Read(p)
	if errors.Is(err, io.EOF) {
		return n, ErrInputClosed
	}
	return n, err
}

func guardEOF(in io.Reader) io.Reader {
	if f, ok := in.(*os.File); ok {
		return ttyFile{File: f}
	}
	return eofReader{Reader: in}
}
