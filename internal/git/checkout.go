package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"pkt.systems/pslog"
)

// InvocationError reports that control could not be handed to git.
type InvocationError struct {
	Ref string
	Err error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("checkout %s: %v", e.Ref, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// Invoker replaces the running process with `git checkout <ref>`.
type Invoker struct {
	Program  string
	LookPath func(file string) (string, error)
	Exec     func(argv0 string, argv []string, envv []string) error
	Environ  func() []string
}

func NewInvoker() *Invoker {
	return &Invoker{
		Program:  "git",
		LookPath: exec.LookPath,
		Exec:     execProcess,
		Environ:  os.Environ,
	}
}

// Checkout hands the ref to git. It only returns when the handoff failed,
// or when Exec is a test double that returns nil.
// The terminal must already be restored when this is called.
func (i *Invoker) Checkout(ctx context.Context, ref string) error {
	log := pslog.Ctx(ctx).With("ref", ref)

	bin, err := i.LookPath(i.Program)
	if err != nil {
		return &InvocationError{Ref: ref, Err: err}
	}

	argv := []string{i.Program, "checkout", ref}
	log.Debug("exec git checkout", "path", bin)
	if err := i.Exec(bin, argv, i.Environ()); err != nil {
		return &InvocationError{Ref: ref, Err: fmt.Errorf("exec %s: %w", bin, err)}
	}
	return nil
}
