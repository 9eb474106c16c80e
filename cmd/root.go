package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Johannes-Berggren/gco/internal/git"
	"github.com/Johannes-Berggren/gco/internal/models"
	"github.com/Johannes-Berggren/gco/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"
)

// app holds the collaborators of the root command so tests can replace the
// terminal picker and the process handoff.
type app struct {
	fs       afero.Fs
	pick     func(ctx context.Context, refs []models.Ref) (ui.Outcome, error)
	checkout func(ctx context.Context, ref string) error
}

func defaultApp() *app {
	return &app{
		fs: afero.NewOsFs(),
		pick: func(ctx context.Context, refs []models.Ref) (ui.Outcome, error) {
			return ui.Run(ctx, refs)
		},
		checkout: git.NewInvoker().Checkout,
	}
}

func newRootCmd(a *app) *cobra.Command {
	var dir string

	root := &cobra.Command{
		Use:   "gco",
		Short: "Pick a branch or tag and check it out",
		Long: `gco lists the local branches and tags of the repository in the current
directory. Move with j/k, press c to check out the highlighted ref, q to quit.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), dir)
		},
	}
	root.PersistentFlags().StringVarP(&dir, "dir", "C", ".", "run as if gco was started in this directory")

	root.AddCommand(newListCmd(a, &dir))
	root.AddCommand(newVersionCmd())
	return root
}

func (a *app) loadRefs(ctx context.Context, dir string) ([]models.Ref, string, error) {
	gitDir := git.GitDir(dir)
	refs, err := git.NewScanner(a.fs).ScanRepo(ctx, gitDir)
	if err != nil {
		return nil, gitDir, err
	}
	return refs, gitDir, nil
}

func (a *app) run(ctx context.Context, dir string) error {
	refs, gitDir, err := a.loadRefs(ctx, dir)
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		return fmt.Errorf("%w in %s", git.ErrNoRefs, gitDir)
	}

	outcome, err := a.pick(ctx, refs)
	if err != nil {
		return err
	}
	if outcome.Action != ui.ActionCheckout {
		return nil
	}
	return a.checkout(ctx, outcome.Ref.Name)
}

// Execute runs gco and returns the process exit code.
func Execute(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)

	if err := newRootCmd(defaultApp()).ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("gco failed")
		return 1
	}
	return 0
}
