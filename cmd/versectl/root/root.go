package root

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/app"
	"github.com/aliskhannn/chalisa-kids-bot/internal/config"
	"github.com/aliskhannn/chalisa-kids-bot/internal/metrics"
	"github.com/aliskhannn/chalisa-kids-bot/internal/ui"
)

const Version = "0.1.0"

// flags shared by every subcommand.
type flags struct {
	store   string
	user    int64
	verbose bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:           "versectl",
		Short:         "Read, quiz and track prayers from the terminal",
		Long:          "versectl shares content and learner state with the Telegram bot.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&f.store, "store", config.DriverMemory, "storage driver (memory, sqlite, postgres, redis); empty uses the configured one")
	cmd.PersistentFlags().Int64Var(&f.user, "user", 0, "learner id used for progress and quiz stats")
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "log to stderr")

	cmd.AddCommand(
		newPrayersCmd(f),
		newVersesCmd(f),
		newVerseCmd(f),
		newAlignCmd(),
		newAskCmd(f),
		newQuizCmd(f),
		newDailyCmd(f),
		newLearnCmd(f),
		newProgressCmd(f),
	)

	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

// openServices loads configuration, applies the flags and builds the
// services. cleanup releases the store.
func openServices(ctx context.Context, f *flags) (*app.Services, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if f.store != "" {
		cfg.Storage.Driver = f.store
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}

	logger := zap.NewNop()
	if f.verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, nil, err
		}
	}

	store, closeStore, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	svc, err := app.NewServices(ctx, cfg, store, logger, metrics.Noop{})
	if err != nil {
		closeStore()
		return nil, nil, err
	}

	cleanup := func() {
		closeStore()
		_ = logger.Sync()
	}
	return svc, cleanup, nil
}

func parseIndex(s, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	return n, nil
}
