package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/haytac/readme-emoji-fix/internal/app"
	"github.com/haytac/readme-emoji-fix/internal/config"
	"github.com/haytac/readme-emoji-fix/internal/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// options carries the persistent flags and the configuration they produce.
type options struct {
	cfgFile string
	dryRun  bool
	target  string

	cfg       *config.AppConfig
	logCloser io.Closer
}

// RootCmd is the command run by main.
var RootCmd = NewRootCmd()

// NewRootCmd builds the command tree. Running the root command without a
// subcommand repairs the target in place.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "readme-emoji-fix",
		Short: "Repair mis-encoded emoji headings in a README.",
		Long: `readme-emoji-fix replaces mojibake emoji headings in README.md with their
correctly encoded form, rewriting the file in place.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loadedCfg, err := config.LoadConfig(opts.cfgFile)
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			if cmd.Flags().Changed("target") {
				loadedCfg.Target = opts.target
			}
			loadedCfg.DryRun = opts.dryRun
			opts.cfg = loadedCfg

			opts.logCloser = logging.Setup(loadedCfg.Log)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer opts.closeLog()
			application, err := opts.newApplication(cmd)
			if err != nil {
				return err
			}
			_, err = application.Fix(cmd.Context())
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./.readme-emoji-fix.yaml, $HOME/.readme-emoji-fix.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, "report what would be replaced without writing the file")
	cmd.PersistentFlags().StringVar(&opts.target, "target", "README.md", "file to repair")

	cmd.AddCommand(newCheckCmd(opts))
	return cmd
}

func (o *options) newApplication(cmd *cobra.Command) (*app.Application, error) {
	if o.cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	application, err := app.NewApplication(o.cfg, afero.NewOsFs(), cmd.OutOrStdout())
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize application")
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application, nil
}

func (o *options) closeLog() {
	if o.logCloser != nil {
		_ = o.logCloser.Close()
		o.logCloser = nil
	}
}

// Execute runs RootCmd and exits non-zero on failure. An interrupt cancels
// the run before the file is rewritten.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
