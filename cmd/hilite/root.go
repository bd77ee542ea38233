package hilite

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/hilite/internal/version"
	"github.com/arthur-debert/hilite/pkg/config"
	"github.com/arthur-debert/hilite/pkg/logging"
)

// app holds state shared by all commands
type app struct {
	fs         afero.Fs
	verbosity  int
	configPath string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}

	rootCmd := &cobra.Command{
		Use:     "hilite",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerWithOutput(a.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "info",
		Title: "REFERENCE:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newSanitizeCmd(a))
	rootCmd.AddCommand(newStripCmd(a))
	rootCmd.AddCommand(newCodesCmd(a))
	rootCmd.AddCommand(newPalettesCmd(a))
	rootCmd.AddCommand(newLegendCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// loadConfig loads the layered configuration with flag overrides applied last
func (a *app) loadConfig(overrides map[string]interface{}) (*config.Config, error) {
	opts := config.DefaultOptions()
	opts.Fs = a.fs
	if a.configPath != "" {
		opts.UserConfig = a.configPath
	}
	opts.Overrides = overrides
	return config.Load(opts)
}
