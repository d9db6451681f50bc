package cmd

import (
	"fmt"

	"github.com/bnema/twmj/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func Execute() error {
	return newRootCmd().Execute()
}

// cliEnv is filled in by the root command before any subcommand runs.
type cliEnv struct {
	configFile string
	verbose    bool

	viper  *viper.Viper
	config config.Config
	logger *zap.Logger
}

// flagKeys maps command flags onto config keys so a flag set on the command
// line wins over the environment and the config file.
var flagKeys = map[string]string{
	"listen":    config.KeyListen,
	"slots":     config.KeySlots,
	"inference": config.KeyInferenceURL,
	"dir":       config.KeyTemplatesDir,
	"server":    config.KeyServerURL,
	"profile":   config.KeyScoringProfile,
}

func newRootCmd() *cobra.Command {
	env := &cliEnv{}

	rootCmd := &cobra.Command{
		Use:           "twmj",
		Short:         "Taiwanese mahjong tile recognition service",
		Long:          "twmj serves tile classification for hand photos and live camera scans, exchanges scoring templates between players, and counts points for a winning hand.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return env.init(cmd.Flags())
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			env.sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&env.configFile, "config", "", "Config file (default: ./twmj.toml, then the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&env.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(env),
		newTemplatesCmd(env),
		newClassifyCmd(env),
		newScanCmd(env),
		newPointsCmd(env),
		newScoringCmd(env),
	)

	return rootCmd
}

func (e *cliEnv) init(flags *pflag.FlagSet) error {
	v := viper.New()
	if err := config.Init(v, e.configFile); err != nil {
		return err
	}
	for name, key := range flagKeys {
		if flag := flags.Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return fmt.Errorf("bind --%s: %w", name, err)
			}
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(e.verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	e.viper = v
	e.config = cfg
	e.logger = logger
	return nil
}

func (e *cliEnv) sync() {
	if e.logger != nil {
		_ = e.logger.Sync()
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
