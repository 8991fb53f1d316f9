package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-panel/internal/config"
	"github.com/grindlemire/go-panel/internal/observability"
)

type configKey struct{}

// flagKeys maps flag names to the config keys they override.
var flagKeys = map[string]string{
	"width":       "viewport.width",
	"height":      "viewport.height",
	"concurrency": "concurrency",
	"trace":       "trace.enabled",
	"log-level":   "logger.level",
	"output":      "output.format",
	"format":      "render.format",
	"dir":         "render.dir",
	"scale":       "render.scale",
	"labels":      "render.labels",
	"clip":        "render.clip",
	"interval":    "watch.interval",
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	defaults := config.NewDefaultConfig()

	root := &cobra.Command{
		Use:           "panel",
		Short:         "Lay out and render panel markup documents",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v := viper.New()
			config.SetDefaults(v)
			if err := initializeConfig(cmd, v, cfgFile); err != nil {
				return err
			}
			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			observability.Initialize(cfg.Logger, zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())))
			if cfg.Trace.Enabled {
				observability.EnableTrace(cmd.ErrOrStderr(), cfg.Trace.Mute)
				// The diagnostic log is process-wide; interleaved documents
				// would be unreadable.
				cfg.Concurrency = 1
			}
			observability.GetLogger().Debug("starting", zap.String("command", cmd.Name()), zap.String("version", Version))

			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			observability.DisableTrace()
			observability.Sync()
		},
	}
	root.SetVersionTemplate("panel version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default ./panel.yaml)")
	pf.Float64("width", defaults.Viewport.Width, "viewport width, 0 for unbounded")
	pf.Float64("height", defaults.Viewport.Height, "viewport height, 0 for unbounded")
	pf.Int("concurrency", defaults.Concurrency, "documents processed at once")
	pf.Bool("trace", false, "write the layout engine's diagnostic log to stderr")
	pf.String("log-level", defaults.Logger.Level, "log level")

	root.AddCommand(
		newLayoutCmd(defaults),
		newRenderCmd(defaults),
		newDumpCmd(),
		newWatchCmd(defaults),
		newVersionCmd(),
	)
	return root
}

// initializeConfig layers the config file, PANEL_* environment variables
// and explicitly set flags on top of the defaults already in v.
func initializeConfig(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("panel")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PANEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(key, f)
	})
	return bindErr
}

func configFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.NewDefaultConfig()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "panel version %s\n", Version)
		},
	}
}
