package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"notifyd/internal/config"
	"notifyd/pkg/types"
)

// flags holds overrides shared by serve and config.
type flags struct {
	configPath string
	addr       string
	logLevel   string
	logFormat  string
}

// BuildRootCmd constructs the notifyd command tree.
func BuildRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "notifyd",
		Short:         "In-process notification bus with an HTTP publish front",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "Config file (.yaml, .yml, .json, .toml)")
	root.PersistentFlags().StringVar(&f.addr, "addr", "", "HTTP listen address (overrides config, e.g. :7070)")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "Log level: debug|info|warn|error")
	root.PersistentFlags().StringVar(&f.logFormat, "log-format", "", "Log format: json|console")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the notification daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve()
			if err != nil {
				return err
			}
			return Serve(cmd.Context(), cfg, cmd.ErrOrStderr(), nil)
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	greetCmd := &cobra.Command{
		Use:     "greet <name> <role>",
		Short:   "Build a user with the factory and print its greeting",
		Example: "  notifyd greet Luis admin",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), types.NewUser(args[0], args[1]).Greet())
			return err
		},
	}

	root.AddCommand(serveCmd, configCmd, greetCmd)
	return root
}

// resolve layers defaults, config file, environment and flags, in that order.
func (f *flags) resolve() (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	if f.addr != "" {
		cfg.Addr = f.addr
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.logFormat != "" {
		cfg.LogFormat = f.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the process logger from cfg. cfg must be validated.
func newLogger(cfg config.Config, w io.Writer) zerolog.Logger {
	if strings.EqualFold(cfg.LogFormat, "console") {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
