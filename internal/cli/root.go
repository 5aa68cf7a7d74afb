// Package cli implements the command-line interface for vecfield.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arloliu/vecfield/internal/config"
	"github.com/arloliu/vecfield/persist"
)

// flagValues holds the global flags that override configuration file values.
type flagValues struct {
	config      string
	format      string
	compression string
	layout      string
	logLevel    string
	logFormat   string
	noColor     bool
}

// app holds the resources shared by all commands of one invocation.
type app struct {
	flags  flagValues
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time

	heading *color.Color
	success *color.Color
	failure *color.Color
}

// NewRootCmd builds the vecfield command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(time.Now)
}

func newRootCmd(now func() time.Time) *cobra.Command {
	a := &app{now: now}

	root := &cobra.Command{
		Use:   "vecfield",
		Short: "2-D vector field datasets",
		Long: `vecfield builds, queries and persists 2-D vector field datasets:
sparse point lists and dense regular grids of field vectors.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	f := root.PersistentFlags()
	f.StringVar(&a.flags.config, "config", os.Getenv("VECFIELD_CONFIG"), "TOML configuration file (env: VECFIELD_CONFIG)")
	f.StringVar(&a.flags.format, "format", "", "fmt verb for rendered numbers, e.g. %.3f")
	f.StringVar(&a.flags.compression, "compression", "", "File compression (none|zstd|s2|lz4)")
	f.StringVar(&a.flags.layout, "layout", "", "Point list record layout (legacy|v2)")
	f.StringVar(&a.flags.logLevel, "log-level", "", "Log level (debug|info|warn|error)")
	f.StringVar(&a.flags.logFormat, "log-format", "", "Log format (text|json)")
	f.BoolVar(&a.flags.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newInspectCmd(a))
	root.AddCommand(newConfigCmd(a))

	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.flags.config)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.RenderFormat = a.flags.format
	}
	if flags.Changed("compression") {
		cfg.Compression = a.flags.compression
	}
	if flags.Changed("layout") {
		cfg.Layout = a.flags.layout
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.flags.logFormat
	}
	if a.flags.noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	a.logger = logger

	a.heading = color.New(color.FgCyan, color.Bold)
	a.success = color.New(color.FgGreen)
	a.failure = color.New(color.FgRed)
	if !cfg.Color {
		for _, c := range []*color.Color{a.heading, a.success, a.failure} {
			c.DisableColor()
		}
	}

	return nil
}

// persistOptions returns the file options selected by the configuration.
func (a *app) persistOptions() ([]persist.Option, error) {
	comp, err := a.cfg.CompressionType()
	if err != nil {
		return nil, err
	}
	layout, err := a.cfg.PointListLayout()
	if err != nil {
		return nil, err
	}

	return []persist.Option{
		persist.WithCompression(comp),
		persist.WithPointListLayout(layout),
		persist.WithLogger(a.logger),
	}, nil
}

func (a *app) verb() string {
	return a.cfg.RenderFormat
}

func (a *app) printHeading(cmd *cobra.Command, title string) {
	a.heading.Fprintln(cmd.OutOrStdout(), title)
}

func (a *app) printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
