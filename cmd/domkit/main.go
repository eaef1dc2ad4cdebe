// Command domkit renders, previews and publishes declarative element specs.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/domkit/internal/config"
	"github.com/vango-dev/domkit/internal/errors"
	"github.com/vango-dev/domkit/pkg/build"
	"github.com/vango-dev/domkit/pkg/render"
	"github.com/vango-dev/domkit/pkg/site"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(1)
	}
}

// globals holds the persistent flags shared by every command.
type globals struct {
	dir       string
	logLevel  string
	logFormat string
	noColor   bool
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "domkit",
		Short: "Build HTML from declarative element specs",
		Long: `domkit turns YAML or JSON element specs into HTML.

A spec names a tag and an ordered list of entries: styles, classes,
events, attributes, children and table data. domkit builds the element
tree and renders it as a page.

Commands:
  • render   write pages to the output directory
  • serve    preview specs with live reload
  • publish  upload rendered pages to S3
  • check    build every spec and report diagnostics`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.noColor {
				errors.DisableColors()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&g.dir, "dir", "C", ".", "Project directory containing domkit.json")
	flags.StringVar(&g.logLevel, "log-level", "", "Log level (default from domkit.json)")
	flags.StringVar(&g.logFormat, "log-format", "", "Log format: text or json (default from domkit.json)")
	flags.BoolVar(&g.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		initCmd(g),
		renderCmd(g),
		serveCmd(g),
		publishCmd(g),
		checkCmd(g),
		versionCmd(),
	)

	return rootCmd
}

// load reads and validates domkit.json, applies the logging flags and
// installs the resulting logger as the slog default.
func (g *globals) load(stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadOrDefault(g.dir)
	if err != nil {
		return nil, nil, err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := cfg.NewLogger(stderr)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// siteOptions maps the render and table settings onto site options.
func siteOptions(cfg *config.Config, logger *slog.Logger) []site.Option {
	return []site.Option{
		site.WithLogger(logger),
		site.WithRenderer(render.RendererConfig{
			Pretty:       cfg.Render.Pretty,
			Indent:       cfg.Render.Indent,
			EventMarkers: cfg.Render.EventMarkers,
		}),
		site.WithPage(render.PageData{
			Doctype:     cfg.Render.Doctype,
			Title:       cfg.Render.Title,
			StyleSheets: cfg.Render.StyleSheets,
		}),
		site.WithBuildOptions(
			build.WithStrictTableData(cfg.Tables.StrictData),
			build.WithReporter(build.NewLogReporter(logger)),
		),
	}
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
