package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/domkit/pkg/site"
)

func renderCmd(g *globals) *cobra.Command {
	var (
		outDir   string
		toStdout bool
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:   "render [spec...]",
		Short: "Render specs to HTML files",
		Long: `Render spec files to complete HTML pages.

Without arguments every spec in the specs directory is rendered. Each
page is written to <output>/<name>.html.

Examples:
  domkit render
  domkit render index about --out public
  domkit render index --stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Render.Pretty = pretty
			}
			if outDir == "" {
				outDir = cfg.OutputPath()
			}

			s := site.New(cfg.SpecsPath(), siteOptions(cfg, logger)...)
			pages, err := s.RenderAll(cmd.Context(), args...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if toStdout {
				for _, p := range pages {
					if _, err := out.Write(p.HTML); err != nil {
						return err
					}
				}
				return nil
			}

			if len(pages) == 0 {
				warn(out, "No specs found in %s", cfg.SpecsPath())
				return nil
			}
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return err
			}
			for _, p := range pages {
				path := filepath.Join(outDir, p.Name+".html")
				if err := os.WriteFile(path, p.HTML, 0644); err != nil {
					return err
				}
				info(out, "%s", path)
			}
			success(out, "Rendered %d page(s)", len(pages))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from domkit.json)")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Write pages to stdout instead of files")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent output")

	return cmd
}
