package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/domkit/internal/errors"
	"github.com/vango-dev/domkit/pkg/build"
	"github.com/vango-dev/domkit/pkg/site"
)

func checkCmd(g *globals) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [spec...]",
		Short: "Build specs and report problems",
		Long: `Decode and build spec files without writing output.

Every spec is checked even when an earlier one fails. Keys that no
builder rule applied to are listed as warnings; with --strict they
fail the check.

Examples:
  domkit check
  domkit check index --strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			diags := &build.Collector{}
			opts := append(siteOptions(cfg, logger),
				site.WithBuildOptions(build.WithReporter(diags)))
			s := site.New(cfg.SpecsPath(), opts...)

			names := args
			if len(names) == 0 {
				if names, err = s.Specs(); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, name := range names {
				diags.Reset()
				doc, err := s.Load(name)
				if err == nil {
					_, _, err = s.Build(cmd.Context(), doc)
				}
				if err != nil {
					failed++
					errors.Print(cmd.ErrOrStderr(), err)
					continue
				}

				found := diags.Diagnostics()
				for _, d := range found {
					warn(out, "%s: %s", name, d)
				}
				if strict && len(found) > 0 {
					failed++
					continue
				}
				success(out, "%s", name)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d spec(s) failed", failed, len(names))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat unapplied keys as failures")

	return cmd
}
