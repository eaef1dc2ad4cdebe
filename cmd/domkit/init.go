package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/domkit/internal/config"
	"github.com/vango-dev/domkit/internal/errors"
)

const sampleSpec = `tag: main
spec:
  class: card
  style:
    padding: 1rem
  children:
    - [h1, {innerHTML: Hello}]
    - [p, {innerHTML: Edit specs/index.yaml and run domkit render.}]
`

func initCmd(g *globals) *cobra.Command {
	var (
		name  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create domkit.json and a sample spec",
		Long: `Create domkit.json with default settings and a specs directory
holding one sample spec.

Examples:
  domkit init
  domkit init --name docs -C ./site`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, g.dir, name, force)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name (default: directory name)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing domkit.json")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name string, force bool) error {
	out := cmd.OutOrStdout()

	if config.Exists(dir) && !force {
		return errors.New("E120").
			WithDetail("domkit.json already exists in " + dir).
			WithSuggestion("Use --force to overwrite it")
	}

	if name == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return err
		}
		name = filepath.Base(abs)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	cfg := config.New()
	cfg.Name = name
	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		return err
	}
	success(out, "Wrote %s", cfg.Path())

	specs := cfg.SpecsPath()
	if err := os.MkdirAll(specs, 0755); err != nil {
		return err
	}
	sample := filepath.Join(specs, "index.yaml")
	if _, err := os.Stat(sample); err == nil {
		warn(out, "Keeping existing %s", sample)
		return nil
	}
	if err := os.WriteFile(sample, []byte(sampleSpec), 0644); err != nil {
		return err
	}
	success(out, "Wrote %s", sample)
	return nil
}
