package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sirkon/irrelevant/internal/config"
	"github.com/sirkon/irrelevant/internal/directive"
	"github.com/sirkon/irrelevant/internal/dispatch"
	"github.com/sirkon/irrelevant/internal/plan"
)

var (
	indented   bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:          "irrelevant-plan [file...]",
	Short:        "Print rewrite plans of directives",
	Long:         `Parses and type-checks every file on its own and prints what each directive expands to.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runPlan,
}

func init() {
	rootCmd.Flags().BoolVar(&indented, "indent", false, "render blocks with indentation instead of braces")
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML or TOML configuration file")
}

func runPlan(cmd *cobra.Command, args []string) error {
	var (
		known *directive.Known
		opts  dispatch.Options
	)
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		known = cfg.Known()
		opts = cfg.Options()
	}

	tr := plan.New(known, opts)
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		prog, err := tr.TranslateFile(path, src)
		if err != nil {
			return fmt.Errorf("translate %s: %w", path, err)
		}

		if _, err := fmt.Fprint(cmd.OutOrStdout(), prog.Pretty(indented)); err != nil {
			return fmt.Errorf("print plan of %s: %w", path, err)
		}
	}

	return nil
}
