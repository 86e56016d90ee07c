package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/typesetlang/typeset"
	"github.com/typesetlang/typeset/layout"
)

var checkCmd = &cobra.Command{
	Use:   "check <cases.yaml>",
	Short: "Check a corpus of layout expressions",
	Long:  "Parse every expression in a YAML corpus file and report per-case results.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

type checkCase struct {
	Name      string   `yaml:"name"`
	Input     string   `yaml:"input"`
	Args      []string `yaml:"args"`
	WantError bool     `yaml:"want_error"`
}

type checkFile struct {
	Cases []checkCase `yaml:"cases"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading corpus: %w", err)
	}

	var corpus checkFile
	if err := yaml.Unmarshal(src, &corpus); err != nil {
		return fmt.Errorf("decoding corpus: %w", err)
	}

	verbose := viper.GetBool("verbose")
	failures := 0
	for i, c := range corpus.Cases {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}

		layouts := make([]layout.Layout, len(c.Args))
		for j, s := range c.Args {
			layouts[j] = layout.Text(s)
		}

		_, err := typeset.Parse(c.Input, layouts...)
		switch {
		case err != nil && !c.WantError:
			failures++
			fmt.Fprintf(os.Stderr, "[check] %s: %v\n", name, err)
		case err == nil && c.WantError:
			failures++
			fmt.Fprintf(os.Stderr, "[check] %s: expected an error, parsed successfully\n", name)
		default:
			if verbose {
				fmt.Fprintf(os.Stderr, "[check] %s: ok\n", name)
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d case(s) failed", failures, len(corpus.Cases))
	}

	fmt.Fprintf(os.Stderr, "[check] %d case(s) passed\n", len(corpus.Cases))
	return nil
}
