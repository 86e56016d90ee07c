package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/typesetlang/typeset"
	"github.com/typesetlang/typeset/layout"
	"github.com/typesetlang/typeset/layoutdsl"
)

var parseCmd = &cobra.Command{
	Use:   "parse <expression>",
	Short: "Compile a layout expression",
	Long:  "Parse a layout expression, substitute arguments, and print the resulting layout.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("file", false, "Treat the argument as a path to an expression file")
	parseCmd.Flags().StringArray("arg", nil, "Text layout substituted for {0}, {1}, ... (repeatable)")
	parseCmd.Flags().Bool("tree", false, "Print the syntax tree instead of the compiled layout")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	input := args[0]
	fromFile, _ := cmd.Flags().GetBool("file")
	textArgs, _ := cmd.Flags().GetStringArray("arg")
	printTree, _ := cmd.Flags().GetBool("tree")
	verbose := viper.GetBool("verbose")

	if fromFile {
		src, err := os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("reading expression file: %w", err)
		}
		input = string(src)
	}

	expr, err := layoutdsl.Parse([]byte(input))
	if err != nil {
		return fmt.Errorf("parsing expression: %w", err)
	}

	arity := layoutdsl.Arity(expr)
	if verbose {
		fmt.Fprintf(os.Stderr, "[parse] %d argument(s) required, %d supplied\n", arity, len(textArgs))
	}

	if printTree {
		fmt.Println(expr)
		return nil
	}

	if len(textArgs) < arity {
		return fmt.Errorf("expression requires %d argument(s), %d supplied via --arg", arity, len(textArgs))
	}

	layouts := make([]layout.Layout, len(textArgs))
	for i, s := range textArgs {
		layouts[i] = layout.Text(s)
	}

	result, err := typeset.Parse(input, layouts...)
	if err != nil {
		return fmt.Errorf("compiling expression: %w", err)
	}

	fmt.Println(result)
	return nil
}
