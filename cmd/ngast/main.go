package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	template_ast "ngast-go/packages/template_ast/src/template_ast"
	"ngast-go/packages/template_ast/src/util"
)

func main() {
	root := &cobra.Command{
		Use:           "ngast",
		Short:         "Parse angular-style templates into an AST",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newParseCommand(), newTokensCommand())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ngast:", err)
		os.Exit(1)
	}
}

func newParseCommand() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse template files and print their AST outline",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, path := range args {
				if err := parseFile(cmd, path, strict); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					failed = true
				}
			}
			if failed {
				return fmt.Errorf("one or more templates had problems")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "abort on the first problem instead of recovering")
	return cmd
}

func parseFile(cmd *cobra.Command, path string, strict bool) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	parser := template_ast.NewParser(nil)

	if strict {
		result, err := parser.ParseStrict(string(source), path)
		if err != nil {
			parserErr, ok := err.(*template_ast.ParserError)
			if !ok {
				return err
			}
			file := util.NewSourceFile(string(source), path)
			return fmt.Errorf("%s: %s: %s",
				file.Describe(parserErr.Diagnostic.Offset),
				parserErr.Diagnostic.Code,
				parserErr.Diagnostic.Code.Message())
		}
		fmt.Fprint(cmd.OutOrStdout(), template_ast.HumanizeNodes(result.RootNodes))
		return nil
	}

	result := parser.Parse(string(source), path)
	fmt.Fprint(cmd.OutOrStdout(), template_ast.HumanizeNodes(result.RootNodes))
	for _, d := range result.Diagnostics {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s: %s\n", result.File.Describe(d.Offset), d.Code, d.Code.Message())
	}
	if len(result.Diagnostics) > 0 {
		return fmt.Errorf("%s: %d problem(s)", path, len(result.Diagnostics))
	}
	return nil
}

func newTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a template file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			for _, token := range template_ast.Tokenize(string(source)) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%q\n", token.Offset, token.Type, token.Lexeme)
			}
			return nil
		},
	}
}
