package main

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/dhamidi/arith/grammar"
	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "grammar",
		Short:         "EBNF grammar of the expression language",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newGrammarPrintCmd())
	cmd.AddCommand(newGrammarCheckCmd())
	cmd.AddCommand(newGrammarClassifyCmd())
	cmd.AddCommand(newGrammarMatchCmd())

	return cmd
}

func newGrammarPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the built-in grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), grammar.Source())
			return err
		},
	}
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check [file]",
		Short:         "Parse and verify an EBNF grammar file (default: the built-in grammar)",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if _, err := grammar.Load(); err != nil {
					printErrors(cmd.ErrOrStderr(), err)
					return err
				}
				return nil
			}

			filename := args[0]
			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			g, err := ebnf.Parse(filename, f)
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			if err := ebnf.Verify(g, startProduction); err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", grammar.Start, "start production for verification")

	return cmd
}

func newGrammarClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <lexeme>...",
		Short: "Name the lexical production each lexeme matches",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load()
			if err != nil {
				return err
			}
			for _, lexeme := range args {
				name := grammar.Classify(g, lexeme)
				if name == "" {
					name = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%q\t%s\n", lexeme, name)
			}
			return nil
		},
	}
}

func newGrammarMatchCmd() *cobra.Command {
	var production string

	cmd := &cobra.Command{
		Use:   "match [expression]",
		Short: "Report how much of an expression a production matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readExpression(cmd, args)
			if err != nil {
				return err
			}
			g, err := grammar.Load()
			if err != nil {
				return err
			}

			n, ok := grammar.NewMatcher(g, text).Match(production, 0)
			total := len([]rune(text))
			switch {
			case !ok:
				return fmt.Errorf("%s does not match", production)
			case n < total:
				return fmt.Errorf("%s matches %d of %d characters", production, n, total)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s matches all %d characters\n", production, total)
			return nil
		},
	}

	cmd.Flags().StringVar(&production, "production", grammar.Start, "production to match")

	return cmd
}

func printErrors(w io.Writer, err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}
