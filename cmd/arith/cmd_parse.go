package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/arith/format"
	"github.com/dhamidi/arith/parser"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var check bool

	cmd := &cobra.Command{
		Use:   "parse [expression]",
		Short: "Parse an expression and dump its tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readExpression(cmd, args)
			if err != nil {
				return err
			}

			encoder, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("%w (expected one of %s)", err, strings.Join(format.Names, ", "))
			}

			tree := parser.ParseString(text)
			if err := encoder.Encode(tree); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			errs := parser.CollectErrors(tree)
			for _, leaf := range errs {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", leaf.Range(), leaf.Text)
			}
			if check && len(errs) > 0 {
				return fmt.Errorf("%d syntax errors", len(errs))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format ("+strings.Join(format.Names, ", ")+")")
	cmd.Flags().BoolVar(&check, "check", false, "exit with an error if the expression has syntax errors")

	return cmd
}
