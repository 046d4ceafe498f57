package main

import (
	"fmt"

	"github.com/dhamidi/arith/format"
	"github.com/dhamidi/arith/parser"
	"github.com/spf13/cobra"
)

func newLexCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "lex [expression]",
		Short: "Split an expression into tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readExpression(cmd, args)
			if err != nil {
				return err
			}
			tokens := parser.LexString(text)
			log.Debugf("lexed %d tokens from %q", len(tokens), text)

			switch outputFormat {
			case "text":
				return format.NewTokenLineEncoder(cmd.OutOrStdout()).Encode(tokens)
			case "json":
				return format.NewTokensJSONEncoder(cmd.OutOrStdout()).Encode(tokens)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")

	return cmd
}
