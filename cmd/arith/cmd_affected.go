package main

import (
	"fmt"

	"github.com/dhamidi/arith/parser"
	"github.com/spf13/cobra"
)

func newAffectedCmd() *cobra.Command {
	var kind string
	var caret int

	cmd := &cobra.Command{
		Use:   "affected [expression]",
		Short: "List the ranges an edit at the caret would affect",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readExpression(cmd, args)
			if err != nil {
				return err
			}

			var editKind parser.EditKind
			switch kind {
			case "insert":
				editKind = parser.EditInsert
			case "delete":
				editKind = parser.EditDelete
			default:
				return fmt.Errorf("unknown edit kind: %s (expected insert or delete)", kind)
			}

			tree := parser.ParseString(text)
			runes := []rune(text)
			for _, r := range parser.AffectedRanges(tree, editKind, caret) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%q\n", r, string(runes[r.Start:r.End]))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "insert", "edit kind (insert, delete)")
	cmd.Flags().IntVarP(&caret, "at", "a", 0, "caret offset in characters")

	return cmd
}
