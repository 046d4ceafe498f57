package main

import (
	"fmt"

	"github.com/dhamidi/arith/editor"
	"github.com/spf13/cobra"
)

func newEditCmd() *cobra.Command {
	var keys []string
	var typed string
	var start int

	cmd := &cobra.Command{
		Use:   "edit [expression]",
		Short: "Replay key presses against an expression and show the result",
		Long: `Replay key presses against an expression and show the result.

Keys given with --key are applied first, in order; they are either a single
character or one of Backspace, ArrowLeft and ArrowRight. The characters of
--type are typed afterwards. The output shows the text, a line marking
edited characters with ^ and a line marking the caret with |.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readExpression(cmd, args)
			if err != nil {
				return err
			}

			e := editor.New(text)
			for i := 0; i < start; i++ {
				e.HandleKey("ArrowRight")
			}
			for _, key := range keys {
				if !e.HandleKey(key) {
					return fmt.Errorf("unsupported key %q", key)
				}
			}
			for _, r := range typed {
				e.Insert(r)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, e.Render())
			for _, tok := range e.Tokens() {
				fmt.Fprintln(out, tok)
			}
			for _, leaf := range e.Errors() {
				fmt.Fprintf(out, "error %s: %s\n", leaf.Range(), leaf.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&keys, "key", "k", nil, "key to press (repeatable)")
	cmd.Flags().StringVarP(&typed, "type", "t", "", "characters to type after the keys")
	cmd.Flags().IntVar(&start, "caret", 0, "initial caret offset")

	return cmd
}
