package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("arith.cmd")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose int
	var logFile string

	rootCmd := &cobra.Command{
		Use:   "arith",
		Short: "Incremental lexer and parser for arithmetic expressions",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logFile == "" {
				logFile = os.Getenv("ARITH_LOG_FILE")
			}
			if logFile != "" {
				commonlog.Configure(verbose, &logFile)
			} else {
				commonlog.Configure(verbose, nil)
			}
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr (default $ARITH_LOG_FILE)")

	rootCmd.AddCommand(newLexCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newAffectedCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newUICmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// readExpression joins args into one expression, or reads standard input
// when there are no args or the only arg is "-". A single trailing newline
// from standard input is dropped.
func readExpression(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
