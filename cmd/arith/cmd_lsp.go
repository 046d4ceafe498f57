package main

import (
	"github.com/dhamidi/arith/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	var tcpAddr string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(Version().String())
			if tcpAddr != "" {
				log.Infof("listening on %s", tcpAddr)
				return server.RunTCP(tcpAddr)
			}
			return server.RunStdio()
		},
	}

	cmd.Flags().StringVar(&tcpAddr, "tcp", "", "listen on this TCP address instead of stdio")

	return cmd
}
