package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dhamidi/arith/ui"
	"github.com/spf13/cobra"
)

func newUICmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Start the web UI for interactive editing sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := ui.NewServer()
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			url := serverURL(addr)
			log.Infof("listening on %s", addr)
			fmt.Fprintf(cmd.OutOrStdout(), "Editor sessions at %s\n", url)
			return http.ListenAndServe(addr, server)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "address to listen on")

	return cmd
}

// serverURL turns a listen address into a URL a browser can open.
func serverURL(addr string) string {
	host := addr
	switch {
	case strings.HasPrefix(addr, ":"):
		host = "localhost" + addr
	case strings.HasPrefix(addr, "0.0.0.0:"):
		host = "localhost" + strings.TrimPrefix(addr, "0.0.0.0")
	}
	return "http://" + host + "/"
}
