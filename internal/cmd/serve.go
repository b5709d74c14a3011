package cmd

import (
	"fmt"

	"tempo/internal/server"
)

// ServeCmd serves the TUI over SSH
type ServeCmd struct {
	Host string `help:"Host address to bind to" default:"localhost"`
	Port string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	srv, err := server.NewServer(s.Host, s.Port, cli.Container.NewRepository)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}
	return srv.Start()
}
