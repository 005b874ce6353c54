package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	lochttp "github.com/fwojciec/locwidget/http"
)

// Run executes the serve command. It blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := c.NewServer(deps)
	fmt.Fprintf(deps.Stdout, "Serving facility directory on %s\n", s.Addr)
	if err := s.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	return nil
}

// NewServer builds the server from the flags, falling back to the
// configuration for unset ones.
func (c *ServeCmd) NewServer(deps *Dependencies) *lochttp.Server {
	s := lochttp.NewServer(deps.Loader, deps.Logger)
	s.Addr = c.Listen
	if s.Addr == "" {
		s.Addr = deps.Config.Listen
	}
	switch {
	case c.NoRateLimit:
		s.RateLimit = 0
	case c.RateLimit > 0:
		s.RateLimit = c.RateLimit
	default:
		s.RateLimit = deps.Config.RateLimit
	}
	return s
}
