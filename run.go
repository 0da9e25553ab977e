package bpmcp

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/viant/beatport-mcp/credentials"
	"github.com/viant/beatport-mcp/internal/diag"
)

// Run parses args, validates the configuration and serves MCP over stdio until
// stdin closes or the process is signalled.
func Run(args []string) error {
	options := &Options{}
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}
	logger := diag.New(options.LogLevel, os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := options.Init(ctx); err != nil {
		return err
	}
	if err := options.Validate(); err != nil {
		return err
	}
	serverOptions := options.ServerOptions()
	serverOptions.Diagnostics = &logger
	srv, err := NewServer(serverOptions)
	if err != nil {
		return err
	}
	creds := options.Credentials()
	event := logger.Info().
		Str("accessToken", credentials.Masked(creds.AccessToken)).
		Int("tools", len(srv.Registry().Names()))
	if !creds.Expiry.IsZero() {
		event = event.Time("expiry", creds.Expiry)
	}
	event.Msg("serving MCP over stdio")
	if creds.Expired(time.Now()) {
		logger.Warn().Time("expiry", creds.Expiry).Msg("access token has expired; upstream calls will fail until it is replaced")
	}
	err = srv.Stdio(ctx).ListenAndServe()
	if ctx.Err() != nil && (err == nil || errors.Is(err, context.Canceled)) {
		logger.Info().Msg("shutting down")
		return nil
	}
	return err
}
