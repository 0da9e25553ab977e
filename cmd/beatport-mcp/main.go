package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	bpmcp "github.com/viant/beatport-mcp"
	"github.com/viant/beatport-mcp/internal/diag"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if err := bpmcp.Run(os.Args[1:]); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stderr, flagsErr.Message)
			return
		}
		logger := diag.New("", os.Stderr)
		logger.Fatal().Err(err).Msg("beatport-mcp failed")
	}
}
