package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

func main() {
	cfg := new(config)
	if err := execute(cfg, newRootCmd(cfg), os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and reports any error through the logger, or to stderr
// when the logger was never built.
func execute(cfg *config, cmd interface{ Execute() error }, stderr io.Writer) error {
	err := cmd.Execute()
	if err == nil {
		return nil
	}
	if cfg.log != nil {
		cfg.log.Error("qsort failed", zap.Error(err))
		_ = cfg.log.Sync()
	} else {
		_, _ = fmt.Fprintf(stderr, "qsort: %v\n", err)
	}
	return err
}
