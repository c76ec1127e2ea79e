package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/logging"
	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/sound/playback"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// stdout is the play surface, so logs go to a file or nowhere
	logger, closeLog, err := logging.OpenFile(config.GetEnv("PONG_LOG_FILE", ""), config.GetEnv("PONG_LOG_LEVEL", ""))
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, gameOpts := config.Game()

	speaker := playback.NewManager(config.GetEnvBool("PONG_SOUND", true))
	go func() {
		if err := speaker.Start(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		}
	}()
	defer speaker.Close()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(ctx, reader, os.Stdout, loop.Options{
		Config:      &cfg,
		GameOptions: gameOpts,
		Sink:        speaker,
		Logger:      logger,
	})
}
