package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kiryu-dev/tetris/internal/config"
	"github.com/kiryu-dev/tetris/internal/domain"
	"github.com/kiryu-dev/tetris/internal/transport/tui"
	"github.com/kiryu-dev/tetris/internal/transport/ws"
	"github.com/kiryu-dev/tetris/internal/usecase/engine"
	"github.com/kiryu-dev/tetris/internal/usecase/hub"
	"github.com/kiryu-dev/tetris/internal/usecase/session"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var errPlayerQuit = errors.New("player quit")

func main() {
	cfgPath := flag.String("config", "./config.yml", "path to config")
	flag.Parse()
	cfg, err := config.New(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := cfg.Log.Logger()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting game", zap.Int64("seed", seed), zap.Duration("gravity", cfg.GravityInterval))
	rng := rand.New(rand.NewSource(seed))

	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	errGroup, ctx := errgroup.WithContext(context.Background())
	errGroup.Go(func() error {
		select {
		case s := <-sigChan:
			return errors.Errorf("captured signal: %v", s)
		case <-ctx.Done():
			return nil
		}
	})

	var sinks []domain.Renderer
	if cfg.Spectator.Enabled {
		var (
			spectators = hub.New(logger)
			server     = ws.New(cfg.Spectator.Addr, spectators, logger)
		)
		sinks = append(sinks, spectators)
		errGroup.Go(server.ListenAndServe)
		errGroup.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})
	}

	var (
		newEngine = func() domain.EngineUseCase {
			return engine.New(rng, logger)
		}
		game    = session.New(newEngine, cfg.GravityInterval, logger, sinks...)
		program = tea.NewProgram(tui.New(ctx, game, cfg.FrameInterval, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	)
	errGroup.Go(func() error {
		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return errors.WithMessage(err, "run terminal program")
		}
		return errPlayerQuit
	})

	if err := errGroup.Wait(); err != nil {
		logger.Info("shutting down: " + err.Error())
	}
}
