package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/chzyer/readline"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs the console game until the player leaves or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scoreRepo, closeStorage, err := newScoreRepository(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     conf.Console.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return fmt.Errorf("could not start readline: %w", err)
	}
	defer rl.Close()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
			// unblocks a pending Readline
			_ = rl.Close()
		case <-ctx.Done():
		}
	}()

	sessionID := pkg.GenerateNewSessionID()
	log.Info("Starting session", "session", sessionID, "storage", conf.Storage.Type)

	gameManager := usecase.NewGameManager(logger, scoreRepo, service.NewBotService(), sessionID)
	gameConsole := console.New(logger, rl, rl.Stdout(), gameManager)

	if err = gameConsole.Run(ctx); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	return nil
}

func newScoreRepository(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.ScoreRepository, func(), error) {
	if conf.Storage.Type != config.StorageRedis {
		return repository.NewMemoryScoreRepository(), func() {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			logger.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewScoreRepository(redisStorage.Connection, conf.Storage.SessionTTL), closeStorage, nil
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
