package logger

import (
	"os"

	"golang.org/x/exp/slog"

	"boxmate/internal/app/server/config"
)

// New создает slog.Logger в зависимости от окружения:
// local — человекочитаемый текстовый вывод с уровнем Debug,
// dev — JSON с уровнем Debug, prod — JSON с уровнем Info.
func New(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	case config.EnvProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	default:
		log = setupPrettySlog()
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
