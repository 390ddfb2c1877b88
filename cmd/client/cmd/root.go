// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"boxmate/cmd/client/cmd/types"
	"boxmate/internal/app/client"
	"boxmate/internal/app/client/config"
	"boxmate/internal/utils/logger"
)

var (
	cfg      *config.Config
	log      *slog.Logger
	app      *client.App
	debug    bool
	storeURL string
)

var rootCmd = &cobra.Command{
	Use:   "boxmate",
	Short: "Box Mate - учёт вещей по местам хранения",
	Long: `Box Mate — клиент для учёта домашних вещей: гараж, кладовка,
холодильник, коробки для переезда.

Коллекции пространств и предметов синхронизируются с удалённым
хранилищем; последний снимок кэшируется локально.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	cfg = config.MustLoad()

	// Переопределяем настройки из флагов командной строки
	if storeURL != "" {
		cfg.StoreAddress = storeURL
	}
	if debug {
		cfg.Env = "local"
	}

	// Настраиваем логгер
	log = logger.New(cfg.Env)

	// Создаем приложение
	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	// Прокидываем приложение в контекст для подкоманд
	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))

	return nil
}

func init() {
	cobra.OnInitialize()

	// Глобальные флаги
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVar(&storeURL, "store", "", "адрес удалённого хранилища")

	// Команды добавляются в init() соответствующих файлов
}
