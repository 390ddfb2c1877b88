package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"boxmate/cmd/client/cmd/types"
	"boxmate/internal/app/client"
)

var syncStatus bool

var SyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Синхронизация с сервером",
	Long: `Полная синхронизация состояния с сервером.

Команда досоздает отсутствующие пространства из каталога по умолчанию,
загружает пространства и предметы и обновляет локальный кэш.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if syncStatus {
			return showSyncStatus(cmd.Context(), app)
		}

		return runSync(cmd.Context(), app)
	},
}

func runSync(ctx context.Context, app *client.App) error {
	fmt.Println("=== Синхронизация данных ===")

	fmt.Println("Проверка соединения с сервером...")
	hctx, hcancel := context.WithTimeout(ctx, 10*time.Second)
	defer hcancel()
	if err := app.HealthCheck(hctx); err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}

	fmt.Println("Начало синхронизации...")
	start := time.Now()

	sctx, scancel := context.WithTimeout(ctx, 60*time.Second)
	defer scancel()
	if err := app.Holder().Refresh(sctx); err != nil {
		return fmt.Errorf("ошибка синхронизации: %w", err)
	}

	duration := time.Since(start)
	snap := app.Holder().Snapshot()

	fmt.Println()
	fmt.Println("✅ Синхронизация завершена!")
	fmt.Printf("Время выполнения: %v\n", duration.Round(time.Millisecond))
	if snap != nil {
		fmt.Printf("Пространств: %d\n", len(snap.Spaces))
		fmt.Printf("Предметов: %d\n", len(snap.Products))
	}

	return nil
}

func showSyncStatus(ctx context.Context, app *client.App) error {
	fmt.Println("=== Статус синхронизации ===")

	snap := app.Holder().Snapshot()
	if snap == nil {
		fmt.Println("Локальный кэш пуст")
	} else {
		fmt.Println("📊 Локальный кэш:")
		fmt.Printf("  Пространств: %d\n", len(snap.Spaces))
		fmt.Printf("  Предметов: %d\n", len(snap.Products))
	}
	if err := app.Holder().Err(); err != nil {
		fmt.Printf("  Последняя ошибка: %v\n", err)
	}

	fmt.Printf("\n🌐 Соединение с сервером: ")
	hctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := app.HealthCheck(hctx); err != nil {
		fmt.Printf("❌ Ошибка: %v\n", err)
	} else {
		fmt.Printf("✅ OK\n")
	}

	fmt.Printf("🔐 Аутентификация: ")
	if app.IsAuthenticated() {
		fmt.Printf("✅ Выполнена\n")
	} else {
		fmt.Printf("❌ Требуется вход\n")
	}

	return nil
}

func init() {
	SyncCmd.Flags().BoolVar(&syncStatus, "status", false, "показать статус синхронизации")
}
