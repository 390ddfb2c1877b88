// cmd/client/cmd/space/create.go
package space

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"boxmate/cmd/client/cmd/types"
	"boxmate/internal/app/client"
)

var CreateCmd = &cobra.Command{
	Use:   "create [название]",
	Short: "Создать новое пространство",
	Long: `Создание нового пространства хранения.

Название приводится к нормализованному идентификатору: пробелы
заменяются на дефисы, регистр понижается. Например "Верхняя Полка"
получит идентификатор "верхняя-полка".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		var name string
		if len(args) > 0 {
			name = args[0]
		} else {
			fmt.Print("Название пространства: ")
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				name = scanner.Text()
			}
		}

		if strings.TrimSpace(name) == "" {
			fmt.Println("Пустое название, пространство не создано")
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		sp, err := app.CreateSpace(ctx, name)
		if err != nil {
			return fmt.Errorf("ошибка создания пространства: %w", err)
		}
		if sp == nil {
			fmt.Println("Пустое название, пространство не создано")
			return nil
		}

		fmt.Printf("✅ Пространство '%s' создано (id: %s)\n", sp.Alt, sp.ID)
		return nil
	},
}
