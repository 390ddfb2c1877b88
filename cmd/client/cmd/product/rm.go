// cmd/client/cmd/product/rm.go
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"boxmate/cmd/client/cmd/types"
	"boxmate/internal/app/client"
)

var rmForce bool

var RemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove", "delete"},
	Short:   "Удалить предмет",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if !rmForce {
			fmt.Printf("Удалить предмет %s? [y/N]: ", args[0])
			var answer string
			fmt.Scanln(&answer)
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Отменено")
				return nil
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.DeleteProduct(ctx, args[0]); err != nil {
			if errors.Is(err, client.ErrMissingProductID) {
				return fmt.Errorf("предмет еще не синхронизирован с сервером, выполните: boxmate sync")
			}
			return fmt.Errorf("ошибка удаления предмета: %w", err)
		}

		fmt.Printf("✅ Предмет %s удален\n", args[0])
		return nil
	},
}

func init() {
	RemoveCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "не запрашивать подтверждение")
}
