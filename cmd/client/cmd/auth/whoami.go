// cmd/client/cmd/auth/whoami.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"boxmate/cmd/client/cmd/types"
	"boxmate/internal/app/client"
)

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Показать текущего пользователя",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		info, err := app.Whoami(ctx)
		if err != nil {
			if errors.Is(err, client.ErrNotAuthenticated) {
				fmt.Println("Вы не вошли в систему. Выполните: boxmate auth login")
				return nil
			}
			return fmt.Errorf("ошибка получения данных пользователя: %w", err)
		}

		fmt.Printf("%s <%s>\n", info.Username, info.Email)
		return nil
	},
}
