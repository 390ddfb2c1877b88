// cmd/client/cmd/auth/register.go
package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"boxmate/cmd/client/cmd/types"
	"boxmate/internal/app/client"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Зарегистрироваться в Box Mate",
	Long: `Регистрация новой учётной записи в удалённом хранилище.

Пароль должен содержать минимум 8 символов, включая строчную букву и цифру.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("=== Регистрация в Box Mate ===")
		fmt.Println()

		fmt.Print("Имя пользователя: ")
		var username string
		_, _ = fmt.Scanln(&username)

		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Пароль: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		fmt.Print("Повторите пароль: ")
		passwordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		if string(password) != string(passwordConfirm) {
			return fmt.Errorf("пароли не совпадают")
		}

		fmt.Println("Регистрация...")
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		info, err := app.Register(ctx, username, email, string(password))
		if err != nil {
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		fmt.Println()
		fmt.Printf("✅ Учётная запись создана: %s <%s>\n", info.Username, info.Email)
		fmt.Println()
		fmt.Println("Что дальше:")
		fmt.Println("1. Посмотрите пространства: boxmate space list")
		fmt.Println("2. Добавьте первый предмет: boxmate product add")

		return nil
	},
}
