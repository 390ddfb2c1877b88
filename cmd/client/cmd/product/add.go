// cmd/client/cmd/product/add.go
package product

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
	"boxmate/internal/utils/normalize"
)

var (
	addName  string
	addDesc  string
	addBox   string
	addImage string
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить предмет",
	Long: `Добавление нового предмета в пространство хранения.

Недостающие поля запрашиваются интерактивно.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		scanner := bufio.NewScanner(os.Stdin)

		if addName == "" {
			fmt.Print("Название предмета: ")
			if scanner.Scan() {
				addName = strings.TrimSpace(scanner.Text())
			}
			if addName == "" {
				return fmt.Errorf("название предмета обязательно")
			}
		}

		if addBox == "" {
			fmt.Print("Пространство (id): ")
			if scanner.Scan() {
				addBox = strings.TrimSpace(scanner.Text())
			}
			if addBox == "" {
				return fmt.Errorf("пространство обязательно")
			}
		}

		if addDesc == "" {
			fmt.Print("Описание (необязательно, Enter чтобы пропустить): ")
			if scanner.Scan() {
				addDesc = scanner.Text()
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		created, err := app.CreateProduct(ctx, client.Product{
			Name:  addName,
			Desc:  addDesc,
			Box:   normalize.Label(addBox),
			Image: addImage,
		})
		if err != nil {
			return fmt.Errorf("ошибка добавления предмета: %w", err)
		}

		fmt.Printf("✅ Предмет '%s' добавлен в '%s' (id: %s)\n", created.Name, created.Box, created.ID)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&addName, "name", "n", "", "название предмета")
	AddCmd.Flags().StringVar(&addDesc, "desc", "", "описание предмета")
	AddCmd.Flags().StringVarP(&addBox, "space", "s", "", "идентификатор пространства")
	AddCmd.Flags().StringVar(&addImage, "image", "", "URL изображения")
}
