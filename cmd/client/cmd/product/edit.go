// cmd/client/cmd/product/edit.go
package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"boxmate/cmd/client/cmd/types"
	"boxmate/internal/app/client"
	"boxmate/internal/utils/normalize"
)

var (
	editName  string
	editDesc  string
	editBox   string
	editImage string
)

var EditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Изменить предмет",
	Long: `Редактирование существующего предмета по его идентификатору.

Изменяются только поля, переданные флагами.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("desc") &&
			!cmd.Flags().Changed("space") && !cmd.Flags().Changed("image") {
			return fmt.Errorf("нечего изменять: укажите хотя бы один из флагов --name, --desc, --space, --image")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		// Отправляется полный набор полей, поэтому берем текущие
		// значения из снимка и накладываем переданные флаги.
		snap, err := loadSnapshot(ctx, app, false)
		if err != nil {
			return err
		}

		var current *client.Product
		if snap != nil {
			for i := range snap.Products {
				if snap.Products[i].ID == args[0] {
					current = &snap.Products[i]
					break
				}
			}
		}
		if current == nil {
			return fmt.Errorf("предмет '%s' не найден", args[0])
		}

		patch := *current
		if cmd.Flags().Changed("name") {
			patch.Name = editName
		}
		if cmd.Flags().Changed("desc") {
			patch.Desc = editDesc
		}
		if cmd.Flags().Changed("space") {
			patch.Box = normalize.Label(editBox)
		}
		if cmd.Flags().Changed("image") {
			patch.Image = editImage
		}

		if err := app.UpdateProduct(ctx, args[0], patch); err != nil {
			if errors.Is(err, client.ErrMissingProductID) {
				return fmt.Errorf("предмет еще не синхронизирован с сервером, выполните: boxmate sync")
			}
			return fmt.Errorf("ошибка изменения предмета: %w", err)
		}

		fmt.Printf("✅ Предмет %s обновлен\n", args[0])
		return nil
	},
}

func init() {
	EditCmd.Flags().StringVarP(&editName, "name", "n", "", "новое название")
	EditCmd.Flags().StringVar(&editDesc, "desc", "", "новое описание")
	EditCmd.Flags().StringVarP(&editBox, "space", "s", "", "новое пространство")
	EditCmd.Flags().StringVar(&editImage, "image", "", "новый URL изображения")
}
