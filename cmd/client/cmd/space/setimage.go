// cmd/client/cmd/space/setimage.go
package space

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"boxmate/cmd/client/cmd/types"
	"boxmate/internal/app/client"
	"boxmate/internal/utils/normalize"
)

var SetImageCmd = &cobra.Command{
	Use:   "set-image <id> <url>",
	Short: "Установить изображение пространства",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		id := normalize.Label(args[0])
		image := args[1]

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		snap, err := loadSnapshot(ctx, app, false)
		if err != nil {
			return err
		}
		if snap == nil {
			return fmt.Errorf("нет данных о пространствах, выполните: boxmate sync")
		}

		var target *client.Space
		for i := range snap.Spaces {
			if snap.Spaces[i].ID == id {
				target = &snap.Spaces[i]
				break
			}
		}
		if target == nil {
			return fmt.Errorf("пространство '%s' не найдено", id)
		}

		if err := app.UpdateSpaceImage(ctx, *target, image); err != nil {
			return fmt.Errorf("ошибка обновления изображения: %w", err)
		}

		fmt.Printf("✅ Изображение пространства '%s' обновлено\n", id)
		return nil
	},
}
