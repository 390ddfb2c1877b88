// cmd/client/cmd/space/list.go
package space

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"boxmate/cmd/client/cmd/types"
	"boxmate/internal/app/client"
)

var (
	listFormat string
	onlyUsed   bool
	noRefresh  bool
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список пространств",
	Long: `Просмотр списка пространств хранения с количеством предметов в каждом.

Флаг --used скрывает пустые пространства.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		snap, err := loadSnapshot(cmd.Context(), app, noRefresh)
		if err != nil {
			return err
		}
		if snap == nil {
			fmt.Println("Нет данных. Выполните: boxmate sync")
			return nil
		}

		spaces := snap.Spaces
		grouped := client.GroupProductsBySpace(snap.Products)
		if onlyUsed {
			spaces = client.FilterSpacesWithProducts(spaces, grouped)
		}

		switch listFormat {
		case "json":
			return printSpacesJSON(spaces)
		default:
			return printSpacesTable(spaces, grouped)
		}
	},
}

// loadSnapshot обновляет снимок с сервера, при ошибке сети
// возвращает последний закэшированный снимок.
func loadSnapshot(ctx context.Context, app *client.App, skipRefresh bool) (*client.Snapshot, error) {
	holder := app.Holder()

	if !skipRefresh {
		rctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		if err := holder.Refresh(rctx); err != nil {
			if holder.Snapshot() == nil {
				return nil, fmt.Errorf("ошибка синхронизации: %w", err)
			}
			color.Yellow("⚠️  Сервер недоступен, показаны локальные данные")
		}
	}

	return holder.Snapshot(), nil
}

func printSpacesTable(spaces []client.Space, grouped map[string][]client.Product) error {
	if len(spaces) == 0 {
		fmt.Println("Пространства не найдены")
		return nil
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tНазвание\tПредметов\tИзображение\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t\n")

	for _, sp := range spaces {
		count := len(grouped[sp.ID])
		image := sp.Image
		if image == "" {
			image = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t\n", sp.ID, sp.Alt, count, image)
	}
	w.Flush()

	fmt.Println()
	bold.Printf("Всего пространств: %d\n", len(spaces))
	dim.Println("Подсказка: boxmate product list --space <id> покажет содержимое")
	return nil
}

func printSpacesJSON(spaces []client.Space) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(spaces)
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "формат вывода (table, json)")
	ListCmd.Flags().BoolVar(&onlyUsed, "used", false, "показывать только пространства с предметами")
	ListCmd.Flags().BoolVar(&noRefresh, "cached", false, "не обращаться к серверу, показать кэш")
}
