// cmd/client/cmd/product/list.go
package product

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
	"boxmate/internal/utils/normalize"
)

var (
	listSpace  string
	listFormat string
	noRefresh  bool
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список предметов",
	Long: `Просмотр списка предметов.

Флаг --space ограничивает вывод одним пространством.`,
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

		products := snap.Products
		if listSpace != "" {
			grouped := client.GroupProductsBySpace(products)
			products = grouped[normalize.Label(listSpace)]
		}

		switch listFormat {
		case "json":
			return printProductsJSON(products)
		default:
			return printProductsTable(products)
		}
	},
}

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

func printProductsTable(products []client.Product) error {
	if len(products) == 0 {
		fmt.Println("Предметы не найдены")
		return nil
	}

	bold := color.New(color.Bold)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tНазвание\tПространство\tОписание\tОбновлено\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t\n")

	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
			p.ID,
			truncate(p.Name, 30),
			p.Box,
			truncate(p.Desc, 40),
			formatStamp(p.UpdatedAt),
		)
	}
	w.Flush()

	fmt.Println()
	bold.Printf("Всего предметов: %d\n", len(products))
	return nil
}

func printProductsJSON(products []client.Product) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(products)
}

func formatStamp(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Format("2006-01-02")
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func init() {
	ListCmd.Flags().StringVarP(&listSpace, "space", "s", "", "фильтр по пространству")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "формат вывода (table, json)")
	ListCmd.Flags().BoolVar(&noRefresh, "cached", false, "не обращаться к серверу, показать кэш")
}
