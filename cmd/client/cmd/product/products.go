package product

import (
	"github.com/spf13/cobra"
)

// ProductCmd - родительская команда для всех операций с предметами
var ProductCmd = &cobra.Command{
	Use:   "product",
	Short: "Управление предметами",
	Long:  `Добавление, просмотр, редактирование и удаление предметов в пространствах.`,
}
