package space

import (
	"github.com/spf13/cobra"
)

// SpaceCmd - родительская команда для всех операций с пространствами
var SpaceCmd = &cobra.Command{
	Use:   "space",
	Short: "Управление пространствами",
	Long:  `Просмотр, создание и настройка пространств хранения (шкаф, гараж, кладовка и т.д.).`,
}
