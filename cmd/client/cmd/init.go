// cmd/client/cmd/init.go
package cmd

import (
	"boxmate/cmd/client/cmd/auth"
	"boxmate/cmd/client/cmd/product"
	"boxmate/cmd/client/cmd/space"
	"boxmate/cmd/client/cmd/sync"
)

func init() {
	// Команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.WhoamiCmd)

	// Команды работы с пространствами
	rootCmd.AddCommand(space.SpaceCmd)
	space.SpaceCmd.AddCommand(space.ListCmd)
	space.SpaceCmd.AddCommand(space.CreateCmd)
	space.SpaceCmd.AddCommand(space.SetImageCmd)

	// Команды работы с предметами
	rootCmd.AddCommand(product.ProductCmd)
	product.ProductCmd.AddCommand(product.AddCmd)
	product.ProductCmd.AddCommand(product.ListCmd)
	product.ProductCmd.AddCommand(product.EditCmd)
	product.ProductCmd.AddCommand(product.RemoveCmd)

	rootCmd.AddCommand(sync.SyncCmd)
}
