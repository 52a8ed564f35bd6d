package main

import (
	"fmt"

	"github.com/2beens/gymload/internal/auth"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	flagUsername string
	flagPassword string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new user",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, pool, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		service := auth.NewService(auth.NewRepo(pool), nil, 0, cfg.BcryptCost)
		user, err := service.Register(ctx, flagUsername, flagPassword)
		if err != nil {
			return fmt.Errorf("register %s: %w", flagUsername, err)
		}

		fmt.Printf("%s %s (id %d)\n",
			color.GreenString("registered"),
			color.New(color.Bold).Sprint(user.Username),
			user.ID,
		)
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVarP(&flagUsername, "username", "u", "", "username")
	userAddCmd.Flags().StringVarP(&flagPassword, "password", "p", "", "password")
	_ = userAddCmd.MarkFlagRequired("username")
	_ = userAddCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userAddCmd)
}
