package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Renal37/laundry-service/internal/database"
	"github.com/Renal37/laundry-service/internal/models"
	"github.com/Renal37/laundry-service/internal/services"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage administrator accounts",
	}
	cmd.AddCommand(newAdminCreateCmd())
	return cmd
}

func newAdminCreateCmd() *cobra.Command {
	var (
		config       Config
		login        string
		password     string
		name         string
		phone        string
		facilityName string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin, or reset the password of an existing login and promote it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config.applyEnv()

			db, err := database.New(cmd.Context(), config.dsn)
			if err != nil {
				return fmt.Errorf("database wasn't initialized: %w", err)
			}
			defer db.Close()

			if err := db.RunMigrations(); err != nil {
				return fmt.Errorf("migrations weren't run: %w", err)
			}

			created, err := services.NewAuthService(db).EnsureAdmin(cmd.Context(), models.UnknownUser{
				Login:    &login,
				Password: &password,
				Name:     name,
				Phone:    phone,
			}, facilityName)
			if err != nil {
				return err
			}

			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "admin %s created\n", login)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "admin %s updated\n", login)
			}
			return nil
		},
	}

	config.bindDatabaseFlags(cmd)
	cmd.Flags().StringVar(&login, "login", "", "admin login")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	cmd.Flags().StringVar(&name, "name", "Admin", "display name")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&facilityName, "pg-name", "", "PG/hostel name")
	_ = cmd.MarkFlagRequired("login")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
