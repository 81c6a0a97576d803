package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/stockroom/core/cmd/api/commands"
)

// @title StockRoom API
// @version 1.0
// @description Inventory tracking service with JSON file and Postgres persistence

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	rootCmd := &cobra.Command{
		Use:   "stockroom",
		Short: "StockRoom inventory service",
		Long:  `StockRoom tracks item quantities, persists them to a JSON file or Postgres, and serves them over an HTTP API.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewDemoCommand())
	rootCmd.AddCommand(commands.NewReportCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
