/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "libreria",
	Short: "Bookstore demo API server",
	Long: `libreria is the backend for the bookstore management demo.

It exposes authentication, book catalog CRUD, and proxies to the
PokeAPI and OpenWeatherMap public APIs.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
