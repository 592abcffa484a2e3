// Package main provides the entry point for the grammar scoring CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grammar_agent",
	Short: "Spoken grammar scoring engine",
	Long:  "grammar_agent transcribes spoken audio, extracts grammar and fluency metrics, and produces a weighted 0-100 score with letter grade and feedback.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
