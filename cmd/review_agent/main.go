// Package main implements the review_agent CLI for generating vehicle review
// schedule articles.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "review_agent",
	Short: "Vehicle review schedule article generator",
	Long:  "review_agent builds Portuguese review schedule articles for cars, motorcycles, electric and hybrid vehicles from vehicle master data, scores them and stores them for publication.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
