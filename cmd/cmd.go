package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var useMemoryStore bool

var rootCmd = &cobra.Command{
	Use:   "ems",
	Short: "Employee Management System",
	Long:  `HTTP API for departments, positions, employees and attendance.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	serveCmd.Flags().BoolVar(&useMemoryStore, "memory", false, "Serve from an in-memory store instead of MongoDB")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}
