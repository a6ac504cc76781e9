package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "session-keys",
	Short: "Session key lookup microservice",
	Long:  `A read-only microservice exposing stored session keys over HTTP, with a gRPC health endpoint and admin commands for migrations and key provisioning.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
