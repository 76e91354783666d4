package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandun/career-guide/internal/config"
	"github.com/sandun/career-guide/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the auth, interview, quiz and scheduling endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	appConfig, err := config.NewAppConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		appConfig.Port = servePort
	}

	srv, err := server.New(cmd.Context(), server.Config{
		Port:        appConfig.Port,
		DatabaseURL: appConfig.DatabaseURL,
		GeminiKey:   appConfig.GeminiKey,
		QuizAPIURL:  appConfig.QuizAPIURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
