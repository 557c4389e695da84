package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/de-tools/finance-atlas/pkg/observability/metrics"
	"github.com/de-tools/finance-atlas/pkg/server"
	"github.com/de-tools/finance-atlas/pkg/services/plans"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Finance Atlas",
		RunE:  runServer,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	metrics.Init()

	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}
	addr := net.JoinHostPort(host, port)

	api := server.NewWebAPI(server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Plans:  plans.NewService(),
			Logger: logger,
		},
	})

	return api.Start()
}
