package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/einvoice-generator/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for e-invoice generation.

The API provides endpoints for:
  - GET  /api/v1/formats             - List formats (optionally per country)
  - GET  /api/v1/formats/transaction - Formats for a provider/client pair
  - POST /api/v1/validate            - Validate invoice data
  - POST /api/v1/generate            - Generate an e-invoice
  - GET  /health                     - Health check

Examples:
  # Start server on default port
  einvoice-generator serve

  # Start on custom port
  einvoice-generator serve --address :9090

  # Start in debug mode
  einvoice-generator serve --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", "", "Server listen address (default: from config or :8080)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 0, "HTTP read timeout (default: from config)")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 0, "HTTP write timeout (default: from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	srvConfig := &server.Config{
		Address:      cfg.Server.Address,
		OutputDir:    cfg.Output.Dir,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Debug:        cfg.Server.Debug || serverDebug,
	}
	if serverAddr != "" {
		srvConfig.Address = serverAddr
	}
	if readTimeout > 0 {
		srvConfig.ReadTimeout = readTimeout
	}
	if writeTimeout > 0 {
		srvConfig.WriteTimeout = writeTimeout
	}

	srv := server.NewServer(srvConfig, newLogger())

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	fmt.Printf("Starting server on %s\n", srvConfig.Address)
	return srv.Run()
}
