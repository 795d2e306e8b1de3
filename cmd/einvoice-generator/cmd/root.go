package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	configFile   string
)

var rootCmd = &cobra.Command{
	Use:   "einvoice-generator",
	Short: "Generate and validate EN 16931 e-invoices",
	Long: `E-Invoice Generator is a CLI tool for producing structured electronic
invoices from invoice data.

Supports:
  - XML formats: XRechnung, ZUGFeRD, Factur-X, UBL, Peppol BIS, FatturaPA and more
  - Country-aware format selection for 24 European countries
  - EN 16931 business rule validation before generation
  - Hybrid PDF/XML output (ZUGFeRD, Factur-X)

Examples:
  # Generate an e-invoice from invoice data
  einvoice-generator generate invoice.json

  # Generate a specific format
  einvoice-generator generate invoice.json --einvoice-format zugferd

  # Validate invoice data without generating
  einvoice-generator validate invoice.json

  # List formats for a country
  einvoice-generator formats --country DE`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, table)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file path (env: EINVOICE_CONFIG)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if configFile == "" {
		configFile = os.Getenv("EINVOICE_CONFIG")
	}
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
