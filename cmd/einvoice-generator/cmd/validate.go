package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/einvoice-generator/internal/catalog"
	"github.com/rezonia/einvoice-generator/internal/config"
	"github.com/rezonia/einvoice-generator/internal/model"
	"github.com/rezonia/einvoice-generator/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate invoice data files",
	Long: `Validate one or more invoice data files (JSON) against the business
rules of the target e-invoice format.

Checks performed:
  - Required fields present (provider, client, invoice number, lines)
  - Fiscal identifiers (VAT ID, tax number) per format
  - Routing identifiers (Leitweg-ID for XRechnung)
  - Advisory warnings for optional fields (client email, IBAN)

Examples:
  einvoice-generator validate invoice.json
  einvoice-generator validate invoice.json --einvoice-format xrechnung
  einvoice-generator validate invoices/*.json --client-country RO`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&einvoiceFormat, "einvoice-format", "", "Target e-invoice format (default: derived from client country)")
	validateCmd.Flags().StringVar(&providerCountry, "provider-country", "DE", "Provider country code (ISO 3166-1 alpha-2)")
	validateCmd.Flags().StringVar(&clientCountry, "client-country", "DE", "Client country code (ISO 3166-1 alpha-2)")
}

// FileValidationResult holds the validation outcome for a single file
type FileValidationResult struct {
	File     string       `json:"file"`
	Format   model.Format `json:"format,omitempty"`
	Valid    bool         `json:"valid"`
	Errors   []string     `json:"errors,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to validate")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	results := make([]*FileValidationResult, 0, len(files))
	allValid := true

	for _, file := range files {
		result := validateFile(file, cfg)
		results = append(results, result)

		if !result.Valid {
			allValid = false
		}
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Printf("✓ %s: VALID (%s)\n", r.File, r.Format)
			} else {
				fmt.Printf("✗ %s: INVALID\n", r.File)
				for _, e := range r.Errors {
					fmt.Printf("  - %s\n", e)
				}
			}
			for _, w := range r.Warnings {
				fmt.Printf("  ⚠ %s\n", w)
			}
		}
	}

	if !allValid {
		return fmt.Errorf("validation failed for some files")
	}
	return nil
}

func validateFile(file string, cfg *config.ParsedConfig) *FileValidationResult {
	result := &FileValidationResult{File: file}

	ctx, err := loadInvoiceContext(file, cfg)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	format := model.Format(einvoiceFormat)
	if format == "" {
		info := catalog.DefaultFormat(model.CountryCode(clientCountry), ctx.Client.EInvoice.PreferredFormat)
		if info == nil {
			result.Errors = append(result.Errors, fmt.Sprintf("no e-invoice format available for country %q", clientCountry))
			return result
		}
		format = info.Format
	}

	res := validator.Validate(ctx, format, model.CountryCode(providerCountry), model.CountryCode(clientCountry))
	result.Format = format
	result.Valid = res.Valid
	result.Errors = res.Errors
	result.Warnings = res.Warnings

	return result
}
