package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/einvoice-generator/internal/config"
	"github.com/rezonia/einvoice-generator/internal/generator"
	"github.com/rezonia/einvoice-generator/internal/model"
	"github.com/rezonia/einvoice-generator/internal/render"
)

var (
	einvoiceFormat  string
	providerCountry string
	clientCountry   string
	outputDir       string
	basePDF         string
	skipValidation  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [files...]",
	Short: "Generate e-invoices from invoice data files",
	Long: `Generate one or more e-invoice documents from invoice data (JSON).

The generation flow:
  1. Resolve the target format from the client country (or --einvoice-format)
  2. Validate the invoice data against the format's business rules
  3. Map the data to EN 16931 business terms
  4. Render XML, with an automatic fallback renderer if the primary fails

Examples:
  einvoice-generator generate invoice.json
  einvoice-generator generate invoice.json --einvoice-format zugferd --pdf invoice.pdf
  einvoice-generator generate invoices/*.json --output-dir ./out
  einvoice-generator generate invoice.json --client-country RO`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&einvoiceFormat, "einvoice-format", "", "Target e-invoice format (default: derived from client country)")
	generateCmd.Flags().StringVar(&providerCountry, "provider-country", "DE", "Provider country code (ISO 3166-1 alpha-2)")
	generateCmd.Flags().StringVar(&clientCountry, "client-country", "DE", "Client country code (ISO 3166-1 alpha-2)")
	generateCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Output directory (default: from config or current dir)")
	generateCmd.Flags().StringVar(&basePDF, "pdf", "", "Base PDF to embed the XML into (ZUGFeRD, Factur-X)")
	generateCmd.Flags().BoolVar(&skipValidation, "skip-validation", false, "Generate even when validation fails")
}

// GenerateResult holds the outcome for a single input file
type GenerateResult struct {
	File       string                  `json:"file"`
	Format     model.Format            `json:"format,omitempty"`
	Output     string                  `json:"output,omitempty"`
	Validation *model.ValidationResult `json:"validation,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to process")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := outputDir
	if dir == "" {
		dir = cfg.Output.Dir
	}

	gen := generator.New(generator.WithLogger(newLogger()))
	opts := generator.Options{
		Format:         model.Format(einvoiceFormat),
		SkipValidation: skipValidation,
	}

	printVerbose("Found %d files to process\n", len(files))

	results := make([]*GenerateResult, 0, len(files))
	failed := false
	for _, file := range files {
		printVerbose("Processing: %s\n", file)

		result := generateFile(gen, cfg, file, dir, opts)
		results = append(results, result)

		if result.Error != "" {
			failed = true
			printVerbose("  Error: %s\n", result.Error)
		} else {
			printVerbose("  Format: %s, Output: %s\n", result.Format, result.Output)
		}
	}

	if err := outputResults(results); err != nil {
		return err
	}
	if failed {
		return fmt.Errorf("generation failed for some files")
	}
	return nil
}

func generateFile(gen *generator.Generator, cfg *config.ParsedConfig, file, dir string, opts generator.Options) *GenerateResult {
	result := &GenerateResult{File: file}

	ctx, err := loadInvoiceContext(file, cfg)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	einv, err := gen.Generate(ctx, model.CountryCode(providerCountry), model.CountryCode(clientCountry), opts)
	if err != nil {
		if valErr, ok := err.(*model.ValidationFailedError); ok {
			result.Format = valErr.Format
			result.Validation = &model.ValidationResult{Errors: valErr.Errors}
		}
		result.Error = err.Error()
		return result
	}

	result.Format = einv.Format.Format
	result.Validation = einv.Validation

	path, err := gen.WriteResult(einv, dir)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Output = path

	if basePDF != "" {
		if !render.IsHybridFormat(einv.Format.Format) {
			result.Error = fmt.Sprintf("format %s does not support PDF embedding", einv.Format.Format)
			return result
		}
		pdfOut := strings.TrimSuffix(path, filepath.Ext(path)) + ".pdf"
		if err := render.EmbedInPDF(einv.Data, basePDF, pdfOut); err != nil {
			result.Error = err.Error()
			return result
		}
		result.Output = pdfOut
	}

	return result
}

func loadInvoiceContext(path string, cfg *config.ParsedConfig) (*model.InvoiceContext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var ctx model.InvoiceContext
	if err := json.Unmarshal(data, &ctx); err != nil {
		return nil, fmt.Errorf("invalid invoice data in %s: %w", path, err)
	}

	// Config supplies defaults the data file leaves out
	if ctx.Language == "" {
		ctx.Language = cfg.Defaults.Language
	}
	if ctx.FilePrefix == "" {
		ctx.FilePrefix = cfg.Output.FilePrefix
	}

	return &ctx, nil
}

func loadConfig() (*config.ParsedConfig, error) {
	if configFile == "" {
		return config.Default(), nil
	}
	return config.Load(configFile)
}

func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", arg, err)
		}

		if len(matches) == 0 {
			info, err := os.Stat(arg)
			if err != nil {
				return nil, fmt.Errorf("file not found: %s", arg)
			}

			if info.IsDir() {
				err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
					if err != nil {
						return err
					}
					if !info.IsDir() && strings.EqualFold(filepath.Ext(path), ".json") {
						files = append(files, path)
					}
					return nil
				})
				if err != nil {
					return nil, err
				}
			} else {
				files = append(files, arg)
			}
		} else {
			for _, match := range matches {
				info, err := os.Stat(match)
				if err != nil {
					continue
				}
				if !info.IsDir() {
					files = append(files, match)
				}
			}
		}
	}

	return files, nil
}

func outputResults(results []*GenerateResult) error {
	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	case "table":
		return outputTable(results)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

func outputTable(results []*GenerateResult) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tFORMAT\tOUTPUT\tVALID")
	fmt.Fprintln(tw, "----\t------\t------\t-----")

	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(tw, "%s\tERROR: %s\t\t\n", r.File, r.Error)
			continue
		}
		valid := ""
		if r.Validation != nil {
			valid = fmt.Sprintf("%t", r.Validation.Valid)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.File, r.Format, r.Output, valid)
	}

	return tw.Flush()
}
