package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/einvoice-generator/internal/catalog"
	"github.com/rezonia/einvoice-generator/internal/model"
)

var (
	formatsCountry    string
	transactionLookup bool
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported e-invoice formats",
	Long: `Display the supported e-invoice formats and their country mappings.

Without flags, every supported country is listed with its formats.
With --country, only that country's formats are shown. With
--transaction, the formats valid for a provider/client pair are shown.

Examples:
  einvoice-generator formats
  einvoice-generator formats --country DE
  einvoice-generator formats --transaction --provider-country DE --client-country DE`,
	RunE: runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)

	formatsCmd.Flags().StringVar(&formatsCountry, "country", "", "Country code to list formats for")
	formatsCmd.Flags().BoolVar(&transactionLookup, "transaction", false, "Look up formats for a provider/client transaction")
	formatsCmd.Flags().StringVar(&providerCountry, "provider-country", "DE", "Provider country code (ISO 3166-1 alpha-2)")
	formatsCmd.Flags().StringVar(&clientCountry, "client-country", "DE", "Client country code (ISO 3166-1 alpha-2)")
}

// CountryFormats pairs a country with its configured formats
type CountryFormats struct {
	Country     model.CountryCode  `json:"country"`
	CountryName string             `json:"country_name"`
	Formats     []model.FormatInfo `json:"formats"`
}

func runFormats(cmd *cobra.Command, args []string) error {
	var entries []CountryFormats

	switch {
	case transactionLookup:
		formats := catalog.FormatsForTransaction(model.CountryCode(providerCountry), model.CountryCode(clientCountry))
		entries = append(entries, CountryFormats{
			Country:     model.CountryCode(clientCountry),
			CountryName: catalog.CountryName(model.CountryCode(clientCountry)),
			Formats:     formats,
		})

	case formatsCountry != "":
		cc := model.CountryCode(formatsCountry)
		formats := catalog.AvailableFormats(cc)
		if len(formats) == 0 {
			return fmt.Errorf("no e-invoice formats configured for country %q", formatsCountry)
		}
		entries = append(entries, CountryFormats{
			Country:     cc,
			CountryName: catalog.CountryName(cc),
			Formats:     formats,
		})

	default:
		for _, cc := range catalog.SupportedCountries() {
			entries = append(entries, CountryFormats{
				Country:     cc,
				CountryName: catalog.CountryName(cc),
				Formats:     catalog.AvailableFormats(cc),
			})
		}
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COUNTRY\tNAME\tFORMAT\tDESCRIPTION\tEXTENSION")
	fmt.Fprintln(tw, "-------\t----\t------\t-----------\t---------")
	for _, entry := range entries {
		for _, f := range entry.Formats {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				entry.Country, entry.CountryName, f.Format, f.Description, f.FileExtension)
		}
	}
	return tw.Flush()
}
