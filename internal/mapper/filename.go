package mapper

import (
	"fmt"
	"strings"

	"github.com/rezonia/einvoice-generator/internal/model"
)

var unsafeFilenameChars = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	":", "_",
	"*", "_",
	"?", "_",
	"\"", "_",
	"<", "_",
	">", "_",
	"|", "_",
	" ", "_",
)

// Filename derives the deterministic output filename:
// <prefix>_<sanitizedNumber>_<MonthName_Year>_<format>.<ext>
func Filename(ctx *model.InvoiceContext, format model.Format, extension string) (string, error) {
	date, err := parseDisplayDate(ctx.InvoiceDate, ctx.Language)
	if err != nil {
		return "", err
	}

	prefix := ctx.FilePrefix
	if prefix == "" {
		prefix = "invoice"
	}

	number := unsafeFilenameChars.Replace(ctx.InvoiceNumber)
	return fmt.Sprintf("%s_%s_%s_%d_%s.%s",
		prefix, number, date.Month().String(), date.Year(), format, extension), nil
}
