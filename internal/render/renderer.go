// Package render turns EInvoiceData into standards-shaped XML bytes.
//
// Exactly two strategies exist: the external library adapter (preferred)
// and the built-in UBL synthesizer (fallback). The fallback must succeed
// for any well-formed EInvoiceData; it has no further fallback.
package render

import (
	"github.com/rezonia/einvoice-generator/internal/model"
)

// Renderer renders the semantic invoice record for a target format
type Renderer interface {
	// Render produces the XML payload
	Render(format model.Format, data *model.EInvoiceData) ([]byte, error)

	// Name identifies the renderer in logs and errors
	Name() string
}
