package render

import (
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/rezonia/einvoice-generator/internal/model"
)

// ZUGFeRD and Factur-X expect the XML inside a PDF/A-3 container. The
// attachment must carry this exact name for readers to find it.
const hybridAttachmentName = "factur-x.xml"

// EmbedInPDF attaches the generated invoice XML to a caller-supplied base
// PDF, producing the hybrid artifact at outPath. The base PDF is not
// modified.
func EmbedInPDF(xmlData []byte, basePDF, outPath string) error {
	tmpDir, err := os.MkdirTemp("", "einvoice-hybrid-")
	if err != nil {
		return model.NewRenderError("pdf-hybrid", "failed to create temp dir", err)
	}
	defer os.RemoveAll(tmpDir)

	xmlPath := filepath.Join(tmpDir, hybridAttachmentName)
	if err := os.WriteFile(xmlPath, xmlData, 0o644); err != nil {
		return model.NewRenderError("pdf-hybrid", "failed to stage attachment", err)
	}

	if err := api.AddAttachmentsFile(basePDF, outPath, []string{xmlPath}, false, nil); err != nil {
		return model.NewRenderError("pdf-hybrid", "failed to attach XML to PDF", err)
	}
	return nil
}

// IsHybridFormat reports whether a format expects PDF embedding
func IsHybridFormat(format model.Format) bool {
	return format == model.FormatZUGFeRD || format == model.FormatFacturX
}
