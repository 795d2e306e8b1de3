// Package generator coordinates format resolution, validation, mapping,
// rendering and persistence for a single invoice.
//
// The pipeline is linear with two exit points: no format available, and
// validation failure. Rendering never fails the pipeline: the external
// library is preferred, the built-in UBL synthesizer is the guaranteed
// fallback.
package generator

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/rezonia/einvoice-generator/internal/catalog"
	"github.com/rezonia/einvoice-generator/internal/mapper"
	"github.com/rezonia/einvoice-generator/internal/model"
	"github.com/rezonia/einvoice-generator/internal/render"
	"github.com/rezonia/einvoice-generator/internal/validator"
)

// Options controls one generation run
type Options struct {
	// Format overrides client preference and country default
	Format model.Format

	// SkipValidation generates even when mandatory fields are missing
	SkipValidation bool
}

// Generator holds the renderer pair and a logger; no state is carried
// across calls, so concurrent use for different invoices is safe.
type Generator struct {
	primary  render.Renderer
	fallback render.Renderer
	logger   *zap.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithPrimaryRenderer replaces the external-library adapter
func WithPrimaryRenderer(r render.Renderer) Option {
	return func(g *Generator) { g.primary = r }
}

// WithFallbackRenderer replaces the built-in UBL synthesizer
func WithFallbackRenderer(r render.Renderer) Option {
	return func(g *Generator) { g.fallback = r }
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// New creates a Generator with the default renderer pair
func New(opts ...Option) *Generator {
	g := &Generator{
		primary:  render.NewLibraryRenderer(),
		fallback: render.NewUBLRenderer(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs the full pipeline for one invoice:
// resolve format -> validate -> map -> render -> derive filename.
// Persistence is left to WriteResult so callers can inspect first.
func (g *Generator) Generate(ctx *model.InvoiceContext, providerCountry, clientCountry model.CountryCode, opts Options) (*model.EInvoiceResult, error) {
	info := g.resolveFormat(ctx, clientCountry, opts)
	if info == nil {
		return nil, model.NewConfigError("no e-invoice format available for country %q", clientCountry)
	}

	validation := validator.Validate(ctx, info.Format, providerCountry, clientCountry)
	if !validation.Valid && !opts.SkipValidation {
		return nil, model.NewValidationFailedError(info.Format, validation.Errors)
	}

	data, err := mapper.Map(ctx, info.Format, providerCountry, clientCountry)
	if err != nil {
		// Mapping defects are programming errors; validation has already
		// caught everything user-correctable.
		return nil, err
	}

	payload, err := g.renderWithFallback(info.Format, data)
	if err != nil {
		return nil, err
	}

	filename, err := mapper.Filename(ctx, info.Format, info.FileExtension)
	if err != nil {
		return nil, err
	}

	return &model.EInvoiceResult{
		Format:     *info,
		Data:       payload,
		Filename:   filename,
		Validation: validation,
	}, nil
}

// WriteResult persists the payload to <outputDir>/<filename> and returns
// the absolute path. Filenames are deterministic, so a retry overwrites
// the same file.
func (g *Generator) WriteResult(result *model.EInvoiceResult, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(outputDir, result.Filename)
	if err := os.WriteFile(path, result.Data, 0o644); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

func (g *Generator) resolveFormat(ctx *model.InvoiceContext, clientCountry model.CountryCode, opts Options) *model.FormatInfo {
	if opts.Format != "" {
		if info := catalog.GetFormatInfo(opts.Format); info != nil {
			return info
		}
	}
	return catalog.DefaultFormat(clientCountry, ctx.Client.EInvoice.PreferredFormat)
}

// renderWithFallback tries the library first. Library failures are never
// surfaced to the caller: they are logged and the built-in synthesizer
// takes over.
func (g *Generator) renderWithFallback(format model.Format, data *model.EInvoiceData) ([]byte, error) {
	payload, err := g.primary.Render(format, data)
	if err == nil && len(payload) > 0 {
		return payload, nil
	}

	g.logger.Warn("external renderer failed, using built-in fallback",
		zap.String("renderer", g.primary.Name()),
		zap.String("format", string(format)),
		zap.Error(err))

	// The fallback accepts any well-formed EInvoiceData; an error here
	// means the record itself is broken.
	return g.fallback.Render(format, data)
}
