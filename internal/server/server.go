package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rezonia/einvoice-generator/internal/catalog"
	"github.com/rezonia/einvoice-generator/internal/generator"
	"github.com/rezonia/einvoice-generator/internal/model"
	"github.com/rezonia/einvoice-generator/internal/validator"
)

// Config holds server configuration
type Config struct {
	Address      string
	OutputDir    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config    *Config
	router    *gin.Engine
	generator *generator.Generator
	logger    *zap.Logger
}

// NewServer creates a new API server
func NewServer(config *Config, logger *zap.Logger) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config:    config,
		router:    router,
		generator: generator.New(generator.WithLogger(logger)),
		logger:    logger,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/formats", s.handleFormats)
		v1.GET("/formats/transaction", s.handleTransactionFormats)
		v1.POST("/validate", s.handleValidate)
		v1.POST("/generate", s.handleGenerate)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleFormats(c *gin.Context) {
	country := model.CountryCode(c.Query("country"))
	if country == "" {
		// No country given: list every supported country with its formats
		overview := make([]CountryFormatsResponse, 0)
		for _, cc := range catalog.SupportedCountries() {
			overview = append(overview, CountryFormatsResponse{
				Country:     cc,
				CountryName: catalog.CountryName(cc),
				Formats:     catalog.AvailableFormats(cc),
			})
		}
		c.JSON(http.StatusOK, overview)
		return
	}

	formats := catalog.AvailableFormats(country)
	if len(formats) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "no e-invoice formats configured for country " + string(country),
		})
		return
	}

	c.JSON(http.StatusOK, CountryFormatsResponse{
		Country:     country,
		CountryName: catalog.CountryName(country),
		Formats:     formats,
	})
}

func (s *Server) handleTransactionFormats(c *gin.Context) {
	provider := model.CountryCode(c.Query("provider"))
	client := model.CountryCode(c.Query("client"))

	c.JSON(http.StatusOK, TransactionFormatsResponse{
		CanGenerate: catalog.CanGenerateEInvoice(provider, client),
		Formats:     catalog.FormatsForTransaction(provider, client),
	})
}

func (s *Server) handleValidate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	format := req.Format
	if format == "" {
		info := catalog.DefaultFormat(req.ClientCountry, req.Context.Client.EInvoice.PreferredFormat)
		if info == nil {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error: "no e-invoice format available for country " + string(req.ClientCountry),
			})
			return
		}
		format = info.Format
	}

	result := validator.Validate(&req.Context, format, req.ProviderCountry, req.ClientCountry)
	c.JSON(http.StatusOK, ValidationResponse{
		Format:   format,
		Valid:    result.Valid,
		Errors:   result.Errors,
		Warnings: result.Warnings,
	})
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	result, err := s.generator.Generate(&req.Context, req.ProviderCountry, req.ClientCountry, generator.Options{
		Format:         req.Format,
		SkipValidation: req.SkipValidation,
	})
	if err != nil {
		status := http.StatusUnprocessableEntity
		resp := ErrorResponse{Error: err.Error()}
		if valErr, ok := err.(*model.ValidationFailedError); ok {
			resp.Errors = valErr.Errors
		}
		c.JSON(status, resp)
		return
	}

	path := ""
	if req.Persist {
		path, err = s.generator.WriteResult(result, s.config.OutputDir)
		if err != nil {
			s.logger.Error("failed to persist e-invoice", zap.String("filename", result.Filename), zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to persist e-invoice", Details: err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, GenerateResponse{
		ID:         uuid.NewString(),
		Format:     result.Format.Format,
		Filename:   result.Filename,
		Path:       path,
		Data:       result.Data,
		Validation: result.Validation,
	})
}
