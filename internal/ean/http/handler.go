// Package http provides HTTP handlers for EAN validation and generation operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/codeval/internal/ean/http/dto"
	eanUseCase "github.com/allisson/codeval/internal/ean/usecase"
	"github.com/allisson/codeval/internal/httputil"
	customValidation "github.com/allisson/codeval/internal/validation"
)

// EANHandler handles HTTP requests for EAN operations.
type EANHandler struct {
	eanUseCase   eanUseCase.EANUseCase
	bulkMaxCount int
	logger       *slog.Logger
}

// NewEANHandler creates a new EAN handler with required dependencies.
func NewEANHandler(useCase eanUseCase.EANUseCase, bulkMaxCount int, logger *slog.Logger) *EANHandler {
	return &EANHandler{
		eanUseCase:   useCase,
		bulkMaxCount: bulkMaxCount,
		logger:       logger,
	}
}

// ValidateHandler validates an EAN code.
// POST /ean/validate - Returns 200 OK with the validation outcome.
func (h *EANHandler) ValidateHandler(c *gin.Context) {
	var req dto.EANValidationRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	result := h.eanUseCase.Validate(c.Request.Context(), req.EANCode)

	// Return response
	c.JSON(http.StatusOK, dto.MapValidationToResponse(result))
}

// GenerateHandler generates an EAN code from a base code.
// POST /ean/generate - Returns 201 Created with the generated code.
func (h *EANHandler) GenerateHandler(c *gin.Context) {
	var req dto.EANGenerationRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Parse format
	format, err := dto.ParseEANType(req.EANType)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Call use case
	code, err := h.eanUseCase.Generate(c.Request.Context(), req.BaseCode, format)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return response
	c.JSON(http.StatusCreated, dto.EANGenerationResponse{GeneratedEAN: code})
}

// GenerateRandomHandler generates a random valid EAN code.
// POST /ean/generate/random - Returns 201 Created with the generated code.
func (h *EANHandler) GenerateRandomHandler(c *gin.Context) {
	var req dto.EANRandomGenerationRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Parse format
	format, err := dto.ParseEANType(req.EANType)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Call use case
	code, err := h.eanUseCase.GenerateRandom(c.Request.Context(), format)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return response
	c.JSON(http.StatusCreated, dto.EANGenerationResponse{GeneratedEAN: code})
}

// GenerateBulkHandler generates a batch of distinct random EAN codes.
// POST /ean/generate/bulk - Returns 201 Created with the generated codes.
func (h *EANHandler) GenerateBulkHandler(c *gin.Context) {
	var req dto.BulkEANGenerationRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(h.bulkMaxCount); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Parse format
	format, err := dto.ParseEANType(req.EANType)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Call use case
	codes, err := h.eanUseCase.GenerateMany(c.Request.Context(), format, req.Count)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return response
	c.JSON(http.StatusCreated, dto.BulkEANGenerationResponse{
		EANCodes: codes,
		Count:    len(codes),
	})
}
