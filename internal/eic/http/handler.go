// Package http provides HTTP handlers for EIC validation and generation operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/codeval/internal/eic/http/dto"
	eicUseCase "github.com/allisson/codeval/internal/eic/usecase"
	"github.com/allisson/codeval/internal/httputil"
	customValidation "github.com/allisson/codeval/internal/validation"
)

// EICHandler handles HTTP requests for EIC operations.
type EICHandler struct {
	eicUseCase   eicUseCase.EICUseCase
	bulkMaxCount int
	logger       *slog.Logger
}

// NewEICHandler creates a new EIC handler with required dependencies.
func NewEICHandler(useCase eicUseCase.EICUseCase, bulkMaxCount int, logger *slog.Logger) *EICHandler {
	return &EICHandler{
		eicUseCase:   useCase,
		bulkMaxCount: bulkMaxCount,
		logger:       logger,
	}
}

// ValidateHandler validates an EIC code.
// POST /eic/validate - Returns 200 OK with the validation outcome.
func (h *EICHandler) ValidateHandler(c *gin.Context) {
	var req dto.EICValidationRequest

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
	result := h.eicUseCase.Validate(c.Request.Context(), req.EICCode)

	// Return response
	c.JSON(http.StatusOK, dto.MapValidationToResponse(result))
}

// GenerateHandler generates an EIC code for a country code and entity type.
// POST /eic/generate - Returns 201 Created with the generated code.
func (h *EICHandler) GenerateHandler(c *gin.Context) {
	var req dto.EICGenerationRequest

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
	code, err := h.eicUseCase.Generate(c.Request.Context(), req.CountryCode, req.EntityType)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return response
	c.JSON(http.StatusCreated, dto.MapGenerationToResponse(code))
}

// GenerateBulkHandler generates a batch of distinct EIC codes.
// POST /eic/generate/bulk - Returns 201 Created with the generated codes.
func (h *EICHandler) GenerateBulkHandler(c *gin.Context) {
	var req dto.BulkEICGenerationRequest

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

	// Call use case
	codes, err := h.eicUseCase.GenerateMany(c.Request.Context(), req.CountryCode, req.EntityType, req.Count)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return response
	c.JSON(http.StatusCreated, dto.BulkEICGenerationResponse{
		EICCodes: codes,
		Count:    len(codes),
	})
}
