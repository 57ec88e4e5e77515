// Package http provides the HTTP handlers for card number generation and checksum operations.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/allisson/cardgen/internal/cardgen/http/dto"
	"github.com/allisson/cardgen/internal/cardgen/service"
	cardgenUseCase "github.com/allisson/cardgen/internal/cardgen/usecase"
	"github.com/allisson/cardgen/internal/httputil"
	customValidation "github.com/allisson/cardgen/internal/validation"
)

// Response headers describing a generated batch.
const (
	HeaderBatchID   = "X-Batch-Id"
	HeaderGenerated = "X-Generated-Count"
	HeaderAttempts  = "X-Generation-Attempts"
)

// CardHandler handles HTTP requests for card number operations.
type CardHandler struct {
	cardUseCase cardgenUseCase.CardUseCase
	logger      *slog.Logger
}

// NewCardHandler creates a new card handler with required dependencies.
func NewCardHandler(cardUseCase cardgenUseCase.CardUseCase, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		cardUseCase: cardUseCase,
		logger:      logger,
	}
}

// GenerateHandler generates a batch of unique card numbers.
// POST /v1/cards/generate
//
// Responds with the pipe-delimited export as a text/plain attachment, or with a
// JSON document when the client prefers application/json. A shortfall yields
// 422 and no file.
func (h *CardHandler) GenerateHandler(c *gin.Context) {
	var req dto.GenerateRequest

	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.HandleBadRequestGin(c, err, h.logger)
			return
		}
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.cardUseCase.Generate(c.Request.Context(), req.ToInput(), nil)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	batch := output.Batch
	attrs := []any{
		slog.String("request_id", requestid.Get(c)),
		slog.String("batch_id", batch.ID.String()),
		slog.Int("count", batch.Len()),
		slog.Int("attempts", batch.Attempts),
	}
	if batch.Len() > 0 {
		attrs = append(attrs, slog.String("first_number", service.MaskNumber(batch.Numbers[0])))
	}
	h.logger.InfoContext(c.Request.Context(), "batch generated", attrs...)

	c.Header(HeaderBatchID, batch.ID.String())
	c.Header(HeaderGenerated, strconv.Itoa(batch.Len()))
	c.Header(HeaderAttempts, strconv.Itoa(batch.Attempts))

	switch c.NegotiateFormat(gin.MIMEPlain, gin.MIMEJSON) {
	case gin.MIMEJSON:
		c.JSON(http.StatusOK, dto.MapGenerateOutputToResponse(output))
	default:
		c.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", output.Content)
	}
}

// ValidateHandler verifies the checksum of a complete number.
// POST /v1/cards/validate
func (h *CardHandler) ValidateHandler(c *gin.Context) {
	var req dto.ValidateNumberRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.cardUseCase.Validate(c.Request.Context(), req.Number)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapValidationResultToResponse(result))
}

// CheckDigitHandler computes the check digit completing a partial number.
// GET /v1/cards/check-digit?partial=7992739871
func (h *CardHandler) CheckDigitHandler(c *gin.Context) {
	var query dto.CheckDigitQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := query.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	digit, err := h.cardUseCase.CheckDigit(c.Request.Context(), query.Partial)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.CheckDigitResponse{
		Partial:    query.Partial,
		CheckDigit: digit,
		Number:     query.Partial + strconv.Itoa(digit),
	})
}
