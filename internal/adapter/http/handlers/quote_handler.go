package handlers

import (
	"errors"
	"net/http"

	request "condado_dog/internal/adapter/http/dto/request"
	response "condado_dog/internal/adapter/http/dto/response"
	"condado_dog/internal/domain/pricing"
	"condado_dog/internal/usecase"
	"condado_dog/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for boarding quotes.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote computes a boarding quote and records it in the audit store.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	cmd, ok := h.bindCommand(c)
	if !ok {
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// PreviewQuote computes a quote without persisting it, so the front desk
// can iterate on dates and plans before saving.
func (h *QuoteHandler) PreviewQuote(c *gin.Context) {
	cmd, ok := h.bindCommand(c)
	if !ok {
		return
	}

	quote, err := h.usecase.PreviewQuote(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	quote, err := h.usecase.GetQuoteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// DownloadProposal streams the client-facing proposal PDF for a saved quote.
func (h *QuoteHandler) DownloadProposal(c *gin.Context) {
	pdf, err := h.usecase.RenderProposal(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="proposta.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *QuoteHandler) bindCommand(c *gin.Context) (usecase.CreateQuoteCommand, bool) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return usecase.CreateQuoteCommand{}, false
	}

	return usecase.CreateQuoteCommand{
		OwnerName:    payload.ResolveOwnerName(),
		PetNames:     payload.ResolvePetNames(),
		DogCount:     payload.DogCount,
		CheckIn:      payload.CheckIn,
		CheckOut:     payload.CheckOut,
		HighSeason:   payload.HighSeason,
		ClientType:   payload.ResolveClientType(),
		PlanWeekdays: payload.PlanWeekdays,
		Note:         payload.Note,
	}, true
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyOwnerName),
		errors.Is(err, usecase.ErrEmptyPetName),
		errors.Is(err, usecase.ErrPetNameCount),
		errors.Is(err, usecase.ErrInvalidClientType),
		errors.Is(err, usecase.ErrInvalidPlanWeekday),
		errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, pricing.ErrInvalidDogCount),
		errors.Is(err, pricing.ErrInvalidPeriod):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, pricing.ErrEmptyRateTable):
		return pkg.NewDomainErrorSimple("RATE_TABLE_UNAVAILABLE", "Rate table is empty or unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
