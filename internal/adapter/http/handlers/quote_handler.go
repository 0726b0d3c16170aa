package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"machine_shop_suite/internal/adapter/http/dto/request"
	"machine_shop_suite/internal/adapter/http/dto/response"
	"machine_shop_suite/internal/domain/entities"
	"machine_shop_suite/internal/usecase"
	"machine_shop_suite/internal/usecase/interfaces"
	"machine_shop_suite/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler exposes the quote lifecycle over HTTP.
type QuoteHandler struct {
	lifecycle usecase.IQuoteLifecycleUseCase
	pricing   usecase.IPricingUseCase
}

func NewQuoteHandler(lifecycle usecase.IQuoteLifecycleUseCase, pricing usecase.IPricingUseCase) *QuoteHandler {
	return &QuoteHandler{lifecycle: lifecycle, pricing: pricing}
}

// CreateQuote godoc
// @Summary  Create a quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateQuoteRequest true "print request"
// @Success  201 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	params := payload.ToPrintParams()
	priced, err := h.pricing.CalculateQuote(c.Request.Context(), usecase.PricingInput{
		Params:          params,
		FilamentWeightG: payload.FilamentWeightG,
		PrintTimeHours:  payload.PrintTimeHours,
		PostProcessing:  payload.PostProcessing,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.lifecycle.Create(c.Request.Context(), params, priced.Breakdown, priced.Currency, payload.TTLSeconds)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// PreviewQuote godoc
// @Summary  Price a print request without persisting a quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateQuoteRequest true "print request"
// @Success  200 {object} response.PreviewResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /quotes/preview [post]
func (h *QuoteHandler) PreviewQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	priced, err := h.pricing.CalculateQuote(c.Request.Context(), usecase.PricingInput{
		Params:          payload.ToPrintParams(),
		FilamentWeightG: payload.FilamentWeightG,
		PrintTimeHours:  payload.PrintTimeHours,
		PostProcessing:  payload.PostProcessing,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingResult(priced))
}

// GetQuote godoc
// @Summary  Fetch a quote by id
// @Tags     quotes
// @Produce  json
// @Param    id path string true "quote id"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.lifecycle.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// RefreshQuote godoc
// @Summary  Revalidate a quote against the current configuration
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id path string true "quote id"
// @Param    payload body request.RefreshQuoteRequest false "refresh options"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id}/refresh [post]
func (h *QuoteHandler) RefreshQuote(c *gin.Context) {
	var payload request.RefreshQuoteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
			return
		}
	}
	if v := c.Query("extend_ttl"); v != "" {
		payload.ExtendTTL, _ = strconv.ParseBool(v)
	}

	quote, err := h.lifecycle.Refresh(c.Request.Context(), c.Param("id"), payload.ExtendTTL)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// LockQuote godoc
// @Summary  Lock a quote's commercial terms
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id path string true "quote id"
// @Param    payload body request.LockQuoteRequest false "lock options"
// @Success  200 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Failure  410 {object} pkg.HTTPError
// @Router   /quotes/{id}/lock [post]
func (h *QuoteHandler) LockQuote(c *gin.Context) {
	var payload request.LockQuoteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
			return
		}
	}

	quote, err := h.lifecycle.Lock(c.Request.Context(), c.Param("id"), payload.Signature)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ListQuotes godoc
// @Summary  Enumerate quotes (admin)
// @Tags     quotes
// @Produce  json
// @Param    limit query int false "page size (clamped to 200)"
// @Param    cursor query string false "pagination cursor"
// @Param    status query string false "status filter"
// @Param    q query string false "free-text filter"
// @Success  200 {object} response.QuoteListResponse
// @Failure  401 {object} pkg.HTTPError
// @Security Bearer
// @Router   /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	query := interfaces.QuoteListQuery{
		Limit:  limit,
		Cursor: c.Query("cursor"),
		Status: entities.QuoteStatus(c.Query("status")),
		Search: c.Query("q"),
	}

	items, nextCursor, err := h.lifecycle.List(c.Request.Context(), query)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteList(items, nextCursor))
}

func mapQuoteError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_PARAMS", verr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteLocked):
		return pkg.NewDomainErrorSimple("QUOTE_LOCKED", "Quote is locked", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteExpired):
		return pkg.NewDomainErrorSimple("QUOTE_EXPIRED", "Quote has expired", http.StatusGone)
	case errors.Is(err, usecase.ErrQuoteSignatureMismatch):
		return pkg.NewDomainErrorSimple("QUOTE_SIGNATURE_MISMATCH", "Provided signature does not match the stored quote", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteConfigChanged):
		return pkg.NewDomainErrorSimple("CONFIG_CHANGED", "Configuration changed since the quote was priced", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
