package handlers

import (
	"log/slog"
	"net/http"

	"github.com/NgurahFajar/damar-exchange-backend/internal/core/conversion"
	portssvc "github.com/NgurahFajar/damar-exchange-backend/internal/core/ports/services"
	"github.com/NgurahFajar/damar-exchange-backend/internal/dto"
	"github.com/NgurahFajar/damar-exchange-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// conversionHandler exposes the conversion engine over HTTP.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{conversionService: cs}
}

// registerConversionRoutes registers the public conversion endpoints.
func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newConversionHandler(conversionService)

	rg.GET("/convert", h.convert)
	rg.GET("/convert/table", h.conversionTable)
}

// ConversionErrorResponse reports a rejected or failed conversion. Code is a
// stable machine-readable kind; clients key localized messages off it.
type ConversionErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts an amount from one currency to another through the IDR pivot. Exactly one side of the pair must be IDR.
// @Tags conversion
// @Produce json
// @Param amount query string true "Amount to convert"
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Success 200 {object} dto.ConversionResultResponse
// @Failure 400 {object} ConversionErrorResponse "Invalid input"
// @Failure 404 {object} ConversionErrorResponse "Currency not found"
// @Failure 422 {object} ConversionErrorResponse "Pair cannot be quoted"
// @Failure 500 {object} ErrorResponse "Conversion failed"
// @Router /convert [get]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	result, err := h.conversionService.ConvertCurrency(c.Request.Context(), req)
	if err != nil {
		h.respondConversionError(c, err)
		return
	}

	logger.Info("Conversion performed",
		slog.String("from", result.FromCurrency),
		slog.String("to", result.ToCurrency),
		slog.String("amount", result.Amount.String()),
	)
	c.JSON(http.StatusOK, result)
}

// conversionTable godoc
// @Summary Conversion reference table
// @Description Builds the fixed reference-amount table for a currency pair, converted in both directions.
// @Tags conversion
// @Produce json
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Success 200 {object} dto.ConversionTableResponse
// @Failure 400 {object} ConversionErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to build table"
// @Router /convert/table [get]
func (h *conversionHandler) conversionTable(c *gin.Context) {
	fromCode := c.Query("from")
	toCode := c.Query("to")

	table, err := h.conversionService.ConversionTable(c.Request.Context(), fromCode, toCode)
	if err != nil {
		h.respondConversionError(c, err)
		return
	}

	c.JSON(http.StatusOK, table)
}

// respondConversionError maps an engine failure onto an HTTP status. Input
// mistakes are 400, an unknown currency 404, and pairs the business rules
// cannot quote 422. Anything that is not a tagged engine error is an
// infrastructure failure.
func (h *conversionHandler) respondConversionError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	convErr, ok := conversion.AsError(err)
	if !ok {
		logger.Error("Conversion failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Conversion failed"})
		return
	}

	status := http.StatusUnprocessableEntity
	switch {
	case convErr.UserInput():
		status = http.StatusBadRequest
	case convErr.Kind == conversion.KindCurrencyNotFound:
		status = http.StatusNotFound
	}

	logger.Warn("Conversion rejected", slog.String("kind", string(convErr.Kind)), slog.String("detail", convErr.Detail))
	c.JSON(status, ConversionErrorResponse{Code: string(convErr.Kind), Error: convErr.Error()})
}
