package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/NgurahFajar/damar-exchange-backend/internal/apperrors"
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/conversion"
	portssvc "github.com/NgurahFajar/damar-exchange-backend/internal/core/ports/services"
	"github.com/NgurahFajar/damar-exchange-backend/internal/dto"
	"github.com/NgurahFajar/damar-exchange-backend/internal/middleware"
	"github.com/NgurahFajar/damar-exchange-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to the currency catalog.
// snapshotService is only set on the admin side, for the refresh route.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
	snapshotService portssvc.RateSnapshotSvc
	symbols         conversion.SymbolTable
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade, ss portssvc.RateSnapshotSvc, symbols conversion.SymbolTable) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
		snapshotService: ss,
		symbols:         symbols,
	}
}

// registerPublicCurrencyRoutes registers the read side of the catalog, which
// the public site consumes without authentication.
func registerPublicCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade, cfg *config.Config) {
	h := newCurrencyHandler(currencyService, nil, conversion.SymbolTable(cfg.CurrencySymbols))

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}
}

// registerCurrencyAdminRoutes registers the write side of the catalog.
func registerCurrencyAdminRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade, snapshotService portssvc.RateSnapshotSvc, cfg *config.Config) {
	h := newCurrencyHandler(currencyService, snapshotService, conversion.SymbolTable(cfg.CurrencySymbols))

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.createCurrency)
		currencies.PUT("/:code", h.updateCurrency)
		currencies.DELETE("/:code", h.deleteCurrency)
		currencies.POST("/refresh", h.refreshRateSnapshot)
	}
}

// createCurrency godoc
// @Summary Create a new currency
// @Description Adds a new tradable currency with its buy rate and optional sell rate
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRateRequest true "Currency details"
// @Success 201 {object} dto.CurrencyRateResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Currency code already exists"
// @Failure 500 {object} ErrorResponse "Failed to create currency"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create currency", slog.String("currency_code", req.CurrencyCode))

	createdCurrency, err := h.currencyService.CreateCurrency(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate currency", slog.String("currency_code", req.CurrencyCode))
			c.JSON(http.StatusConflict, ErrorResponse{Error: fmt.Sprintf("Currency code '%s' already exists", req.CurrencyCode)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating currency", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create currency in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create currency"})
		}
		return
	}

	logger.Info("Currency created successfully", slog.String("currency_code", createdCurrency.CurrencyCode))
	c.JSON(http.StatusCreated, dto.ToCurrencyRateResponse(createdCurrency, h.symbols))
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Updates the rates or metadata of an existing currency
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   code path string true "Currency Code (3-10 characters)"
// @Param   currency body dto.UpdateCurrencyRateRequest true "Fields to update"
// @Success 200 {object} dto.CurrencyRateResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Failure 500 {object} ErrorResponse "Failed to update currency"
// @Security BearerAuth
// @Router /currencies/{code} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	var req dto.UpdateCurrencyRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("currency_code", currencyCode), slog.String("updater_user_id", updaterUserID))
	logger.Info("Received request to update currency")

	updatedCurrency, err := h.currencyService.UpdateCurrency(c.Request.Context(), currencyCode, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found for update")
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Currency not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating currency", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update currency in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update currency"})
		}
		return
	}

	logger.Info("Currency updated successfully")
	c.JSON(http.StatusOK, dto.ToCurrencyRateResponse(updatedCurrency, h.symbols))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Removes a currency from the catalog
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3-10 characters)"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Failure 500 {object} ErrorResponse "Failed to delete currency"
// @Security BearerAuth
// @Router /currencies/{code} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Deleter user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("currency_code", currencyCode), slog.String("deleter_user_id", deleterUserID))
	logger.Info("Received request to delete currency")

	if err := h.currencyService.DeleteCurrency(c.Request.Context(), currencyCode, deleterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found for delete")
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Currency not found"})
		} else {
			logger.Error("Failed to delete currency in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete currency"})
		}
		return
	}

	logger.Info("Currency deleted successfully")
	c.Status(http.StatusNoContent)
}

// refreshRateSnapshot godoc
// @Summary Refresh the cached rate snapshot
// @Description Drops the cached rate snapshot and rebuilds it from storage immediately
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.RateSnapshotRefreshResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to refresh rate snapshot"
// @Security BearerAuth
// @Router /currencies/refresh [post]
func (h *currencyHandler) refreshRateSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.snapshotService.Snapshot(c.Request.Context(), true)
	if err != nil {
		logger.Error("Failed to refresh rate snapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to refresh rate snapshot"})
		return
	}

	logger.Info("Rate snapshot refreshed", slog.Int("currency_count", len(rates)))
	c.JSON(http.StatusOK, dto.RateSnapshotRefreshResponse{
		CurrencyCount: len(rates),
		RefreshedAt:   time.Now().UTC(),
	})
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific currency by its code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3-10 characters)" MinLength(3) MaxLength(10)
// @Success 200 {object} dto.CurrencyRateResponse
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve currency"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	if len(currencyCode) < 3 || len(currencyCode) > 10 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Currency code must be 3 to 10 characters"})
		return
	}

	logger = logger.With(slog.String("currency_code", currencyCode))

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found")
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Currency not found"})
		} else {
			logger.Error("Failed to get currency from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve currency"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyRateResponse(currency, h.symbols))
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves all tradable currencies with their current rates
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyRateResponse
// @Failure 500 {object} ErrorResponse "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list currencies"})
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyRateResponse(currencies, h.symbols))
}
