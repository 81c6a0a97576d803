package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/core/internal/domain/entities"
	"github.com/stockroom/core/internal/infrastructure/logger"
	"github.com/stockroom/core/internal/ports"
)

// InventoryHandler handles inventory-related requests
type InventoryHandler struct {
	service ports.InventoryService
	logger  *logger.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(service ports.InventoryService, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{service: service, logger: log}
}

// AddItem handles adding stock for an item
// @Summary Add stock
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body ports.AddItemRequest true "Item and quantity"
// @Success 200 {object} ports.ItemResponse
// @Router /items [post]
func (h *InventoryHandler) AddItem(c echo.Context) error {
	var req ports.AddItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.service.AddItem(c.Request().Context(), req)
	if err != nil {
		h.logger.Errorw("Add item failed", "error", err, "item", req.Name)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, resp)
}

// RemoveItem handles removing stock for an item
// @Summary Remove stock
// @Tags inventory
// @Accept json
// @Produce json
// @Param name path string true "Item name"
// @Param body body removeItemBody true "Quantity to remove"
// @Success 200 {object} ports.ItemResponse
// @Router /items/{name}/remove [post]
func (h *InventoryHandler) RemoveItem(c echo.Context) error {
	var body removeItemBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	req := ports.RemoveItemRequest{Name: c.Param("name"), Quantity: body.Quantity}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.service.RemoveItem(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrItemNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Item not found")
		}
		h.logger.Errorw("Remove item failed", "error", err, "item", req.Name)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, resp)
}

// GetQuantity handles querying the stock of a single item
// @Summary Get item quantity
// @Tags inventory
// @Produce json
// @Param name path string true "Item name"
// @Success 200 {object} QuantityResponse
// @Router /items/{name} [get]
func (h *InventoryHandler) GetQuantity(c echo.Context) error {
	name := c.Param("name")
	qty := h.service.GetQuantity(c.Request().Context(), name)
	return c.JSON(http.StatusOK, QuantityResponse{Name: name, Quantity: qty})
}

// ListItems handles the full inventory report
// @Summary List all items
// @Tags inventory
// @Produce json
// @Success 200 {array} entities.Item
// @Router /items [get]
func (h *InventoryHandler) ListItems(c echo.Context) error {
	items := h.service.Report(c.Request().Context())
	return c.JSON(http.StatusOK, items)
}

// LowStock handles the low-stock report
// @Summary List items below a threshold
// @Tags inventory
// @Produce json
// @Param threshold query int false "Threshold, defaults to 5"
// @Success 200 {object} LowStockResponse
// @Router /items/low [get]
func (h *InventoryHandler) LowStock(c echo.Context) error {
	threshold := ports.DefaultLowStockThreshold
	if raw := c.QueryParam("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Threshold must be an integer")
		}
		threshold = parsed
	}

	items := h.service.LowStock(c.Request().Context(), threshold)
	return c.JSON(http.StatusOK, LowStockResponse{Threshold: threshold, Items: items})
}

// SaveInventory handles persisting the current inventory
// @Summary Save inventory to the configured backend
// @Tags inventory
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /inventory/save [post]
func (h *InventoryHandler) SaveInventory(c echo.Context) error {
	if err := h.service.Save(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save inventory")
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Inventory saved"})
}

// LoadInventory handles replacing the inventory from the configured backend
// @Summary Load inventory from the configured backend
// @Tags inventory
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /inventory/load [post]
func (h *InventoryHandler) LoadInventory(c echo.Context) error {
	if err := h.service.Load(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load inventory")
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Inventory loaded"})
}

// Audit handles listing recent inventory mutations
// @Summary List recent mutations
// @Tags inventory
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {array} entities.AuditEntry
// @Router /audit [get]
func (h *InventoryHandler) Audit(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Limit must be an integer")
		}
		limit = parsed
	}

	entries := h.service.Audit(c.Request().Context(), limit)
	return c.JSON(http.StatusOK, entries)
}

type removeItemBody struct {
	Quantity int `json:"quantity"`
}
