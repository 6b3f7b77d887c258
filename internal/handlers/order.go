// internal/handlers/order.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/storefront-backend/internal/i18n"
	"github.com/javajoker/storefront-backend/internal/models"
	"github.com/javajoker/storefront-backend/internal/services"
	"github.com/javajoker/storefront-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	filter := services.OrderFilter{
		Search:     c.Query("search"),
		Status:     models.OrderStatus(c.Query("status")),
		DesignType: models.DesignType(c.Query("designType")),
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), filter)
	if err != nil {
		logrus.WithError(err).WithField("request_id", utils.GetRequestIDFromContext(c)).Error("Failed to list orders")
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOrderFetchFailed))
		return
	}

	utils.SuccessResponse(c, models.OrderCollection{Orders: orders})
}

// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			var details interface{}
			if len(vErr.Details) > 1 {
				details = vErr.Details
			}
			utils.BadRequestResponse(c, vErr.Message, details)
			return
		}

		logrus.WithError(err).WithField("request_id", utils.GetRequestIDFromContext(c)).Error("Failed to create order")
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOrderCreateFailed))
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderCreated),
		"order":   order,
	})
}
