package api

import (
	"net/http"

	reqdto "shopcompare/internal/handler/dto/request"
	resdto "shopcompare/internal/handler/dto/response"
	"shopcompare/internal/handler/httperr"
	"shopcompare/internal/usecase/commands"
	"shopcompare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary List tracked orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	orders, err := h.q.List(c.Request.Context(), userID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrders(orders))
}

// @Summary Track an order
// @Description Store the order and read its status page once
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	o, err := h.cmds.Create(c.Request.Context(), req.ToInput(userID))
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateOrderResponse{
		Message: "Order added for tracking.",
		Order:   resdto.FromOrder(o),
	})
}

// @Summary Refresh order status
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} resdto.RefreshStatusResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{orderId}/refresh-status [put]
func (h *OrderHandler) RefreshStatus(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	o, err := h.cmds.RefreshStatus(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RefreshStatusResponse{
		Message:   "Order status updated.",
		NewStatus: o.Status,
	})
}

// @Summary Stop tracking an order
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{orderId} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), userID, id); err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Order removed."})
}
