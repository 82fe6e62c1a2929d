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

type WishlistHandler struct {
	cmds commands.WishlistCommands
	q    queries.WishlistQueries
}

func NewWishlistHandler(cmds commands.WishlistCommands, q queries.WishlistQueries) *WishlistHandler {
	return &WishlistHandler{cmds: cmds, q: q}
}

// @Summary List wishlist
// @Tags wishlist
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.WishlistItemResponse
// @Failure 401 {object} httperr.Response
// @Router /wishlist [get]
func (h *WishlistHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	views, err := h.q.List(c.Request.Context(), userID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWishlistViews(views))
}

// @Summary Add to wishlist
// @Tags wishlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AddWishlistItemRequest true "Wishlist item"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /wishlist [post]
func (h *WishlistHandler) Add(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	if _, err := h.cmds.Add(c.Request.Context(), userID, req.ProductID, req.TargetPrice); err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.MessageResponse{Message: "Product added to wishlist."})
}

// @Summary Remove from wishlist
// @Tags wishlist
// @Security BearerAuth
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /wishlist/{productId} [delete]
func (h *WishlistHandler) Remove(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	if err := h.cmds.Remove(c.Request.Context(), userID, productID); err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Product removed from wishlist."})
}
