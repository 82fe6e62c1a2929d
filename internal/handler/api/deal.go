package api

import (
	"net/http"

	resdto "shopcompare/internal/handler/dto/response"
	"shopcompare/internal/handler/httperr"
	"shopcompare/internal/usecase/catalog"

	"github.com/gin-gonic/gin"
)

type DealHandler struct {
	deals catalog.DailyDeals
}

func NewDealHandler(deals catalog.DailyDeals) *DealHandler {
	return &DealHandler{deals: deals}
}

// @Summary Daily deals
// @Tags deals
// @Produce json
// @Success 200 {array} resdto.DealResponse
// @Failure 429 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /deals [get]
func (h *DealHandler) List(c *gin.Context) {
	deals, err := h.deals.GetDailyDeals(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeals(deals))
}
