package api

import (
	"net/http"

	reqdto "shopcompare/internal/handler/dto/request"
	resdto "shopcompare/internal/handler/dto/response"
	"shopcompare/internal/handler/httperr"
	"shopcompare/internal/handler/middleware"
	"shopcompare/internal/pkg/config"
	"shopcompare/internal/pkg/cookie"
	"shopcompare/internal/usecase/commands"
	"shopcompare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SearchHistoryHandler struct {
	cmds      commands.SearchHistoryCommands
	q         queries.SearchHistoryQueries
	cookieCfg config.CookieConfig
}

func NewSearchHistoryHandler(cmds commands.SearchHistoryCommands, q queries.SearchHistoryQueries, cookieCfg config.CookieConfig) *SearchHistoryHandler {
	return &SearchHistoryHandler{cmds: cmds, q: q, cookieCfg: cookieCfg}
}

// @Summary Record a search
// @Description Anonymous callers are tracked through the sessionId cookie
// @Tags search
// @Accept json
// @Produce json
// @Param request body reqdto.RecordSearchRequest true "Search"
// @Success 200 {object} resdto.RecordSearchResponse
// @Failure 400 {object} httperr.Response
// @Router /search/history [post]
func (h *SearchHistoryHandler) Record(c *gin.Context) {
	var req reqdto.RecordSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}

	sessionID := cookie.GetSessionID(c)
	result, err := h.cmds.Record(c.Request.Context(), req.ToInput(middleware.GetUserIDPtr(c), sessionID))
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	if result.SessionID != "" && result.SessionID != sessionID {
		cookie.SetSessionID(c, h.cookieCfg, result.SessionID)
	}

	msg := "Search query recorded."
	if !result.Recorded {
		msg = "Common search not recorded."
	}
	c.JSON(http.StatusOK, resdto.RecordSearchResponse{Message: msg, SessionID: result.SessionID})
}

// @Summary Recent searches
// @Tags search
// @Produce json
// @Success 200 {array} resdto.SearchHistoryResponse
// @Failure 400 {object} httperr.Response
// @Router /search/history [get]
func (h *SearchHistoryHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context(), middleware.GetUserIDPtr(c), cookie.GetSessionID(c))
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSearchHistoryViews(views))
}
