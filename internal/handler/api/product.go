package api

import (
	"net/http"

	reqdto "shopcompare/internal/handler/dto/request"
	resdto "shopcompare/internal/handler/dto/response"
	"shopcompare/internal/handler/httperr"
	"shopcompare/internal/usecase/catalog"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	search catalog.ProductSearch
}

func NewProductHandler(search catalog.ProductSearch) *ProductHandler {
	return &ProductHandler{search: search}
}

// @Summary Search products
// @Description Answer from the product cache, scraping the provider when nothing fresh matches
// @Tags products
// @Produce json
// @Param q query string true "Search text"
// @Param sort query string false "price_asc or price_desc"
// @Param platform query string false "Comma-separated store allow-list"
// @Param platforms query string false "Alias of platform"
// @Success 200 {array} resdto.ProductSearchItem
// @Failure 400 {object} httperr.Response
// @Router /products/search [get]
func (h *ProductHandler) Search(c *gin.Context) {
	var q reqdto.SearchProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindError(c, err)
		return
	}

	sort, err := catalog.ParseSort(q.Sort)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	results, err := h.search.SearchProducts(c.Request.Context(), catalog.SearchParams{
		Query:     q.Query,
		Sort:      sort,
		Platforms: catalog.ParsePlatformFilter(q.PlatformFilter()),
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductResults(results))
}

// @Summary Get product
// @Description Return a cached product; each view appends the current prices to the history
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	p, err := h.search.GetProductDetails(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProduct(p))
}
