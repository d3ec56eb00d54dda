package v1

import (
	"net/http"
	"strconv"

	"go-scancollect-backend/internal/catalog"
	"go-scancollect-backend/internal/delivery/http/response"
	"go-scancollect-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ExploreHandler struct {
	catalogUC domain.CatalogUsecase
}

func NewExploreHandler(public *gin.RouterGroup, catalogUC domain.CatalogUsecase) {
	handler := &ExploreHandler{catalogUC: catalogUC}

	public.GET("/explore-cards", handler.ExploreCards)

	justtcg := public.Group("/justtcg")
	{
		justtcg.GET("/cards", handler.PricingCards)
		justtcg.GET("/games", handler.Games)
		justtcg.GET("/sets", handler.Sets)
	}
}

// ExploreCards godoc
// @Summary      Browse cards from the image catalog
// @Description  Proxies the plain upstream catalog. Upstream failures surface as 502; there is no substitute data for this source.
// @Tags         catalog
// @Produce      json
// @Param        tcg      query  string  true   "Game category, e.g. one-piece"
// @Param        name     query  string  false  "Name search term"
// @Param        page     query  int     false  "1-based page number"
// @Param        rarity   query  string  false  "Exact rarity filter, applied within the page"
// @Param        sortBy   query  string  false  "In-page sort field: name, rarity, set_code, created_at"
// @Param        sortDir  query  string  false  "asc or desc"
// @Success      200  {object}  response.Response{data=domain.FetchPage}
// @Failure      400  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /explore-cards [get]
func (h *ExploreHandler) ExploreCards(c *gin.Context) {
	query := domain.CatalogQuery{
		Category:   c.Query("tcg"),
		SearchTerm: c.Query("name"),
		Page:       queryInt(c, "page", 1),
	}

	page, err := h.catalogUC.ExplorePage(c.Request.Context(), query)
	if err != nil {
		c.Error(err)
		return
	}

	// The plain upstream only understands name search; rarity filtering
	// and ordering happen here, within the fetched page.
	spec := domain.FilterSortSpec{
		RarityFilter:  c.Query("rarity"),
		SortField:     domain.SortField(c.DefaultQuery("sortBy", string(domain.SortByName))),
		SortDirection: domain.SortDirection(c.DefaultQuery("sortDir", string(domain.SortAscending))),
	}
	page.Items = catalog.Apply(page.Items, spec)

	response.Success(c, http.StatusOK, "Explore cards", page)
}

// PricingCards godoc
// @Summary      Browse cards from the pricing catalog
// @Description  Proxies the pricing-aware upstream. On upstream failure a small static dataset is served instead, flagged by source_used.
// @Tags         catalog
// @Produce      json
// @Param        game     query  string  true   "Game category, e.g. pokemon"
// @Param        name     query  string  false  "Name search term"
// @Param        page     query  int     false  "1-based page number"
// @Param        orderBy  query  string  false  "Upstream sort field"
// @Param        order    query  string  false  "asc or desc"
// @Success      200  {object}  response.Response{data=domain.FetchPage}
// @Failure      400  {object}  response.Response
// @Router       /justtcg/cards [get]
func (h *ExploreHandler) PricingCards(c *gin.Context) {
	query := domain.CatalogQuery{
		Category:   c.Query("game"),
		SearchTerm: c.Query("name"),
		Page:       queryInt(c, "page", 1),
		OrderBy:    c.Query("orderBy"),
		Order:      c.Query("order"),
	}

	page, err := h.catalogUC.PricingPage(c.Request.Context(), query)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Pricing cards", page)
}

// Games godoc
// @Summary      List games known to the pricing catalog
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.CatalogGame}
// @Failure      502  {object}  response.Response
// @Router       /justtcg/games [get]
func (h *ExploreHandler) Games(c *gin.Context) {
	games, err := h.catalogUC.Games(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Games", games)
}

// Sets godoc
// @Summary      List sets for a game in the pricing catalog
// @Tags         catalog
// @Produce      json
// @Param        game  query  string  true  "Game id, e.g. pokemon"
// @Success      200  {object}  response.Response{data=[]domain.CatalogSet}
// @Failure      400  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /justtcg/sets [get]
func (h *ExploreHandler) Sets(c *gin.Context) {
	sets, err := h.catalogUC.Sets(c.Request.Context(), c.Query("game"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Sets", sets)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
