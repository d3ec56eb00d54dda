package v1

import (
	"net/http"

	"go-scancollect-backend/internal/delivery/http/response"
	"go-scancollect-backend/internal/domain"
	"go-scancollect-backend/pkg/apperror"
	"go-scancollect-backend/pkg/placeholder"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	cardUC domain.CardUsecase
}

func NewCardHandler(public *gin.RouterGroup, protected *gin.RouterGroup, cardUC domain.CardUsecase) {
	handler := &CardHandler{cardUC: cardUC}

	publicCards := public.Group("/cards")
	{
		publicCards.GET("", handler.List)
		// Static segment must be registered alongside the :id route;
		// gin resolves it with priority over the parameter.
		publicCards.GET("/placeholder", handler.Placeholder)
		publicCards.GET("/:id", handler.Get)
	}

	protectedCards := protected.Group("/cards")
	{
		protectedCards.POST("", handler.Create)
		protectedCards.PUT("/:id", handler.Update)
		protectedCards.DELETE("/:id", handler.Delete)
	}
}

type CardRequest struct {
	CategoryID  string `json:"category_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Rarity      string `json:"rarity" binding:"required"`
	SetCode     string `json:"set_code" binding:"required"`
	Number      string `json:"number"`
	ImageURL    string `json:"image_url" binding:"omitempty,url"`
	Description string `json:"description"`
}

// List godoc
// @Summary      List curated cards
// @Tags         cards
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Card}
// @Router       /cards [get]
func (h *CardHandler) List(c *gin.Context) {
	cards, err := h.cardUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Cards", cards)
}

// Get godoc
// @Summary      Get one card
// @Tags         cards
// @Produce      json
// @Param        id   path      string  true  "Card ID"
// @Success      200  {object}  response.Response{data=domain.Card}
// @Failure      404  {object}  response.Response
// @Router       /cards/{id} [get]
func (h *CardHandler) Get(c *gin.Context) {
	card, err := h.cardUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Card", card)
}

// Placeholder godoc
// @Summary      Synthesized card artwork
// @Description  Deterministic PNG placeholder for cards without upstream art. Same query always yields the same bytes.
// @Tags         cards
// @Produce      png
// @Param        name      query  string  false  "Card name"
// @Param        rarity    query  string  false  "Rarity tier (drives the gradient)"
// @Param        set       query  string  false  "Set code"
// @Param        number    query  string  false  "Collector number"
// @Param        category  query  string  false  "Game category hint"
// @Success      200  {file}  file
// @Router       /cards/placeholder [get]
func (h *CardHandler) Placeholder(c *gin.Context) {
	card := domain.UnifiedCard{
		Name:          c.Query("name"),
		Rarity:        c.Query("rarity"),
		SetIdentifier: c.Query("set"),
		Number:        c.Query("number"),
	}

	img, err := placeholder.Synthesize(card, c.Query("category"))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	// Deterministic output, safe to cache aggressively
	c.Header("Cache-Control", "public, max-age=86400, immutable")
	c.Data(http.StatusOK, "image/png", img)
}

// Create godoc
// @Summary      Create a card
// @Description  Admin only
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        card  body      CardRequest  true  "Card JSON"
// @Success      201  {object}  response.Response{data=domain.Card}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /cards [post]
// @Security     BearerAuth
func (h *CardHandler) Create(c *gin.Context) {
	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	card := h.fromRequest(req)
	if err := h.cardUC.Create(c.Request.Context(), card); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Card created", card)
}

// Update godoc
// @Summary      Update a card
// @Description  Admin only
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Card ID"
// @Param        card  body      CardRequest  true  "Card JSON"
// @Success      200  {object}  response.Response{data=domain.Card}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /cards/{id} [put]
// @Security     BearerAuth
func (h *CardHandler) Update(c *gin.Context) {
	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	card := h.fromRequest(req)
	card.ID = c.Param("id")
	if err := h.cardUC.Update(c.Request.Context(), card); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Card updated", card)
}

// Delete godoc
// @Summary      Delete a card
// @Description  Admin only
// @Tags         cards
// @Produce      json
// @Param        id   path      string  true  "Card ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /cards/{id} [delete]
// @Security     BearerAuth
func (h *CardHandler) Delete(c *gin.Context) {
	if err := h.cardUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Card deleted", nil)
}

func (h *CardHandler) fromRequest(req CardRequest) *domain.Card {
	return &domain.Card{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Rarity:      req.Rarity,
		SetCode:     req.SetCode,
		Number:      req.Number,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}
}
