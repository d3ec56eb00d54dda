package v1

import (
	"net/http"

	"go-scancollect-backend/internal/delivery/http/response"
	"go-scancollect-backend/internal/domain"
	"go-scancollect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryUC domain.CategoryUsecase
	cardUC     domain.CardUsecase
}

func NewCategoryHandler(public *gin.RouterGroup, protected *gin.RouterGroup, categoryUC domain.CategoryUsecase, cardUC domain.CardUsecase) {
	handler := &CategoryHandler{categoryUC: categoryUC, cardUC: cardUC}

	publicCategories := public.Group("/categories")
	{
		publicCategories.GET("", handler.List)
		publicCategories.GET("/:id", handler.Get)
		publicCategories.GET("/:id/cards", handler.ListCards)
	}

	// Catalog curation is admin only; the usecase enforces the flag
	protectedCategories := protected.Group("/categories")
	{
		protectedCategories.POST("", handler.Create)
		protectedCategories.PUT("/:id", handler.Update)
		protectedCategories.DELETE("/:id", handler.Delete)
	}
}

type CategoryRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url" binding:"omitempty,url"`
	Rarities    []string `json:"rarities"`
}

// List godoc
// @Summary      List card categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Category}
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Categories", categories)
}

// Get godoc
// @Summary      Get one category
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  response.Response{data=domain.Category}
// @Failure      404  {object}  response.Response
// @Router       /categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.categoryUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category", category)
}

// ListCards godoc
// @Summary      List cards in a category
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  response.Response{data=[]domain.Card}
// @Router       /categories/{id}/cards [get]
func (h *CategoryHandler) ListCards(c *gin.Context) {
	cards, err := h.cardUC.ListByCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category cards", cards)
}

// Create godoc
// @Summary      Create a category
// @Description  Admin only
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        category  body      CategoryRequest  true  "Category JSON"
// @Success      201  {object}  response.Response{data=domain.Category}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /categories [post]
// @Security     BearerAuth
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	category := &domain.Category{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Rarities:    req.Rarities,
	}
	if err := h.categoryUC.Create(c.Request.Context(), category); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Category created", category)
}

// Update godoc
// @Summary      Update a category
// @Description  Admin only
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id        path      string           true  "Category ID"
// @Param        category  body      CategoryRequest  true  "Category JSON"
// @Success      200  {object}  response.Response{data=domain.Category}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /categories/{id} [put]
// @Security     BearerAuth
func (h *CategoryHandler) Update(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	category := &domain.Category{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Rarities:    req.Rarities,
	}
	if err := h.categoryUC.Update(c.Request.Context(), category); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category updated", category)
}

// Delete godoc
// @Summary      Delete a category
// @Description  Admin only
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /categories/{id} [delete]
// @Security     BearerAuth
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categoryUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category deleted", nil)
}
