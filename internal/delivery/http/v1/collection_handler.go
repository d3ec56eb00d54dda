package v1

import (
	"net/http"

	"go-scancollect-backend/internal/delivery/http/response"
	"go-scancollect-backend/internal/domain"
	"go-scancollect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CollectionHandler struct {
	collectionUC domain.CollectionUsecase
}

func NewCollectionHandler(protected *gin.RouterGroup, collectionUC domain.CollectionUsecase) {
	handler := &CollectionHandler{collectionUC: collectionUC}

	collections := protected.Group("/collections")
	{
		collections.GET("", handler.List)
		collections.POST("", handler.Add)
		collections.DELETE("/:id", handler.Remove)
	}
}

type AddToCollectionRequest struct {
	CardID string `json:"card_id" binding:"required"`
}

// List godoc
// @Summary      List the current user's collection
// @Description  Only the caller's own collection is visible; user_id defaults to the caller.
// @Tags         collections
// @Produce      json
// @Param        user_id  query  string  false  "User ID (must match the caller)"
// @Success      200  {object}  response.Response{data=[]domain.Collection}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /collections [get]
// @Security     BearerAuth
func (h *CollectionHandler) List(c *gin.Context) {
	requesterID := c.GetString(string(domain.KeyUserID))

	entries, err := h.collectionUC.ListByUser(c.Request.Context(), requesterID, c.Query("user_id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Collection", entries)
}

// Add godoc
// @Summary      Add a card to the collection
// @Description  Collecting may unlock count-based achievements as a side effect.
// @Tags         collections
// @Accept       json
// @Produce      json
// @Param        entry  body      AddToCollectionRequest  true  "Card reference"
// @Success      201  {object}  response.Response{data=domain.Collection}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /collections [post]
// @Security     BearerAuth
func (h *CollectionHandler) Add(c *gin.Context) {
	var req AddToCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	entry, err := h.collectionUC.Add(c.Request.Context(), userID, req.CardID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Card collected", entry)
}

// Remove godoc
// @Summary      Remove a card from the collection
// @Tags         collections
// @Produce      json
// @Param        id   path      string  true  "Collection entry ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /collections/{id} [delete]
// @Security     BearerAuth
func (h *CollectionHandler) Remove(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.collectionUC.Remove(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Card removed from collection", nil)
}
