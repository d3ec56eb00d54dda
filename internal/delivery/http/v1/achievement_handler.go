package v1

import (
	"net/http"

	"go-scancollect-backend/internal/delivery/http/response"
	"go-scancollect-backend/internal/domain"
	"go-scancollect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AchievementHandler struct {
	achievementUC domain.AchievementUsecase
}

func NewAchievementHandler(public *gin.RouterGroup, protected *gin.RouterGroup, achievementUC domain.AchievementUsecase) {
	handler := &AchievementHandler{achievementUC: achievementUC}

	publicAchievements := public.Group("/achievements")
	{
		publicAchievements.GET("", handler.List)
		publicAchievements.GET("/:id", handler.Get)
	}

	protectedAchievements := protected.Group("/achievements")
	{
		protectedAchievements.POST("", handler.Create)
		protectedAchievements.PUT("/:id", handler.Update)
		protectedAchievements.DELETE("/:id", handler.Delete)
		protectedAchievements.POST("/:id/unlock", handler.Unlock)
	}

	protected.GET("/user/achievements", handler.ListUnlocked)
}

type AchievementRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url" binding:"omitempty,url"`
	TriggerType string `json:"trigger_type" binding:"required,oneof=collection_count category_count manual"`
	Requirement string `json:"requirement"`
}

// List godoc
// @Summary      List all achievements
// @Tags         achievements
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Achievement}
// @Router       /achievements [get]
func (h *AchievementHandler) List(c *gin.Context) {
	achievements, err := h.achievementUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Achievements", achievements)
}

// Get godoc
// @Summary      Get one achievement
// @Tags         achievements
// @Produce      json
// @Param        id   path      string  true  "Achievement ID"
// @Success      200  {object}  response.Response{data=domain.Achievement}
// @Failure      404  {object}  response.Response
// @Router       /achievements/{id} [get]
func (h *AchievementHandler) Get(c *gin.Context) {
	achievement, err := h.achievementUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Achievement", achievement)
}

// ListUnlocked godoc
// @Summary      List the current user's unlocked achievements
// @Tags         achievements
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.UserAchievement}
// @Failure      401  {object}  response.Response
// @Router       /user/achievements [get]
// @Security     BearerAuth
func (h *AchievementHandler) ListUnlocked(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	unlocked, err := h.achievementUC.ListUnlocked(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Unlocked achievements", unlocked)
}

// Unlock godoc
// @Summary      Unlock an achievement for the current user
// @Tags         achievements
// @Produce      json
// @Param        id   path      string  true  "Achievement ID"
// @Success      200  {object}  response.Response{data=domain.UserAchievement}
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /achievements/{id}/unlock [post]
// @Security     BearerAuth
func (h *AchievementHandler) Unlock(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	ua, err := h.achievementUC.Unlock(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Achievement unlocked", ua)
}

// Create godoc
// @Summary      Create an achievement
// @Description  Admin only
// @Tags         achievements
// @Accept       json
// @Produce      json
// @Param        achievement  body      AchievementRequest  true  "Achievement JSON"
// @Success      201  {object}  response.Response{data=domain.Achievement}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /achievements [post]
// @Security     BearerAuth
func (h *AchievementHandler) Create(c *gin.Context) {
	var req AchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	achievement := h.fromRequest(req)
	if err := h.achievementUC.Create(c.Request.Context(), achievement); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Achievement created", achievement)
}

// Update godoc
// @Summary      Update an achievement
// @Description  Admin only
// @Tags         achievements
// @Accept       json
// @Produce      json
// @Param        id           path      string              true  "Achievement ID"
// @Param        achievement  body      AchievementRequest  true  "Achievement JSON"
// @Success      200  {object}  response.Response{data=domain.Achievement}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /achievements/{id} [put]
// @Security     BearerAuth
func (h *AchievementHandler) Update(c *gin.Context) {
	var req AchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	achievement := h.fromRequest(req)
	achievement.ID = c.Param("id")
	if err := h.achievementUC.Update(c.Request.Context(), achievement); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Achievement updated", achievement)
}

// Delete godoc
// @Summary      Delete an achievement
// @Description  Admin only
// @Tags         achievements
// @Produce      json
// @Param        id   path      string  true  "Achievement ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /achievements/{id} [delete]
// @Security     BearerAuth
func (h *AchievementHandler) Delete(c *gin.Context) {
	if err := h.achievementUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Achievement deleted", nil)
}

func (h *AchievementHandler) fromRequest(req AchievementRequest) *domain.Achievement {
	return &domain.Achievement{
		Name:        req.Name,
		Description: req.Description,
		IconURL:     req.IconURL,
		TriggerType: req.TriggerType,
		Requirement: req.Requirement,
	}
}
