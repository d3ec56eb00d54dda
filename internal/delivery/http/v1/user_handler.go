package v1

import (
	"net/http"

	"go-scancollect-backend/internal/delivery/http/response"
	"go-scancollect-backend/internal/domain"
	"go-scancollect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authUC domain.AuthUsecase
}

func NewUserHandler(protected *gin.RouterGroup, sensitive *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &UserHandler{authUC: authUC}

	// Session endpoints get the strict rate limit group
	sensitive.POST("/authenticate", handler.Authenticate)
	sensitive.POST("/create-user", handler.CreateUser)

	protected.GET("/user", handler.GetUser)
}

type CreateUserRequest struct {
	Username  string `json:"username" binding:"omitempty,max=40"`
	AvatarURL string `json:"avatar_url" binding:"omitempty,url"`
}

// Authenticate godoc
// @Summary      Register the current session
// @Description  Acknowledges a valid bearer token. The frontend fires this once per sign-in and ignores the body.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /authenticate [post]
// @Security     BearerAuth
func (h *UserHandler) Authenticate(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	email := c.GetString(string(domain.KeyUserEmail))

	if err := h.authUC.RegisterSession(c.Request.Context(), userID, email); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Session registered", gin.H{"user_id": userID})
}

// GetUser godoc
// @Summary      Get the current user
// @Description  Returns the provisioned user record. 404 when the token is valid but no record exists yet.
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /user [get]
// @Security     BearerAuth
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current user", user)
}

// CreateUser godoc
// @Summary      Provision the current user
// @Description  Creates the backend user record for a valid token holder. Idempotent: returns the existing record when already provisioned.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      CreateUserRequest  true  "Profile seed"
// @Success      201   {object}  response.Response{data=domain.User}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /create-user [post]
// @Security     BearerAuth
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user := &domain.User{
		ID:        c.GetString(string(domain.KeyUserID)),
		Email:     c.GetString(string(domain.KeyUserEmail)),
		Username:  req.Username,
		AvatarURL: req.AvatarURL,
	}

	created, err := h.authUC.EnsureUserExists(c.Request.Context(), user)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "User provisioned", created)
}
