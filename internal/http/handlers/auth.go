package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/riod94/pitaya-store-sub001/internal/http/middleware"
	"github.com/riod94/pitaya-store-sub001/internal/http/validation"
	"github.com/riod94/pitaya-store-sub001/internal/modules/users"
	"github.com/riod94/pitaya-store-sub001/internal/shared/apperr"
)

type AuthHandler struct {
	svc  *users.Service
	repo *users.Repo
}

func NewAuthHandler(svc *users.Service, repo *users.Repo) *AuthHandler {
	return &AuthHandler{svc: svc, repo: repo}
}

type registerInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required,max=255"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in registerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid registration data.", validation.FromBindError(err, &in)))
		return
	}

	u, err := h.svc.Register(c.Request.Context(), in.Email, in.Password, in.Name)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account created", "data": u})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid login data.", validation.FromBindError(err, &in)))
		return
	}

	u, token, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, users.ErrBadCredentials) {
			middleware.Fail(c, apperr.UnauthorizedErr("Invalid email or password."))
			return
		}
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"token": token, "user": u}})
}

type profileInput struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=32"`
	Address *string `json:"address" binding:"omitempty,max=512"`
}

// UpdateMe edits the caller's own profile. Email and role are immutable here.
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	cu, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("Authentication required."))
		return
	}

	var in profileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid profile data.", validation.FromBindError(err, &in)))
		return
	}

	if err := h.repo.UpdateProfile(c.Request.Context(), cu.ID, in.Name, in.Phone, in.Address); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("User not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	u, err := h.repo.GetByID(c.Request.Context(), cu.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "data": u})
}

// Me returns the profile behind the presented token.
func (h *AuthHandler) Me(c *gin.Context) {
	cu, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("Authentication required."))
		return
	}

	u, err := h.repo.GetByID(c.Request.Context(), cu.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("User not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": u})
}
