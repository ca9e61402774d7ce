package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/riod94/pitaya-store-sub001/internal/http/middleware"
	"github.com/riod94/pitaya-store-sub001/internal/http/validation"
	"github.com/riod94/pitaya-store-sub001/internal/modules/content"
	"github.com/riod94/pitaya-store-sub001/internal/shared/apperr"
)

type BannersHandler struct {
	repo *content.Repo
}

func NewBannersHandler(repo *content.Repo) *BannersHandler {
	return &BannersHandler{repo: repo}
}

type bannerInput struct {
	Title    string `json:"title" binding:"required,max=255"`
	Subtitle string `json:"subtitle" binding:"omitempty,max=255"`
	ImageURL string `json:"imageUrl" binding:"required,max=512"`
	LinkURL  string `json:"linkUrl" binding:"omitempty,max=512"`
	Position int    `json:"position" binding:"gte=0"`
	IsActive *bool  `json:"isActive"`
}

func (h *BannersHandler) List(c *gin.Context) {
	items, err := h.repo.ListBanners(c.Request.Context(), false)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *BannersHandler) Create(c *gin.Context) {
	var in bannerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid banner data.", validation.FromBindError(err, &in)))
		return
	}

	b := bannerFromInput(in)
	if err := h.repo.CreateBanner(c.Request.Context(), &b); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Banner created", "data": b})
}

func (h *BannersHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var in bannerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid banner data.", validation.FromBindError(err, &in)))
		return
	}

	b := bannerFromInput(in)
	b.ID = id
	if err := h.repo.UpdateBanner(c.Request.Context(), &b); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Banner not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Banner updated", "data": b})
}

func (h *BannersHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.repo.DeleteBanner(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Banner not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
}

func bannerFromInput(in bannerInput) content.HeroBanner {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return content.HeroBanner{
		Title:    in.Title,
		Subtitle: in.Subtitle,
		ImageURL: in.ImageURL,
		LinkURL:  in.LinkURL,
		Position: in.Position,
		IsActive: active,
	}
}
