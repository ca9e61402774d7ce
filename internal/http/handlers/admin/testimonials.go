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

type TestimonialsHandler struct {
	repo *content.Repo
}

func NewTestimonialsHandler(repo *content.Repo) *TestimonialsHandler {
	return &TestimonialsHandler{repo: repo}
}

type testimonialInput struct {
	CustomerName string `json:"customerName" binding:"required,max=255"`
	Content      string `json:"content" binding:"required,max=2000"`
	Rating       int    `json:"rating" binding:"required,gte=1,lte=5"`
	AvatarURL    string `json:"avatarUrl" binding:"omitempty,max=512"`
	IsActive     *bool  `json:"isActive"`
}

func (h *TestimonialsHandler) List(c *gin.Context) {
	items, err := h.repo.ListTestimonials(c.Request.Context(), false)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *TestimonialsHandler) Create(c *gin.Context) {
	var in testimonialInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid testimonial data.", validation.FromBindError(err, &in)))
		return
	}

	t := testimonialFromInput(in)
	if err := h.repo.CreateTestimonial(c.Request.Context(), &t); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Testimonial created", "data": t})
}

func (h *TestimonialsHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var in testimonialInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid testimonial data.", validation.FromBindError(err, &in)))
		return
	}

	t := testimonialFromInput(in)
	t.ID = id
	if err := h.repo.UpdateTestimonial(c.Request.Context(), &t); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Testimonial not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial updated", "data": t})
}

func (h *TestimonialsHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.repo.DeleteTestimonial(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Testimonial not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}

func testimonialFromInput(in testimonialInput) content.Testimonial {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return content.Testimonial{
		CustomerName: in.CustomerName,
		Content:      in.Content,
		Rating:       in.Rating,
		AvatarURL:    in.AvatarURL,
		IsActive:     active,
	}
}
