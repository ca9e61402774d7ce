package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/riod94/pitaya-store-sub001/internal/http/middleware"
	"github.com/riod94/pitaya-store-sub001/internal/http/validation"
	"github.com/riod94/pitaya-store-sub001/internal/modules/settings"
	"github.com/riod94/pitaya-store-sub001/internal/shared/apperr"
)

// SettingsHandler manages checkout configuration: manual-transfer
// payment destinations and the courier list.
type SettingsHandler struct {
	repo *settings.Repo
}

func NewSettingsHandler(repo *settings.Repo) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

type paymentMethodInput struct {
	BankName      string `json:"bankName" binding:"required,max=128"`
	AccountNumber string `json:"accountNumber" binding:"required,max=64"`
	AccountHolder string `json:"accountHolder" binding:"required,max=255"`
	LogoURL       string `json:"logoUrl" binding:"omitempty,max=512"`
	IsActive      *bool  `json:"isActive"`
}

type courierInput struct {
	Code     string `json:"code" binding:"required,max=32"`
	Name     string `json:"name" binding:"required,max=128"`
	IsActive *bool  `json:"isActive"`
}

func (h *SettingsHandler) ListPaymentMethods(c *gin.Context) {
	items, err := h.repo.ListPaymentMethods(c.Request.Context(), false)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *SettingsHandler) CreatePaymentMethod(c *gin.Context) {
	var in paymentMethodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid payment method data.", validation.FromBindError(err, &in)))
		return
	}

	m := settings.PaymentMethod{
		BankName:      in.BankName,
		AccountNumber: in.AccountNumber,
		AccountHolder: in.AccountHolder,
		LogoURL:       in.LogoURL,
		IsActive:      boolOrTrue(in.IsActive),
	}
	if err := h.repo.CreatePaymentMethod(c.Request.Context(), &m); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Payment method created", "data": m})
}

func (h *SettingsHandler) UpdatePaymentMethod(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var in paymentMethodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid payment method data.", validation.FromBindError(err, &in)))
		return
	}

	m := settings.PaymentMethod{
		ID:            id,
		BankName:      in.BankName,
		AccountNumber: in.AccountNumber,
		AccountHolder: in.AccountHolder,
		LogoURL:       in.LogoURL,
		IsActive:      boolOrTrue(in.IsActive),
	}
	if err := h.repo.UpdatePaymentMethod(c.Request.Context(), &m); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Payment method not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment method updated", "data": m})
}

func (h *SettingsHandler) DeletePaymentMethod(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.repo.DeletePaymentMethod(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Payment method not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment method deleted"})
}

func (h *SettingsHandler) ListCouriers(c *gin.Context) {
	items, err := h.repo.ListCouriers(c.Request.Context(), false)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *SettingsHandler) CreateCourier(c *gin.Context) {
	var in courierInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid courier data.", validation.FromBindError(err, &in)))
		return
	}

	s := settings.ShippingCourier{Code: in.Code, Name: in.Name, IsActive: boolOrTrue(in.IsActive)}
	if err := h.repo.CreateCourier(c.Request.Context(), &s); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Courier created", "data": s})
}

func (h *SettingsHandler) UpdateCourier(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var in courierInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid courier data.", validation.FromBindError(err, &in)))
		return
	}

	s := settings.ShippingCourier{ID: id, Code: in.Code, Name: in.Name, IsActive: boolOrTrue(in.IsActive)}
	if err := h.repo.UpdateCourier(c.Request.Context(), &s); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Courier not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Courier updated", "data": s})
}

func (h *SettingsHandler) DeleteCourier(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.repo.DeleteCourier(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Courier not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Courier deleted"})
}

func boolOrTrue(p *bool) bool {
	if p == nil {
		return true
	}
	return *p
}
