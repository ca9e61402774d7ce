package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/riod94/pitaya-store-sub001/internal/cache"
	"github.com/riod94/pitaya-store-sub001/internal/config"
	"github.com/riod94/pitaya-store-sub001/internal/http/handlers"
	adminh "github.com/riod94/pitaya-store-sub001/internal/http/handlers/admin"
	"github.com/riod94/pitaya-store-sub001/internal/http/middleware"
	"github.com/riod94/pitaya-store-sub001/internal/modules/catalog"
	"github.com/riod94/pitaya-store-sub001/internal/modules/content"
	"github.com/riod94/pitaya-store-sub001/internal/modules/settings"
	"github.com/riod94/pitaya-store-sub001/internal/modules/users"
	"github.com/riod94/pitaya-store-sub001/internal/storage"
)

// NewRouter wires middleware, repositories and routes. All responses are
// JSON; the storefront group is public, /api/admin requires an admin token.
func NewRouter(cfg *config.Config, logger *slog.Logger, db *gorm.DB, c *cache.Cache, store storage.Storage) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	// ErrorHandler sits outside Recovery so a recovered panic still gets a
	// JSON error response.
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.ErrorHandler(logger),
		middleware.Recovery(logger),
	)

	catalogRepo := catalog.NewRepo(db)
	contentRepo := content.NewRepo(db)
	settingsRepo := settings.NewRepo(db)
	userRepo := users.NewRepo(db)
	userSvc := users.NewService(userRepo, cfg.JWT.Secret, cfg.JWT.TTL)

	authH := handlers.NewAuthHandler(userSvc, userRepo)
	productsH := handlers.NewProductsHandler(catalogRepo, c)
	contentH := handlers.NewContentHandler(contentRepo, settingsRepo)

	api := r.Group("/api")
	{
		api.POST("/auth/register", authH.Register)
		api.POST("/auth/login", authH.Login)
		api.GET("/auth/me", middleware.AuthRequired(cfg.JWT.Secret), authH.Me)
		api.PUT("/auth/me", middleware.AuthRequired(cfg.JWT.Secret), authH.UpdateMe)

		api.GET("/products", productsH.List)
		api.GET("/products/:slug", productsH.Show)

		api.GET("/banners", contentH.Banners)
		api.GET("/testimonials", contentH.Testimonials)
		api.GET("/payment-methods", contentH.PaymentMethods)
		api.GET("/couriers", contentH.Couriers)
	}

	adminProductsH := adminh.NewProductsHandler(catalogRepo, c)
	adminVariantsH := adminh.NewVariantsHandler(catalogRepo, c)
	adminBannersH := adminh.NewBannersHandler(contentRepo)
	adminTestimonialsH := adminh.NewTestimonialsHandler(contentRepo)
	adminSettingsH := adminh.NewSettingsHandler(settingsRepo)
	adminUploadsH := adminh.NewUploadsHandler(store)

	admin := r.Group("/api/admin",
		middleware.AuthRequired(cfg.JWT.Secret),
		middleware.RequireAdmin(),
	)
	{
		admin.GET("/products", adminProductsH.List)
		admin.POST("/products", adminProductsH.Create)
		admin.GET("/products/:id", adminProductsH.Get)
		admin.PUT("/products/:id", adminProductsH.Update)
		admin.DELETE("/products/:id", adminProductsH.Delete)

		// Variant creation is not nested under the product path: the edit
		// form posts one variant at a time with productId in the body.
		admin.GET("/products/:id/variants", adminVariantsH.ListByProduct)
		admin.DELETE("/products/:id/variants", adminVariantsH.DeleteByProduct)
		admin.POST("/products/variants", adminVariantsH.Create)

		admin.GET("/banners", adminBannersH.List)
		admin.POST("/banners", adminBannersH.Create)
		admin.PUT("/banners/:id", adminBannersH.Update)
		admin.DELETE("/banners/:id", adminBannersH.Delete)

		admin.GET("/testimonials", adminTestimonialsH.List)
		admin.POST("/testimonials", adminTestimonialsH.Create)
		admin.PUT("/testimonials/:id", adminTestimonialsH.Update)
		admin.DELETE("/testimonials/:id", adminTestimonialsH.Delete)

		admin.GET("/payment-methods", adminSettingsH.ListPaymentMethods)
		admin.POST("/payment-methods", adminSettingsH.CreatePaymentMethod)
		admin.PUT("/payment-methods/:id", adminSettingsH.UpdatePaymentMethod)
		admin.DELETE("/payment-methods/:id", adminSettingsH.DeletePaymentMethod)

		admin.GET("/couriers", adminSettingsH.ListCouriers)
		admin.POST("/couriers", adminSettingsH.CreateCourier)
		admin.PUT("/couriers/:id", adminSettingsH.UpdateCourier)
		admin.DELETE("/couriers/:id", adminSettingsH.DeleteCourier)

		admin.POST("/uploads", adminUploadsH.Upload)
	}

	return r
}
