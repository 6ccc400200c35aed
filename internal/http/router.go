package http

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bebeboutique.mx/app/internal/config"
	"bebeboutique.mx/app/internal/http/cartcookie"
	"bebeboutique.mx/app/internal/http/handlers"
	"bebeboutique.mx/app/internal/http/handlers/admin"
	"bebeboutique.mx/app/internal/http/middleware"
	"bebeboutique.mx/app/internal/mailer"
	"bebeboutique.mx/app/internal/modules/cart"
	"bebeboutique.mx/app/internal/modules/catalog"
	"bebeboutique.mx/app/internal/modules/content"
	"bebeboutique.mx/app/internal/modules/email"
	"bebeboutique.mx/app/internal/modules/orders"
	"bebeboutique.mx/app/internal/modules/shipping"
	"bebeboutique.mx/app/internal/notify"
	"bebeboutique.mx/app/internal/storage"
)

// NewRouter wires the whole storefront. Env-driven pieces (cookie
// secret, rate table, storage driver, SMTP) are resolved here once.
func NewRouter(logger *slog.Logger, db *gorm.DB) (*gin.Engine, error) {
	secret := []byte(os.Getenv("CART_COOKIE_SECRET"))
	if len(secret) == 0 {
		logger.Warn("CART_COOKIE_SECRET not set, using dev secret")
		secret = []byte("dev-secret-change-me")
	}
	ck := cartcookie.New(secret, os.Getenv("CART_COOKIE_NAME"), os.Getenv("COOKIE_SECURE") == "true")

	rateCfg, err := shipping.LoadConfig(os.Getenv("SHIPPING_RATES_PATH"))
	if err != nil {
		return nil, err
	}
	estimator := shipping.NewEstimator(rateCfg)

	st, err := storage.FromEnv(context.Background())
	if err != nil {
		return nil, err
	}
	logger.Info("storage ready", "driver", st.Driver)

	smtpCfg := config.SMTPFromEnv()
	var mailSvc mailer.Service
	if smtpCfg.Host != "" {
		mailSvc = mailer.NewSMTPMailer(smtpCfg)
	} else {
		logger.Info("SMTP_HOST not set, mail goes to the mock mailer")
		mailSvc = &mailer.Mock{}
	}

	notifier := &notify.SlogNotifier{L: logger}

	catalogRepo := catalog.NewRepo(db)
	catalogSvc := catalog.NewService(catalogRepo)
	cartSvc := cart.NewService(cart.NewGormStore(db), catalogRepo, notifier)
	contentRepo := content.NewRepo(db)
	emailSvc := email.NewService(mailSvc, smtpCfg.FromName, smtpCfg.FromAddr)
	orderRepo := orders.NewRepo(db)
	orderSvc := orders.NewService(db, orderRepo, cartSvc, estimator, emailSvc, notifier)

	productsH := handlers.NewProductsHandler(catalogSvc)
	detailH := handlers.NewProductDetailHandler(catalogSvc)
	cartH := handlers.NewCartHandler(ck, cartSvc)
	badgeH := handlers.NewCartBadgeHandler(ck, cartSvc)
	shippingH := handlers.NewShippingHandler(estimator)
	checkoutH := handlers.NewCheckoutHandler(ck, orderSvc)
	ordersH := handlers.NewOrdersHandler(orderRepo)
	contentH := handlers.NewContentHandler(contentRepo)
	adminH := admin.NewProductsHandler(catalogRepo, st.Images)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)

	api := r.Group("/api")
	{
		api.GET("/products", productsH.List)
		api.GET("/products/:slug", detailH.Get)
		api.GET("/collections", productsH.Collections)

		api.GET("/cart", cartH.Get)
		api.GET("/cart/count", badgeH.Count)
		api.POST("/cart/items", cartH.Add)
		api.POST("/cart/items/update", cartH.Update)
		api.POST("/cart/items/remove", cartH.Remove)
		api.POST("/cart/clear", cartH.Clear)

		api.POST("/shipping/quote", shippingH.Quote)
		api.POST("/checkout", checkoutH.Place)
		api.GET("/orders/:id", ordersH.Get)

		api.GET("/blog", contentH.ListPosts)
		api.GET("/blog/:slug", contentH.GetPost)
		api.GET("/pages/about", contentH.About)
	}

	adm := api.Group("/admin", middleware.RequireAdmin(os.Getenv("ADMIN_TOKEN")))
	{
		adm.POST("/products", adminH.Create)
		adm.POST("/products/:id/variants", adminH.AddVariant)
		adm.POST("/products/:id/images", adminH.UploadImage)
	}

	// local image uploads are served straight from disk
	if st.Driver == "local" {
		r.Static("/uploads", envOr("LOCAL_UPLOAD_DIR", "./storage/uploads"))
	}

	return r, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
