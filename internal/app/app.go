package app

import (
	"net/http"
	"storefront/internal/app/deps"
	"storefront/internal/app/services"
	loginwithemail "storefront/internal/http/handlers/auth/log_in_with_email"
	"storefront/internal/http/handlers/auth/register"
	resetpassword "storefront/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "storefront/internal/http/handlers/auth/send_password_reset_token"
	createcategory "storefront/internal/http/handlers/categories/create_category"
	deletecategory "storefront/internal/http/handlers/categories/delete_category"
	listcategories "storefront/internal/http/handlers/categories/list_categories"
	updatecategory "storefront/internal/http/handlers/categories/update_category"
	createcoupon "storefront/internal/http/handlers/coupons/create_coupon"
	deletecoupon "storefront/internal/http/handlers/coupons/delete_coupon"
	listcoupons "storefront/internal/http/handlers/coupons/list_coupons"
	updatecoupon "storefront/internal/http/handlers/coupons/update_coupon"
	"storefront/internal/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/register", register.New(s.Register))
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/token",
		sendpasswordresettoken.New(s.SendPasswordResetToken),
	)
	authRouter.Method(http.MethodPut, "/password_reset", resetpassword.New(s.ResetPassword))

	requireAdmin := middleware.Authenticate(deps.SessionTokenIssuer)

	categoriesRouter := chi.NewRouter()
	categoriesRouter.Method(http.MethodGet, "/", listcategories.New(s.ListCategories))
	categoriesRouter.Group(func(r chi.Router) {
		r.Use(requireAdmin, middleware.RequireAdmin)
		r.Method(http.MethodPost, "/", createcategory.New(s.CreateCategory))
		r.Method(http.MethodPut, "/{categoryID:[0-9]+}", updatecategory.New(s.UpdateCategory))
		r.Method(http.MethodDelete, "/{categoryID:[0-9]+}", deletecategory.New(s.DeleteCategory))
	})

	couponsRouter := chi.NewRouter()
	couponsRouter.Method(http.MethodGet, "/", listcoupons.New(s.ListCoupons))
	couponsRouter.Group(func(r chi.Router) {
		r.Use(requireAdmin, middleware.RequireAdmin)
		r.Method(http.MethodPost, "/", createcoupon.New(s.CreateCoupon))
		r.Method(http.MethodPut, "/{couponID:[0-9]+}", updatecoupon.New(s.UpdateCoupon))
		r.Method(http.MethodDelete, "/{couponID:[0-9]+}", deletecoupon.New(s.DeleteCoupon))
	})

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/categories", categoriesRouter)
	router.Mount("/coupons", couponsRouter)

	return &http.Server{
		Handler: router,
		Addr:    deps.Config.BindAddress,
	}
}
