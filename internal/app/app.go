package app

import (
	"adikart/internal/app/deps"
	"adikart/internal/app/services"
	"adikart/internal/http/handlers/auth"
	login "adikart/internal/http/handlers/auth/log_in"
	logout "adikart/internal/http/handlers/auth/log_out"
	me "adikart/internal/http/handlers/auth/me"
	resetpassword "adikart/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "adikart/internal/http/handlers/auth/send_password_reset_token"
	signup "adikart/internal/http/handlers/auth/sign_up"
	createorder "adikart/internal/http/handlers/payment/create_order"
	verifypayment "adikart/internal/http/handlers/payment/verify_payment"
	createproduct "adikart/internal/http/handlers/products/create_product"
	deleteproduct "adikart/internal/http/handlers/products/delete_product"
	getproduct "adikart/internal/http/handlers/products/get_product"
	listproducts "adikart/internal/http/handlers/products/list_products"
	updateproduct "adikart/internal/http/handlers/products/update_product"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signup.New(s.SignUp))
	authRouter.Method(http.MethodPost, "/login", login.New(s.LogIn))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/token",
		sendpasswordresettoken.New(s.SendPasswordResetToken, isTestMode),
	)
	authRouter.Method(http.MethodPut, "/password_reset", resetpassword.New(s.ResetPassword))

	profileRouter := chi.NewRouter()
	profileRouter.Method(http.MethodGet, "/me", me.New(s.GetUserBySessionToken))

	productsRouter := chi.NewRouter()
	productsRouter.Use(auth.SetAuthTokenToContext)
	productsRouter.Method(http.MethodGet, "/", listproducts.New(s.ListProducts))
	productsRouter.Method(http.MethodGet, "/{productID:[0-9]+}", getproduct.New(s.ListProducts))
	productsRouter.Method(http.MethodPost, "/", createproduct.New(s.CreateProduct))
	productsRouter.Method(http.MethodPatch, "/{productID:[0-9]+}", updateproduct.New(s.UpdateProduct))
	productsRouter.Method(http.MethodDelete, "/{productID:[0-9]+}", deleteproduct.New(s.DeleteProduct))

	paymentRouter := chi.NewRouter()
	paymentRouter.Use(auth.SetAuthTokenToContext)
	paymentRouter.Method(http.MethodPost, "/orders", createorder.New(s.CreatePaymentOrder))
	paymentRouter.Method(http.MethodPost, "/verification", verifypayment.New(s.VerifyPayment))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/profile", profileRouter)
	router.Mount("/products", productsRouter)
	router.Mount("/payment", paymentRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
