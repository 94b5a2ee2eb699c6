package main

import (
	"github.com/gin-gonic/gin"

	"fulloncrypto.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler           *handlers.AuthHandler
	paymentRequestHandler *handlers.PaymentRequestHandler
	systemHandler         *handlers.SystemHandler
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/signup", d.authHandler.Signup)
		api.POST("/login", d.authHandler.Login)
		api.POST("/register-wallet", d.authHandler.RegisterWallet)
		api.POST("/login-wallet", d.authHandler.LoginWallet)
		api.POST("/update-wallet", d.authHandler.UpdateWallet)

		// Payment request routes
		api.POST("/payment-request", d.paymentRequestHandler.CreatePaymentRequest)
		api.GET("/payment-requests", d.paymentRequestHandler.ListPaymentRequests)
		api.GET("/payment-request/contract/:contractRequestId", d.paymentRequestHandler.GetPaymentRequestByContract)
		api.GET("/upi-id/contract/:contractRequestId", d.paymentRequestHandler.GetUpiIDByContract)

		// System routes
		api.GET("/health", d.systemHandler.Health)
		api.GET("/test", d.systemHandler.Test)
	}
}
