package main

import (
	"testing"

	"github.com/gin-gonic/gin"

	"fulloncrypto.backend/internal/interfaces/http/handlers"
)

func TestRegisterAPIRoutes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerAPIRoutes(r, routeDeps{
		authHandler:           &handlers.AuthHandler{},
		paymentRequestHandler: &handlers.PaymentRequestHandler{},
		systemHandler:         &handlers.SystemHandler{},
	})

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/signup"},
		{"POST", "/api/login"},
		{"POST", "/api/register-wallet"},
		{"POST", "/api/login-wallet"},
		{"POST", "/api/update-wallet"},
		{"POST", "/api/payment-request"},
		{"GET", "/api/payment-requests"},
		{"GET", "/api/payment-request/contract/:contractRequestId"},
		{"GET", "/api/upi-id/contract/:contractRequestId"},
		{"GET", "/api/health"},
		{"GET", "/api/test"},
	}

	routes := r.Routes()
	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
	if len(routes) != len(expects) {
		t.Fatalf("expected %d routes, got %d", len(expects), len(routes))
	}
}
