package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory/controllers"
	"inventory/middleware"
	"inventory/services"
)

// route binds one operation to a path and carries its auth capability tag.
// Whether a route bypasses the guard is decided here, in one table, not by
// per-handler annotations.
type route struct {
	method       string
	path         string
	handler      gin.HandlerFunc
	requiresAuth bool
}

func Register(r *gin.Engine, auth *controllers.AuthController, products *controllers.ProductController, tokens *services.TokenService) {
	table := []route{
		{http.MethodGet, "/health", healthHandler, false},
		{http.MethodPost, "/auth/login", auth.Login, false},
		{http.MethodPost, "/products", products.Create, true},
		{http.MethodGet, "/products", products.List, true},
		{http.MethodGet, "/products/:id", products.Get, true},
		{http.MethodPatch, "/products/:id", products.Update, true},
		{http.MethodDelete, "/products/:id", products.Delete, true},
	}

	guard := middleware.RequireAuth(tokens)
	for _, rt := range table {
		if rt.requiresAuth {
			r.Handle(rt.method, rt.path, guard, rt.handler)
		} else {
			r.Handle(rt.method, rt.path, rt.handler)
		}
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
