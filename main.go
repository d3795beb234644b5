package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// newRouter builds the gin engine with middleware and routes registered.
func newRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(requestID(), gin.Logger(), gin.Recovery())
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)
	return router
}

func main() {
	log.SetPrefix("fitjourney-api: ")
	log.SetFlags(log.LstdFlags)

	cfg := loadConfig()

	catalog, err := loadCatalog(context.Background(), cfg)
	if err != nil {
		log.Fatalf("[catalog] %v", err)
	}

	h := &Handler{foods: newFoodRecommender(catalog)}
	router := newRouter(h)

	addr := cfg.addr()
	log.Printf("Server running on http://%s", addr)
	if err := http.ListenAndServe(addr, withCORS(router, cfg.CORSOrigins)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
