package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harsh-gitaccount/orivanta-website/config"
	"github.com/Harsh-gitaccount/orivanta-website/internal/delivery/http/middleware"
	"github.com/Harsh-gitaccount/orivanta-website/internal/delivery/http/response"
	"github.com/Harsh-gitaccount/orivanta-website/internal/domain"
	"github.com/Harsh-gitaccount/orivanta-website/internal/usecase"
	"github.com/Harsh-gitaccount/orivanta-website/pkg/ratelimit"
)

// Submitted bodies are tiny; anything near this cap is abuse.
const maxBodyBytes = 10 << 20

var availableEndpoints = []string{
	"GET /health",
	"POST /api/contact/submit",
}

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
	Limiter   ratelimit.Limiter
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(limitBodySize(maxBodyBytes))
	r.Use(middleware.ErrorHandler())

	// Health Check
	NewHealthHandler(r, deps.HealthUC)

	// Contact form (public, rate limited per client IP)
	contact := r.Group("/api/contact")
	contact.Use(middleware.RateLimit(deps.Limiter, middleware.RateLimitOptions{
		Limit:      deps.Config.RateLimitPoints,
		TrustProxy: deps.Config.TrustProxy,
	}))
	NewContactHandler(contact, deps.ContactUC)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, http.StatusNotFound, "Endpoint not found", availableEndpoints)
	})

	return r
}

func limitBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
