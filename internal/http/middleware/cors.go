package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"traincards/internal/config"
)

// CORS lets the card page be served from another origin than the API.
func CORS(cfg config.CORSConfig) fiber.Handler {
	origins := cfg.AllowOrigins
	if origins == "" {
		origins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  "GET,HEAD,OPTIONS",
		ExposeHeaders: RequestIDHeader,
	})
}
