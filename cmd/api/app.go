package main

import (
	"database/sql"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"traincards/docs"
	"traincards/internal/config"
	handlers "traincards/internal/http/handler"
	"traincards/internal/http/middleware"
	"traincards/internal/service"
	"traincards/internal/web"
)

// newApp builds the Fiber app with middleware, API routes, Swagger UI and the card page.
// reg receives the request metrics and is exposed at /metrics.
func newApp(cfg *config.AppConfig, log zerolog.Logger, db *sql.DB, recSvc service.RecordService, reg *prometheus.Registry) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               "traincards",
		ErrorHandler:          handlers.ErrorHandler(),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
	})

	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())
	app.Use(middleware.CORS(cfg.CORS))

	handlers.RegisterRoutes(app, db, recSvc, reg)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	web.Register(app)

	return app, nil
}
