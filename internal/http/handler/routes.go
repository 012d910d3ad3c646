package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"traincards/internal/database"
	"traincards/internal/service"
)

// RegisterRoutes attaches the API routes to app. The pool and service are injected by main.
func RegisterRoutes(app *fiber.App, db *sql.DB, recSvc service.RecordService, gatherer prometheus.Gatherer) {
	app.Get("/data", ListRecords(recSvc))
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get("/metrics", Metrics(gatherer))
}

// ListRecords godoc
//
//	@Summary		List train records
//	@Description	Returns every row of train_data as received from the database.
//	@Tags			data
//	@Produce		json
//	@Produce		plain
//	@Success		200	{array}		object
//	@Failure		500	{string}	string	"Error fetching data"
//	@Router			/data [get]
func ListRecords(recSvc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := recSvc.List(c.UserContext())
		if err != nil {
			// The service already logged the cause.
			return writeText(c, fiber.StatusInternalServerError, ErrFetchingData)
		}
		if err := c.JSON(records); err != nil {
			zerolog.Ctx(c.UserContext()).Error().
				Err(err).
				Str("event", "encode_records_failed").
				Str("request_id", requestIDFromCtx(c)).
				Msg("encode records")
			return writeText(c, fiber.StatusInternalServerError, ErrFetchingData)
		}
		return nil
	}
}

// HealthCheck godoc
//
//	@Summary	Database readiness
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	errorPayload
//	@Router		/health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.Ping(c.UserContext(), db, 2*time.Second); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe answers 200 as long as the process serves requests.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// Metrics exposes the Prometheus registry.
func Metrics(gatherer prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}
