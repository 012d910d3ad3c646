// Command cards fetches the record list from DATA_URL and prints the rendered
// train-list container as HTML on stdout.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"traincards/internal/config"
	"traincards/internal/logging"
	tracing "traincards/internal/otel"
	"traincards/internal/render"
)

func main() {
	cfg := config.Load()
	log := logging.Init(cfg.Log, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, "traincards-cards", log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	if err := run(ctx, cfg.Renderer.DataURL, os.Stdout, log); err != nil {
		stop()
		flushTracing(shutdownTracing, log)
		os.Exit(1)
	}
	flushTracing(shutdownTracing, log)
}

func flushTracing(shutdown tracing.ShutdownFunc, log zerolog.Logger) {
	if err := shutdown(context.Background()); err != nil {
		log.Error().Err(err).Msg("tracing shutdown")
	}
}

// run renders once into a fresh page and writes the container markup to w.
// The renderer has already logged any failure.
func run(ctx context.Context, dataURL string, w io.Writer, log zerolog.Logger) error {
	page := render.NewPage(render.ContainerID)
	r := render.New(render.NewHTTPFetcher(dataURL, nil), page, log)
	if err := r.Render(ctx); err != nil {
		return err
	}
	return page.Container(render.ContainerID).WriteHTML(w)
}
