package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"traincards/internal/model"
	"traincards/internal/repository"
)

// QueryError reports that the backing store was unreachable or the query failed.
// Callers must not surface Err to clients.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("list records: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// RecordService defines the use cases for train_data records.
type RecordService interface {
	// List returns every record as received from the store, or a *QueryError.
	List(ctx context.Context) ([]model.Record, error)
}

type recordService struct {
	repo   repository.RecordRepository
	log    zerolog.Logger
	tracer trace.Tracer
}

// NewRecordService constructs a new RecordService.
func NewRecordService(repo repository.RecordRepository, log zerolog.Logger) RecordService {
	return &recordService{
		repo:   repo,
		log:    log.With().Str("component", "record_service").Logger(),
		tracer: otel.Tracer("traincards/internal/service"),
	}
}

// List does not retry and does not shape rows.
func (s *recordService) List(ctx context.Context) ([]model.Record, error) {
	ctx, span := s.tracer.Start(ctx, "RecordService.List")
	defer span.End()

	items, err := s.repo.ListAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		s.log.Error().Err(err).Str("event", "list_records_failed").Msg("query failed")
		return nil, &QueryError{Err: err}
	}

	span.SetAttributes(attribute.Int("db.rows", len(items)))
	return items, nil
}
