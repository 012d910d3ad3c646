// Package render turns the /data payload into card elements inside a container.
//
// The flow mirrors the browser page: fetch the whole list, find the container,
// clear it, then append one card per record in order. Fetch and parse failures
// happen before the container is touched, so earlier cards survive them.
package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"traincards/internal/model"
)

// ContainerID is the id of the element cards are rendered into.
const ContainerID = "train-list"

// ErrContainerNotFound is returned when the document has no element with the container id.
var ErrContainerNotFound = errors.New("container not found")

// FetchError reports a client-side failure: the request, its status, the body, or a single record.
type FetchError struct {
	Stage string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch data (%s): %v", e.Stage, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Target is anything cards can be rendered into.
type Target interface {
	Clear()
	Append(card model.Card) error
}

// Document looks up render targets by element id.
type Document interface {
	ElementByID(id string) (Target, bool)
}

// Fetcher returns the elements of the /data array, undecoded.
type Fetcher interface {
	Fetch(ctx context.Context) ([]json.RawMessage, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) ([]json.RawMessage, error)

func (f FetcherFunc) Fetch(ctx context.Context) ([]json.RawMessage, error) { return f(ctx) }

// Renderer runs one fetch-and-render cycle per Render call. It keeps no state between calls.
type Renderer struct {
	fetcher     Fetcher
	doc         Document
	containerID string
	log         zerolog.Logger
}

// New creates a Renderer that renders into the ContainerID element of doc.
func New(fetcher Fetcher, doc Document, log zerolog.Logger) *Renderer {
	return &Renderer{
		fetcher:     fetcher,
		doc:         doc,
		containerID: ContainerID,
		log:         log.With().Str("component", "renderer").Logger(),
	}
}

// Render fetches the record list and replaces the container's cards with it.
// A record that cannot be rendered stops the loop; cards appended before it stay.
// Nothing is retried.
func (r *Renderer) Render(ctx context.Context) error {
	items, err := r.fetcher.Fetch(ctx)
	if err != nil {
		var fe *FetchError
		if !errors.As(err, &fe) {
			err = &FetchError{Stage: "request", Err: err}
		}
		r.log.Error().Err(err).Msg("Error fetching data")
		return err
	}

	target, ok := r.doc.ElementByID(r.containerID)
	if !ok {
		err := fmt.Errorf("%w: #%s", ErrContainerNotFound, r.containerID)
		r.log.Error().Err(err).Msg("Error fetching data")
		return err
	}

	target.Clear()

	for i, raw := range items {
		card, err := model.DecodeCard(raw)
		if err == nil {
			err = target.Append(card)
		}
		if err != nil {
			ferr := &FetchError{Stage: "record", Err: fmt.Errorf("record %d: %w", i, err)}
			r.log.Error().Err(ferr).Int("rendered", i).Msg("Error fetching data")
			return ferr
		}
	}

	r.log.Debug().Int("cards", len(items)).Msg("cards rendered")
	return nil
}
