// Package directory maintains a live, server-backed list of barbers
// matching the active filter set.
package directory

import (
	"context"
	"sync"
	"sync/atomic"

	"barberly/models"

	"go.uber.org/zap"
)

// PopularRatingFloor is the rating threshold for the "popular" shelf.
const PopularRatingFloor = 4.5

// BarberSearcher is the collaborator that runs a filtered barber search.
// The API client satisfies it.
type BarberSearcher interface {
	SearchBarbers(ctx context.Context, filter models.BarberFilter) ([]models.Barber, error)
}

// Directory holds the filter state and the last successfully fetched page.
// Every filter mutation triggers a refetch; responses of superseded
// requests are discarded so a slow fetch can never overwrite a newer one.
type Directory struct {
	api    BarberSearcher
	logger *zap.Logger

	seq uint64 // monotonic request token

	mu      sync.Mutex
	applied uint64
	filter  models.BarberFilter
	barbers []models.Barber
}

func New(api BarberSearcher, logger *zap.Logger) *Directory {
	return &Directory{
		api:    api,
		logger: logger,
		filter: models.DefaultBarberFilter(),
	}
}

// Filter returns a copy of the active filter set.
func (d *Directory) Filter() models.BarberFilter {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filter
}

// Barbers returns the last successfully fetched page.
func (d *Directory) Barbers() []models.Barber {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Barber, len(d.barbers))
	copy(out, d.barbers)
	return out
}

// Popular returns the barbers of the last page with a rating at or above
// PopularRatingFloor. It is a pure filter, not a separate query.
func (d *Directory) Popular() []models.Barber {
	d.mu.Lock()
	defer d.mu.Unlock()
	var popular []models.Barber
	for _, b := range d.barbers {
		if b.Rating >= PopularRatingFloor {
			popular = append(popular, b)
		}
	}
	return popular
}

// SetQuery updates the free-text name filter and refetches.
func (d *Directory) SetQuery(ctx context.Context, query string) error {
	d.mu.Lock()
	d.filter.Name = query
	d.mu.Unlock()
	return d.Refresh(ctx)
}

// SetMinRating updates the rating floor and refetches.
func (d *Directory) SetMinRating(ctx context.Context, rating float64) error {
	d.mu.Lock()
	d.filter.MinRating = rating
	d.mu.Unlock()
	return d.Refresh(ctx)
}

// SetMaxCost updates the cost ceiling and refetches.
func (d *Directory) SetMaxCost(ctx context.Context, cost float64) error {
	d.mu.Lock()
	d.filter.MaxCost = cost
	d.mu.Unlock()
	return d.Refresh(ctx)
}

// SetGender updates the gender preference and refetches.
func (d *Directory) SetGender(ctx context.Context, gender string) error {
	d.mu.Lock()
	d.filter.Gender = gender
	d.mu.Unlock()
	return d.Refresh(ctx)
}

// Refresh issues a search with the current filter set. On failure the
// previous list stays in place and the error is logged; no retry is
// scheduled. A response that arrives after a newer request has already
// been applied is dropped.
func (d *Directory) Refresh(ctx context.Context) error {
	token := atomic.AddUint64(&d.seq, 1)

	d.mu.Lock()
	filter := d.filter
	d.mu.Unlock()

	barbers, err := d.api.SearchBarbers(ctx, filter)
	if err != nil {
		d.logger.Error("barber search failed, keeping previous results",
			zap.String("query", filter.Name),
			zap.Error(err),
		)
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if token < d.applied {
		d.logger.Debug("dropping stale barber search response",
			zap.Uint64("token", token),
			zap.Uint64("applied", d.applied),
		)
		return nil
	}
	d.applied = token
	d.barbers = barbers
	return nil
}
