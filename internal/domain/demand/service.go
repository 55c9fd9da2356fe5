package demand

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidHorizon is returned when the requested horizon is not one of the
// supported values. Unsupported horizons are rejected rather than coerced.
var ErrInvalidHorizon = errors.New("horizon must be 7, 14, or 30 days")

// Service produces demand predictions. Every call is a pure function of the
// clock and the history read at call time; nothing is cached or persisted.
type Service struct {
	repo HistoryRepository
	now  func() time.Time
}

func NewService(repo HistoryRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock overrides the time source. Used by tests to pin "today".
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Predict builds the three-stream demand forecast for the given horizon,
// optionally scoped to one practitioner. The three historical reads are
// issued concurrently; if any of them fails the whole call fails with no
// partial result.
func (s *Service) Predict(ctx context.Context, practitionerID *uuid.UUID, horizonDays int) (*Prediction, error) {
	if horizonDays != 7 && horizonDays != 14 && horizonDays != 30 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, horizonDays)
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := today.AddDate(0, 0, -historyWindowDays)
	to := today.AddDate(0, 0, 1) // exclusive bound: the window includes today

	var appointments, surgeries, registrations []HistoricalPoint
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		appointments, err = s.repo.AppointmentsPerDay(gctx, practitionerID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		surgeries, err = s.repo.SurgeriesPerDay(gctx, practitionerID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		registrations, err = s.repo.RegistrationsPerDay(gctx, practitionerID, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load demand history: %w", err)
	}

	return &Prediction{
		GeneratedAt:  now,
		HorizonDays:  horizonDays,
		Appointments: buildStream(appointments, horizonDays, today),
		Surgeries:    buildStream(surgeries, horizonDays, today),
		NewPatients:  buildStream(registrations, horizonDays, today),
	}, nil
}

// buildStream assembles one stream's bundle: historical points first, then
// the predicted points, with quality and totals derived from the history.
func buildStream(points []HistoricalPoint, horizon int, today time.Time) StreamForecast {
	total := 0
	series := make([]SeriesPoint, 0, len(points)+horizon)
	for _, p := range points {
		total += p.Count
		series = append(series, SeriesPoint{
			Date:  p.Date.UTC().Format(dateLayout),
			Count: float64(p.Count),
			Kind:  KindHistorical,
		})
	}

	predicted, summary := forecast(points, horizon, today)
	series = append(series, predicted...)

	return StreamForecast{
		Series:          series,
		Summary:         summary,
		Quality:         ClassifyQuality(total, len(points)),
		TotalHistorical: total,
		DaysWithData:    len(points),
	}
}
