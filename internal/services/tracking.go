package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"timeledger/internal/domain"
)

// Limits applied to caller-supplied query parameters.
const (
	defaultListLimit    = 50
	defaultFrequentSize = 10
	maxFrequentSize     = 100
)

type trackingService struct {
	entryRepo      domain.EntryRepository
	contextTimeout time.Duration
}

func NewTrackingService(entryRepo domain.EntryRepository, timeout time.Duration) domain.TrackingService {
	return &trackingService{
		entryRepo:      entryRepo,
		contextTimeout: timeout,
	}
}

func (s *trackingService) Start(ctx context.Context, name string, startTime, endTime *time.Time) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be blank", domain.ErrInvalidInput)
	}
	start := time.Now()
	if startTime != nil {
		start = *startTime
	}
	if endTime != nil && endTime.Before(start) {
		return nil, fmt.Errorf("%w: end time before start time", domain.ErrInvalidInput)
	}

	e := &domain.Entry{
		Name:      name,
		StartTime: start,
		EndTime:   endTime,
	}
	if err := s.entryRepo.Start(ctx, e); err != nil {
		return nil, fmt.Errorf("start entry: %w", err)
	}
	return e, nil
}

func (s *trackingService) Current(ctx context.Context) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	e, err := s.entryRepo.Current(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("current entry: %w", err)
	}
	return e, nil
}

func (s *trackingService) End(ctx context.Context, id int64, endTime *time.Time) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	end := time.Now()
	if endTime != nil {
		end = *endTime
	}
	existing, err := s.entryRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}
	if end.Before(existing.StartTime) {
		return nil, fmt.Errorf("%w: end time before start time", domain.ErrInvalidInput)
	}
	e, err := s.entryRepo.End(ctx, id, end)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("end entry: %w", err)
	}
	return e, nil
}

func (s *trackingService) Update(ctx context.Context, id int64, params domain.UpdateEntryParams) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if params.Name != nil {
		trimmed := strings.TrimSpace(*params.Name)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: name must not be blank", domain.ErrInvalidInput)
		}
		params.Name = &trimmed
	}
	if params.StartTime != nil || params.EndTime != nil {
		existing, err := s.entryRepo.Get(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, fmt.Errorf("get entry: %w", err)
		}
		start := existing.StartTime
		if params.StartTime != nil {
			start = *params.StartTime
		}
		end := existing.EndTime
		if params.EndTime != nil {
			end = params.EndTime
		}
		if end != nil && end.Before(start) {
			return nil, fmt.Errorf("%w: end time before start time", domain.ErrInvalidInput)
		}
	}
	e, err := s.entryRepo.Update(ctx, id, params)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update entry: %w", err)
	}
	return e, nil
}

func (s *trackingService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.entryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

func (s *trackingService) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	limit := p.PageSize
	if limit < 1 {
		limit = defaultListLimit
	}
	entries, err := s.entryRepo.List(ctx, limit, p.Offset())
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func (s *trackingService) ListByRange(ctx context.Context, from, to time.Time) ([]*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end before range start", domain.ErrInvalidInput)
	}
	entries, err := s.entryRepo.ListByRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list entries by range: %w", err)
	}
	return entries, nil
}

func (s *trackingService) FrequentNames(ctx context.Context, limit int) ([]domain.NameCount, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if limit < 1 {
		limit = defaultFrequentSize
	}
	if limit > maxFrequentSize {
		limit = maxFrequentSize
	}
	counts, err := s.entryRepo.FrequentNames(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("frequent names: %w", err)
	}
	return counts, nil
}

func (s *trackingService) AggregateDay(ctx context.Context, date time.Time) ([]domain.NameDuration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	from, to := domain.DayWindow(date)
	rows, err := s.entryRepo.AggregateByName(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("day aggregation: %w", err)
	}
	return rows, nil
}

func (s *trackingService) AggregateWeek(ctx context.Context, date time.Time) ([]domain.NameDuration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	from, to := domain.WeekWindow(date)
	rows, err := s.entryRepo.AggregateByName(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("week aggregation: %w", err)
	}
	return rows, nil
}

func (s *trackingService) Log(ctx context.Context, p domain.PaginationParams) ([]domain.DayGroup, error) {
	entries, err := s.List(ctx, p)
	if err != nil {
		return nil, err
	}
	return domain.GroupEntriesByDay(entries, time.Now()), nil
}
