package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"timeledger/internal/delivery/http/helpers"
	"timeledger/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeTrackingService implements domain.TrackingService for handler tests.
type fakeTrackingService struct {
	err error // returned by every method when set

	entry   *domain.Entry
	entries []*domain.Entry
	groups  []domain.DayGroup
	counts  []domain.NameCount
	rows    []domain.NameDuration

	lastStartName  string
	lastStartStart *time.Time
	lastStartEnd   *time.Time
	lastEndID      int64
	lastEndTime    *time.Time
	lastUpdateID   int64
	lastUpdate     domain.UpdateEntryParams
	lastDeleteID   int64
	lastLimit      int
	lastRangeFrom  time.Time
	lastRangeTo    time.Time
	lastAggDate    time.Time
}

func (f *fakeTrackingService) Start(ctx context.Context, name string, startTime, endTime *time.Time) (*domain.Entry, error) {
	f.lastStartName = name
	f.lastStartStart = startTime
	f.lastStartEnd = endTime
	return f.entry, f.err
}

func (f *fakeTrackingService) Current(ctx context.Context) (*domain.Entry, error) {
	return f.entry, f.err
}

func (f *fakeTrackingService) End(ctx context.Context, id int64, endTime *time.Time) (*domain.Entry, error) {
	f.lastEndID = id
	f.lastEndTime = endTime
	return f.entry, f.err
}

func (f *fakeTrackingService) Update(ctx context.Context, id int64, params domain.UpdateEntryParams) (*domain.Entry, error) {
	f.lastUpdateID = id
	f.lastUpdate = params
	return f.entry, f.err
}

func (f *fakeTrackingService) Delete(ctx context.Context, id int64) error {
	f.lastDeleteID = id
	return f.err
}

func (f *fakeTrackingService) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Entry, error) {
	return f.entries, f.err
}

func (f *fakeTrackingService) ListByRange(ctx context.Context, from, to time.Time) ([]*domain.Entry, error) {
	f.lastRangeFrom = from
	f.lastRangeTo = to
	return f.entries, f.err
}

func (f *fakeTrackingService) FrequentNames(ctx context.Context, limit int) ([]domain.NameCount, error) {
	f.lastLimit = limit
	return f.counts, f.err
}

func (f *fakeTrackingService) AggregateDay(ctx context.Context, date time.Time) ([]domain.NameDuration, error) {
	f.lastAggDate = date
	return f.rows, f.err
}

func (f *fakeTrackingService) AggregateWeek(ctx context.Context, date time.Time) ([]domain.NameDuration, error) {
	f.lastAggDate = date
	return f.rows, f.err
}

func (f *fakeTrackingService) Log(ctx context.Context, p domain.PaginationParams) ([]domain.DayGroup, error) {
	return f.groups, f.err
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(body.Bytes(), &out))
	return out
}

func TestTrackingController_Start(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("quick start", func(t *testing.T) {
		svc := &fakeTrackingService{entry: &domain.Entry{ID: 1, Name: "Focus", StartTime: start}}
		c := NewTrackingController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/entries", strings.NewReader(`{"name":"Focus"}`))
		rec := httptest.NewRecorder()
		c.Start(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Focus", svc.lastStartName)
		assert.Nil(t, svc.lastStartStart)
		assert.Nil(t, svc.lastStartEnd)
	})

	t.Run("missing name", func(t *testing.T) {
		c := NewTrackingController(testLogger, &fakeTrackingService{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/entries", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		c.Start(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec.Body)
		errObj := env["error"].(map[string]any)
		assert.Equal(t, "bad_request", errObj["code"])
	})

	t.Run("duration becomes end time", func(t *testing.T) {
		svc := &fakeTrackingService{entry: &domain.Entry{ID: 2, Name: "Focus", StartTime: start}}
		c := NewTrackingController(testLogger, svc)

		body := `{"name":"Focus","start_time":"2025-03-10T09:00:00Z","duration_minutes":90}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/entries", strings.NewReader(body))
		rec := httptest.NewRecorder()
		c.Start(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, svc.lastStartEnd)
		assert.Equal(t, start.Add(90*time.Minute), *svc.lastStartEnd)
	})

	t.Run("duration and end time conflict", func(t *testing.T) {
		c := NewTrackingController(testLogger, &fakeTrackingService{})

		body := `{"name":"Focus","end_time":"2025-03-10T10:00:00Z","duration_minutes":90}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/entries", strings.NewReader(body))
		rec := httptest.NewRecorder()
		c.Start(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation error from service", func(t *testing.T) {
		svc := &fakeTrackingService{err: domain.ErrInvalidInput}
		c := NewTrackingController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/entries", strings.NewReader(`{"name":"x"}`))
		rec := httptest.NewRecorder()
		c.Start(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTrackingController_Current(t *testing.T) {
	t.Run("running entry", func(t *testing.T) {
		svc := &fakeTrackingService{entry: &domain.Entry{ID: 3, Name: "Focus"}}
		c := NewTrackingController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/entries/current", nil)
		rec := httptest.NewRecorder()
		c.Current(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("nothing running", func(t *testing.T) {
		svc := &fakeTrackingService{err: domain.ErrNotFound}
		c := NewTrackingController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/entries/current", nil)
		rec := httptest.NewRecorder()
		c.Current(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec.Body)
		errObj := env["error"].(map[string]any)
		assert.Equal(t, "not_found", errObj["code"])
	})
}

func TestTrackingController_Stop(t *testing.T) {
	end := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	t.Run("empty body stops now", func(t *testing.T) {
		svc := &fakeTrackingService{entry: &domain.Entry{ID: 5}}
		c := NewTrackingController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/entries/5/stop", nil)
		req.SetPathValue("entryID", "5")
		rec := httptest.NewRecorder()
		c.Stop(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(5), svc.lastEndID)
		assert.Nil(t, svc.lastEndTime)
	})

	t.Run("explicit end time", func(t *testing.T) {
		svc := &fakeTrackingService{entry: &domain.Entry{ID: 5}}
		c := NewTrackingController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/entries/5/stop",
			strings.NewReader(`{"end_time":"2025-03-10T17:00:00Z"}`))
		req.SetPathValue("entryID", "5")
		rec := httptest.NewRecorder()
		c.Stop(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, svc.lastEndTime)
		assert.True(t, end.Equal(*svc.lastEndTime))
	})

	t.Run("bad id", func(t *testing.T) {
		c := NewTrackingController(testLogger, &fakeTrackingService{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/entries/abc/stop", nil)
		req.SetPathValue("entryID", "abc")
		rec := httptest.NewRecorder()
		c.Stop(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTrackingController_Update(t *testing.T) {
	svc := &fakeTrackingService{entry: &domain.Entry{ID: 7, Name: "Deep Work"}}
	c := NewTrackingController(testLogger, svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/entries/7",
		strings.NewReader(`{"name":"Deep Work"}`))
	req.SetPathValue("entryID", "7")
	rec := httptest.NewRecorder()
	c.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.lastUpdateID)
	require.NotNil(t, svc.lastUpdate.Name)
	assert.Equal(t, "Deep Work", *svc.lastUpdate.Name)
	assert.Nil(t, svc.lastUpdate.StartTime)
}

func TestTrackingController_Delete(t *testing.T) {
	svc := &fakeTrackingService{}
	c := NewTrackingController(testLogger, svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/entries/9", nil)
	req.SetPathValue("entryID", "9")
	rec := httptest.NewRecorder()
	c.Delete(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(9), svc.lastDeleteID)
	assert.Empty(t, rec.Body.Bytes())
}

func TestTrackingController_Range(t *testing.T) {
	t.Run("missing bounds", func(t *testing.T) {
		c := NewTrackingController(testLogger, &fakeTrackingService{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/entries/range", nil)
		rec := httptest.NewRecorder()
		c.Range(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("forwards parsed bounds", func(t *testing.T) {
		svc := &fakeTrackingService{entries: []*domain.Entry{}}
		c := NewTrackingController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/entries/range?from=2025-03-10T00:00:00Z&to=2025-03-11T00:00:00Z", nil)
		rec := httptest.NewRecorder()
		c.Range(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), svc.lastRangeFrom.UTC())
	})
}

func TestTrackingController_Frequent(t *testing.T) {
	t.Run("explicit limit forwarded", func(t *testing.T) {
		svc := &fakeTrackingService{counts: []domain.NameCount{{Name: "Development Work", Count: 3}}}
		c := NewTrackingController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/frequent?limit=1", nil)
		rec := httptest.NewRecorder()
		c.Frequent(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, svc.lastLimit)
		assert.Contains(t, rec.Body.String(), "Development Work")
	})

	t.Run("non-numeric limit rejected", func(t *testing.T) {
		c := NewTrackingController(testLogger, &fakeTrackingService{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/frequent?limit=abc", nil)
		rec := httptest.NewRecorder()
		c.Frequent(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), helpers.ErrCodeBadRequest)
	})

	t.Run("negative limit rejected", func(t *testing.T) {
		c := NewTrackingController(testLogger, &fakeTrackingService{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/frequent?limit=-5", nil)
		rec := httptest.NewRecorder()
		c.Frequent(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTrackingController_DayAndWeek(t *testing.T) {
	t.Run("bad date", func(t *testing.T) {
		c := NewTrackingController(testLogger, &fakeTrackingService{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/day?date=March+10", nil)
		rec := httptest.NewRecorder()
		c.Day(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("explicit date forwarded", func(t *testing.T) {
		svc := &fakeTrackingService{rows: []domain.NameDuration{}}
		c := NewTrackingController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/week?date=2025-03-12", nil)
		rec := httptest.NewRecorder()
		c.Week(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		y, m, d := svc.lastAggDate.Date()
		assert.Equal(t, 2025, y)
		assert.Equal(t, time.March, m)
		assert.Equal(t, 12, d)
	})

	t.Run("store error surfaced", func(t *testing.T) {
		svc := &fakeTrackingService{err: errors.New("connection refused")}
		c := NewTrackingController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/day", nil)
		rec := httptest.NewRecorder()
		c.Day(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "connection refused")
	})
}
