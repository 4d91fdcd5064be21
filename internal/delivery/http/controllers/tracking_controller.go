package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"timeledger/internal/delivery/http/helpers"
	"timeledger/internal/domain"
)

// StartEntryRequest is the request body for POST /api/v1/entries. A quick
// start sends only name; a detailed entry may set start_time plus either
// end_time or duration_minutes.
type StartEntryRequest struct {
	Name            string     `json:"name"`
	StartTime       *time.Time `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DurationMinutes *int64     `json:"duration_minutes"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (r StartEntryRequest) Validate() []string {
	var errs []string
	if r.Name == "" {
		errs = append(errs, "name is required")
	}
	if r.EndTime != nil && r.DurationMinutes != nil {
		errs = append(errs, "end_time and duration_minutes are mutually exclusive")
	}
	if r.DurationMinutes != nil && *r.DurationMinutes < 0 {
		errs = append(errs, "duration_minutes must not be negative")
	}
	return errs
}

// StopEntryRequest is the optional request body for POST /api/v1/entries/{entryID}/stop.
// An absent body or absent end_time stops the entry at the current time.
type StopEntryRequest struct {
	EndTime *time.Time `json:"end_time"`
}

// UpdateEntryRequest is the request body for PATCH /api/v1/entries/{entryID}.
// Absent fields are left unchanged.
type UpdateEntryRequest struct {
	Name      *string    `json:"name"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

// EntrySuccessResponse is the success envelope carrying a single entry.
type EntrySuccessResponse struct {
	Data  *domain.Entry     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EntriesSuccessResponse is the success envelope carrying a list of entries.
type EntriesSuccessResponse struct {
	Data  []*domain.Entry   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// LogSuccessResponse is the success envelope for the day-grouped entry log.
type LogSuccessResponse struct {
	Data  []domain.DayGroup `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// NameCountsSuccessResponse is the success envelope for the frequent-names ranking.
type NameCountsSuccessResponse struct {
	Data  []domain.NameCount `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// NameDurationsSuccessResponse is the success envelope for day/week aggregations.
type NameDurationsSuccessResponse struct {
	Data  []domain.NameDuration `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

type TrackingController struct {
	Logger  *slog.Logger
	Service domain.TrackingService
}

func NewTrackingController(logger *slog.Logger, svc domain.TrackingService) *TrackingController {
	return &TrackingController{
		Logger:  logger,
		Service: svc,
	}
}

// respondError maps service errors onto the API error taxonomy. Store errors
// are surfaced verbatim, once, with a log line; nothing is retried.
func (c *TrackingController) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "entry not found")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// entryID parses the entryID path value. On failure it writes a 400 and
// returns false.
func entryID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("entryID"), 10, 64)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid entry id")
		return 0, false
	}
	return id, true
}

// dateParam parses an optional date=YYYY-MM-DD query parameter in the
// server's local zone, defaulting to today. The second return is false when
// the parameter is present but malformed (a 400 has been written).
func dateParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	s := r.URL.Query().Get("date")
	if s == "" {
		return time.Now(), true
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "date must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return d, true
}

// Start godoc
// @Summary Start or record an entry
// @Description Starts a new activity. Any running entry is closed at the new entry's start time first. Supplying end_time (or duration_minutes) records a finished entry retroactively.
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body StartEntryRequest true "Entry data"
// @Success 201 {object} controllers.EntrySuccessResponse "data contains the created entry"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/v1/entries [post]
func (c *TrackingController) Start(w http.ResponseWriter, r *http.Request) {
	var req StartEntryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	end := req.EndTime
	if req.DurationMinutes != nil {
		if req.StartTime == nil {
			now := time.Now()
			req.StartTime = &now
		}
		e := req.StartTime.Add(time.Duration(*req.DurationMinutes) * time.Minute)
		end = &e
	}
	entry, err := c.Service.Start(r.Context(), req.Name, req.StartTime, end)
	if err != nil {
		c.respondError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, entry)
}

// Current godoc
// @Summary Get the running entry
// @Description Returns the currently running entry. 404 when nothing is running.
// @Tags entries
// @Produce json
// @Success 200 {object} controllers.EntrySuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/v1/entries/current [get]
func (c *TrackingController) Current(w http.ResponseWriter, r *http.Request) {
	entry, err := c.Service.Current(r.Context())
	if err != nil {
		c.respondError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entry)
}

// List godoc
// @Summary List entries
// @Description Paginated list of all entries, most recently started first.
// @Tags entries
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 50, max 200)"
// @Success 200 {object} controllers.EntriesSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/v1/entries [get]
func (c *TrackingController) List(w http.ResponseWriter, r *http.Request) {
	entries, err := c.Service.List(r.Context(), helpers.ParsePagination(r))
	if err != nil {
		c.respondError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entries)
}

// Log godoc
// @Summary Day-grouped entry log
// @Description Entries grouped by calendar day, newest day first, with Today/Yesterday/weekday labels.
// @Tags entries
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 50, max 200)"
// @Success 200 {object} controllers.LogSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/v1/entries/log [get]
func (c *TrackingController) Log(w http.ResponseWriter, r *http.Request) {
	groups, err := c.Service.Log(r.Context(), helpers.ParsePagination(r))
	if err != nil {
		c.respondError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, groups)
}

// Range godoc
// @Summary List entries by start-time range
// @Description Entries whose start time falls in [from, to] inclusive, most recent first. Bounds are RFC 3339 timestamps.
// @Tags entries
// @Produce json
// @Param from query string true "Range start (RFC 3339)"
// @Param to query string true "Range end (RFC 3339)"
// @Success 200 {object} controllers.EntriesSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/v1/entries/range [get]
func (c *TrackingController) Range(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse(time.RFC3339, r.URL.Query().Get("from"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "from must be RFC 3339")
		return
	}
	to, err := time.Parse(time.RFC3339, r.URL.Query().Get("to"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "to must be RFC 3339")
		return
	}
	entries, err := c.Service.ListByRange(r.Context(), from, to)
	if err != nil {
		c.respondError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entries)
}

// Stop godoc
// @Summary Stop an entry
// @Description Sets the entry's end time. The body is optional; without it the entry is stopped now.
// @Tags entries
// @Accept json
// @Produce json
// @Param entryID path int true "Entry ID"
// @Param body body StopEntryRequest false "Optional explicit end time"
// @Success 200 {object} controllers.EntrySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/v1/entries/{entryID}/stop [post]
func (c *TrackingController) Stop(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}
	var req StopEntryRequest
	if !helpers.DecodeOptional(w, r, &req) {
		return
	}
	entry, err := c.Service.End(r.Context(), id, req.EndTime)
	if err != nil {
		c.respondError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entry)
}

// Update godoc
// @Summary Update an entry
// @Description Partial update of name, start time, and end time. Absent fields are unchanged.
// @Tags entries
// @Accept json
// @Produce json
// @Param entryID path int true "Entry ID"
// @Param body body UpdateEntryRequest true "Fields to change"
// @Success 200 {object} controllers.EntrySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/v1/entries/{entryID} [patch]
func (c *TrackingController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}
	var req UpdateEntryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	entry, err := c.Service.Update(r.Context(), id, domain.UpdateEntryParams{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		c.respondError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entry)
}

// Delete godoc
// @Summary Delete an entry
// @Description Removes the entry. Deleting a missing entry succeeds.
// @Tags entries
// @Param entryID path int true "Entry ID"
// @Success 204 "no content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/v1/entries/{entryID} [delete]
func (c *TrackingController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		c.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Frequent godoc
// @Summary Frequent entry names
// @Description Entry names ranked by historical occurrence count, for one-tap restarts.
// @Tags stats
// @Produce json
// @Param limit query int false "Max rows (default 10, max 100)"
// @Success 200 {object} controllers.NameCountsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/v1/stats/frequent [get]
func (c *TrackingController) Frequent(w http.ResponseWriter, r *http.Request) {
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = v
	}
	counts, err := c.Service.FrequentNames(r.Context(), limit)
	if err != nil {
		c.respondError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, counts)
}

// Day godoc
// @Summary Day aggregation
// @Description Minutes tracked per name over the given local calendar day (default today). Running entries count up to now.
// @Tags stats
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD, default today)"
// @Success 200 {object} controllers.NameDurationsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/v1/stats/day [get]
func (c *TrackingController) Day(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}
	rows, err := c.Service.AggregateDay(r.Context(), date)
	if err != nil {
		c.respondError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rows)
}

// Week godoc
// @Summary Week aggregation
// @Description Minutes tracked per name over the Monday-to-Sunday week containing the given date (default today).
// @Tags stats
// @Produce json
// @Param date query string false "Any day of the week (YYYY-MM-DD, default today)"
// @Success 200 {object} controllers.NameDurationsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/v1/stats/week [get]
func (c *TrackingController) Week(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}
	rows, err := c.Service.AggregateWeek(r.Context(), date)
	if err != nil {
		c.respondError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rows)
}
