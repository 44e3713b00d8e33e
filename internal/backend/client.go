package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrAlreadyCompleted reports the distinguished duplicate-completion outcome:
// the (schedule, day, session index) slot is already marked done. Callers
// should present it as information, not as a failure.
var ErrAlreadyCompleted = errors.New("session already completed")

// APIError carries a remote failure classified by HTTP status. It is
// surfaced to the caller verbatim; the client never retries.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("api returned status %d", e.Status)
	}
	return fmt.Sprintf("api returned status %d: %s", e.Status, e.Message)
}

// UserMessage renders the failure as a human-readable notice keyed off the
// status classification.
func (e *APIError) UserMessage() string {
	switch {
	case e.Status == http.StatusBadRequest:
		if strings.TrimSpace(e.Message) != "" {
			return "Invalid input: " + e.Message
		}
		return "Invalid input."
	case e.Status == http.StatusPaymentRequired:
		return "AI credits exhausted. Add credits to continue."
	case e.Status == http.StatusTooManyRequests:
		return "Rate limit exceeded. Please try again later."
	case e.Status >= 500:
		return "Service unavailable. Please try again later."
	default:
		return e.Error()
	}
}

// IsInvalidInput reports whether err is a 400 response.
func IsInvalidInput(err error) bool { return hasStatus(err, http.StatusBadRequest) }

// IsQuotaExhausted reports whether err is a 402 response.
func IsQuotaExhausted(err error) bool { return hasStatus(err, http.StatusPaymentRequired) }

// IsRateLimited reports whether err is a 429 response.
func IsRateLimited(err error) bool { return hasStatus(err, http.StatusTooManyRequests) }

// IsServiceFailure reports whether err is a 5xx response.
func IsServiceFailure(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status >= 500
}

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// RecordStore is the persistence boundary: one logical table per entity,
// accessed over HTTP. Implemented by *Client and substitutable in tests.
type RecordStore interface {
	CreateSession(ctx context.Context, session Session) error
	UpdateSession(ctx context.Context, session Session) error

	ActiveSchedule(ctx context.Context) (*Schedule, error)
	AcceptSchedule(ctx context.Context, draft ScheduleDraft) (*Schedule, error)
	UpdateDayPlan(ctx context.Context, scheduleID string, dayIndex int, sessions []PlanSession) error
	DeleteSchedule(ctx context.Context, scheduleID string) error

	Completions(ctx context.Context, scheduleID string) ([]Completion, error)
	MarkSessionComplete(ctx context.Context, completion Completion) (*Completion, error)

	Reminders(ctx context.Context) ([]Reminder, error)
	CreateReminder(ctx context.Context, draft ReminderDraft) (*Reminder, error)
	UpdateReminder(ctx context.Context, id string, draft ReminderDraft) error
	DeleteReminder(ctx context.Context, id string) error

	AppendEmotionLog(ctx context.Context, draft EmotionLogDraft) (*EmotionLog, error)
	EmotionLogs(ctx context.Context, limit int) ([]EmotionLog, error)
}

// Inference is the AI boundary: two stateless request/response operations.
// Implemented by *Client and substitutable by a stub in tests.
type Inference interface {
	ClassifyEmotion(ctx context.Context, text, image string) (*EmotionResult, error)
	GenerateSchedule(ctx context.Context, req ScheduleRequest) (*GeneratedSchedule, error)
}

var (
	_ RecordStore = (*Client)(nil)
	_ Inference   = (*Client)(nil)
)

const (
	defaultUserAgent = "mindsync/0.1"
	requestTimeout   = 15 * time.Second
)

// Client talks to the MindSync cloud API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	apiKey    string
	userAgent string
}

// NewClient builds a Client for the given base URL and bearer key.
func NewClient(baseURL, apiKey string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		apiKey:    apiKey,
		userAgent: defaultUserAgent,
	}, nil
}

// CreateSession stores a new focus session record.
func (c *Client) CreateSession(ctx context.Context, session Session) error {
	return c.do(ctx, http.MethodPost, "/api/sessions", session, nil)
}

// UpdateSession updates an existing focus session by id.
func (c *Client) UpdateSession(ctx context.Context, session Session) error {
	if strings.TrimSpace(session.ID) == "" {
		return fmt.Errorf("session id required")
	}
	return c.do(ctx, http.MethodPatch, "/api/sessions/"+url.PathEscape(session.ID), session, nil)
}

// ActiveSchedule fetches the user's current active schedule, or nil when
// there is none.
func (c *Client) ActiveSchedule(ctx context.Context) (*Schedule, error) {
	var payload Schedule
	err := c.do(ctx, http.MethodGet, "/api/schedules/active", nil, &payload)
	if err != nil {
		if hasStatus(err, http.StatusNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payload, nil
}

// AcceptSchedule stores a new active schedule. Any previously active
// schedule is demoted to completed first, preserving the one-active-schedule
// invariant. The two writes are sequential; the server is expected to hold
// the authoritative constraint.
func (c *Client) AcceptSchedule(ctx context.Context, draft ScheduleDraft) (*Schedule, error) {
	if err := c.do(ctx, http.MethodPost, "/api/schedules/complete-active", nil, nil); err != nil {
		return nil, fmt.Errorf("demote active schedule: %w", err)
	}
	var payload Schedule
	if err := c.do(ctx, http.MethodPost, "/api/schedules", draft, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// UpdateDayPlan replaces the session list for one weekday of a schedule.
func (c *Client) UpdateDayPlan(ctx context.Context, scheduleID string, dayIndex int, sessions []PlanSession) error {
	if strings.TrimSpace(scheduleID) == "" {
		return fmt.Errorf("schedule id required")
	}
	if dayIndex < 0 || dayIndex > 6 {
		return fmt.Errorf("day index %d out of range", dayIndex)
	}
	body := struct {
		DayIndex int           `json:"dayIndex"`
		Sessions []PlanSession `json:"sessions"`
	}{DayIndex: dayIndex, Sessions: sessions}
	return c.do(ctx, http.MethodPatch, "/api/schedules/"+url.PathEscape(scheduleID)+"/plan", body, nil)
}

// DeleteSchedule removes a schedule and its completions.
func (c *Client) DeleteSchedule(ctx context.Context, scheduleID string) error {
	if strings.TrimSpace(scheduleID) == "" {
		return fmt.Errorf("schedule id required")
	}
	return c.do(ctx, http.MethodDelete, "/api/schedules/"+url.PathEscape(scheduleID), nil, nil)
}

// Completions lists completion records for a schedule.
func (c *Client) Completions(ctx context.Context, scheduleID string) ([]Completion, error) {
	if strings.TrimSpace(scheduleID) == "" {
		return nil, fmt.Errorf("schedule id required")
	}
	var payload struct {
		Items []Completion `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/schedules/"+url.PathEscape(scheduleID)+"/completions", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// MarkSessionComplete records one finished schedule slot. A conflict on the
// (schedule, day, index) uniqueness constraint maps to ErrAlreadyCompleted.
func (c *Client) MarkSessionComplete(ctx context.Context, completion Completion) (*Completion, error) {
	var payload Completion
	err := c.do(ctx, http.MethodPost, "/api/completions", completion, &payload)
	if err != nil {
		if hasStatus(err, http.StatusConflict) {
			return nil, ErrAlreadyCompleted
		}
		return nil, err
	}
	return &payload, nil
}

// Reminders lists the user's reminders ordered by time of day.
func (c *Client) Reminders(ctx context.Context) ([]Reminder, error) {
	var payload struct {
		Items []Reminder `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/reminders", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// CreateReminder stores a new reminder.
func (c *Client) CreateReminder(ctx context.Context, draft ReminderDraft) (*Reminder, error) {
	var payload Reminder
	if err := c.do(ctx, http.MethodPost, "/api/reminders", draft, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// UpdateReminder updates a reminder by id.
func (c *Client) UpdateReminder(ctx context.Context, id string, draft ReminderDraft) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("reminder id required")
	}
	return c.do(ctx, http.MethodPatch, "/api/reminders/"+url.PathEscape(id), draft, nil)
}

// DeleteReminder removes a reminder by id.
func (c *Client) DeleteReminder(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("reminder id required")
	}
	return c.do(ctx, http.MethodDelete, "/api/reminders/"+url.PathEscape(id), nil, nil)
}

// AppendEmotionLog appends one mood entry.
func (c *Client) AppendEmotionLog(ctx context.Context, draft EmotionLogDraft) (*EmotionLog, error) {
	var payload EmotionLog
	if err := c.do(ctx, http.MethodPost, "/api/emotions", draft, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// EmotionLogs lists the most recent mood entries, newest first.
func (c *Client) EmotionLogs(ctx context.Context, limit int) ([]EmotionLog, error) {
	values := url.Values{}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	rel := &url.URL{Path: "/api/emotions", RawQuery: values.Encode()}
	var payload struct {
		Items []EmotionLog `json:"items"`
	}
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// ClassifyEmotion submits text and/or an image (base64) for emotion
// detection. At least one input is required; validation happens before any
// request is made.
func (c *Client) ClassifyEmotion(ctx context.Context, text, image string) (*EmotionResult, error) {
	if strings.TrimSpace(text) == "" && strings.TrimSpace(image) == "" {
		return nil, fmt.Errorf("text or image input required")
	}
	body := struct {
		Text  string `json:"text,omitempty"`
		Image string `json:"image,omitempty"`
	}{Text: text, Image: image}
	var payload EmotionResult
	if err := c.do(ctx, http.MethodPost, "/api/inference/classify-emotion", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GenerateSchedule asks the inference service for a 7-day study plan.
func (c *Client) GenerateSchedule(ctx context.Context, req ScheduleRequest) (*GeneratedSchedule, error) {
	if len(req.Subjects) == 0 {
		return nil, fmt.Errorf("at least one subject required")
	}
	var payload GeneratedSchedule
	if err := c.do(ctx, http.MethodPost, "/api/inference/generate-schedule", req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, body, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var remote struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&remote)
		return &APIError{Status: resp.StatusCode, Message: remote.Error}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("api url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
