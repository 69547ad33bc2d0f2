package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// CalendarEventData is one school calendar record as served by the feed.
// Omitted and null optional fields both decode to the zero value and are
// treated as absent.
type CalendarEventData struct {
	EventName     string     `json:"eventName"`
	StartDateTime time.Time  `json:"startDateTime"`
	EndDateTime   *time.Time `json:"endDateTime,omitempty"`
	Location      string     `json:"location,omitempty"`
}

// AthleticsEventData is one athletics calendar record (game or practice).
// IsHome, Opponent and Result are only populated for games.
type AthleticsEventData struct {
	Team          string    `json:"team"`
	StartDateTime time.Time `json:"startDateTime"`
	IsHome        *bool     `json:"isHome,omitempty"`
	Opponent      string    `json:"opponent,omitempty"`
	Location      string    `json:"location,omitempty"`
	Result        string    `json:"result,omitempty"`
	Status        string    `json:"status,omitempty"`
}

// AthleticsCalendarData is the /athleticsCalendar response body.
type AthleticsCalendarData struct {
	Games     []AthleticsEventData `json:"games"`
	Practices []AthleticsEventData `json:"practices"`
}

// TeamsData is the /athleticsTeams response body: season name to team names.
type TeamsData map[string][]string

// Client fetches calendar documents from the remote calendar server.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a feed client for the configured calendar server.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

// SchoolCalendar fetches /schoolCalendar. The raw body is returned alongside
// the decoded records so callers can archive the exact payload.
func (c *Client) SchoolCalendar(ctx context.Context) ([]CalendarEventData, []byte, error) {
	var events []CalendarEventData
	raw, err := c.getJSON(ctx, "/schoolCalendar", &events)
	if err != nil {
		return nil, raw, err
	}
	return events, raw, nil
}

// AthleticsCalendar fetches /athleticsCalendar.
func (c *Client) AthleticsCalendar(ctx context.Context) (*AthleticsCalendarData, []byte, error) {
	var cal AthleticsCalendarData
	raw, err := c.getJSON(ctx, "/athleticsCalendar", &cal)
	if err != nil {
		return nil, raw, err
	}
	return &cal, raw, nil
}

// AthleticsTeams fetches /athleticsTeams.
func (c *Client) AthleticsTeams(ctx context.Context) (TeamsData, []byte, error) {
	var teams TeamsData
	raw, err := c.getJSON(ctx, "/athleticsTeams", &teams)
	if err != nil {
		return nil, raw, err
	}
	return teams, raw, nil
}

// getJSON performs a blocking GET and decodes the response body into out.
// Transport failures and non-2xx statuses surface as *NetworkError, malformed
// bodies as *ParseError. There is no retry; a failure aborts the calendar's
// run and the next scheduled run is the retry mechanism.
func (c *Client) getJSON(ctx context.Context, path string, out any) ([]byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return body, &NetworkError{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return body, &ParseError{URL: url, Err: err}
	}

	return body, nil
}
