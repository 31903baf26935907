// Package client is a Go consumer of the staff scheduler API. It hides the
// envelope variations of the listing endpoints behind normalizing accessors
// so callers always get a flat slice plus a paging block.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/grid"
)

// PageControls returns the page numbers a paginated view should render as
// clickable controls for the given paging block.
func PageControls(p Pagination) []int {
	return grid.PageWindow(p.Page, p.TotalPages, grid.DefaultMaxVisiblePages)
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient swaps the underlying transport, e.g. for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken installs the bearer token used on every subsequent request.
func (c *Client) SetToken(token string) {
	c.token = token
}

type apiError struct {
	Message string
}

func (e *apiError) Error() string {
	return e.Message
}

// do performs a request and decodes the response envelope. A success=false
// envelope becomes an error carrying the server's message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (map[string]any, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if success, ok := doc["success"].(bool); ok && !success {
		msg, _ := doc["message"].(string)
		if msg == "" {
			msg = "request failed"
		}
		return nil, &apiError{Message: msg}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return doc, nil
}

func listQuery(page, limit int, location string) url.Values {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if location != "" {
		query.Set("location", location)
	}
	return query
}

// Login authenticates and installs the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (map[string]any, error) {
	doc, err := c.do(ctx, http.MethodPost, "/auth/login", nil, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	if token, ok := lookup(doc, "data.token"); ok {
		if tokenString, ok := token.(string); ok {
			c.token = tokenString
		}
	}

	user, _ := lookup(doc, "data.user")
	userObj, _ := user.(map[string]any)
	return userObj, nil
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	return err
}

// Shifts lists shifts with the paging block normalized. location is a
// numeric id or "all".
func (c *Client) Shifts(ctx context.Context, page, limit int, location string) ([]any, Pagination, error) {
	doc, err := c.do(ctx, http.MethodGet, "/shifts", listQuery(page, limit, location), nil)
	if err != nil {
		return nil, DefaultPagination(), err
	}

	shifts := ExtractArray(doc, "data.shifts", "data.data.shifts")
	pagination := ExtractPagination(doc, "data.pagination", "data.data.pagination")
	return shifts, pagination, nil
}

// ShiftCalendar fetches the week grid of a month: year, month 1-12 and the
// ordinal week within the month starting from 1.
func (c *Client) ShiftCalendar(ctx context.Context, year, month, week int, location string) (map[string]any, error) {
	query := listQuery(0, 0, location)
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(month))
	query.Set("week", strconv.Itoa(week))

	doc, err := c.do(ctx, http.MethodGet, "/shifts/calendar", query, nil)
	if err != nil {
		return nil, err
	}

	data, _ := lookup(doc, "data")
	dataObj, _ := data.(map[string]any)
	return dataObj, nil
}

func (c *Client) Availability(ctx context.Context, page, limit int, location string) ([]any, Pagination, error) {
	doc, err := c.do(ctx, http.MethodGet, "/availability", listQuery(page, limit, location), nil)
	if err != nil {
		return nil, DefaultPagination(), err
	}

	entries := ExtractArray(doc, "data.availabilities", "data.data.availabilities")
	pagination := ExtractPagination(doc, "data.pagination", "data.data.pagination")
	return entries, pagination, nil
}

func (c *Client) AvailabilityCalendar(ctx context.Context, year, month, week int, location string) (map[string]any, error) {
	query := listQuery(0, 0, location)
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(month))
	query.Set("week", strconv.Itoa(week))

	doc, err := c.do(ctx, http.MethodGet, "/availability/calendar", query, nil)
	if err != nil {
		return nil, err
	}

	data, _ := lookup(doc, "data")
	dataObj, _ := data.(map[string]any)
	return dataObj, nil
}

func (c *Client) Locations(ctx context.Context) ([]any, error) {
	doc, err := c.do(ctx, http.MethodGet, "/location", nil, nil)
	if err != nil {
		return nil, err
	}

	return ExtractArray(doc, "data.locations", "data.data.locations"), nil
}

func (c *Client) Employees(ctx context.Context, page, limit int) ([]any, Pagination, error) {
	doc, err := c.do(ctx, http.MethodGet, "/user/all-profile", listQuery(page, limit, ""), nil)
	if err != nil {
		return nil, DefaultPagination(), err
	}

	users := ExtractArray(doc, "data.users", "data.data.users")
	pagination := ExtractPagination(doc, "data.pagination", "data.data.pagination")
	return users, pagination, nil
}

func (c *Client) Managers(ctx context.Context, page, limit int) ([]any, Pagination, error) {
	doc, err := c.do(ctx, http.MethodGet, "/user/manager-profile", listQuery(page, limit, ""), nil)
	if err != nil {
		return nil, DefaultPagination(), err
	}

	managers := ExtractArray(doc, "data.managers", "data.data.managers")
	pagination := ExtractPagination(doc, "data.pagination", "data.data.pagination")
	return managers, pagination, nil
}

func (c *Client) ShiftRequests(ctx context.Context, page, limit int, location string) ([]any, Pagination, error) {
	doc, err := c.do(ctx, http.MethodGet, "/shift-request", listQuery(page, limit, location), nil)
	if err != nil {
		return nil, DefaultPagination(), err
	}

	requests := ExtractArray(doc, "data.requests", "data.data.requests")
	pagination := ExtractPagination(doc, "data.pagination", "data.data.pagination")
	return requests, pagination, nil
}

func (c *Client) CVs(ctx context.Context, page, limit int) ([]any, Pagination, error) {
	doc, err := c.do(ctx, http.MethodGet, "/cv", listQuery(page, limit, ""), nil)
	if err != nil {
		return nil, DefaultPagination(), err
	}

	cvs := ExtractArray(doc, "data.cvs", "data.data.cvs")
	pagination := ExtractPagination(doc, "data.pagination", "data.data.pagination")
	return cvs, pagination, nil
}

// ChatList returns the chats with messages and the freshly created ones.
func (c *Client) ChatList(ctx context.Context) (active []any, nonActive []any, err error) {
	doc, err := c.do(ctx, http.MethodGet, "/chat/list", nil, nil)
	if err != nil {
		return nil, nil, err
	}

	active = ExtractArray(doc, "data.activeChats", "data.data.activeChats")
	nonActive = ExtractArray(doc, "data.nonActiveChats", "data.data.nonActiveChats")
	return active, nonActive, nil
}

func (c *Client) AssignShift(ctx context.Context, employeeID *int64, date string, shiftTypeID, locationID int64) (map[string]any, error) {
	body := map[string]any{
		"date":      date,
		"shiftType": shiftTypeID,
		"location":  locationID,
	}
	if employeeID != nil {
		body["employee"] = *employeeID
	}

	doc, err := c.do(ctx, http.MethodPost, "/shifts/assign", nil, body)
	if err != nil {
		return nil, err
	}

	shift, _ := lookup(doc, "data.shift")
	shiftObj, _ := shift.(map[string]any)
	return shiftObj, nil
}

func (c *Client) DeleteShift(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, "/shifts/"+strconv.FormatInt(id, 10), nil, nil)
	return err
}
