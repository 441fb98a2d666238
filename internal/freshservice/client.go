// Package freshservice is a minimal client for the Freshservice tickets
// REST API, covering the two calls the batch updater needs.
package freshservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client issues authenticated requests against the tickets endpoint of a
// Freshservice instance. One client is shared across a whole run.
type Client struct {
	BaseURL  string
	Username string
	Password string

	httpClient *http.Client
}

// NewClient builds a client bound to baseURL with static basic-auth
// credentials. Freshservice expects the API key as username and a
// placeholder password.
func NewClient(baseURL, username, password string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Username:   username,
		Password:   password,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchTicket retrieves a ticket by ID. The returned Ticket carries the
// send_to_dxdb_statuscode custom field, nil if absent.
func (c *Client) FetchTicket(ctx context.Context, id string) (*Ticket, error) {
	url := fmt.Sprintf("%s/%s", c.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var resp ticketResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse ticket %s response: %w", id, err)
	}
	return &Ticket{
		ID:                   id,
		SendToDXDBStatusCode: resp.Ticket.CustomFields.SendToDXDBStatusCode,
	}, nil
}

// TriggerWorkflow sets the custom field that kicks off the MC workflow for
// a ticket. bypass_mandatory skips mandatory-field validation so tickets in
// any state can be updated.
func (c *Client) TriggerWorkflow(ctx context.Context, id string) error {
	var payload updatePayload
	payload.CustomFields.TriggerMCWorkflow = true
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal update payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/?bypass_mandatory=true", c.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}

// do runs a request with auth applied and returns the response body.
// Any transport failure or non-2xx status is an error carrying the status
// and body.
func (c *Client) do(req *http.Request) ([]byte, error) {
	req.SetBasicAuth(c.Username, c.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", req.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", req.URL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %s returned %d: %s",
			req.Method, req.URL, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
