package freshservice

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(srv.URL+"/api/v2/tickets", "apikey", ".", 5*time.Second)
}

func TestFetchTicketStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode *int
		wantSync bool
	}{
		{
			name:     "sync complete",
			body:     `{"ticket":{"custom_fields":{"send_to_dxdb_statuscode":200}}}`,
			wantCode: intp(200),
			wantSync: true,
		},
		{
			name:     "sync pending",
			body:     `{"ticket":{"custom_fields":{"send_to_dxdb_statuscode":500}}}`,
			wantCode: intp(500),
			wantSync: false,
		},
		{
			name:     "field null",
			body:     `{"ticket":{"custom_fields":{"send_to_dxdb_statuscode":null}}}`,
			wantCode: nil,
			wantSync: false,
		},
		{
			name:     "field absent",
			body:     `{"ticket":{"custom_fields":{}}}`,
			wantCode: nil,
			wantSync: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("method = %s, want GET", r.Method)
				}
				if r.URL.Path != "/api/v2/tickets/42" {
					t.Errorf("path = %s", r.URL.Path)
				}
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			ticket, err := newTestClient(srv).FetchTicket(context.Background(), "42")
			if err != nil {
				t.Fatalf("FetchTicket: %v", err)
			}
			switch {
			case tt.wantCode == nil && ticket.SendToDXDBStatusCode != nil:
				t.Errorf("status code = %d, want nil", *ticket.SendToDXDBStatusCode)
			case tt.wantCode != nil && ticket.SendToDXDBStatusCode == nil:
				t.Errorf("status code = nil, want %d", *tt.wantCode)
			case tt.wantCode != nil && *ticket.SendToDXDBStatusCode != *tt.wantCode:
				t.Errorf("status code = %d, want %d", *ticket.SendToDXDBStatusCode, *tt.wantCode)
			}
			if ticket.SyncComplete() != tt.wantSync {
				t.Errorf("SyncComplete() = %v, want %v", ticket.SyncComplete(), tt.wantSync)
			}
		})
	}
}

func TestTriggerWorkflowRequest(t *testing.T) {
	var gotAuth, gotQuery, gotPath, gotMethod string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := newTestClient(srv).TriggerWorkflow(context.Background(), "77"); err != nil {
		t.Fatalf("TriggerWorkflow: %v", err)
	}

	if gotMethod != http.MethodPut {
		t.Errorf("method = %s, want PUT", gotMethod)
	}
	if gotPath != "/api/v2/tickets/77/" {
		t.Errorf("path = %s, want /api/v2/tickets/77/", gotPath)
	}
	if gotQuery != "bypass_mandatory=true" {
		t.Errorf("query = %s, want bypass_mandatory=true", gotQuery)
	}
	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("apikey:."))
	if gotAuth != wantAuth {
		t.Errorf("auth header = %q, want %q", gotAuth, wantAuth)
	}

	var payload map[string]map[string]bool
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("unmarshal body %q: %v", gotBody, err)
	}
	if !payload["custom_fields"]["trigger_mc_workflow_to_update_dxdb_via_api"] {
		t.Errorf("body = %s, want workflow trigger field set", gotBody)
	}
}

func TestTriggerWorkflowNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"description":"validation failed"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	err := newTestClient(srv).TriggerWorkflow(context.Background(), "77")
	if err == nil {
		t.Fatal("TriggerWorkflow succeeded, want error")
	}
}

func TestFetchTicketTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	if _, err := newTestClient(srv).FetchTicket(context.Background(), "42"); err == nil {
		t.Fatal("FetchTicket succeeded against a closed server")
	}
}

func intp(v int) *int { return &v }
