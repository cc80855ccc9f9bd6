package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/service"
	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/storage/sqlite"
)

// setupTestServer starts the full route tree over a temp SQLite database.
func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	server := httptest.NewServer(NewRouter(service.NewEventService(store)))
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

// createTestEvent creates an event with members over the API and returns its ID.
func createTestEvent(t *testing.T, baseURL string, members ...string) string {
	t.Helper()
	resp := postJSON(t, baseURL+"/api/events", map[string]string{"name": "Test Event"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create event status = %d, want 201", resp.StatusCode)
	}
	var event struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &event)

	for _, name := range members {
		resp := postJSON(t, fmt.Sprintf("%s/api/events/%s/participants", baseURL, event.ID),
			map[string]string{"name": name})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("add participant status = %d, want 201", resp.StatusCode)
		}
		resp.Body.Close()
	}
	return event.ID
}

func TestEventLifecycle(t *testing.T) {
	server := setupTestServer(t)
	eventID := createTestEvent(t, server.URL, "Alice", "Bob")

	resp, err := http.Get(server.URL + "/api/events/" + eventID)
	if err != nil {
		t.Fatalf("GET event failed: %v", err)
	}
	var event struct {
		Name         string `json:"name"`
		Participants []struct {
			Name string `json:"name"`
		} `json:"participants"`
	}
	decodeBody(t, resp, &event)
	if event.Name != "Test Event" || len(event.Participants) != 2 {
		t.Errorf("event = %+v, want Test Event with 2 participants", event)
	}

	req, _ := http.NewRequest(http.MethodDelete, server.URL+"/api/events/"+eventID, nil)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE failed: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", delResp.StatusCode)
	}

	getResp, err := http.Get(server.URL + "/api/events/" + eventID)
	if err != nil {
		t.Fatalf("GET after delete failed: %v", err)
	}
	getResp.Body.Close()
	if getResp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", getResp.StatusCode)
	}
}

func TestBalancesAndSettlementsEndpoints(t *testing.T) {
	server := setupTestServer(t)
	eventID := createTestEvent(t, server.URL, "Alice", "Bob", "Charlie")
	base := fmt.Sprintf("%s/api/events/%s", server.URL, eventID)

	for _, expense := range []map[string]interface{}{
		{"description": "Lunch", "amount": 30, "payer": "Alice", "participants": []string{"Alice", "Bob", "Charlie"}},
		{"description": "Taxi", "amount": 60, "payer": "Bob", "participants": []string{"Bob", "Charlie"}},
	} {
		resp := postJSON(t, base+"/expenses", expense)
		if resp.StatusCode != http.StatusCreated {
			body, _ := io.ReadAll(resp.Body)
			t.Fatalf("add expense status = %d, body %s", resp.StatusCode, body)
		}
		resp.Body.Close()
	}

	resp, err := http.Get(base + "/balances")
	if err != nil {
		t.Fatalf("GET balances failed: %v", err)
	}
	var balances []struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
	}
	decodeBody(t, resp, &balances)
	if len(balances) != 3 {
		t.Fatalf("got %d balance rows, want 3", len(balances))
	}
	if balances[0].Name != "Alice" || balances[0].Amount != 20 {
		t.Errorf("top balance = %+v, want Alice 20", balances[0])
	}
	if balances[2].Name != "Charlie" || balances[2].Amount != -30 {
		t.Errorf("bottom balance = %+v, want Charlie -30", balances[2])
	}

	resp, err = http.Get(base + "/settlements")
	if err != nil {
		t.Fatalf("GET settlements failed: %v", err)
	}
	var settlements []struct {
		Debtor   string  `json:"debtor"`
		Creditor string  `json:"creditor"`
		Amount   float64 `json:"amount"`
	}
	decodeBody(t, resp, &settlements)
	if len(settlements) != 2 {
		t.Fatalf("got %d settlements, want 2: %v", len(settlements), settlements)
	}
	if settlements[0].Debtor != "Charlie" || settlements[0].Creditor != "Alice" || settlements[0].Amount != 20 {
		t.Errorf("first settlement = %+v, want Charlie->Alice 20", settlements[0])
	}
}

func TestAddExpense_ValidationStatuses(t *testing.T) {
	server := setupTestServer(t)
	eventID := createTestEvent(t, server.URL, "Alice", "Bob")
	url := fmt.Sprintf("%s/api/events/%s/expenses", server.URL, eventID)

	tests := []struct {
		name       string
		expense    map[string]interface{}
		wantStatus int
	}{
		{
			name:       "zero amount",
			expense:    map[string]interface{}{"amount": 0, "payer": "Alice", "participants": []string{"Alice"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no participants",
			expense:    map[string]interface{}{"amount": 10, "payer": "Alice", "participants": []string{}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "share mismatch",
			expense: map[string]interface{}{
				"amount": 10, "payer": "Alice",
				"participants": []string{"Alice", "Bob"},
				"shares":       map[string]float64{"Alice": 1, "Bob": 1},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown payer",
			expense:    map[string]interface{}{"amount": 10, "payer": "Mallory", "participants": []string{"Alice"}},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, url, tt.expense)
			resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestDuplicateParticipantConflict(t *testing.T) {
	server := setupTestServer(t)
	eventID := createTestEvent(t, server.URL, "Alice")

	resp := postJSON(t, fmt.Sprintf("%s/api/events/%s/participants", server.URL, eventID),
		map[string]string{"name": "Alice"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate participant status = %d, want 409", resp.StatusCode)
	}
}

func TestSettlementsExportCSV(t *testing.T) {
	server := setupTestServer(t)
	eventID := createTestEvent(t, server.URL, "Alice", "Bob")
	base := fmt.Sprintf("%s/api/events/%s", server.URL, eventID)

	resp := postJSON(t, base+"/expenses", map[string]interface{}{
		"description": "Dinner", "amount": 50, "payer": "Alice",
		"participants": []string{"Alice", "Bob"},
	})
	resp.Body.Close()

	csvResp, err := http.Get(base + "/settlements/export")
	if err != nil {
		t.Fatalf("GET export failed: %v", err)
	}
	defer csvResp.Body.Close()

	if ct := csvResp.Header.Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	if cd := csvResp.Header.Get("Content-Disposition"); !strings.Contains(cd, "settlements.csv") {
		t.Errorf("Content-Disposition = %q, want a settlements.csv attachment", cd)
	}

	body, err := io.ReadAll(csvResp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d CSV lines, want header + 1 settlement: %q", len(lines), body)
	}
	if lines[0] != "debtor,creditor,amount" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Bob,Alice,25.00" {
		t.Errorf("settlement row = %q, want Bob,Alice,25.00", lines[1])
	}
}

func TestExportAllExpenses(t *testing.T) {
	server := setupTestServer(t)
	eventID := createTestEvent(t, server.URL, "Alice", "Bob")
	resp := postJSON(t, fmt.Sprintf("%s/api/events/%s/expenses", server.URL, eventID), map[string]interface{}{
		"description": "Groceries", "amount": 12.34, "payer": "Alice",
		"participants": []string{"Alice", "Bob"},
	})
	resp.Body.Close()

	csvResp, err := http.Get(server.URL + "/api/export/expenses")
	if err != nil {
		t.Fatalf("GET export failed: %v", err)
	}
	defer csvResp.Body.Close()

	body, err := io.ReadAll(csvResp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if !strings.Contains(string(body), "Groceries") {
		t.Errorf("export missing expense row: %q", body)
	}
	if !strings.Contains(string(body), "Alice;Bob") {
		t.Errorf("export missing joined participants: %q", body)
	}
}

func TestHealth(t *testing.T) {
	server := setupTestServer(t)
	resp, err := http.Get(server.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health status = %d, want 200", resp.StatusCode)
	}
}
