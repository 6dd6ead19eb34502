package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/backoffice/v1.0/closings/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var params SearchClosingsParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "2025-10-01", params.StartDate)

		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"shiftId": 7, "date": "2025-10-01", "status": "closed", "handoverDisplay": "Rp 3.200,00"},
			},
			"pagination": map[string]any{"total": 1},
		})
	})

	mux.HandleFunc("POST /api/backoffice/v1.0/shifts/7/wizard", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"sessionId": "abc", "shiftId": 7, "stage": "operational_audit",
			},
		})
	})

	mux.HandleFunc("GET /api/backoffice/v1.0/wizard/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"message": "wizard session not found"})
	})

	return httptest.NewServer(mux)
}

func TestClosingSearch(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client := NewKasiraClient(server.URL, "test-token")

	rows, err := client.Closings.Search(SearchClosingsParams{
		StartDate: "2025-10-01",
		EndDate:   "2025-10-07",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint(7), rows[0].ShiftID)
	assert.Equal(t, "Rp 3.200,00", rows[0].HandoverDisplay)
}

func TestWizardStart(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client := NewKasiraClient(server.URL, "test-token")

	state, err := client.Wizard.Start(7)
	require.NoError(t, err)
	assert.Equal(t, "abc", state.SessionID)
	assert.Equal(t, uint(7), state.ShiftID)
}

func TestWizardGetUnknownSession(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client := NewKasiraClient(server.URL, "test-token")

	_, err := client.Wizard.Get("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
