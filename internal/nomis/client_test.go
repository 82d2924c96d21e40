package nomis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eqia_dashboard_backend/platform/logger"
)

type testNomisConfig struct {
	baseURL string
	retries int
}

func (c testNomisConfig) GetNomisBaseURL() string            { return c.baseURL }
func (c testNomisConfig) GetNomisTimeout() time.Duration     { return 5 * time.Second }
func (c testNomisConfig) GetNomisMaxRetries() int            { return c.retries }
func (c testNomisConfig) GetNomisRequestsPerSecond() float64 { return 1000 }

func newTestClient(t *testing.T, handler http.Handler, retries int) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(testNomisConfig{baseURL: srv.URL, retries: retries}, logger.New("development"))
	return client, srv
}

func TestFetchValuesDecodesSeries(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("geography"); got != "641734708" {
			t.Errorf("expected geography=641734708, got %q", got)
		}
		if got := r.URL.Query().Get("measures"); got != "20100,20301" {
			t.Errorf("expected measures=20100,20301, got %q", got)
		}
		w.Write([]byte(`{"value": [100, 10.5, null, 20.5]}`))
	}), 0)

	values, err := client.FetchValues(context.Background(), "NM_2018_1", "641734708", map[string]string{"c2021_age_12a": "0...11"})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(values) != 4 {
		t.Fatalf("expected 4 values, got %d", len(values))
	}
	if values[0] == nil || *values[0] != 100 {
		t.Fatalf("expected first value 100, got %v", values[0])
	}
	if values[2] != nil {
		t.Fatalf("expected third value to be nil, got %v", *values[2])
	}
}

func TestFetchValuesEmptyGeographyIsNoData(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected for empty geography")
	}), 0)

	values, err := client.FetchValues(context.Background(), "NM_2018_1", "", nil)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if values != nil {
		t.Fatalf("expected nil values, got %v", values)
	}
}

func TestFetchValuesRetriesTransientErrors(t *testing.T) {
	attempts := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"value": [1, 2]}`))
	}), 1)

	values, err := client.FetchValues(context.Background(), "NM_2018_1", "641734708", nil)
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
	if len(values) != 2 {
		t.Fatalf("expected 2 values, got %d", len(values))
	}
}

func TestFetchValuesDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
	}), 2)

	if _, err := client.FetchValues(context.Background(), "NM_2018_1", "641734708", nil); err == nil {
		t.Fatalf("expected error for bad request")
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestFetchValuesMissingValueKeyIsNoData(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version": "2.0"}`))
	}), 0)

	values, err := client.FetchValues(context.Background(), "NM_2018_1", "641734708", nil)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if values != nil {
		t.Fatalf("expected nil values for payload without value key")
	}
}
