package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
)

type testPayload struct {
	Name string `json:"name"`
}

type testError struct {
	Detail string `json:"detail"`
}

func TestClientGetDecodesJSON(t *testing.T) {
	server := httptest.NewServer(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(testPayload{Name: "warehouse"})
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})

	successResp, errResp, status, err := client.Request().
		WithMethod(GET).
		WithPath("/resource").
		WithSuccessResp(&testPayload{}).
		WithErrorResp(&testError{}).
		Execute()
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if status != stdhttp.StatusOK {
		t.Fatalf("expected status 200, got %d", status)
	}
	if errResp != nil {
		t.Fatalf("unexpected error response: %+v", errResp)
	}

	payload := successResp.(*testPayload)
	if payload.Name != "warehouse" {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestClientDecodesErrorResponse(t *testing.T) {
	server := httptest.NewServer(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(stdhttp.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(testError{Detail: "load in progress"})
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})

	_, errResp, status, err := client.Request().
		WithMethod(GET).
		WithPath("/resource").
		WithSuccessResp(&testPayload{}).
		WithErrorResp(&testError{}).
		Execute()
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
	if status != stdhttp.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", status)
	}

	apiError, ok := errResp.(*testError)
	if !ok || apiError.Detail != "load in progress" {
		t.Errorf("unexpected error payload: %+v", errResp)
	}
}

func TestClientDismisses404(t *testing.T) {
	server := httptest.NewServer(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusNotFound)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{Dismiss404: true})

	successResp, errResp, status, err := client.Request().
		WithMethod(GET).
		WithPath("/missing").
		WithSuccessResp(&testPayload{}).
		WithErrorResp(&testError{}).
		Execute()
	if err != nil {
		t.Fatalf("dismissed 404 should not error: %v", err)
	}
	if status != stdhttp.StatusNotFound {
		t.Fatalf("expected status 404, got %d", status)
	}
	if successResp != nil || errResp != nil {
		t.Error("dismissed 404 should return no payloads")
	}
}
