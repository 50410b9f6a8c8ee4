package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/healthhub/gym-admin/internal/dashboard/credential"
)

func TestClient_AttachesBearerWhenPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(MePayload{Success: true, User: &MeUser{ID: "u1"}})
	}))
	defer srv.Close()

	creds := &credential.MemStore{}
	_ = creds.Set("tok-123")
	client := New(srv.URL, creds)

	if _, err := client.Me(context.Background()); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_OmitsBearerWhenAbsent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(MePayload{Success: true})
	}))
	defer srv.Close()

	client := New(srv.URL, &credential.MemStore{})

	if _, err := client.Me(context.Background()); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no auth header, got %q", gotAuth)
	}
}

func TestClient_RereadsCredentialPerRequest(t *testing.T) {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(MePayload{Success: true})
	}))
	defer srv.Close()

	creds := &credential.MemStore{}
	client := New(srv.URL, creds)

	if _, err := client.Me(context.Background()); err != nil {
		t.Fatalf("first Me: %v", err)
	}
	_ = creds.Set("tok-later")
	if _, err := client.Me(context.Background()); err != nil {
		t.Fatalf("second Me: %v", err)
	}

	if calls[0] != "" || calls[1] != "Bearer tok-later" {
		t.Fatalf("credential not re-read per request: %v", calls)
	}
}

func TestClient_SurfacesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"forbidden"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, &credential.MemStore{})

	_, err := client.Me(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsStatus(err, http.StatusForbidden) {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.Message != "forbidden" {
		t.Fatalf("body not preserved: %v", err)
	}
}

func TestClient_NoRetryOnFailure(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, &credential.MemStore{})

	if _, err := client.Me(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if attempts != 1 {
		t.Fatalf("expected exactly 1 attempt, got %d", attempts)
	}
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Email != "amy@example.com" {
			t.Fatalf("unexpected email %q", req.Email)
		}
		_ = json.NewEncoder(w).Encode(LoginResponse{
			UserID: "u1", Name: "Amy", Email: req.Email, Phone: "123", Role: "admin", Token: "tok-1",
		})
	}))
	defer srv.Close()

	client := New(srv.URL, &credential.MemStore{})

	resp, err := client.Login(context.Background(), "amy@example.com", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.Token != "tok-1" || resp.UserID != "u1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestClient_ListUsers_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "2" || r.URL.Query().Get("limit") != "10" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(UserList{Success: true})
	}))
	defer srv.Close()

	client := New(srv.URL, &credential.MemStore{})

	if _, err := client.ListUsers(context.Background(), 2, 10); err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
}
