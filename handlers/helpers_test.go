package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/tournament-standings/services"
)

func TestMapServiceErrorToHTTP(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{services.ErrTeamNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", services.ErrMatchNotFound), http.StatusNotFound},
		{services.ErrGroupFull, http.StatusConflict},
		{services.ErrMatchesAlreadyCreated, http.StatusConflict},
		{fmt.Errorf("%w: %w", services.ErrInvalidScore, errors.New("out of range")), http.StatusUnprocessableEntity},
		{services.ErrInvalidConference, http.StatusBadRequest},
		{services.ErrInvalidMatchFilter, http.StatusBadRequest},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{services.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			mapServiceErrorToHTTP(rec, req, tt.err)

			if rec.Code != tt.want {
				t.Fatalf("expected status %d, got %d", tt.want, rec.Code)
			}
			var body map[string]interface{}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if _, ok := body["error"]; !ok {
				t.Fatalf("expected error envelope, got %s", rec.Body.String())
			}
		})
	}
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"name":"Bears"}`, ""},
		{"empty", ``, "body must not be empty"},
		{"unknown field", `{"nickname":"x"}`, "unknown key"},
		{"bad type", `{"name":1}`, "incorrect JSON type"},
		{"two values", `{"name":"a"}{"name":"b"}`, "single JSON value"},
		{"malformed", `{"name":`, "badly-formed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst struct {
				Name string `json:"name"`
			}
			err := readJSON(httptest.NewRecorder(), req, &dst)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
