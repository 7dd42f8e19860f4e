package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		status int
		want   string
	}{
		{
			name:   "token response",
			data:   models.TokenResponse{AccessToken: "jwt", TokenType: models.TokenTypeBearer},
			status: http.StatusCreated,
			want:   `{"access_token":"jwt","token_type":"bearer"}`,
		},
		{
			name:   "post hides timestamps",
			data:   models.Post{ID: 1, Title: "t", Content: "c", CreatedAt: time.Now()},
			status: http.StatusOK,
			want:   `{"id":1,"title":"t","content":"c"}`,
		},
		{
			name:   "empty post list",
			data:   []models.Post{},
			status: http.StatusOK,
			want:   `[]`,
		},
		{
			name:   "nil",
			data:   nil,
			status: http.StatusOK,
			want:   `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.want), n)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestWriteJSON_Unserializable(t *testing.T) {
	rec := httptest.NewRecorder()

	// channels cannot be marshaled
	_, err := WriteJSON(rec, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		want       string
	}{
		{"ipv4 with port", "10.0.0.1:5555", "10.0.0.1"},
		{"ipv6 with port", "[::1]:5555", "::1"},
		{"no port", "10.0.0.2", "10.0.0.2"},
		{"empty", "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			r.Header.Set("X-Forwarded-For", "1.2.3.4")

			assert.Equal(t, tt.want, ClientIP(r))
		})
	}
}
