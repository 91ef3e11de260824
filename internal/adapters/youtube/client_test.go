package youtube_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewilliams-labs/moodwell/internal/adapters/youtube"
	"github.com/ewilliams-labs/moodwell/internal/core/domain"
	"github.com/ewilliams-labs/moodwell/internal/core/ports"
)

func TestSearchVideos(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		header     string
		body       string
		wantErr    error
		wantVideos []domain.Video
	}{
		{
			name:   "maps items and skips non-video results",
			status: http.StatusOK,
			body: `{"items":[
				{"id":{"kind":"youtube#video","videoId":"v1"},"snippet":{"title":"Calm &amp; Clear","channelTitle":"Mind"}},
				{"id":{"kind":"youtube#channel","channelId":"c1"},"snippet":{"title":"A channel"}},
				{"id":{"kind":"youtube#video","videoId":"v2"},"snippet":{"title":"Focus","channelTitle":"Well"}}
			]}`,
			wantVideos: []domain.Video{
				{ID: "v1", Title: "Calm & Clear", ChannelName: "Mind"},
				{ID: "v2", Title: "Focus", ChannelName: "Well"},
			},
		},
		{
			name:    "relay without credential",
			status:  http.StatusInternalServerError,
			header:  youtube.RelayCodeMissingCredential,
			body:    `{"error":"relay is not configured"}`,
			wantErr: ports.ErrMissingCredential,
		},
		{
			name:    "upstream error passed through",
			status:  http.StatusForbidden,
			body:    `{"error":{"code":403,"message":"quotaExceeded"}}`,
			wantErr: ports.ErrProviderStatus,
		},
		{
			name:    "missing items",
			status:  http.StatusOK,
			body:    `{"kind":"youtube#searchListResponse"}`,
			wantErr: ports.ErrMalformedPayload,
		},
		{
			name:    "not json",
			status:  http.StatusOK,
			body:    `<html>oops</html>`,
			wantErr: ports.ErrMalformedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/search", r.URL.Path)
				raw, _ := io.ReadAll(r.Body)
				gotBody = string(raw)
				if tt.header != "" {
					w.Header().Set(youtube.RelayErrorHeader, tt.header)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			got, err := youtube.NewClient(server.Client(), server.URL).SearchVideos(context.Background(), "success motivation inspiration")

			assert.JSONEq(t, `{"query":"success motivation inspiration"}`, gotBody)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVideos, got)
		})
	}
}

func TestSearchVideos_BoundedToPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[
			{"id":{"videoId":"1"},"snippet":{"title":"t"}},{"id":{"videoId":"2"},"snippet":{"title":"t"}},
			{"id":{"videoId":"3"},"snippet":{"title":"t"}},{"id":{"videoId":"4"},"snippet":{"title":"t"}},
			{"id":{"videoId":"5"},"snippet":{"title":"t"}},{"id":{"videoId":"6"},"snippet":{"title":"t"}},
			{"id":{"videoId":"7"},"snippet":{"title":"t"}}
		]}`))
	}))
	defer server.Close()

	got, err := youtube.NewClient(server.Client(), server.URL).SearchVideos(context.Background(), "q")
	require.NoError(t, err)
	assert.Len(t, got, domain.PageSize)
}
