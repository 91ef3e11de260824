package googlebooks_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/ewilliams-labs/moodwell/internal/adapters/googlebooks"
	"github.com/ewilliams-labs/moodwell/internal/core/domain"
	"github.com/ewilliams-labs/moodwell/internal/core/ports"
)

func TestSearchBooks(t *testing.T) {
	tests := []struct {
		name      string
		apiKey    string
		status    int
		body      string
		wantKey   string
		wantErr   error
		wantBooks []domain.Book
	}{
		{
			name:   "maps volume metadata",
			status: http.StatusOK,
			body: `{"totalItems":2,"items":[
				{"id":"b1","volumeInfo":{"title":"Feeling Good","authors":["David Burns"],"description":"CBT classic",
					"publishedDate":"1980","imageLinks":{"thumbnail":"http://img.test/b1.jpg"}}},
				{"id":"b2","volumeInfo":{"title":"Untitled Notes"}}
			]}`,
			wantBooks: []domain.Book{
				{ID: "b1", Title: "Feeling Good", Authors: []string{"David Burns"}, Description: "CBT classic",
					ThumbnailURL: "http://img.test/b1.jpg", PublishedDate: "1980"},
				{ID: "b2", Title: "Untitled Notes", Authors: []string{}},
			},
		},
		{
			name:    "sends api key when configured",
			apiKey:  "k-1",
			status:  http.StatusOK,
			body:    `{"totalItems":0}`,
			wantKey: "k-1",
			// no hits: items omitted
			wantBooks: []domain.Book{},
		},
		{
			name:   "drops volumes without title",
			status: http.StatusOK,
			body: `{"totalItems":2,"items":[
				{"id":"b1","volumeInfo":{}},
				{"id":"b2"},
				{"id":"b3","volumeInfo":{"title":"Kept","imageLinks":{"smallThumbnail":"s.jpg"}}}
			]}`,
			wantBooks: []domain.Book{
				{ID: "b3", Title: "Kept", Authors: []string{}, ThumbnailURL: "s.jpg"},
			},
		},
		{
			name:    "non-success status",
			status:  http.StatusTooManyRequests,
			body:    `{}`,
			wantErr: ports.ErrProviderStatus,
		},
		{
			name:    "unexpected shape",
			status:  http.StatusOK,
			body:    `{"volumes":[]}`,
			wantErr: ports.ErrMalformedPayload,
		},
		{
			name:    "wrong field types",
			status:  http.StatusOK,
			body:    `{"totalItems":"many","items":{}}`,
			wantErr: ports.ErrMalformedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQ, gotMax, gotKey string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/volumes" {
					t.Errorf("path = %q, want /volumes", r.URL.Path)
				}
				gotQ = r.URL.Query().Get("q")
				gotMax = r.URL.Query().Get("maxResults")
				gotKey = r.URL.Query().Get("key")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := googlebooks.NewClient(server.Client(), server.URL, tt.apiKey)
			got, err := client.SearchBooks(context.Background(), "self help depression anxiety")

			if gotQ != "self help depression anxiety" || gotMax != "6" {
				t.Errorf("query params q=%q maxResults=%q", gotQ, gotMax)
			}
			if gotKey != tt.wantKey {
				t.Errorf("key = %q, want %q", gotKey, tt.wantKey)
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.wantBooks) {
				t.Fatalf("books mismatch:\n got  %+v\n want %+v", got, tt.wantBooks)
			}
		})
	}
}
