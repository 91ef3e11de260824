package domain

import (
	"reflect"
	"testing"
)

func TestFilterFullTracks(t *testing.T) {
	tests := []struct {
		name      string
		durations []int
		wantIDs   []string
	}{
		{
			name:      "drops teasers and keeps order",
			durations: []int{15, 45, 200},
			wantIDs:   []string{"t1", "t2"},
		},
		{
			name:      "exactly thirty seconds is excluded",
			durations: []int{30, 31},
			wantIDs:   []string{"t1"},
		},
		{
			name:      "truncates to page size after filtering",
			durations: []int{10, 60, 60, 60, 60, 60, 60, 60, 60},
			wantIDs:   []string{"t1", "t2", "t3", "t4", "t5", "t6"},
		},
		{
			name:      "empty input",
			durations: nil,
			wantIDs:   []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := make([]Track, len(tc.durations))
			for i, d := range tc.durations {
				in[i] = Track{ID: "t" + string(rune('0'+i)), DurationSeconds: d}
			}

			got := FilterFullTracks(in)

			ids := make([]string, 0, len(got))
			for _, tr := range got {
				if tr.DurationSeconds <= MinFullTrackSeconds {
					t.Errorf("track %s has duration %d, want > %d", tr.ID, tr.DurationSeconds, MinFullTrackSeconds)
				}
				ids = append(ids, tr.ID)
			}
			if len(got) > PageSize {
				t.Fatalf("got %d tracks, want at most %d", len(got), PageSize)
			}
			if !reflect.DeepEqual(ids, tc.wantIDs) {
				t.Fatalf("ids = %v, want %v", ids, tc.wantIDs)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate([]int{1, 2, 3}, 2); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("Truncate = %v", got)
	}
	if got := Truncate([]int{1}, 6); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("Truncate = %v", got)
	}
}

func TestRecommendationBatch_Clone(t *testing.T) {
	b := NewRecommendationBatch()
	b.Books = []Book{{ID: "b1", Authors: []string{"A"}}}

	c := b.Clone()
	c.Books[0].Authors[0] = "changed"

	if b.Books[0].Authors[0] != "A" {
		t.Fatal("clone aliases author slice")
	}
}
