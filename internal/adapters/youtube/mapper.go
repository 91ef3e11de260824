package youtube

import (
	"html"
	"strings"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
)

// mapVideoToDomain rejects items that are not videos or lack a title.
// Snippet text arrives HTML-escaped and is unescaped here.
func mapVideoToDomain(item wireItem) (domain.Video, bool) {
	if item.ID == nil || item.Snippet == nil {
		return domain.Video{}, false
	}
	id := text(item.ID.VideoID)
	title := text(item.Snippet.Title)
	if id == "" || title == "" {
		return domain.Video{}, false
	}
	return domain.Video{
		ID:          id,
		Title:       title,
		ChannelName: text(item.Snippet.ChannelTitle),
	}, true
}

func mapVideosToDomain(items []wireItem) []domain.Video {
	videos := make([]domain.Video, 0, len(items))
	for _, item := range items {
		if v, ok := mapVideoToDomain(item); ok {
			videos = append(videos, v)
		}
	}
	return videos
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return html.UnescapeString(strings.TrimSpace(*s))
}
