package googlebooks

import (
	"strings"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
)

// mapBookToDomain converts a raw volume. Volumes without an id or title are
// rejected; everything else is optional.
func mapBookToDomain(v wireVolume) (domain.Book, bool) {
	if v.VolumeInfo == nil {
		return domain.Book{}, false
	}
	id := str(v.ID)
	info := v.VolumeInfo
	title := str(info.Title)
	if id == "" || title == "" {
		return domain.Book{}, false
	}

	authors := make([]string, 0, len(info.Authors))
	for _, a := range info.Authors {
		if a = strings.TrimSpace(a); a != "" {
			authors = append(authors, a)
		}
	}

	var thumb string
	if info.ImageLinks != nil {
		thumb = str(info.ImageLinks.Thumbnail)
		if thumb == "" {
			thumb = str(info.ImageLinks.SmallThumbnail)
		}
	}

	return domain.Book{
		ID:            id,
		Title:         title,
		Authors:       authors,
		Description:   str(info.Description),
		ThumbnailURL:  thumb,
		PublishedDate: str(info.PublishedDate),
	}, true
}

func mapBooksToDomain(items []wireVolume) []domain.Book {
	books := make([]domain.Book, 0, len(items))
	for _, item := range items {
		if b, ok := mapBookToDomain(item); ok {
			books = append(books, b)
		}
	}
	return books
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
