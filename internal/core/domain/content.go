package domain

// Video is a video or podcast clip.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ChannelName string `json:"channelName"`
}

// Book is a book volume. Optional fields are empty strings when the
// provider did not supply them.
type Book struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Description   string   `json:"description,omitempty"`
	ThumbnailURL  string   `json:"thumbnailUrl,omitempty"`
	PublishedDate string   `json:"publishedDate,omitempty"`
}

// Truncate returns at most n leading elements of items.
func Truncate[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
