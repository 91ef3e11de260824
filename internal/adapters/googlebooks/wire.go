package googlebooks

type volumesResponse struct {
	TotalItems *int          `json:"totalItems"`
	Items      *[]wireVolume `json:"items"`
}

type wireVolume struct {
	ID         *string         `json:"id"`
	VolumeInfo *wireVolumeInfo `json:"volumeInfo"`
}

type wireVolumeInfo struct {
	Title         *string         `json:"title"`
	Authors       []string        `json:"authors"`
	Description   *string         `json:"description"`
	PublishedDate *string         `json:"publishedDate"`
	ImageLinks    *wireImageLinks `json:"imageLinks"`
}

type wireImageLinks struct {
	SmallThumbnail *string `json:"smallThumbnail"`
	Thumbnail      *string `json:"thumbnail"`
}
