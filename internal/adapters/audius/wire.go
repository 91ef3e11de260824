package audius

// searchResponse is the raw body of GET /v1/tracks/search. Every field is
// optional on the wire and checked in mapper.go.
type searchResponse struct {
	Data *[]wireTrack `json:"data"`
}

type wireTrack struct {
	ID       *string   `json:"id"`
	Title    *string   `json:"title"`
	Duration *float64  `json:"duration"`
	User     *wireUser `json:"user"`
}

type wireUser struct {
	Name   *string `json:"name"`
	Handle *string `json:"handle"`
}
