package youtube

// searchResponse mirrors the parts of a search.list response the adapter reads.
type searchResponse struct {
	Items *[]wireItem `json:"items"`
}

type wireItem struct {
	ID      *wireID      `json:"id"`
	Snippet *wireSnippet `json:"snippet"`
}

type wireID struct {
	Kind    *string `json:"kind"`
	VideoID *string `json:"videoId"`
}

type wireSnippet struct {
	Title        *string `json:"title"`
	ChannelTitle *string `json:"channelTitle"`
}
