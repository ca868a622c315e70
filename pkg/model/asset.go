package model

// Asset describes a stored binary. Key is generated at upload and is the only
// handle used to fetch or delete it.
type Asset struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}
