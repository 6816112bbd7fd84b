package domain

// Story is a single record returned by the search API
type Story struct {
	ObjectID    string `json:"objectID"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	NumComments int    `json:"num_comments"`
	Points      int    `json:"points"`
}

// DisplayTitle returns the title, falling back to the object ID for untitled hits
func (s Story) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return "(untitled " + s.ObjectID + ")"
}
