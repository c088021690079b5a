package topic

// Topic is a category articles are filed under. The slug is its primary key.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// CreateInput carries the client-supplied fields for a new topic.
type CreateInput struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
