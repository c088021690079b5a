package article

import "time"

// Article is a published piece, including its aggregate comment count.
//
// CommentCount is never stored; every read recomputes it from the comments
// table, and it is always delivered as a JSON number.
type Article struct {
	ArticleID     int       `json:"article_id"`
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Topic         string    `json:"topic"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// CreateInput carries the client-supplied fields for a new article.
// ArticleImgURL is optional; the database default applies when absent.
type CreateInput struct {
	Author        string  `json:"author"`
	Title         string  `json:"title"`
	Body          string  `json:"body"`
	Topic         string  `json:"topic"`
	ArticleImgURL *string `json:"article_img_url"`
}

// VotesInput is the PATCH body adjusting an article's vote count.
//
// IncVotes is a pointer so a missing field is distinguishable from a zero
// delta: missing is a Bad Request, zero is a valid no-op adjustment.
type VotesInput struct {
	IncVotes *int `json:"inc_votes"`
}
