package comment

import "time"

// Comment is a reader response attached to an article.
type Comment struct {
	CommentID int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateInput carries the client-supplied fields for a new comment.
// Username must reference an existing user.
type CreateInput struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

// VotesInput is the PATCH body adjusting a comment's vote count. IncVotes is
// a pointer so a missing field is rejected rather than treated as zero.
type VotesInput struct {
	IncVotes *int `json:"inc_votes"`
}
