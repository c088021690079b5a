// Package schema centralizes table and column names for every relation the
// API touches, so SQL text is assembled from vetted identifiers only.
package schema

// TopicsTable represents the 'topics' table
type TopicsTable struct {
	Table       string
	Slug        string
	Description string
}

// Topics is the schema definition for topics
var Topics = TopicsTable{
	Table:       "topics",
	Slug:        "slug",
	Description: "description",
}

// UsersTable represents the 'users' table
type UsersTable struct {
	Table     string
	Username  string
	Name      string
	AvatarURL string
}

// Users is the schema definition for users
var Users = UsersTable{
	Table:     "users",
	Username:  "username",
	Name:      "name",
	AvatarURL: "avatar_url",
}

// ArticlesTable represents the 'articles' table
type ArticlesTable struct {
	Table         string
	ID            string
	Author        string
	Title         string
	Body          string
	Topic         string
	CreatedAt     string
	Votes         string
	ArticleImgURL string
}

// Articles is the schema definition for articles
var Articles = ArticlesTable{
	Table:         "articles",
	ID:            "article_id",
	Author:        "author",
	Title:         "title",
	Body:          "body",
	Topic:         "topic",
	CreatedAt:     "created_at",
	Votes:         "votes",
	ArticleImgURL: "article_img_url",
}

// CommentsTable represents the 'comments' table
type CommentsTable struct {
	Table     string
	ID        string
	ArticleID string
	Author    string
	Body      string
	Votes     string
	CreatedAt string
}

// Comments is the schema definition for comments
var Comments = CommentsTable{
	Table:     "comments",
	ID:        "comment_id",
	ArticleID: "article_id",
	Author:    "author",
	Body:      "body",
	Votes:     "votes",
	CreatedAt: "created_at",
}
