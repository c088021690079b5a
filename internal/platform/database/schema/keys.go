package schema

// Key is an allow-listed (table, column) pair usable in existence checks.
//
// Keys are a closed enumeration: only the package-level values below exist,
// so table and column identifiers interpolated into SQL can never originate
// from client input.
type Key struct {
	Table  string
	Column string
}

var (
	// ArticleByID checks articles by primary key.
	ArticleByID = Key{Table: Articles.Table, Column: Articles.ID}

	// CommentByID checks comments by primary key.
	CommentByID = Key{Table: Comments.Table, Column: Comments.ID}

	// TopicBySlug checks topics by slug.
	TopicBySlug = Key{Table: Topics.Table, Column: Topics.Slug}

	// UserByUsername checks users by username.
	UserByUsername = Key{Table: Users.Table, Column: Users.Username}
)
