package comment

import "context"

type Repository interface {
	ListCommentsByArticle(context context.Context, articleID int, limit, offset int) ([]Comment, error)
	ListComments(context context.Context, limit, offset int) ([]Comment, error)
	CreateComment(context context.Context, articleID int, input CreateInput) (*Comment, error)
	UpdateCommentVotes(context context.Context, id int, delta int) (*Comment, error)
	DeleteComment(context context.Context, id int) error
}
