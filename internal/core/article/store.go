package article

import "context"

type Repository interface {
	ListArticles(context context.Context, options ListOptions) ([]Article, int, error)
	GetArticleByID(context context.Context, id int) (*Article, error)
	CreateArticle(context context.Context, input CreateInput) (*Article, error)
	UpdateArticleVotes(context context.Context, id int, delta int) (*Article, error)
	DeleteArticle(context context.Context, id int) error
}
