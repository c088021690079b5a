package user

import "context"

type Repository interface {
	ListUsers(context context.Context) ([]User, error)
	GetUserByUsername(context context.Context, username string) (*User, error)
}
