package core

import (
	"context"
	"daybook/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	CreateEntry(ctx context.Context, entry *repository.Entry) error
	GetEntry(ctx context.Context, id uint) (repository.Entry, error)
	UpdateEntry(ctx context.Context, entry *repository.Entry) error
	DeleteEntry(ctx context.Context, id uint) error
	CountEntries(ctx context.Context, query string) (int64, error)
	SearchEntries(ctx context.Context, query string, limit, offset int) ([]repository.Entry, error)
}
