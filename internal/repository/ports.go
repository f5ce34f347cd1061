package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Insert(ctx context.Context, record any) error
	Save(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	DeleteByID(ctx context.Context, model any, id any) (int64, error)
	CountWhere(ctx context.Context, model any, query string, args []any) (int64, error)
	FindWhere(ctx context.Context, dest any, query string, args []any, order string, limit, offset int) error
}
