package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	FindOrCreate(ctx context.Context, column string, value any, entity any) (bool, error)
	List(ctx context.Context, conds map[string]any, order string, limit int, entity any) error
	Count(ctx context.Context, model any, conds map[string]any, count *int64) error
}
