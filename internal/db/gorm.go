package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// GormDB is the process-wide record store handle. The underlying connection
// is opened on first use; concurrent first callers wait on the same attempt.
type GormDB struct {
	dialector gorm.Dialector
	config    *gorm.Config

	mu   sync.Mutex
	conn *gorm.DB
}

func NewPostgresDB(dsn string) *GormDB {
	return NewGormDB(postgres.Open(dsn))
}

func NewGormDB(dialector gorm.Dialector) *GormDB {
	return &GormDB{
		dialector: dialector,
		config: &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		},
	}
}

func (g *GormDB) handle(ctx context.Context) (*gorm.DB, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.conn == nil {
		conn, err := gorm.Open(g.dialector, g.config)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		g.conn = conn
	}

	return g.conn.WithContext(ctx), nil
}

// Ping opens the connection if it is not open yet and checks it is alive.
func (g *GormDB) Ping(ctx context.Context) error {
	conn, err := g.handle(ctx)
	if err != nil {
		return err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (g *GormDB) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.conn == nil {
		return nil
	}

	sqlDB, err := g.conn.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	g.conn = nil
	return sqlDB.Close()
}

func (g *GormDB) MigrateModels(models ...any) error {
	conn, err := g.handle(context.Background())
	if err != nil {
		return err
	}

	if err := conn.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (g *GormDB) Create(ctx context.Context, record any) error {
	conn, err := g.handle(ctx)
	if err != nil {
		return err
	}

	if err := conn.Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (g *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	conn, err := g.handle(ctx)
	if err != nil {
		return err
	}

	target := reflect.ValueOf(entity)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return fmt.Errorf("getting record by %q: entity must be a non-nil pointer, got %T", column, entity)
	}

	// gorm adds a non-zero primary key of the destination to the WHERE clause,
	// so the lookup runs on a zero value and is copied over entity when found.
	found := reflect.New(target.Elem().Type())

	query := fmt.Sprintf("%s = ?", column)
	err = conn.Where(query, value).First(found.Interface()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}

	target.Elem().Set(found.Elem())
	return nil
}

// FindOrCreate loads the record matching column = value into entity, or
// inserts entity when none exists. created reports whether an insert happened.
// A primary key already set on entity does not narrow the lookup.
// A lost insert race against the unique index resolves to the winner's record.
func (g *GormDB) FindOrCreate(ctx context.Context, column string, value any, entity any) (bool, error) {
	err := g.GetOneBy(ctx, column, value, entity)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}

	createErr := g.Create(ctx, entity)
	if createErr == nil {
		return true, nil
	}

	if err := g.GetOneBy(ctx, column, value, entity); err == nil {
		return false, nil
	}

	return false, createErr
}

// List loads the records matching conds ordered by order, at most limit rows
// when limit is positive.
func (g *GormDB) List(ctx context.Context, conds map[string]any, order string, limit int, entity any) error {
	conn, err := g.handle(ctx)
	if err != nil {
		return err
	}

	q := conn
	if len(conds) > 0 {
		q = q.Where(conds)
	}
	if order != "" {
		q = q.Order(order)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Find(entity).Error; err != nil {
		return fmt.Errorf("listing records: %w", err)
	}
	return nil
}

func (g *GormDB) Count(ctx context.Context, model any, conds map[string]any, count *int64) error {
	conn, err := g.handle(ctx)
	if err != nil {
		return err
	}

	q := conn.Model(model)
	if len(conds) > 0 {
		q = q.Where(conds)
	}

	if err := q.Count(count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}
	return nil
}
