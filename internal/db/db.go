package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Insert(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (f *PostgresDB) Save(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// DeleteByID removes the row with the given primary key and reports how many
// rows were affected so callers can distinguish a missing id.
func (f *PostgresDB) DeleteByID(ctx context.Context, model any, id any) (int64, error) {
	tx := f.DB.WithContext(ctx).Delete(model, id)
	if tx.Error != nil {
		return 0, fmt.Errorf("delete record: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *PostgresDB) CountWhere(ctx context.Context, model any, query string, args []any) (int64, error) {
	tx := f.DB.WithContext(ctx).Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

func (f *PostgresDB) FindWhere(ctx context.Context, dest any, query string, args []any, order string, limit, offset int) error {
	tx := f.DB.WithContext(ctx)
	if query != "" {
		tx = tx.Where(query, args...)
	}

	tx = tx.Order(order).Limit(limit).Offset(offset).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("find records: %w", tx.Error)
	}
	return nil
}
