package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// GormStore reads the same tables over a direct Postgres connection.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Name() string {
	return "postgres"
}

func (s *GormStore) SelectAll(ctx context.Context, table string, dest any) error {
	if err := s.db.WithContext(ctx).Table(table).Find(dest).Error; err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}
	return nil
}

func (s *GormStore) Insert(ctx context.Context, table string, row any) error {
	if err := s.db.WithContext(ctx).Table(table).Create(row).Error; err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
