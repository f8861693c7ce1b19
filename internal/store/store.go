// Package store opens the relational target and materializes entity
// tables with replace semantics.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const insertBatchSize = 500

func configurePool(sqlDB *sql.DB) {
	const (
		maxOpenConns    = 20
		maxIdleConns    = 10
		connMaxLifetime = 30 * time.Minute
		connMaxIdleTime = 5 * time.Minute
	)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
}

// Open connects to the configured store: Postgres when dsn is set,
// otherwise a local SQLite database at sqlitePath.
func Open(ctx context.Context, dsn, sqlitePath string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch {
	case dsn != "":
		dialector = postgres.Open(dsn)
	case sqlitePath != "":
		dialector = sqlite.Open(sqlitePath)
	default:
		return nil, fmt.Errorf("no database target configured")
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	configurePool(sqlDB)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// Replace drops the named table if it exists, recreates it from the
// model's schema and inserts rows in batches. Re-running a load thus
// leaves exactly one copy of the data.
func Replace(ctx context.Context, db *gorm.DB, table string, model, rows any) error {
	tx := db.WithContext(ctx)

	if tx.Migrator().HasTable(table) {
		if err := tx.Migrator().DropTable(table); err != nil {
			return fmt.Errorf("drop table %s: %w", table, err)
		}
	}
	if err := tx.Table(table).AutoMigrate(model); err != nil {
		return fmt.Errorf("create table %s: %w", table, err)
	}

	if reflect.ValueOf(rows).Len() == 0 {
		return nil
	}
	if err := tx.Table(table).CreateInBatches(rows, insertBatchSize).Error; err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}
