package psql

import (
	"context"
	"fmt"
	"sync"
	"time"

	"spotlight/spotlight/config"
	"spotlight/spotlight/sources/psql/models"
	"spotlight/spotlight/types"
	"spotlight/spotlight/utils/logging"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// connectTimeout bounds a shared connect attempt, which runs detached from
// the caller that started it.
const connectTimeout = 30 * time.Second

// Database owns the store connection. The connection is opened on first use
// and shared afterwards; concurrent first callers wait on a single attempt.
// A failed attempt is not cached, so the next caller tries again.
type Database struct {
	cfg     config.Config
	connect func(ctx context.Context) (*gorm.DB, error)

	mu    sync.RWMutex
	db    *gorm.DB
	group singleflight.Group
}

// NewDatabase returns a handle that has not connected yet.
func NewDatabase(cfg config.Config) *Database {
	d := &Database{cfg: cfg}
	d.connect = d.open
	return d
}

// FromGorm wraps an already open connection.
func FromGorm(db *gorm.DB) *Database {
	d := &Database{db: db}
	d.connect = func(context.Context) (*gorm.DB, error) { return db, nil }
	return d
}

// Conn returns the shared connection, connecting if needed.
func (d *Database) Conn(ctx context.Context) (*gorm.DB, error) {
	d.mu.RLock()
	db := d.db
	d.mu.RUnlock()
	if db != nil {
		return db.WithContext(ctx), nil
	}

	ch := d.group.DoChan("connect", func() (any, error) {
		d.mu.RLock()
		existing := d.db
		d.mu.RUnlock()
		if existing != nil {
			return existing, nil
		}

		connectCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), connectTimeout)
		defer cancel()
		logging.AppLogger.Info("connecting to database", zap.String("driver", d.cfg.DBDriver))
		opened, err := d.connect(connectCtx)
		if err != nil {
			logging.ErrorLogger.Error("database connection error", zap.Error(err))
			return nil, err
		}

		d.mu.Lock()
		d.db = opened
		d.mu.Unlock()
		logging.AppLogger.Info("database connected", zap.String("driver", d.cfg.DBDriver))
		return opened, nil
	})

	// Each caller gives up on its own context; the attempt carries on for the rest.
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", types.ErrStore, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrStore, res.Err)
		}
		return res.Val.(*gorm.DB).WithContext(ctx), nil
	}
}

// Ping checks that the store is reachable.
func (d *Database) Ping(ctx context.Context) error {
	db, err := d.Conn(ctx)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrStore, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", types.ErrStore, err)
	}
	return nil
}

func (d *Database) open(ctx context.Context) (*gorm.DB, error) {
	dsn, err := d.cfg.DSN()
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch d.cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if d.cfg.DBAutoMigrate {
		if err := Migrate(ctx, db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate creates the collections the dashboard reads when they are missing.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	return nil
}

func (d *Database) Close() {
	d.mu.Lock()
	db := d.db
	d.db = nil
	d.mu.Unlock()
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}
