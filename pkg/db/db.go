package db

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"liyu1981.xyz/ecotrack-service/pkg/common"
	"liyu1981.xyz/ecotrack-service/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

// GetInstance opens, migrates and caches the process wide connection. The
// dialector of the first call wins.
func GetInstance(dialector gorm.Dialector) *DB {
	once.Do(func() {
		var err error
		if instance, err = Open(dialector); err != nil {
			log.Fatal("Failed to open database: ", err)
		}
	})
	return instance
}

// Open connects and migrates without touching the singleton.
func Open(dialector gorm.Dialector) (*DB, error) {
	logger := common.GetLoggerWith(common.LoggerNameDb)

	cfg := &gorm.Config{
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	}
	if common.IsTestEnv() || common.IsProduction() {
		cfg.Logger = gormLogger.Default.LogMode(gormLogger.Silent)
	}

	conn, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

	d := &DB{Conn: conn}
	if err := d.Migrate(); err != nil {
		return nil, err
	}
	logger.Info("Database migration completed")

	if dialector.Name() == "sqlite" {
		if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable sqlite foreign key support: %w", err)
		}
		if err := conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			return nil, fmt.Errorf("failed to set sqlite journal mode: %w", err)
		}
	}
	return d, nil
}

func (d *DB) Migrate() error {
	err := d.Conn.AutoMigrate(
		&models.Activity{},
		&models.RenewableEnergy{},
		&models.PlasticUsage{},
		&models.Notification{},
		&models.WasteType{},
		&models.Profile{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func (d *DB) Ping(ctx context.Context) error {
	sqlDB, err := d.Conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *DB) Close() error {
	sqlDB, err := d.Conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// UseSqliteDialector opens the file named by ECO_DB_PATH.
func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(common.EnvKeyEcoDbPath); !found {
		dbPath = "ecotrack.db"
	}
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}

func UsePostgresDialector(dsn string) gorm.Dialector {
	return postgres.Open(dsn)
}

func DialectorFor(cfg common.DBConfig) (gorm.Dialector, error) {
	switch cfg.Type {
	case "file":
		return sqlite.Open(cfg.Path), nil
	case "memory":
		return UseMemorySqliteDialector(), nil
	case "postgres":
		return UsePostgresDialector(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("%w: unknown ECO_DB_TYPE %q", common.ErrInvalidConfig, cfg.Type)
	}
}
