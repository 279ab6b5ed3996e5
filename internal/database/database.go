package database

import (
	"context"
	"fmt"
	"time"

	"myjobs/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// PrimaryModels is the schema owned by the primary database
func PrimaryModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Name{},
		&models.Address{},
		&models.Company{},
		&models.CompanyUser{},
		&models.BusinessUnit{},
		&models.SeoSite{},
		&models.Tag{},
		&models.Partner{},
		&models.Contact{},
		&models.ContactRecord{},
		&models.ContactLogEntry{},
		&models.Product{},
		&models.Purchase{},
		&models.PostedJob{},
		&models.SavedSearch{},
		&models.SavedSearchLog{},
		&models.EmailTemplate{},
		&models.EmailLog{},
		&models.Report{},
		&models.Redirect{},
		&models.DestinationManipulation{},
		&models.ViewSource{},
		&models.ImportRecord{},
	}
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options, schema ...interface{}) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate && len(schema) > 0 {
		if err := db.AutoMigrate(schema...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}

// OpenSQLite opens a file or in-memory SQLite database with the full primary schema.
// Used by myjobsctl --sqlite and by unit tests that need real queries without Postgres.
func OpenSQLite(path string) (*gorm.DB, error) {
	if path == "" {
		path = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.AutoMigrate(PrimaryModels()...); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return db, nil
}

// Registry holds the primary connection and the optional archive and QC shards.
// Archive and QC fall back to the primary when not configured.
type Registry struct {
	Primary *gorm.DB
	Archive *gorm.DB
	QC      *gorm.DB
}

// RegistryConfig lists the DSNs of each database
type RegistryConfig struct {
	PrimaryDSN string
	ArchiveDSN string
	QCDSN      string
}

// Open connects every configured database and migrates its part of the schema
func Open(cfg RegistryConfig, opts *Options) (*Registry, error) {
	primary, err := Initialize(cfg.PrimaryDSN, opts, PrimaryModels()...)
	if err != nil {
		return nil, fmt.Errorf("primary database: %w", err)
	}
	reg := &Registry{Primary: primary, Archive: primary, QC: primary}

	if cfg.ArchiveDSN != "" {
		archive, err := Initialize(cfg.ArchiveDSN, opts, &models.Redirect{})
		if err != nil {
			return nil, fmt.Errorf("archive database: %w", err)
		}
		reg.Archive = archive
	}
	if cfg.QCDSN != "" {
		qc, err := Initialize(cfg.QCDSN, opts, &models.ImportRecord{})
		if err != nil {
			return nil, fmt.Errorf("qc database: %w", err)
		}
		reg.QC = qc
	}
	return reg, nil
}

// NewSingleRegistry uses one connection for every role
func NewSingleRegistry(db *gorm.DB) *Registry {
	return &Registry{Primary: db, Archive: db, QC: db}
}

// Ping checks every distinct connection and returns the status by name
func (r *Registry) Ping(ctx context.Context) map[string]error {
	result := map[string]error{"primary": ping(ctx, r.Primary)}
	if r.Archive != r.Primary {
		result["archive"] = ping(ctx, r.Archive)
	}
	if r.QC != r.Primary {
		result["qc"] = ping(ctx, r.QC)
	}
	return result
}

// Close closes every distinct connection
func (r *Registry) Close() {
	seen := map[*gorm.DB]bool{}
	for _, db := range []*gorm.DB{r.Primary, r.Archive, r.QC} {
		if db == nil || seen[db] {
			continue
		}
		seen[db] = true
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

func ping(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("not configured")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
