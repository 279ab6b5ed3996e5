package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"myjobs/internal/config"
	"myjobs/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "myjobs"
	pgPassword = "myjobs-test"
	pgDatabase = "myjobs_test"
)

// One Postgres container is shared by every integration suite in the process
var (
	pgOnce     sync.Once
	pgErr      error
	pgPool     *dockertest.Pool
	pgResource *dockertest.Resource
	pgDB       *gorm.DB
	pgConfig   *config.Config
)

// tenantTables lists every table, children first, so truncation order never matters
var tenantTables = []string{
	"prm_partner_tags", "prm_contact_tags", "prm_contact_record_tags",
	"prm_contact_log_entries", "prm_contact_records", "prm_contacts", "prm_partners", "prm_tags",
	"postajob_jobs", "postajob_purchases", "postajob_products",
	"saved_search_logs", "saved_searches",
	"email_logs", "email_templates",
	"reports",
	"redirects", "destination_manipulations", "view_sources", "import_records",
	"site_business_units", "seo_sites", "business_units",
	"company_users", "profile_names", "profile_addresses", "companies", "users",
}

// BaseTestSuite gives integration suites a migrated primary database that is emptied around each test
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared container on first use. Tests fail, not skip, when Docker is unavailable.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	pgOnce.Do(func() { pgErr = startPostgres() })
	if pgErr != nil {
		t.Fatalf("failed to start postgres container: %v", pgErr)
	}
	return &BaseTestSuite{DB: pgDB, Config: pgConfig}
}

// CleanupSharedContainer closes the pool and purges the container. Integration packages call it from TestMain.
func CleanupSharedContainer() {
	if pgDB != nil {
		if sqlDB, err := pgDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		pgDB = nil
	}
	if pgPool == nil || pgResource == nil {
		return
	}
	if err := pgPool.Purge(pgResource); err != nil {
		log.Printf("WARN: could not purge %s: %v", pgResource.Container.Name, err)
	}
	pgPool, pgResource = nil, nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container outlives the suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every known table that exists, with foreign keys disabled
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	s.DB.Exec(`SET session_replication_role = replica`)
	defer s.DB.Exec(`SET session_replication_role = DEFAULT`)
	for _, table := range tenantTables {
		if m.HasTable(table) {
			s.DB.Exec(fmt.Sprintf(`TRUNCATE TABLE %q RESTART IDENTITY CASCADE`, table))
		}
	}
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	pgPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	pgResource = resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	err = pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		if err := std.Ping(); err != nil {
			return err
		}

		db, err := database.Initialize(dsn, nil, database.PrimaryModels()...)
		if err != nil {
			return err
		}
		pgDB = db
		return nil
	})
	if err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	pgConfig = &config.Config{
		DatabaseURL:  dsn,
		Port:         "8080",
		LogLevel:     "debug",
		Environment:  "test",
		JWTSecret:    "test-secret",
		CacheBackend: "memory",
	}
	log.Printf("postgres ready on port %s", resource.GetPort("5432/tcp"))
	return nil
}
