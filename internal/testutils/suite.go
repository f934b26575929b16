package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"project-tracker-backend/internal/config"
	"project-tracker-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // "pgx" driver for the readiness probe
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "tracker"
	pgPassword = "tracker"
	pgDatabase = "tracker_test"
)

// trackerTables lists every table the suites write, children first
var trackerTables = []string{"tasks", "modules", "project_members", "team_members", "projects", "users"}

// postgresContainer is the one Postgres instance shared by every suite in
// the test binary
type postgresContainer struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	cfg      *config.Config
}

var shared postgresContainer

// BaseTestSuite gives integration suites a migrated Postgres database that
// is emptied around every test
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared container on first use and returns a
// suite bound to it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("failed to start postgres container: %v", shared.err)
	}
	return &BaseTestSuite{DB: shared.db, Config: shared.cfg}
}

// CleanupSharedContainer closes the pool and removes the container. The
// repository TestMain calls it once the run is over.
func CleanupSharedContainer() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		shared.db = nil
	}
	if shared.pool == nil || shared.resource == nil {
		return
	}
	if err := shared.pool.Purge(shared.resource); err != nil {
		log.Printf("could not remove postgres container %s: %v", shared.resource.Container.Name, err)
	}
	shared.pool, shared.resource = nil, nil
}

// SetupTest empties the tracker tables before each test
func (s *BaseTestSuite) SetupTest() { s.CleanTestDB() }

// TearDownTest empties the tracker tables after each test
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite leaves the container running for the next suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates the tracker tables in one statement
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	quoted := make([]string, len(trackerTables))
	for i, name := range trackerTables {
		quoted[i] = `"` + name + `"`
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " CASCADE").Error; err != nil {
		log.Printf("could not truncate tracker tables: %v", err)
	}
}

func (c *postgresContainer) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	c.pool = pool

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
	c.resource = resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	err = pool.Retry(func() error {
		probe, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer probe.Close()
		return probe.Ping()
	})
	if err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(database.DriverPostgres, dsn, nil)
	if err != nil {
		return fmt.Errorf("could not migrate test database: %w", err)
	}
	c.db = db
	c.cfg = &config.Config{
		Environment:        "test",
		DatabaseDriver:     database.DriverPostgres,
		DatabaseURL:        dsn,
		JWTSecret:          "integration-test-secret",
		JWTTTLHours:        1,
		AuthRateLimitRPS:   1000,
		AuthRateLimitBurst: 1000,
		DefaultSignupRole:  "member",
	}
	log.Printf("postgres test container %s ready", resource.Container.Name)
	return nil
}
