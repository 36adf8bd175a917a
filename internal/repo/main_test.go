package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pkordes/csr-assistant/migrations"
	"github.com/pkordes/csr-assistant/testutil"
)

// TestMain migrates the test database once before the Postgres ledger
// tests run. Without TEST_DATABASE_URL only the in-memory tests run.
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		os.Exit(m.Run())
	}

	db := testutil.MustOpenSQLDB(os.Getenv("TEST_DATABASE_URL"))
	if _, err := migrations.Up(context.Background(), db); err != nil {
		db.Close()
		log.Fatalf("TestMain: run migrations: %v", err)
	}
	db.Close()

	os.Exit(m.Run())
}
