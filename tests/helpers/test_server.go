package helpers

import (
	"testing"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tests"

	// Register the project migrations so the test app gets the game schema.
	_ "github.com/alouani-moncif/secret-word-society-replit/pb_migrations"
)

// TestServer wraps a PocketBase test instance
type TestServer struct {
	App core.App
	t   *testing.T
}

// NewTestServer creates a new test PocketBase instance backed by a
// temporary data directory with the project migrations applied.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	app, err := tests.NewTestApp(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(app.Cleanup)

	return &TestServer{
		App: app,
		t:   t,
	}
}
