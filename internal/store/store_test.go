package store_test

import (
	"context"
	"math/rand/v2"
	"os"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/sociograph/sociograph/internal/dbpool"
	"github.com/sociograph/sociograph/internal/models"
	"github.com/sociograph/sociograph/internal/store"
)

// testEnv holds shared test infrastructure (single pool across all tests).
type testEnv struct {
	pool *dbpool.Pool
	log  *logrus.Logger
}

var sharedEnv *testEnv

func getTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if sharedEnv != nil {
		return sharedEnv
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	pool, err := dbpool.NewPool(ctx, dbURL)
	if err != nil {
		t.Fatalf("connecting to test DB: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	sharedEnv = &testEnv{
		pool: pool,
		log:  log,
	}

	return sharedEnv
}

// setupTestStore creates a FollowStore plus n user ids in a random
// block so tests sharing the follows table cannot collide. Rows
// touching those ids are removed after the test.
func setupTestStore(t *testing.T, n int) (*store.FollowStore, []models.UserID) {
	t.Helper()

	env := getTestEnv(t)

	base := models.UserID(rand.Int64N(1<<40) + (1 << 20))
	ids := make([]models.UserID, n)
	for i := range ids {
		ids[i] = base + models.UserID(i)
	}

	t.Cleanup(func() {
		cleanCtx := context.Background()
		for _, id := range ids {
			env.pool.Exec(cleanCtx, "DELETE FROM follows WHERE follower_id = $1 OR followee_id = $1", id) //nolint:errcheck // best-effort cleanup
		}
	})

	return store.NewFollowStore(store.Base{Pool: env.pool, Log: env.log}), ids
}
