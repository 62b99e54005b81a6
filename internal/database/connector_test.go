package database

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnectorOpensOnceForConcurrentCallers(t *testing.T) {
	var calls int32
	release := make(chan struct{})

	conn := NewConnector(func(ctx context.Context) (*gorm.DB, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return openSQLite(":memory:")
	})
	t.Cleanup(func() { _ = conn.Close() })

	const callers = 10
	var wg sync.WaitGroup
	handles := make([]*gorm.DB, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i], errs[i] = conn.DB(context.Background())
		}(i)
	}

	// give every caller a chance to join the in-flight attempt
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, handles[0], handles[i])
	}

	db, err := conn.DB(context.Background())
	require.NoError(t, err)
	assert.Same(t, handles[0], db)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.True(t, conn.Connected())
}

func TestConnectorRetriesAfterFailure(t *testing.T) {
	var calls int32
	conn := NewConnector(func(ctx context.Context) (*gorm.DB, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, errors.New("connection refused")
		}
		return openSQLite(":memory:")
	})
	t.Cleanup(func() { _ = conn.Close() })

	_, err := conn.DB(context.Background())
	assert.EqualError(t, err, "connection refused")
	assert.False(t, conn.Connected())

	db, err := conn.DB(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, db)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestConnectorSurvivesCanceledCaller(t *testing.T) {
	conn := NewConnector(func(ctx context.Context) (*gorm.DB, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return openSQLite(":memory:")
	})
	t.Cleanup(func() { _ = conn.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	db, err := conn.DB(ctx)
	require.NoError(t, err)
	assert.NotNil(t, db)
}

func TestConnectorCloseWithoutConnection(t *testing.T) {
	conn := NewConnector(func(ctx context.Context) (*gorm.DB, error) {
		t.Fatal("open should not be called")
		return nil, nil
	})
	assert.NoError(t, conn.Close())
}
