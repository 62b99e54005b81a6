package database

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/pageza/recipe-api/backend/config"
)

// OpenFunc establishes a new store handle
type OpenFunc func(ctx context.Context) (*gorm.DB, error)

// Provider hands out the shared store handle
type Provider interface {
	DB(ctx context.Context) (*gorm.DB, error)
}

// Connector owns the process-wide store handle. The first DB call opens the
// connection, concurrent callers wait on that same attempt, and later calls
// reuse the handle. A failed attempt is not remembered.
type Connector struct {
	open  OpenFunc
	group singleflight.Group

	mu sync.RWMutex
	db *gorm.DB
}

// NewConnector creates a connector around an open function
func NewConnector(open OpenFunc) *Connector {
	return &Connector{open: open}
}

// NewConfigConnector creates a connector that opens the store described by cfg
func NewConfigConnector(cfg *config.Config) *Connector {
	return NewConnector(func(ctx context.Context) (*gorm.DB, error) {
		return Open(ctx, cfg)
	})
}

// DB returns the established handle, connecting first if needed
func (c *Connector) DB(ctx context.Context) (*gorm.DB, error) {
	if db := c.current(); db != nil {
		return db, nil
	}

	v, err, shared := c.group.Do("connect", func() (interface{}, error) {
		if db := c.current(); db != nil {
			return db, nil
		}

		// The attempt is shared, so it must not die with the first caller's request.
		db, err := c.open(context.WithoutCancel(ctx))
		if err != nil {
			log.Printf("[Connector] Connection attempt failed: %v", err)
			return nil, err
		}

		c.mu.Lock()
		c.db = db
		c.mu.Unlock()
		return db, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Printf("[Connector] Reused in-flight connection attempt")
	}
	return v.(*gorm.DB), nil
}

// Connected reports whether a handle has been established
func (c *Connector) Connected() bool {
	return c.current() != nil
}

// Close releases the handle if one was established
func (c *Connector) Close() error {
	c.mu.Lock()
	db := c.db
	c.db = nil
	c.mu.Unlock()

	if db == nil {
		return nil
	}
	return Close(db)
}

func (c *Connector) current() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// Static wraps an already open handle
type Static struct {
	Handle *gorm.DB
}

// DB implements Provider
func (s Static) DB(context.Context) (*gorm.DB, error) {
	return s.Handle, nil
}
