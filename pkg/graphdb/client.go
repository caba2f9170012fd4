package graphdb

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"learnpath_backend/internal/config"
)

// Client wraps the Neo4j driver for the optional curriculum mirror. A nil
// Client (no URI configured, or connectivity failed) means callers use the
// static curriculum instead.
type Client struct {
	Driver   neo4j.DriverWithContext
	Database string
}

// New returns (nil, nil) when no graph store is configured.
func New(cfg *config.GraphConfig) (*Client, error) {
	if cfg.URI == "" {
		return nil, nil
	}

	user := cfg.User
	if user == "" {
		user = "neo4j"
	}

	auth := neo4j.BasicAuth(user, cfg.Password, "")
	driver, err := neo4j.NewDriverWithContext(cfg.URI, auth, func(c *neo4j.Config) {
		c.MaxConnectionPoolSize = 50
		c.SocketConnectTimeout = 10 * time.Second
	})
	if err != nil {
		return nil, fmt.Errorf("graphdb: init driver: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("graphdb: verify connectivity: %w", err)
	}

	return &Client{Driver: driver, Database: cfg.Database}, nil
}

func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.Driver == nil {
		return nil
	}
	err := c.Driver.Close(ctx)
	c.Driver = nil
	return err
}
