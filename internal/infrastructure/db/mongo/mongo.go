// Package mongo owns the platform database connection and the
// document-backed repositories built on it.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// defaultDatabase is where all platform collections (users, gyms)
	// live unless MONGO_DB says otherwise.
	defaultDatabase = "gym_platform"

	connectTimeout = 10 * time.Second
)

// Config selects the cluster and database for the platform store.
type Config struct {
	URI      string
	Database string
	// Timeout bounds connect plus the verification ping. Zero means
	// connectTimeout.
	Timeout time.Duration
}

// Connect dials the cluster, verifies it with a ping, and returns the
// client together with the platform database handle. The caller owns
// the disconnect.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = connectTimeout
	}
	name := cfg.Database
	if name == "" {
		name = defaultDatabase
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	// A lazy connect hides a bad URI until the first query; ping now so
	// startup fails loudly instead.
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(name), nil
}
