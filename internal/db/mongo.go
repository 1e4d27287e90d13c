package db

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/jmehdipour/notify-gateway/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// defaultMongoDatabase is the name the driver falls back to when the URI has no path.
const defaultMongoDatabase = "test"

type MongoOpts struct {
	URI                    string        // e.g. mongodb://localhost:27017/notify
	Database               string        // overrides the URI path when set
	ServerSelectionTimeout time.Duration // default 5s
	PingTimeout            time.Duration // default ServerSelectionTimeout
}

// MongoDialer opens a ready-to-use client.
type MongoDialer func(ctx context.Context, opts MongoOpts) (*mongo.Client, error)

// Mongo hands out one shared database handle per process.
// The connection is made on the first Database call; a failed attempt is not
// cached, so the next call dials again.
type Mongo struct {
	opts MongoOpts
	dial MongoDialer

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

func NewMongo(opts MongoOpts) *Mongo {
	return NewMongoWithDialer(opts, DialMongo)
}

func NewMongoWithDialer(opts MongoOpts, dial MongoDialer) *Mongo {
	if opts.ServerSelectionTimeout <= 0 {
		opts.ServerSelectionTimeout = 5 * time.Second
	}
	if opts.PingTimeout <= 0 {
		opts.PingTimeout = opts.ServerSelectionTimeout
	}
	return &Mongo{opts: opts, dial: dial}
}

// DialMongo connects and pings the primary, so a bad URI or unreachable
// cluster fails here instead of on first query.
func DialMongo(ctx context.Context, opts MongoOpts) (*mongo.Client, error) {
	if opts.URI == "" {
		return nil, fmt.Errorf("empty MongoDB URI")
	}

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(opts.URI).
		SetServerSelectionTimeout(opts.ServerSelectionTimeout))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, opts.PingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

// Database returns the shared handle, connecting on first use.
func (m *Mongo) Database(ctx context.Context) (*mongo.Database, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return m.db, nil
	}

	name, err := databaseName(m.opts)
	if err != nil {
		logger.Log.Error("MongoDB connection error", zap.Error(err))
		return nil, err
	}

	client, err := m.dial(ctx, m.opts)
	if err != nil {
		logger.Log.Error("failed to connect to MongoDB", zap.Error(err))
		return nil, err
	}

	logger.Log.Info("connected to MongoDB", zap.String("database", name))
	m.client = client
	m.db = client.Database(name)

	return m.db, nil
}

// Ping checks the shared connection, establishing it if needed.
func (m *Mongo) Ping(ctx context.Context) error {
	database, err := m.Database(ctx)
	if err != nil {
		return err
	}
	return database.Client().Ping(ctx, readpref.Primary())
}

// Close disconnects the shared client. A later Database call reconnects.
func (m *Mongo) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}

	err := m.client.Disconnect(ctx)
	m.client = nil
	m.db = nil
	if err != nil {
		logger.Log.Error("MongoDB disconnect failed", zap.Error(err))
		return err
	}

	logger.Log.Info("MongoDB connection closed")
	return nil
}

// databaseName reads the path of the URI directly. connstring's parser resolves
// SRV/TXT records for mongodb+srv URIs without a context, and mongo.Connect
// repeats that lookup anyway.
func databaseName(opts MongoOpts) (string, error) {
	if opts.Database != "" {
		return opts.Database, nil
	}

	var rest string
	switch {
	case strings.HasPrefix(opts.URI, "mongodb://"):
		rest = strings.TrimPrefix(opts.URI, "mongodb://")
	case strings.HasPrefix(opts.URI, "mongodb+srv://"):
		rest = strings.TrimPrefix(opts.URI, "mongodb+srv://")
	default:
		return "", fmt.Errorf("invalid MongoDB URI scheme, must be mongodb:// or mongodb+srv://")
	}

	// user info, host list and options never contain a raw "/" or "?"
	rest, _, _ = strings.Cut(rest, "?")
	_, path, found := strings.Cut(rest, "/")
	if !found || path == "" {
		return defaultMongoDatabase, nil
	}

	name, err := url.PathUnescape(path)
	if err != nil {
		return "", fmt.Errorf("invalid MongoDB database name %q: %w", path, err)
	}
	return name, nil
}
