// Copyright (c) 2026 Vocably. All rights reserved.

// Package mongodb provides a managed MongoDB client and collection handles
// for the Vocably application.
//
// # Architecture
//
// This package is part of the Infrastructure layer. It manages the physical
// database connection (mongo.Client) and hands out the typed collection
// handles that the domain stores are built on. It is constructed once at
// process start and injected into every store; no global client exists.
package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/vocably/server/internal/platform/constants"
)

// Opinionated client settings for the Vocably workload.
const (
	// connectTimeout is the maximum time allowed to establish the connection.
	connectTimeout = 5 * time.Second
	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second
	// serverSelectionTimeout bounds how long the driver waits for a suitable server.
	serverSelectionTimeout = 5 * time.Second
)

// Connect creates and validates a new MongoDB client.
//
// # Parameters
//   - ctx: Context for the initial connection attempt.
//   - uri: A mongodb:// or mongodb+srv:// connection string.
//   - logger: Structured logger for client-level events.
func Connect(ctx context.Context, uri string, logger *slog.Logger) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)

	clientOptions := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(serverSelectionTimeout)

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb: failed to create client: %w", err)
	}

	// Validate that we can actually reach the database.
	if err := Ping(ctx, client); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("mongodb connected")

	return client, nil
}

// Ping verifies that the MongoDB deployment is reachable.
func Ping(ctx context.Context, client *mongo.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb: ping failed: %w", err)
	}

	return nil
}

// Collections groups the typed collection handles for all four resource types.
type Collections struct {
	Lessons    *mongo.Collection
	Vocabulary *mongo.Collection
	Users      *mongo.Collection
	Tutorials  *mongo.Collection
}

// NewCollections resolves the application's collection handles on the named database.
func NewCollections(client *mongo.Client, database string) Collections {
	db := client.Database(database)
	return Collections{
		Lessons:    db.Collection(constants.CollectionLessons),
		Vocabulary: db.Collection(constants.CollectionVocabulary),
		Users:      db.Collection(constants.CollectionUsers),
		Tutorials:  db.Collection(constants.CollectionTutorials),
	}
}
