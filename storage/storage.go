// Package storage is the device-local key/value storage the record store
// persists into. Every backend stores one opaque string per key and writes
// it whole.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log"

	"hotel-checkin/config"
)

// ErrNotFound is returned by GetItem when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Storage mirrors the browser's localStorage contract.
type Storage interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// Open builds the backend selected by cfg.StorageDriver. The returned close
// function releases any database handle and is never nil.
func Open(cfg config.Config) (Storage, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageDriver {
	case config.DriverFile:
		fs, err := NewFileStorage(cfg.StorageDir)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("✅ file storage at %s", cfg.StorageDir)
		return fs, noop, nil

	case config.DriverSQLite:
		db, err := config.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		ss, err := NewSQLiteStorage(context.Background(), db)
		if err != nil {
			db.Close()
			return nil, noop, err
		}
		log.Printf("✅ sqlite storage at %s", cfg.SQLitePath)
		return ss, db.Close, nil

	case config.DriverMySQL:
		db, err := config.ConnectDatabase()
		if err != nil {
			return nil, noop, fmt.Errorf("mysql storage: %w", err)
		}
		closeFn := noop
		if sqlDB, err := db.DB(); err == nil {
			closeFn = sqlDB.Close
		}
		log.Println("✅ mysql storage connected and migrated")
		return NewGormStorage(db), closeFn, nil
	}

	return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
