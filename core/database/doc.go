// Package database handles database connections for the document store.
//
// It provides a wrapper around GORM to configure MySQL connections based on
// the application's configuration. A sqlite driver is also supported so that
// the store can run against an in-memory database in tests and small
// deployments.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
