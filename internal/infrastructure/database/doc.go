// Package database manages the SQLite connection for Trackpoint Core.
//
// It wraps database/sql with the pragmas the service depends on (WAL mode,
// busy timeout, foreign keys), restrictive file permissions, a health check,
// and an embedded-migration runner. Schema files live in the top-level
// migrations package and are registered via database.MigrationsFS at init.
//
// SQLite is opened with a single-connection pool: the service is a light
// CRUD workload and SQLite allows only one writer, so a larger pool would
// just queue on the database lock.
package database
