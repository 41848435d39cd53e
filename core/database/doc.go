// Package database provides the GORM database connection layer.
//
// It supports MySQL for production deployments and SQLite for local
// development and tests. The connection is verified with a bounded ping
// before it is handed to the rest of the application, and connection,
// read and write timeouts are baked into the DSN so a misbehaving server
// cannot hang the process.
package database
