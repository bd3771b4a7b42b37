package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"servicetrack/internal/config"
)

type DB struct {
	*sql.DB
}

// Connect opens the pooled connection described by cfg. Against a local
// host the target database is created first through a transient
// administrative connection; remote hosts are assumed pre-provisioned.
func Connect(cfg *config.DBConfig) (*DB, error) {
	if isLoopback(cfg.Host) {
		if err := ensureDatabase(cfg); err != nil {
			return nil, fmt.Errorf("failed to create database %s: %w", cfg.Name, err)
		}
	}

	db, err := sql.Open("mysql", dsn(cfg, cfg.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db}, nil
}

// HealthCheck performs a simple health check on the database
func (db *DB) HealthCheck() error {
	return db.Ping()
}

// ensureDatabase creates the target database if it does not exist, using a
// short-lived connection that is not scoped to any database.
func ensureDatabase(cfg *config.DBConfig) error {
	admin, err := sql.Open("mysql", dsn(cfg, ""))
	if err != nil {
		return err
	}
	defer admin.Close()

	_, err = admin.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", cfg.Name))
	return err
}

func dsn(cfg *config.DBConfig, dbName string) string {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.DBName = dbName
	if needsTLS(cfg.Host, cfg.SSL) {
		// Encrypted transport without certificate pinning; managed hosts
		// rotate certs we do not track.
		mc.TLSConfig = "skip-verify"
	}
	return mc.FormatDSN()
}

func isLoopback(host string) bool {
	return host == "localhost" || host == "127.0.0.1"
}

// needsTLS enables encrypted transport when asked for explicitly, or when
// the host is a known managed-database domain.
func needsTLS(host string, ssl bool) bool {
	return ssl || strings.Contains(host, "aivencloud.com")
}
