package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"servicetrack/internal/config"
)

func TestIsLoopback(t *testing.T) {
	assert.True(t, isLoopback("localhost"))
	assert.True(t, isLoopback("127.0.0.1"))
	assert.False(t, isLoopback("db.internal"))
	assert.False(t, isLoopback("mysql-prod.example.aivencloud.com"))
}

func TestNeedsTLS(t *testing.T) {
	assert.False(t, needsTLS("localhost", false))
	assert.True(t, needsTLS("localhost", true))
	assert.True(t, needsTLS("mysql-prod.example.aivencloud.com", false))
	assert.False(t, needsTLS("db.internal", false))
}

func TestDSN(t *testing.T) {
	cfg := &config.DBConfig{
		Host:     "localhost",
		Port:     3306,
		User:     "root",
		Password: "root",
	}

	s := dsn(cfg, "servicetrack")
	assert.Contains(t, s, "tcp(localhost:3306)")
	assert.Contains(t, s, "/servicetrack")
	assert.NotContains(t, s, "tls=")

	// Admin DSN carries no database name.
	admin := dsn(cfg, "")
	assert.Contains(t, admin, "tcp(localhost:3306)/")
	assert.NotContains(t, admin, "servicetrack")

	cfg.Host = "mysql-prod.example.aivencloud.com"
	assert.Contains(t, dsn(cfg, "servicetrack"), "tls=skip-verify")
}
