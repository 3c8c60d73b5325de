package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/reportcard/pkg/config"
)

func TestDSNDefaultsSSLMode(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{Host: "db", Port: 5432, User: "rc", Password: "pw", Name: "records"})
	assert.Equal(t, "host=db port=5432 user=rc password=pw dbname=records sslmode=disable", dsn)

	dsn = DSN(config.DatabaseConfig{Host: "db", Port: 5432, Name: "records", SSLMode: "require"})
	assert.Contains(t, dsn, "sslmode=require")
}
