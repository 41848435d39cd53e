package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectSQLite(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, db)

	err = db.Exec("CREATE TABLE probe (id INTEGER PRIMARY KEY, name TEXT)").Error
	assert.NoError(t, err)

	err = db.Exec("INSERT INTO probe (id, name) VALUES (1, 'x')").Error
	assert.NoError(t, err)

	var count int64
	err = db.Table("probe").Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestConnectMySQLUnreachable(t *testing.T) {
	// Connection to a closed port must fail within the configured timeout
	// instead of hanging.
	cfg := Config{
		Driver:         "mysql",
		Host:           "127.0.0.1",
		Port:           1, // nothing listens here
		User:           "root",
		Name:           "skinfolio",
		TimeoutSeconds: 1,
	}
	db, err := Connect(cfg)
	assert.Error(t, err)
	assert.Nil(t, db)
}
