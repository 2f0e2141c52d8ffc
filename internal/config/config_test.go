package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Session: SessionConfig{
			Store:       SessionStoreMemory,
			TTL:         time.Hour,
			TokenSecret: "secret",
			CookieName:  "quiz_session",
		},
		Catalog: CatalogConfig{Source: CatalogSourceBuiltin},
		DB:      DBConfig{Driver: DriverSQLite, Path: "quiz.db"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		errText string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"redis store without address", func(c *Config) { c.Session.Store = SessionStoreRedis }, "redis.address is empty"},
		{"redis store with address", func(c *Config) {
			c.Session.Store = SessionStoreRedis
			c.Redis.Address = "localhost:6379"
		}, ""},
		{"unknown store", func(c *Config) { c.Session.Store = "disk" }, "unsupported session.store"},
		{"zero ttl", func(c *Config) { c.Session.TTL = 0 }, "session.ttl must be positive"},
		{"missing secret", func(c *Config) { c.Session.TokenSecret = "" }, "token_secret is required"},
		{"database catalog with unknown driver", func(c *Config) {
			c.Catalog.Source = CatalogSourceDatabase
			c.DB.Driver = "mysql"
		}, "unsupported db.driver"},
		{"database catalog with oracle", func(c *Config) {
			c.Catalog.Source = CatalogSourceDatabase
			c.DB.Driver = DriverOracle
		}, ""},
		{"unknown catalog source", func(c *Config) { c.Catalog.Source = "s3" }, "unsupported catalog.source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errText == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.errText)
			}
		})
	}
}

func TestConfig_GetDSN(t *testing.T) {
	cfg := validConfig()
	cfg.DB = DBConfig{Host: "db", Port: 1521, User: "quiz", Password: "pw", DBName: "QUIZDB"}

	cfg.DB.Driver = DriverOracle
	assert.Equal(t, "oracle://quiz:pw@db:1521/QUIZDB", cfg.GetDSN())

	cfg.DB.Driver = DriverGodror
	assert.Equal(t, `user="quiz" password="pw" connectString="db:1521/QUIZDB"`, cfg.GetDSN())

	cfg.DB.Driver = DriverSQLite
	cfg.DB.Path = "/tmp/quiz.db"
	assert.Equal(t, "/tmp/quiz.db", cfg.GetDSN())
}
