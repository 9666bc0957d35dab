package database

import (
	"time"

	"github.com/loopcard/loyalty-backend/pkg/retry"
)

type Config struct {
	Hosts       []string
	Keyspace    string
	Timeout     time.Duration
	Retries     int
	ConnectWait time.Duration
	RetryConfig *retry.Config
}

func NewConfig(databaseHost string, databaseHostPort string) *Config {
	return &Config{
		Hosts:       []string{databaseHost + ":" + databaseHostPort},
		Keyspace:    "loyalty",
		Timeout:     time.Second * 30,
		Retries:     5,
		ConnectWait: time.Second * 10,
		RetryConfig: retry.DefaultConfig(),
	}
}

func (c *Config) WithHosts(hosts []string) *Config {
	c.Hosts = hosts
	return c
}

func (c *Config) WithKeyspace(keyspace string) *Config {
	c.Keyspace = keyspace
	return c
}
