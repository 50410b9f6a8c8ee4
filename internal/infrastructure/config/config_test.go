package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "10000" {
		t.Errorf("Port = %q, want 10000", cfg.Port)
	}
	if cfg.Mongo.Database != "gym_platform" {
		t.Errorf("Mongo.Database = %q, want gym_platform", cfg.Mongo.Database)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q, want localhost:6379", cfg.Redis.Addr)
	}
	if cfg.Redis.PoolSize != 10 {
		t.Errorf("Redis.PoolSize = %d, want 10", cfg.Redis.PoolSize)
	}
	if cfg.Redis.Password != "" {
		t.Errorf("Redis.Password = %q, want empty", cfg.Redis.Password)
	}
	if cfg.TokenTTL != "24h" {
		t.Errorf("TokenTTL = %q, want 24h", cfg.TokenTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_DB", "gym_platform_test")
	t.Setenv("REDIS_PASSWORD", "hunter2")
	t.Setenv("REDIS_POOL_SIZE", "25")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.Mongo.Database != "gym_platform_test" {
		t.Errorf("Mongo.Database = %q, want gym_platform_test", cfg.Mongo.Database)
	}
	if cfg.Redis.Password != "hunter2" {
		t.Errorf("Redis.Password = %q, want hunter2", cfg.Redis.Password)
	}
	if cfg.Redis.PoolSize != 25 {
		t.Errorf("Redis.PoolSize = %d, want 25", cfg.Redis.PoolSize)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}
