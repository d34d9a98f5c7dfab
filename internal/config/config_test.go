package config

import "testing"

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STATIC_PATH", "CORS_ORIGIN", "APP_ENV", "DB_DRIVER",
		"DB_PATH", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT", "ORDERS_LOCK_REMOVAL", "ORDERS_ALLOW_REOPEN"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.CORSOrigin != "*" {
		t.Errorf("CORSOrigin = %q, want *", cfg.Server.CORSOrigin)
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Server.Environment)
	}
	if cfg.DB.Driver != DriverSQLite {
		t.Errorf("Driver = %q, want %q", cfg.DB.Driver, DriverSQLite)
	}
	if cfg.DB.Path != "./data/drinkorder.db" {
		t.Errorf("Path = %q, want ./data/drinkorder.db", cfg.DB.Path)
	}
	if cfg.Orders.LockRemoval {
		t.Error("LockRemoval should default to false")
	}
	if !cfg.Orders.AllowReopen {
		t.Error("AllowReopen should default to true")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/drinkorder")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("ORDERS_LOCK_REMOVAL", "true")
	t.Setenv("ORDERS_ALLOW_REOPEN", "false")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.DB.Driver != DriverPostgres {
		t.Errorf("Driver = %q, want %q", cfg.DB.Driver, DriverPostgres)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Log.Format)
	}
	if !cfg.Orders.LockRemoval {
		t.Error("LockRemoval should be true")
	}
	if cfg.Orders.AllowReopen {
		t.Error("AllowReopen should be false")
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"non-numeric port", map[string]string{"PORT": "eighty"}},
		{"unknown driver", map[string]string{"DB_DRIVER": "mysql"}},
		{"postgres without url", map[string]string{"DB_DRIVER": "postgres", "DATABASE_URL": ""}},
		{"bad lock flag", map[string]string{"ORDERS_LOCK_REMOVAL": "sometimes"}},
		{"bad reopen flag", map[string]string{"ORDERS_ALLOW_REOPEN": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", "")
			t.Setenv("DB_DRIVER", "")
			t.Setenv("ORDERS_LOCK_REMOVAL", "")
			t.Setenv("ORDERS_ALLOW_REOPEN", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := FromEnv(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
