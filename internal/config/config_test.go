package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SMARTSHOP_PORT", "SMARTSHOP_DB_PATH", "SMARTSHOP_LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DBPath != "smartshop.db" {
		t.Errorf("DBPath = %q, want smartshop.db", cfg.DBPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SMARTSHOP_PORT", "9000")
	t.Setenv("GEMINI_API_KEY", "secret")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.GeminiAPIKey != "secret" {
		t.Errorf("GeminiAPIKey = %q, want secret", cfg.GeminiAPIKey)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad port", func(c *Config) { c.Port = "http" }, true},
		{"port out of range", func(c *Config) { c.Port = "70000" }, true},
		{"bad level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"empty db path", func(c *Config) { c.DBPath = "" }, true},
		{"missing key is fine", func(c *Config) { c.GeminiAPIKey = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Port: "8080", DBPath: "x.db", LogLevel: "info", LogFormat: "text"}
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
