package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFileMissingIsEmpty(t *testing.T) {
	cfg, err := readFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config must not error: %v", err)
	}
	if cfg.LLM.Provider != "" || cfg.DBPath != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestReadFileParsesYAML(t *testing.T) {
	path := writeConfig(t, `
llm:
  provider: openrouter
  openrouter:
    api_key: sk-test
    model: google/gemini-2.0-flash-exp
db_path: /tmp/tutor.db
learner_profile: "visual learner, prefers worked examples"
`)

	cfg, err := readFile(path)
	if err != nil {
		t.Fatalf("readFile: %v", err)
	}
	if cfg.LLM.Provider != "openrouter" {
		t.Errorf("provider = %q", cfg.LLM.Provider)
	}
	if cfg.LLM.OpenRouter.APIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.LLM.OpenRouter.APIKey)
	}
	if cfg.DBPath != "/tmp/tutor.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
}

func TestReadFileRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "llm: [not a mapping")
	if _, err := readFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestExportDoesNotOverrideEnv(t *testing.T) {
	t.Setenv("AUTODIDACT_LLM_PROVIDER", "anthropic")
	t.Setenv("AUTODIDACT_DB", "")
	os.Unsetenv("AUTODIDACT_DB")

	cfg := &File{}
	cfg.LLM.Provider = "gemini"
	cfg.DBPath = "/from/file.db"
	cfg.export()

	if got := os.Getenv("AUTODIDACT_LLM_PROVIDER"); got != "anthropic" {
		t.Errorf("env must win over file, got %q", got)
	}
	if got := os.Getenv("AUTODIDACT_DB"); got != "/from/file.db" {
		t.Errorf("unset env should take the file value, got %q", got)
	}
}
