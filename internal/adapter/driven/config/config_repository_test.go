package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"config.toml": `
data_dir = "planilhas"
tiers = ["ouro", "prata"]
report_type = ["csv", "xlsx"]

[[classifier_rules]]
pattern = "pix"
category = "other"
`,
		"config.yaml": `
data_dir: planilhas
tiers: [ouro, prata]
report_type: [csv, xlsx]
classifier_rules:
  - pattern: pix
    category: other
`,
		"config.json": `{
  "data_dir": "planilhas",
  "tiers": ["ouro", "prata"],
  "report_type": ["csv", "xlsx"],
  "classifier_rules": [{"pattern": "pix", "category": "other"}]
}`,
	}

	repo := NewConfigRepository()
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			cfg, err := repo.LoadConfigFile(writeFile(t, dir, name, content))
			if err != nil {
				t.Fatalf("LoadConfigFile: %v", err)
			}
			if cfg.DataDir != "planilhas" {
				t.Errorf("DataDir = %q", cfg.DataDir)
			}
			if !reflect.DeepEqual(cfg.Tiers, []string{"ouro", "prata"}) {
				t.Errorf("Tiers = %v", cfg.Tiers)
			}
			if !reflect.DeepEqual(cfg.ReportType, []string{"csv", "xlsx"}) {
				t.Errorf("ReportType = %v", cfg.ReportType)
			}
			if len(cfg.ClassifierRules) != 1 || cfg.ClassifierRules[0].Pattern != "pix" {
				t.Errorf("ClassifierRules = %+v", cfg.ClassifierRules)
			}
		})
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	repo := NewConfigRepository()

	if _, err := repo.LoadConfigFile(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := repo.LoadConfigFile(writeFile(t, dir, "config.ini", "a=b")); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := repo.LoadConfigFile(dir); err == nil {
		t.Error("expected error for directory")
	}
}

func TestLoadEnvConfig(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", `
SEGREPORT_DATA_DIR=from_file
SEGREPORT_TIERS=ouro, prata ,,rubi
SEGREPORT_S3_BUCKET=bucket-do-arquivo
`)

	processEnv := map[string]string{
		"SEGREPORT_S3_BUCKET":  "bucket-do-processo",
		"SEGREPORT_LOG_FORMAT": "json",
	}
	repo := &ConfigRepositoryImpl{lookupEnv: func(key string) (string, bool) {
		v, ok := processEnv[key]
		return v, ok
	}}

	cfg, err := repo.LoadEnvConfig(envFile)
	if err != nil {
		t.Fatalf("LoadEnvConfig: %v", err)
	}
	if cfg.DataDir != "from_file" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if !reflect.DeepEqual(cfg.Tiers, []string{"ouro", "prata", "rubi"}) {
		t.Errorf("Tiers = %v", cfg.Tiers)
	}
	if cfg.S3Bucket != "bucket-do-processo" {
		t.Errorf("process env must win over .env, got %q", cfg.S3Bucket)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q", cfg.LogFormat)
	}
}

func TestLoadEnvConfigMissingFile(t *testing.T) {
	repo := &ConfigRepositoryImpl{lookupEnv: func(string) (string, bool) { return "", false }}
	cfg, err := repo.LoadEnvConfig(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("missing .env must not fail: %v", err)
	}
	if cfg.DataDir != "" || cfg.Tiers != nil {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}
