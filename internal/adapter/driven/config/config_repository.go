package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/segment-report-go/internal/domain/repository"
	"github.com/diillson/segment-report-go/internal/shared/types"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Prefixo das variáveis de ambiente reconhecidas.
const envPrefix = "SEGREPORT_"

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct {
	lookupEnv func(string) (string, bool)
}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{lookupEnv: os.LookupEnv}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

// LoadEnvConfig lê as variáveis SEGREPORT_* do ambiente e, como fallback, do
// arquivo .env informado. Variáveis já definidas no processo têm prioridade.
// Um .env inexistente não é erro.
func (r *ConfigRepositoryImpl) LoadEnvConfig(envFile string) (*types.Config, error) {
	fileValues := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading env file: %w", err)
		}
		if values != nil {
			fileValues = values
		}
	}

	get := func(key string) string {
		key = envPrefix + key
		if v, ok := r.lookupEnv(key); ok {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(fileValues[key])
	}

	return &types.Config{
		DataDir:    get("DATA_DIR"),
		Dir:        get("OUTPUT_DIR"),
		GraphsDir:  get("GRAPHS_DIR"),
		Tiers:      splitList(get("TIERS")),
		ReportDate: get("REPORT_DATE"),
		ReportName: get("REPORT_NAME"),
		ReportType: splitList(get("REPORT_TYPE")),
		LogFormat:  get("LOG_FORMAT"),
		S3Bucket:   get("S3_BUCKET"),
		S3Prefix:   get("S3_PREFIX"),
		Profile:    get("AWS_PROFILE"),
		Region:     get("AWS_REGION"),
	}, nil
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
