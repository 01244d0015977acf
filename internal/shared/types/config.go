package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	DataDir         string       `json:"data_dir" yaml:"data_dir" toml:"data_dir"`
	Dir             string       `json:"dir" yaml:"dir" toml:"dir"`
	GraphsDir       string       `json:"graphs_dir" yaml:"graphs_dir" toml:"graphs_dir"`
	Tiers           []string     `json:"tiers" yaml:"tiers" toml:"tiers"`
	ReportDate      string       `json:"report_date" yaml:"report_date" toml:"report_date"`
	ReportName      string       `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType      []string     `json:"report_type" yaml:"report_type" toml:"report_type"`
	LogFormat       string       `json:"log_format" yaml:"log_format" toml:"log_format"`
	S3Bucket        string       `json:"s3_bucket" yaml:"s3_bucket" toml:"s3_bucket"`
	S3Prefix        string       `json:"s3_prefix" yaml:"s3_prefix" toml:"s3_prefix"`
	Profile         string       `json:"profile" yaml:"profile" toml:"profile"`
	Region          string       `json:"region" yaml:"region" toml:"region"`
	ClassifierRules []RuleConfig `json:"classifier_rules" yaml:"classifier_rules" toml:"classifier_rules"`
}

// RuleConfig descreve uma regra de classificação lida do arquivo de configuração.
type RuleConfig struct {
	Pattern  string `json:"pattern" yaml:"pattern" toml:"pattern"`
	Category string `json:"category" yaml:"category" toml:"category"`
}
