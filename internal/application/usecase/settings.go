package usecase

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/diillson/segment-report-go/internal/domain/entity"
	"github.com/diillson/segment-report-go/internal/domain/service"
	"github.com/diillson/segment-report-go/internal/shared/types"
)

const (
	defaultDataDir    = "data"
	defaultOutputDir  = "output"
	defaultGraphsDir  = "graficos"
	defaultReportName = "resumo_segmentacao"
	defaultEnvFile    = ".env"
)

// ResolveSettings combina flags, arquivo de configuração, ambiente e padrões,
// nessa ordem de prioridade.
func (uc *ReportUseCase) ResolveSettings(args *types.CLIArgs) (entity.Settings, error) {
	envCfg, err := uc.configRepo.LoadEnvConfig(defaultEnvFile)
	if err != nil {
		return entity.Settings{}, err
	}

	fileCfg := &types.Config{}
	if args.ConfigFile != "" {
		fileCfg, err = uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return entity.Settings{}, err
		}
	}

	outputDir := firstNonEmpty(args.Dir, fileCfg.Dir, envCfg.Dir, defaultOutputDir)

	settings := entity.Settings{
		DataDir:     firstNonEmpty(args.DataDir, fileCfg.DataDir, envCfg.DataDir, defaultDataDir),
		OutputDir:   outputDir,
		GraphsDir:   firstNonEmpty(args.GraphsDir, fileCfg.GraphsDir, envCfg.GraphsDir, filepath.Join(outputDir, defaultGraphsDir)),
		Tiers:       entity.NormalizeTiers(firstNonEmptyList(args.Tiers, fileCfg.Tiers, envCfg.Tiers, entity.DefaultTiers)),
		ReportTypes: normalizeReportTypes(firstNonEmptyList(args.ReportType, fileCfg.ReportType, envCfg.ReportType)),
		ReportName:  firstNonEmpty(args.ReportName, fileCfg.ReportName, envCfg.ReportName),
		LogFormat:   strings.ToLower(firstNonEmpty(args.LogFormat, fileCfg.LogFormat, envCfg.LogFormat, "text")),
		Publish: entity.PublishTarget{
			Bucket:  firstNonEmpty(args.S3Bucket, fileCfg.S3Bucket, envCfg.S3Bucket),
			Prefix:  firstNonEmpty(args.S3Prefix, fileCfg.S3Prefix, envCfg.S3Prefix),
			Profile: firstNonEmpty(args.Profile, fileCfg.Profile, envCfg.Profile),
			Region:  firstNonEmpty(args.Region, fileCfg.Region, envCfg.Region),
		},
	}

	if len(settings.ReportTypes) > 0 && settings.ReportName == "" {
		settings.ReportName = defaultReportName
	}

	if raw := firstNonEmpty(args.ReportDate, fileCfg.ReportDate, envCfg.ReportDate); raw != "" {
		date, err := service.ParseReportDate(raw)
		if err != nil {
			return entity.Settings{}, err
		}
		settings.ReportDate = &date
	}

	rules, err := buildRules(fileCfg.ClassifierRules)
	if err != nil {
		return entity.Settings{}, err
	}
	settings.Rules = rules

	return settings, nil
}

// buildRules converte as regras do arquivo; sem regras, usa a tabela padrão.
func buildRules(configured []types.RuleConfig) ([]entity.ClassificationRule, error) {
	if len(configured) == 0 {
		return entity.DefaultRules(), nil
	}
	rules := make([]entity.ClassificationRule, 0, len(configured))
	for _, rc := range configured {
		cat, err := entity.ParseCategory(rc.Category)
		if err != nil {
			return nil, fmt.Errorf("classifier rule %q: %w", rc.Pattern, err)
		}
		rules = append(rules, entity.ClassificationRule{Pattern: rc.Pattern, Category: cat})
	}
	return rules, nil
}

func normalizeReportTypes(in []string) []string {
	var out []string
	for _, t := range in {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func firstNonEmptyList(lists ...[]string) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}
