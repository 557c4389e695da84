package config

import (
	"fmt"

	"github.com/de-tools/finance-atlas/pkg/models/domain"
	"github.com/spf13/viper"
)

// LoadAnalysisConfig reads a plan file. JSON is the documented format, though
// any extension viper recognizes works. An empty path yields the built-in
// sample plans at the default APR.
func LoadAnalysisConfig(path string) (domain.AnalysisConfig, error) {
	if path == "" {
		return domain.AnalysisConfig{
			RegularAPR:   domain.DefaultRegularAPR,
			PaymentPlans: domain.SamplePlans(),
		}, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("regular_apr", domain.DefaultRegularAPR)

	if err := v.ReadInConfig(); err != nil {
		return domain.AnalysisConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg domain.AnalysisConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return domain.AnalysisConfig{}, fmt.Errorf("failed to parse plan config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return domain.AnalysisConfig{}, err
	}
	return cfg, nil
}

func validate(cfg domain.AnalysisConfig) error {
	if cfg.RegularAPR <= 0 {
		return fmt.Errorf("regular_apr must be positive, got %.2f", cfg.RegularAPR)
	}
	if len(cfg.PaymentPlans) == 0 {
		return fmt.Errorf("config declares no payment plans")
	}
	for i, plan := range cfg.PaymentPlans {
		if err := plan.Validate(); err != nil {
			return fmt.Errorf("payment plan %d: %w", i+1, err)
		}
	}
	return nil
}
