package config

import (
	"context"
	"fmt"

	"github.com/de-tools/finance-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry reads named defaults profiles from the user's ini file.
type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.Profile, error)
	GetProfile(ctx context.Context, name string) (domain.Profile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]domain.Profile, error) {
	var profiles []domain.Profile
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profile, err := parseProfile(section)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (domain.Profile, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("profile %s not found", name)
	}
	return parseProfile(section)
}

func parseProfile(section *ini.Section) (domain.Profile, error) {
	apr, err := section.Key("regular_apr").Float64()
	if err != nil {
		return domain.Profile{}, fmt.Errorf("profile %s: regular_apr: %w", section.Name(), err)
	}
	if apr <= 0 {
		return domain.Profile{}, fmt.Errorf("profile %s: regular_apr must be positive, got %.2f",
			section.Name(), apr)
	}

	profile := domain.Profile{Name: section.Name(), RegularAPR: apr}
	switch format := section.Key("format").String(); format {
	case "", string(domain.FormatConsole):
		profile.Format = domain.FormatConsole
	case string(domain.FormatMarkdown):
		profile.Format = domain.FormatMarkdown
	default:
		return domain.Profile{}, fmt.Errorf("profile %s: unknown format %q", section.Name(), format)
	}
	return profile, nil
}
