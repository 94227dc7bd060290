package config

import (
	"fmt"

	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Profile is a named store connection from the profiles file:
//
//	[analytics]
//	driver = mysql
//	dsn    = atlas:secret@tcp(localhost:3306)/atlas
type Profile struct {
	domain.StoreProfile
	DSN string
}

type Registry interface {
	GetProfiles() ([]domain.StoreProfile, error)
	GetProfile(name string) (*Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles() ([]domain.StoreProfile, error) {
	var profiles []domain.StoreProfile
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, domain.StoreProfile{
				Name:   section.Name(),
				Driver: section.Key("driver").MustString("duckdb"),
			})
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(name string) (*Profile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	dsn := section.Key("dsn").String()
	if dsn == "" {
		return nil, fmt.Errorf("profile %s has no dsn", name)
	}

	return &Profile{
		StoreProfile: domain.StoreProfile{
			Name:   section.Name(),
			Driver: section.Key("driver").MustString("duckdb"),
		},
		DSN: dsn,
	}, nil
}

// LoadWithProfiles loads the app config and, when store.profile is set,
// resolves it against the profiles file at profilesPath.
func LoadWithProfiles(configPath, profilesPath string) (Config, error) {
	cfg, err := Load(configPath)
	if err != nil {
		return Config{}, err
	}
	if cfg.Store.Profile == "" {
		return cfg, nil
	}

	registry, err := NewRegistry(profilesPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load store profiles: %w", err)
	}
	return cfg.ApplyProfile(registry)
}
