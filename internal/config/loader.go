package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"viavictl/pkg/logging"

	"gopkg.in/yaml.v3"
)

const subsystem = "Config"

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osLookupEnv = os.LookupEnv

const (
	userConfigDir    = ".config/viavictl"
	projectConfigDir = ".viavictl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the viavictl configuration by layering default, user, and project settings.
func LoadConfig() (ViavictlConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn(subsystem, "Could not determine user config path: %v", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return ViavictlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn(subsystem, "Could not determine project config path: %v", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return ViavictlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a ViavictlConfig from a YAML file, expanding
// ${VAR} and ${VAR:-default} references first.
func loadConfigFromFile(filePath string) (ViavictlConfig, error) {
	var config ViavictlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return ViavictlConfig{}, err
	}
	err = yaml.Unmarshal([]byte(expandEnv(string(data))), &config)
	if err != nil {
		return ViavictlConfig{}, err
	}
	return config, nil
}

// expandEnv replaces ${VAR} and ${VAR:-default} with values from the
// environment. Unset variables without a default expand to "".
func expandEnv(s string) string {
	return os.Expand(s, func(ref string) string {
		name, fallback, hasDefault := strings.Cut(ref, ":-")
		value, ok := osLookupEnv(name)
		if (!ok || value == "") && hasDefault {
			return fallback
		}
		return value
	})
}

// mergeConfigs merges 'overlay' config into 'base' config.
// Only fields set in the overlay replace base values.
func mergeConfigs(base, overlay ViavictlConfig) ViavictlConfig {
	merged := base

	overrideString(&merged.GitLab.BaseURL, overlay.GitLab.BaseURL)
	overrideString(&merged.GitLab.Project, overlay.GitLab.Project)
	overrideString(&merged.GitLab.ReleaseProject, overlay.GitLab.ReleaseProject)

	overrideString(&merged.Catalog.Path, overlay.Catalog.Path)

	p, o := &merged.Pipeline, overlay.Pipeline
	overrideString(&p.InfrastructureTag, o.InfrastructureTag)
	overrideString(&p.OS, o.OS)
	overrideString(&p.Compiler, o.Compiler)
	overrideString(&p.TestMode, o.TestMode)
	overrideString(&p.MakeArgs, o.MakeArgs)
	overrideString(&p.Testbed, o.Testbed)
	overrideString(&p.Markers, o.Markers)
	overrideString(&p.RetinaArgs, o.RetinaArgs)
	overrideString(&p.E2ELogLevel, o.E2ELogLevel)
	overrideString(&p.Group, o.Group)
	overrideString(&p.PipelineDescription, o.PipelineDescription)
	if o.RetinaPodTimeout != 0 {
		p.RetinaPodTimeout = o.RetinaPodTimeout
	}

	return merged
}

func overrideString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
