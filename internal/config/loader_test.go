package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"viavictl/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, filename string, content ViavictlConfig) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, filename)
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	err = os.WriteFile(tempFilePath, data, 0644)
	require.NoError(t, err)
	return tempFilePath
}

// withConfigPaths points both config layers at files below dir for the duration of the test.
func withConfigPaths(t *testing.T, dir string) (userDir, projectDir string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})

	userDir = filepath.Join(dir, "home", userConfigDir)
	projectDir = filepath.Join(dir, "work", projectConfigDir)
	getUserConfigPath = func() (string, error) {
		return filepath.Join(userDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(projectDir, configFileName), nil
	}
	return userDir, projectDir
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	withConfigPaths(t, t.TempDir())

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loadedConfig)
	assert.Equal(t, "https://gitlab.com", loadedConfig.GitLab.BaseURL)
	assert.Equal(t, "softwareradiosystems/srsgnb", loadedConfig.GitLab.Project)
	assert.Equal(t, 900, loadedConfig.Pipeline.RetinaPodTimeout)
}

func TestLoadConfig_UnresolvablePathsAreLogged(t *testing.T) {
	withConfigPaths(t, t.TempDir())
	getUserConfigPath = func() (string, error) { return "", errors.New("no home directory") }
	getProjectConfigPath = func() (string, error) { return "", errors.New("cwd removed") }

	var buf bytes.Buffer
	logging.InitForCLI(logging.LevelWarn, &buf)

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loadedConfig)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "subsystem=Config")
	assert.Contains(t, out, "Could not determine user config path: no home directory")
	assert.Contains(t, out, "Could not determine project config path: cwd removed")
}

func TestLoadConfig_UserOverride(t *testing.T) {
	userDir, _ := withConfigPaths(t, t.TempDir())

	createTempConfigFile(t, userDir, configFileName, ViavictlConfig{
		GitLab:   GitLabConfig{BaseURL: "https://gitlab.example.com"},
		Pipeline: PipelineConfig{OS: "ubuntu-22.04", RetinaPodTimeout: 1200},
	})

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://gitlab.example.com", loadedConfig.GitLab.BaseURL)
	assert.Equal(t, DefaultProject, loadedConfig.GitLab.Project, "unset fields keep their default")
	assert.Equal(t, "ubuntu-22.04", loadedConfig.Pipeline.OS)
	assert.Equal(t, 1200, loadedConfig.Pipeline.RetinaPodTimeout)
	assert.Equal(t, "gcc", loadedConfig.Pipeline.Compiler)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	userDir, projectDir := withConfigPaths(t, t.TempDir())

	createTempConfigFile(t, userDir, configFileName, ViavictlConfig{
		Catalog:  CatalogConfig{Path: "/user/catalog.yml"},
		Pipeline: PipelineConfig{Compiler: "clang"},
	})
	createTempConfigFile(t, projectDir, configFileName, ViavictlConfig{
		Catalog: CatalogConfig{Path: "/project/catalog.yml"},
	})

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/project/catalog.yml", loadedConfig.Catalog.Path)
	assert.Equal(t, "clang", loadedConfig.Pipeline.Compiler)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	_, projectDir := withConfigPaths(t, t.TempDir())

	require.NoError(t, os.MkdirAll(projectDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, configFileName), []byte("gitlab: [unclosed"), 0644))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading project config")
}

func TestLoadConfig_EnvExpansion(t *testing.T) {
	_, projectDir := withConfigPaths(t, t.TempDir())

	originalLookupEnv := osLookupEnv
	defer func() { osLookupEnv = originalLookupEnv }()
	osLookupEnv = func(key string) (string, bool) {
		if key == "CI_SERVER_URL" {
			return "https://gitlab.internal", true
		}
		return "", false
	}

	require.NoError(t, os.MkdirAll(projectDir, 0755))
	content := "gitlab:\n  baseURL: \"${CI_SERVER_URL}\"\n  project: \"${VIAVI_PROJECT:-radio/srsgnb}\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, configFileName), []byte(content), 0644))

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://gitlab.internal", loadedConfig.GitLab.BaseURL)
	assert.Equal(t, "radio/srsgnb", loadedConfig.GitLab.Project)
}

func TestGetUserConfigDir(t *testing.T) {
	originalOsUserHomeDir := osUserHomeDir
	defer func() { osUserHomeDir = originalOsUserHomeDir }()
	osUserHomeDir = func() (string, error) { return "/home/tester", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "viavictl"), dir)
}
