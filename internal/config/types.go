package config

// ViavictlConfig is the top-level configuration structure for viavictl.
type ViavictlConfig struct {
	GitLab   GitLabConfig   `yaml:"gitlab"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// GitLabConfig locates the project whose pipelines are created.
type GitLabConfig struct {
	BaseURL string `yaml:"baseURL,omitempty"` // e.g. "https://gitlab.com"
	Project string `yaml:"project,omitempty"` // Full project path, e.g. "softwareradiosystems/srsgnb"

	// ReleaseProject hosts viavictl releases, used by self-update.
	ReleaseProject string `yaml:"releaseProject,omitempty"`
}

// CatalogConfig points at the Viavi test declaration file.
type CatalogConfig struct {
	Path string `yaml:"path,omitempty"` // Relative paths resolve against the working directory
}

// PipelineConfig holds the fixed values sent as pipeline variables.
// Anything not derived from command-line flags lives here.
type PipelineConfig struct {
	InfrastructureTag   string `yaml:"infrastructureTag,omitempty"`
	OS                  string `yaml:"os,omitempty"`
	Compiler            string `yaml:"compiler,omitempty"`
	TestMode            string `yaml:"testMode,omitempty"`
	MakeArgs            string `yaml:"makeArgs,omitempty"`
	Testbed             string `yaml:"testbed,omitempty"`
	Markers             string `yaml:"markers,omitempty"`
	RetinaArgs          string `yaml:"retinaArgs,omitempty"`
	RetinaPodTimeout    int    `yaml:"retinaPodTimeout,omitempty"` // Seconds
	E2ELogLevel         string `yaml:"e2eLogLevel,omitempty"`
	Group               string `yaml:"group,omitempty"`
	PipelineDescription string `yaml:"description,omitempty"`
}
