package config

const (
	DefaultGitLabBaseURL  = "https://gitlab.com"
	DefaultProject        = "softwareradiosystems/srsgnb"
	DefaultReleaseProject = "softwareradiosystems/viavictl"
	DefaultCatalogPath    = "tests/e2e/tests/viavi/test_declaration.yml"
)

// GetDefaultConfig returns the built-in configuration. It reproduces the
// values used by the manual Viavi pipeline so the tool works without any
// configuration file.
func GetDefaultConfig() ViavictlConfig {
	return ViavictlConfig{
		GitLab: GitLabConfig{
			BaseURL:        DefaultGitLabBaseURL,
			Project:        DefaultProject,
			ReleaseProject: DefaultReleaseProject,
		},
		Catalog: CatalogConfig{
			Path: DefaultCatalogPath,
		},
		Pipeline: PipelineConfig{
			InfrastructureTag:   "amd64-avx2-avx512",
			OS:                  "ubuntu-24.04",
			Compiler:            "gcc",
			TestMode:            "none",
			MakeArgs:            "-j6",
			Testbed:             "viavi",
			Markers:             "viavi_manual",
			RetinaArgs:          "gnb.all.pcap=True gnb.all.rlc_enable=True gnb.all.rlc_rb_type=srb",
			RetinaPodTimeout:    900,
			E2ELogLevel:         "warning",
			Group:               "viavi",
			PipelineDescription: "Viavi manual test",
		},
	}
}
