package pipeline

import (
	"fmt"

	"viavictl/internal/catalog"
	"viavictl/internal/config"

	"github.com/xanzy/go-gitlab"
)

// Variable is a single CI/CD variable passed to the created pipeline.
type Variable struct {
	Key   string
	Value string
}

// Variables keeps pipeline variables in the order they are sent.
type Variables []Variable

// Get returns the value of key and whether it is present.
func (v Variables) Get(key string) (string, bool) {
	for _, variable := range v {
		if variable.Key == key {
			return variable.Value, true
		}
	}
	return "", false
}

func (v Variables) toOptions() *[]*gitlab.PipelineVariableOptions {
	opts := make([]*gitlab.PipelineVariableOptions, 0, len(v))
	for _, variable := range v {
		opts = append(opts, &gitlab.PipelineVariableOptions{
			Key:   gitlab.Ptr(variable.Key),
			Value: gitlab.Ptr(variable.Value),
		})
	}
	return &opts
}

// PytestArgs builds the pytest arguments that select the campaign on the testbed.
func PytestArgs(p RunParameters, test catalog.Test, retinaPodTimeout int) string {
	args := fmt.Sprintf(`--viavi-manual-campaign-filename "%s" --viavi-manual-test-name "%s" --viavi-manual-test-timeout %d --retina-pod-timeout %d`,
		test.CampaignFilename, test.ID, p.EffectiveTimeout(), retinaPodTimeout)
	if p.GnbExtra != "" {
		args += fmt.Sprintf(` --viavi-manual-extra-gnb-arguments "%s"`, p.GnbExtra)
	}
	return args
}

// BuildVariables assembles the pipeline variables for running test.
func BuildVariables(p RunParameters, test catalog.Test, cfg config.PipelineConfig) Variables {
	return Variables{
		{Key: "INFRASTRUCTURE_TAG", Value: cfg.InfrastructureTag},
		{Key: "OS", Value: cfg.OS},
		{Key: "COMPILER", Value: cfg.Compiler},
		{Key: "TEST_MODE", Value: cfg.TestMode},
		{Key: "BUILD_ARGS", Value: p.BuildArgs},
		{Key: "MAKE_ARGS", Value: cfg.MakeArgs},
		{Key: "UHD_VERSION", Value: ""},
		{Key: "DPDK_VERSION", Value: p.DPDKVersion},
		{Key: "TESTBED", Value: cfg.Testbed},
		{Key: "MARKERS", Value: cfg.Markers},
		{Key: "KEYWORDS", Value: ""},
		{Key: "PYTEST_ARGS", Value: PytestArgs(p, test, cfg.RetinaPodTimeout)},
		{Key: "RETINA_ARGS", Value: cfg.RetinaArgs},
		{Key: "E2E_LOG_LEVEL", Value: cfg.E2ELogLevel},
		{Key: "GROUP", Value: cfg.Group},
		{Key: "PIPELINE_DESCRIPTION", Value: cfg.PipelineDescription},
	}
}
