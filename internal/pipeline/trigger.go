package pipeline

import (
	"context"
	"fmt"

	"viavictl/internal/catalog"
	"viavictl/internal/config"
	"viavictl/pkg/logging"

	"github.com/xanzy/go-gitlab"
)

const subsystem = "Pipeline"

// PipelineCreator is the part of the GitLab pipelines API the trigger needs.
type PipelineCreator interface {
	CreatePipeline(pid interface{}, opt *gitlab.CreatePipelineOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Pipeline, *gitlab.Response, error)
}

// Trigger creates pipelines on a single GitLab project.
type Trigger struct {
	pipelines PipelineCreator
	project   string
	settings  config.PipelineConfig
}

// NewTrigger creates a Trigger talking to the GitLab instance described by
// cfg, authenticated with a private token. The client does not retry
// failed requests.
func NewTrigger(cfg config.ViavictlConfig, token string) (*Trigger, error) {
	client, err := gitlab.NewClient(token,
		gitlab.WithBaseURL(cfg.GitLab.BaseURL),
		gitlab.WithoutRetries(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client for %s: %w", cfg.GitLab.BaseURL, err)
	}
	return NewTriggerWithClient(client.Pipelines, cfg.GitLab.Project, cfg.Pipeline), nil
}

// NewTriggerWithClient creates a Trigger on top of an existing pipelines client.
func NewTriggerWithClient(pipelines PipelineCreator, project string, settings config.PipelineConfig) *Trigger {
	return &Trigger{
		pipelines: pipelines,
		project:   project,
		settings:  settings,
	}
}

// Project returns the full path of the project pipelines are created on.
func (t *Trigger) Project() string {
	return t.project
}

// Variables returns the variables Run would send for test.
func (t *Trigger) Variables(p RunParameters, test catalog.Test) Variables {
	return BuildVariables(p, test, t.settings)
}

// Run creates one pipeline on p.Branch that runs test and returns its web URL.
func (t *Trigger) Run(ctx context.Context, p RunParameters, test catalog.Test) (string, error) {
	vars := t.Variables(p, test)
	logging.Debug(subsystem, "Creating pipeline on %s@%s with %d variables", t.project, p.Branch, len(vars))

	pipeline, _, err := t.pipelines.CreatePipeline(t.project, &gitlab.CreatePipelineOptions{
		Ref:       gitlab.Ptr(p.Branch),
		Variables: vars.toOptions(),
	}, gitlab.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to create pipeline on %s: %w", t.project, err)
	}

	logging.Info(subsystem, "Created pipeline %d for test %q", pipeline.ID, test.ID)
	return pipeline.WebURL, nil
}
