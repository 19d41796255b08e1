// Package pipeline validates run parameters and creates the GitLab pipeline
// that runs a Viavi campaign test.
//
// A run is a single CreatePipeline call on the configured project with the
// requested branch as ref. The variables are built by BuildVariables in a
// fixed order; PYTEST_ARGS carries the campaign file name, the test id and
// the test timeout to the test harness. The timeout bounds the test on the
// testbed, not the API call.
package pipeline
