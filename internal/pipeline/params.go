package pipeline

import (
	"fmt"
	"strings"
)

const (
	// DefaultBuildArgs are the CMake arguments used when --build-args is not given.
	DefaultBuildArgs = `-DCMAKE_BUILD_TYPE=Release -DFORCE_DEBUG_INFO=True -DENABLE_UHD=False -DENABLE_DPDK=True -DENABLE_ZEROMQ=False -DMARCH="x86-64-v4"`
	// DefaultDPDKVersion is the DPDK build used when --dpdk-version is not given.
	DefaultDPDKVersion = "23.11.1_avx512"
	// DefaultTimeout is the test timeout in seconds forwarded to the harness
	// when --timeout is not given.
	DefaultTimeout = 972800
)

// RunParameters carries everything the user chose on the command line.
type RunParameters struct {
	ListOnly    bool
	Token       string
	Branch      string
	TestID      string
	Timeout     int // Seconds, only used when TimeoutSet
	TimeoutSet  bool
	GnbExtra    string
	BuildArgs   string
	DPDKVersion string
}

// EffectiveTimeout returns the timeout forwarded to the test harness. An
// explicit 0 is forwarded as is.
func (p RunParameters) EffectiveTimeout() int {
	if p.TimeoutSet {
		return p.Timeout
	}
	return DefaultTimeout
}

// MissingArgumentsError lists every required argument that was not supplied.
type MissingArgumentsError struct {
	Missing []string
}

func (e *MissingArgumentsError) Error() string {
	lines := make([]string, 0, len(e.Missing))
	for _, name := range e.Missing {
		lines = append(lines, fmt.Sprintf("%s is required to run a test.", name))
	}
	return strings.Join(lines, "\n")
}

// Validate checks that p is complete enough to trigger a pipeline. Listing
// needs nothing, so p is returned untouched when ListOnly is set.
func Validate(p RunParameters) (RunParameters, error) {
	if p.ListOnly {
		return p, nil
	}
	return validate(p, true)
}

// ValidateForSelection is Validate for runs whose test is chosen later,
// interactively. TestID is not required.
func ValidateForSelection(p RunParameters) (RunParameters, error) {
	return validate(p, false)
}

func validate(p RunParameters, requireTestID bool) (RunParameters, error) {
	var missing []string
	if p.Token == "" {
		missing = append(missing, "Token")
	}
	if p.Branch == "" {
		missing = append(missing, "Branch")
	}
	if requireTestID && p.TestID == "" {
		missing = append(missing, "Testid")
	}
	if len(missing) > 0 {
		return p, &MissingArgumentsError{Missing: missing}
	}

	if p.Timeout < 0 {
		return p, fmt.Errorf("timeout must be a positive number of seconds, got %d", p.Timeout)
	}
	if p.BuildArgs == "" {
		p.BuildArgs = DefaultBuildArgs
	}
	if p.DPDKVersion == "" {
		p.DPDKVersion = DefaultDPDKVersion
	}
	return p, nil
}
