// control/profile.go
// Author: momentics <momentics@gmail.com>
//
// YAML run profiles. A profile captures one coordinator variant: which cores
// to use, how many threads per core, how threads are split into barrier
// groups, and the priority tier tables. Every field is optional; absent
// fields leave the defaults untouched.

package control

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/momentics/schedbench/api"
)

// ProfileTiers overrides the priority tables.
type ProfileTiers struct {
	RealTime            []int `yaml:"realtime"`
	Nice                []int `yaml:"nice"`
	CoordinatorRealTime *int  `yaml:"coordinator_realtime"`
	CoordinatorNice     *int  `yaml:"coordinator_nice"`
}

// ProfileCoordinator controls the launching thread.
type ProfileCoordinator struct {
	Mode string `yaml:"mode"` // "inherit" or "shared"
	Core *int   `yaml:"core"`
}

// Profile is the on-disk form of a benchmark variant.
type Profile struct {
	Name           string             `yaml:"name"`
	Cores          []int              `yaml:"cores"`
	ThreadsPerCore *int               `yaml:"threads_per_core"`
	Groups         string             `yaml:"groups"`
	TierMode       string             `yaml:"tier_mode"`
	Tiers          ProfileTiers       `yaml:"tiers"`
	Coordinator    ProfileCoordinator `yaml:"coordinator"`
	AffinityStrict *bool              `yaml:"affinity_strict"`
}

// LoadProfile reads and decodes the profile at path.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, api.WrapError(api.ErrCodeConfig, "control: read profile", err).
			WithContext("path", path)
	}
	p, err := ParseProfile(data)
	if err != nil {
		if e, ok := err.(*api.Error); ok {
			e.WithContext("path", path)
		}
		return nil, err
	}
	return p, nil
}

// ParseProfile decodes a YAML profile. Unknown keys are rejected so a typo
// cannot silently fall back to a default.
func ParseProfile(data []byte) (*Profile, error) {
	p := &Profile{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, api.WrapError(api.ErrCodeConfig, "control: decode profile", err)
	}
	if p.ThreadsPerCore != nil && *p.ThreadsPerCore <= 0 {
		return nil, api.NewError(api.ErrCodeConfig,
			fmt.Sprintf("control: threads_per_core must be positive, got %d", *p.ThreadsPerCore))
	}
	return p, nil
}
