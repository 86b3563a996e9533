// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Stage is the lifecycle stage of a snapshot declaration.
// Stages are ordered from least to most stable.
type Stage uint8

const (
	// InDevelopment marks a declaration that has not been completed yet.
	InDevelopment Stage = iota
	// Alpha marks a highly unstable declaration that will most likely change.
	Alpha
	// Beta marks a declaration that is usable but may still change.
	Beta
	// ReleaseCandidate marks a declaration that is unlikely to change and
	// will most likely be part of the next release.
	ReleaseCandidate
)

// Default is the stage of a directive that names none.
const Default = Beta

// ErrUnknownStage reports a label that names no Stage.
var ErrUnknownStage = errors.New("stability: unknown stage")

var labels = [...]string{
	InDevelopment:    "IN_DEVELOPMENT",
	Alpha:            "ALPHA",
	Beta:             "BETA",
	ReleaseCandidate: "RELEASE_CANDIDATE",
}

// Stages returns all stages in ascending order.
func Stages() []Stage {
	return []Stage{InDevelopment, Alpha, Beta, ReleaseCandidate}
}

// Valid reports whether s is one of the declared stages.
func (s Stage) Valid() bool { return int(s) < len(labels) }

// String returns the label of s, e.g. "RELEASE_CANDIDATE".
func (s Stage) String() string {
	if s.Valid() {
		return labels[s]
	}
	return "Stage(" + strconv.Itoa(int(s)) + ")"
}

// ParseStage parses a stage label. Matching ignores case and treats
// spaces and hyphens as underscores, so "release candidate" parses as
// [ReleaseCandidate].
func ParseStage(label string) (Stage, error) {
	norm := strings.ToUpper(strings.TrimSpace(label))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	for i, l := range labels {
		if l == norm {
			return Stage(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownStage, label)
}

// MarshalText implements encoding.TextMarshaler.
func (s Stage) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownStage, int(s))
	}
	return []byte(labels[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stage) UnmarshalText(text []byte) error {
	v, err := ParseStage(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
