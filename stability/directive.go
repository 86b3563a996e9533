// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stability

import (
	"go/ast"
	"strings"
)

const (
	// Directive marks the declaration whose doc comment contains it.
	Directive = "//stability:snapshot"

	// SuppressName is the linter name recognised in //nolint lines.
	SuppressName = "snapshot"
)

// ParseDirective parses one raw comment line, including its leading "//".
// ok is false when the line is not a snapshot directive. A directive
// without a stage yields [Default]; one with an unknown stage yields ok and
// an error wrapping [ErrUnknownStage].
func ParseDirective(line string) (stage Stage, ok bool, err error) {
	rest, found := strings.CutPrefix(line, Directive)
	if !found {
		return 0, false, nil
	}
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return 0, false, nil
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return Default, true, nil
	}
	stage, err = ParseStage(rest)
	return stage, true, err
}

// IsSuppression reports whether a raw comment line silences snapshot
// reports. Both a bare //nolint and a //nolint list naming "snapshot"
// qualify; text after the list is ignored.
func IsSuppression(line string) bool {
	rest, found := strings.CutPrefix(line, "//nolint")
	if !found {
		return false
	}
	if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
		return true
	}
	list, found := strings.CutPrefix(rest, ":")
	if !found {
		return false
	}
	if i := strings.IndexAny(list, " \t"); i >= 0 {
		list = list[:i]
	}
	for name := range strings.SplitSeq(list, ",") {
		if name == SuppressName {
			return true
		}
	}
	return false
}

// Suppressed reports whether doc contains a suppression line.
func Suppressed(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if IsSuppression(c.Text) {
			return true
		}
	}
	return false
}
