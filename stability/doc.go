// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stability defines the snapshot marker for unstable API surface.
//
// A declaration is marked by a directive line in its doc comment:
//
//	// Widget is still being designed.
//	//
//	//stability:snapshot ALPHA
//	type Widget struct{ ... }
//
// The stage is one of IN_DEVELOPMENT, ALPHA, BETA and RELEASE_CANDIDATE and
// defaults to BETA when omitted. Package clauses, types, functions, methods,
// constants, variables, struct fields and interface methods can be marked.
// An embedded field or interface is named after its type.
//
// The marker has no runtime effect. Tools read it with [Scan]; the
// snapshotcheck analyzer reports every marked declaration and every use of
// one from another package. A //nolint:snapshot line in the same doc comment
// silences the report for that declaration, and for uses inside it.
package stability
