// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package snapshotcheck defines an analyzer that reports snapshot
// declarations and their uses.
//
// Every declaration carrying a //stability:snapshot directive is reported
// where it is declared. The analyzer also exports a fact for it, so that
// packages importing it get a report on each use, and on each import of a
// package whose package clause is marked. A //nolint:snapshot line in a
// declaration's doc comment silences both kinds of report inside it.
//
// The -config flag names a YAML file restricting the stages and the kinds
// of report; see [Config].
package snapshotcheck

import (
	"go/ast"
	"go/types"
	"strconv"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"code.hybscloud.com/either/stability"
)

const doc = `report snapshot declarations and their uses

A declaration whose doc comment contains a //stability:snapshot directive
may change or disappear in a future release. snapshotcheck reports each such
declaration, and each use of one from another package.`

// Analyzer reports snapshot declarations and their uses.
var Analyzer = &analysis.Analyzer{
	Name:      "snapshotcheck",
	Doc:       doc,
	URL:       "https://pkg.go.dev/code.hybscloud.com/either/stability/snapshotcheck",
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	FactTypes: []analysis.Fact{new(SnapshotFact)},
	Run:       run,
}

var configPath string

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "", "YAML file selecting the reported stages and report kinds")
}

// SnapshotFact records the marker of an exported object or package.
type SnapshotFact struct {
	Name  string
	Stage stability.Stage
}

func (*SnapshotFact) AFact() {}

func (f *SnapshotFact) String() string { return "snapshot " + f.Stage.String() }

func run(pass *analysis.Pass) (any, error) {
	cfg := DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = LoadConfig(configPath); err != nil {
			return nil, err
		}
	}

	pkgMarked := false
	for _, file := range pass.Files {
		for _, m := range stability.Scan(file) {
			if m.Ident == file.Name {
				// The package clause is declared once per package.
				if pkgMarked {
					continue
				}
				pkgMarked = true
			}
			declare(pass, cfg, file, m)
		}
	}

	if cfg.Uses {
		checkUses(pass, cfg)
	}
	return nil, nil
}

// declare exports the fact for m and reports the declaration.
func declare(pass *analysis.Pass, cfg *Config, file *ast.File, m stability.Marker) {
	if m.Err != nil {
		pass.Reportf(m.Ident.Pos(), "malformed snapshot directive on '%s': %v", m.Name, m.Err)
		return
	}
	fact := &SnapshotFact{Name: m.Name, Stage: m.Stage}
	if m.Ident == file.Name {
		pass.ExportPackageFact(fact)
	} else if obj := pass.TypesInfo.Defs[m.Ident]; obj != nil {
		pass.ExportObjectFact(obj, fact)
	}
	if !cfg.Declarations || m.Suppressed || !cfg.Reports(m.Stage) {
		return
	}
	pass.Reportf(m.Ident.Pos(),
		"'%s' is a snapshot element in the '%s' phase. This element may be changed or removed in a future release.",
		m.Name, m.Stage)
}

func checkUses(pass *analysis.Pass, cfg *Config) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	filter := []ast.Node{(*ast.ImportSpec)(nil), (*ast.Ident)(nil)}
	insp.WithStack(filter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push || suppressedIn(stack) {
			return true
		}
		switch n := n.(type) {
		case *ast.ImportSpec:
			checkImport(pass, cfg, n)
			return false
		case *ast.Ident:
			checkIdent(pass, cfg, n)
		}
		return true
	})
}

func checkImport(pass *analysis.Pass, cfg *Config, spec *ast.ImportSpec) {
	path, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		return
	}
	for _, imp := range pass.Pkg.Imports() {
		if imp.Path() != path {
			continue
		}
		var fact SnapshotFact
		if pass.ImportPackageFact(imp, &fact) && cfg.Reports(fact.Stage) {
			pass.Reportf(spec.Pos(), "import of snapshot package %q in the '%s' phase", path, fact.Stage)
		}
		return
	}
}

func checkIdent(pass *analysis.Pass, cfg *Config, id *ast.Ident) {
	obj := pass.TypesInfo.Uses[id]
	if obj == nil || obj.Pkg() == nil || obj.Pkg() == pass.Pkg {
		return
	}
	switch o := obj.(type) {
	case *types.Func:
		obj = o.Origin()
	case *types.Var:
		obj = o.Origin()
	}
	var fact SnapshotFact
	if !pass.ImportObjectFact(obj, &fact) || !cfg.Reports(fact.Stage) {
		return
	}
	pass.Reportf(id.Pos(), "use of snapshot element '%s.%s' in the '%s' phase", obj.Pkg().Name(), fact.Name, fact.Stage)
}

// suppressedIn reports whether the enclosing top-level declaration, or the
// spec within it, carries a suppression line. stack[0] is the file.
func suppressedIn(stack []ast.Node) bool {
	for i := 1; i < len(stack) && i < 3; i++ {
		var doc *ast.CommentGroup
		switch n := stack[i].(type) {
		case *ast.FuncDecl:
			doc = n.Doc
		case *ast.GenDecl:
			doc = n.Doc
		case *ast.TypeSpec:
			doc = n.Doc
		case *ast.ValueSpec:
			doc = n.Doc
		case *ast.ImportSpec:
			doc = n.Doc
		}
		if stability.Suppressed(doc) {
			return true
		}
	}
	return false
}
