// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stability

import (
	"go/ast"
	"go/token"
)

// Marker is a snapshot directive attached to a declaration.
type Marker struct {
	// Name is the declared name. Methods and fields are qualified by their
	// type ("Either.Swap"); a package clause uses the package name.
	Name string

	// Ident is the declaring identifier. For a package clause it is the
	// file's package name identifier.
	Ident *ast.Ident

	Stage      Stage
	Suppressed bool

	// Pos is the position of the directive comment.
	Pos token.Pos

	// Err is set when the directive names an unknown stage.
	Err error
}

// Scan returns the markers of all top-level declarations in file, in
// source order. A doc comment on a parenthesised group applies to every
// spec in the group that has no directive of its own.
func Scan(file *ast.File) []Marker {
	var s scanner
	if d, ok := directiveOf(file.Doc); ok {
		s.add(d, file.Name.Name, file.Name, Suppressed(file.Doc))
	}
	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			name := decl.Name.Name
			if decl.Recv != nil && len(decl.Recv.List) > 0 {
				if recv := typeName(decl.Recv.List[0].Type); recv != "" {
					name = recv + "." + name
				}
			}
			if d, ok := directiveOf(decl.Doc); ok {
				s.add(d, name, decl.Name, Suppressed(decl.Doc))
			}
		case *ast.GenDecl:
			s.genDecl(decl)
		}
	}
	return s.markers
}

type directive struct {
	pos   token.Pos
	stage Stage
	err   error
}

type scanner struct {
	markers []Marker
}

func (s *scanner) add(d directive, name string, id *ast.Ident, suppressed bool) {
	s.markers = append(s.markers, Marker{
		Name:       name,
		Ident:      id,
		Stage:      d.stage,
		Suppressed: suppressed,
		Pos:        d.pos,
		Err:        d.err,
	})
}

func (s *scanner) genDecl(decl *ast.GenDecl) {
	if decl.Tok == token.IMPORT {
		return
	}
	group, inGroup := directiveOf(decl.Doc)
	groupSuppressed := Suppressed(decl.Doc)
	for _, spec := range decl.Specs {
		var doc *ast.CommentGroup
		var names []*ast.Ident
		var typ *ast.TypeSpec
		switch spec := spec.(type) {
		case *ast.TypeSpec:
			doc, names, typ = spec.Doc, []*ast.Ident{spec.Name}, spec
		case *ast.ValueSpec:
			doc, names = spec.Doc, spec.Names
		}
		d, ok := directiveOf(doc)
		if !ok {
			d, ok = group, inGroup
		}
		if ok {
			suppressed := groupSuppressed || Suppressed(doc)
			for _, id := range names {
				s.add(d, id.Name, id, suppressed)
			}
		}
		if typ != nil {
			s.members(typ)
		}
	}
}

// members scans struct fields and interface methods of spec.
func (s *scanner) members(spec *ast.TypeSpec) {
	var fields *ast.FieldList
	switch t := spec.Type.(type) {
	case *ast.StructType:
		fields = t.Fields
	case *ast.InterfaceType:
		fields = t.Methods
	}
	if fields == nil {
		return
	}
	for _, f := range fields.List {
		d, ok := directiveOf(f.Doc)
		if !ok {
			continue
		}
		names := f.Names
		if len(names) == 0 {
			// Embedded field or interface: named after its type.
			if id := embeddedIdent(f.Type); id != nil {
				names = []*ast.Ident{id}
			}
		}
		for _, id := range names {
			s.add(d, spec.Name.Name+"."+id.Name, id, Suppressed(f.Doc))
		}
	}
}

// directiveOf returns the first snapshot directive in doc.
func directiveOf(doc *ast.CommentGroup) (directive, bool) {
	if doc == nil {
		return directive{}, false
	}
	for _, c := range doc.List {
		stage, ok, err := ParseDirective(c.Text)
		if ok {
			return directive{pos: c.Slash, stage: stage, err: err}, true
		}
	}
	return directive{}, false
}

// typeName returns the base type name of a receiver expression.
func typeName(expr ast.Expr) string {
	if id := embeddedIdent(expr); id != nil {
		return id.Name
	}
	return ""
}

// embeddedIdent returns the identifier naming the type in expr, stripping
// pointers, type arguments and package qualifiers.
func embeddedIdent(expr ast.Expr) *ast.Ident {
	for {
		switch t := expr.(type) {
		case *ast.Ident:
			return t
		case *ast.SelectorExpr:
			return t.Sel
		case *ast.StarExpr:
			expr = t.X
		case *ast.IndexExpr:
			expr = t.X
		case *ast.IndexListExpr:
			expr = t.X
		case *ast.ParenExpr:
			expr = t.X
		default:
			return nil
		}
	}
}
