// Copyright (c) 2025-present deep.rent GmbH (https://deep.rent)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// walker accumulates Class declarations while walking one parsed file's
// tree. It holds no state beyond the source text and is discarded after one
// walk.
type walker struct {
	path    string
	src     []byte
	classes []Class
}

func (w *walker) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(w.src)
}

func (w *walker) line(n *sitter.Node) int {
	if n == nil {
		return 0
	}
	return int(n.StartPoint().Row) + 1
}

// childrenByType returns the direct named children of n whose type matches
// any of types.
func childrenByType(n *sitter.Node, types ...string) []*sitter.Node {
	var out []*sitter.Node
	if n == nil {
		return out
	}
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if _, ok := set[c.Type()]; ok {
			out = append(out, c)
		}
	}
	return out
}

// walk recursively visits every node, extracting a Class for each
// class_declaration (including the class wrapped in export_statement, which
// tree-sitter-typescript nests one level deep).
func (w *walker) walk(n *sitter.Node) {
	if n == nil {
		return
	}
	if n.Type() == "class_declaration" {
		w.classes = append(w.classes, w.extractClass(n))
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		w.walk(n.NamedChild(i))
	}
}

func (w *walker) extractClass(n *sitter.Node) Class {
	c := Class{
		FilePath: w.path,
		Line:     w.line(n),
	}

	if name := n.ChildByFieldName("name"); name != nil {
		c.Name = w.text(name)
	}

	// Decorators written above `export class` attach to the enclosing
	// export_statement, not to the class_declaration itself; collect both.
	c.Decorators = w.extractDecorators(n)
	if p := n.Parent(); p != nil && p.Type() == "export_statement" {
		c.Decorators = append(w.extractDecorators(p), c.Decorators...)
	}

	for _, heritage := range childrenByType(n, "class_heritage") {
		for _, ext := range childrenByType(heritage, "extends_clause") {
			refs := w.extractHeritageRefs(ext)
			if len(refs) > 0 {
				h := refs[0]
				c.Extends = &h
			}
		}
		for _, impl := range childrenByType(heritage, "implements_clause") {
			c.Implements = append(c.Implements, w.extractHeritageRefs(impl)...)
		}
	}

	if ctor := w.findConstructor(n); ctor != nil {
		c.ConstructorLine = w.line(ctor)
		c.ConstructorParams = w.extractParams(ctor)
	}

	c.Methods = w.extractMethods(n)

	return c
}

// extractMethods collects every non-constructor method_definition directly
// in the class body.
func (w *walker) extractMethods(classNode *sitter.Node) []Method {
	body := classNode.ChildByFieldName("body")
	if body == nil {
		return nil
	}
	var out []Method
	// Member decorators may parse as direct children of the
	// method_definition or as preceding siblings in the class body,
	// depending on grammar version; track the pending siblings as we go.
	var pending []Decorator
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		if member.Type() == "decorator" {
			pending = append(pending, w.extractDecorator(member))
			continue
		}
		if member.Type() != "method_definition" {
			pending = nil
			continue
		}
		decorators := append(pending, w.extractDecorators(member)...)
		pending = nil
		name := member.ChildByFieldName("name")
		if name == nil || w.text(name) == "constructor" {
			continue
		}
		m := Method{
			Name:       w.text(name),
			Decorators: decorators,
			Params:     w.extractParams(member),
			Line:       w.line(member),
		}
		if ret := member.ChildByFieldName("return_type"); ret != nil {
			if ret.NamedChildCount() > 0 {
				m.ReturnType = w.text(ret.NamedChild(0))
			} else {
				m.ReturnType = strings.TrimPrefix(w.text(ret), ":")
			}
		}
		out = append(out, m)
	}
	return out
}

// extractDecorators collects the decorator nodes that are direct children
// of n (tree-sitter-typescript attaches a class's or method's decorators as
// unnamed-field repeated children of the declaration node itself).
func (w *walker) extractDecorators(n *sitter.Node) []Decorator {
	var out []Decorator
	for _, d := range childrenByType(n, "decorator") {
		out = append(out, w.extractDecorator(d))
	}
	return out
}

func (w *walker) extractDecorator(d *sitter.Node) Decorator {
	dec := Decorator{Line: w.line(d)}
	// A decorator's payload is either a bare identifier (@Injectable) or a
	// call_expression (@Inject("token")).
	for i := 0; i < int(d.NamedChildCount()); i++ {
		child := d.NamedChild(i)
		switch child.Type() {
		case "identifier", "member_expression":
			dec.Name = w.text(child)
		case "call_expression":
			if fn := child.ChildByFieldName("function"); fn != nil {
				dec.Name = w.text(fn)
			}
			if args := child.ChildByFieldName("arguments"); args != nil {
				raw := w.text(args)
				dec.Args = strings.TrimSuffix(strings.TrimPrefix(raw, "("), ")")
			}
		}
	}
	return dec
}

// extractHeritageRefs reads the comma-separated type references inside an
// extends_clause or implements_clause, splitting a generic_type node into
// its bare name and raw type-argument text. In an extends_clause the type
// arguments follow the base name as a sibling type_arguments node, which is
// attached to the reference read just before it.
func (w *walker) extractHeritageRefs(clause *sitter.Node) []Heritage {
	var out []Heritage
	for i := 0; i < int(clause.NamedChildCount()); i++ {
		ref := clause.NamedChild(i)
		switch ref.Type() {
		case "identifier", "nested_type_identifier", "type_identifier":
			out = append(out, Heritage{Name: w.text(ref), Line: w.line(ref)})
		case "generic_type":
			h := Heritage{Line: w.line(ref)}
			if name := ref.ChildByFieldName("name"); name != nil {
				h.Name = w.text(name)
			}
			if args := ref.ChildByFieldName("type_arguments"); args != nil {
				raw := w.text(args)
				h.TypeArgs = strings.TrimSuffix(strings.TrimPrefix(raw, "<"), ">")
			}
			out = append(out, h)
		case "type_arguments":
			if len(out) > 0 {
				raw := w.text(ref)
				out[len(out)-1].TypeArgs = strings.TrimSuffix(strings.TrimPrefix(raw, "<"), ">")
			}
		}
	}
	return out
}

// findConstructor locates the constructor method_definition in a class's
// body, if any.
func (w *walker) findConstructor(classNode *sitter.Node) *sitter.Node {
	body := classNode.ChildByFieldName("body")
	if body == nil {
		return nil
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		if member.Type() != "method_definition" {
			continue
		}
		if name := member.ChildByFieldName("name"); name != nil && w.text(name) == "constructor" {
			return member
		}
	}
	return nil
}

// extractParams reads a constructor's formal parameter list.
func (w *walker) extractParams(ctor *sitter.Node) []Param {
	paramsNode := ctor.ChildByFieldName("parameters")
	if paramsNode == nil {
		return nil
	}
	var out []Param
	for i := 0; i < int(paramsNode.NamedChildCount()); i++ {
		p := paramsNode.NamedChild(i)
		switch p.Type() {
		case "required_parameter", "optional_parameter":
			out = append(out, w.extractParam(p, p.Type() == "optional_parameter"))
		case "identifier":
			out = append(out, Param{Name: w.text(p), Line: w.line(p)})
		}
	}
	return out
}

func (w *walker) extractParam(p *sitter.Node, optional bool) Param {
	param := Param{Optional: optional, Line: w.line(p)}

	if pattern := p.ChildByFieldName("pattern"); pattern != nil {
		param.Name = w.text(pattern)
	}
	if typ := p.ChildByFieldName("type"); typ != nil {
		// The type field wraps a type_annotation node (": Foo"); the actual
		// type expression is its sole named child.
		if typ.NamedChildCount() > 0 {
			param.TypeSpelling = w.text(typ.NamedChild(0))
		} else {
			param.TypeSpelling = strings.TrimPrefix(w.text(typ), ":")
		}
	}
	if value := p.ChildByFieldName("value"); value != nil {
		param.Optional = true
	}
	for _, d := range childrenByType(p, "decorator") {
		param.Decorators = append(param.Decorators, w.extractDecorator(d))
	}
	return param
}
