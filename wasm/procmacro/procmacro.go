// Package procmacro decodes the proc-macro registration metadata that rustc
// embeds in a module's ".rustc_proc_macro_decls" custom section.
package procmacro

import (
	"strings"
	"unicode/utf8"

	"github.com/pgavlin/wade/wasm"
)

// SectionName is the name of the custom section that carries proc-macro
// declarations.
const SectionName = wasm.CustomSectionProcMacroDecls

// Kind describes the flavor of a proc macro.
type Kind uint8

const (
	// KindDerive is a derive macro (#[proc_macro_derive]).
	KindDerive Kind = iota
	// KindAttr is an attribute macro (#[proc_macro_attribute]).
	KindAttr
	// KindBang is a function-like macro (#[proc_macro]).
	KindBang
)

func (k Kind) String() string {
	switch k {
	case KindDerive:
		return "derive"
	case KindAttr:
		return "attr"
	case KindBang:
		return "bang"
	}
	return "unknown"
}

// A Decl is one proc-macro declaration. Name is the trait name for derive
// macros and the macro name otherwise; Func is the name of the exported WASM
// function that implements the macro. Attributes holds a derive macro's
// helper attributes, if any.
type Decl struct {
	Kind       Kind
	Name       string
	Func       string
	Attributes []string
}

// Parse decodes proc-macro declarations from the contents of a declaration
// section. Declarations are newline-separated records of colon-separated
// fields:
//
//	derive:TraitName:function_name
//	derive:TraitName:function_name:attr1,attr2
//	attr:name:function_name
//	bang:name:function_name
//
// Blank and unrecognized lines are skipped. Content that is not valid UTF-8
// yields no declarations.
func Parse(data []byte) []Decl {
	if !utf8.Valid(data) {
		return nil
	}

	var decls []Decl
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, ":")
		switch {
		case len(parts) == 3 && parts[0] == "derive":
			decls = append(decls, Decl{Kind: KindDerive, Name: parts[1], Func: parts[2]})
		case len(parts) == 4 && parts[0] == "derive":
			var attrs []string
			for _, attr := range strings.Split(parts[3], ",") {
				if attr = strings.TrimSpace(attr); attr != "" {
					attrs = append(attrs, attr)
				}
			}
			decls = append(decls, Decl{Kind: KindDerive, Name: parts[1], Func: parts[2], Attributes: attrs})
		case len(parts) == 3 && parts[0] == "attr":
			decls = append(decls, Decl{Kind: KindAttr, Name: parts[1], Func: parts[2]})
		case len(parts) == 3 && parts[0] == "bang":
			decls = append(decls, Decl{Kind: KindBang, Name: parts[1], Func: parts[2]})
		}
	}
	return decls
}

// Extract scans a whole module and parses its proc-macro declarations, if
// any. A module without a declaration section yields nil and no error.
func Extract(buf []byte) ([]Decl, error) {
	mod, err := wasm.DecodeModule(buf)
	if err != nil {
		return nil, err
	}
	s := mod.Custom(SectionName)
	if s == nil {
		return nil, nil
	}
	return Parse(s.Data), nil
}
