// Package schema declares the HCL block structures of the variable
// manifest. The manifest is the declarative front end for the resolve
// engine: each `variable` block declares one expected key, and its optional
// `default` expression doubles as the key's type declaration.
package schema

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Variable represents a `variable "NAME" {}` block from a manifest file.
type Variable struct {
	// Name is the environment variable key being declared.
	Name string `hcl:"name,label"`

	// Default is the fallback value for the key. Its value type selects the
	// conversion rule. An explicit `default = null` is invalid and rejected
	// by the engine.
	Default *cty.Value `hcl:"default,optional"`

	// Elements is a bare type keyword (string, number, bool) fixing the
	// element rule for keys whose default array is empty.
	Elements hcl.Expression `hcl:"elements,optional"`
}

// Settings represents the optional `settings` block holding engine-wide
// options.
type Settings struct {
	Delimiter *string `hcl:"delimiter,optional"`
}

// Manifest represents the top-level structure of a manifest file.
type Manifest struct {
	Settings  *Settings   `hcl:"settings,block"`
	Variables []*Variable `hcl:"variable,block"`
}
