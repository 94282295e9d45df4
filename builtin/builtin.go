// Package builtin assembles a registry of every built-in parser family.
package builtin

import (
	"github.com/spetersoncode/toolcall"
	"github.com/spetersoncode/toolcall/implicit"
	"github.com/spetersoncode/toolcall/tagged"
)

// Registry returns a new registry holding the tagged and implicit families.
func Registry() *toolcall.Registry {
	r := toolcall.NewRegistry()
	if err := Register(r); err != nil {
		panic(err)
	}
	return r
}

// Register adds every built-in family to r.
func Register(r *toolcall.Registry) error {
	if err := tagged.Register(r); err != nil {
		return err
	}
	return implicit.Register(r)
}
