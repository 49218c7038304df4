//go:build tools
// +build tools

package llgen

// Tools used by go:generate.
import (
	_ "golang.org/x/tools/cmd/stringer"
)
