package directives

import (
	"fmt"
	"strings"
)

// LocationError reports a visitor implementing callback slots for locations
// outside its directive's declared location set. It is returned before any
// node is visited.
type LocationError struct {
	Directive string
	Locations []string // implemented locations missing from the declaration
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("directive @%s may not be handled at %s: not in its declared locations",
		e.Directive, strings.Join(e.Locations, ", "))
}
