package cpre

import (
	"fmt"
	"strings"
)

// builtinNames is the reserved set of macro names bound by the engine
// itself: FILE, LINE, DATE, TIME and TIMESTAMP may not be redefined or
// undefined by user directives.
var builtinNames = map[string]bool{
	"FILE":      true,
	"LINE":      true,
	"DATE":      true,
	"TIME":      true,
	"TIMESTAMP": true,
}

// isBuiltinMacro reports whether name is one of the reserved built-in macro
// names.
func isBuiltinMacro(name string) bool {
	return builtinNames[name]
}

// macroStore is a mapping from macro name to string value, shared across the
// transitive closure of one top-level source's includes (but never across
// distinct top-level sources — see Run).
type macroStore struct {
	values map[string]string
}

func newMacroStore(initial map[string]string) *macroStore {
	s := &macroStore{values: make(map[string]string, len(initial))}
	for k, v := range initial {
		s.values[k] = v
	}
	return s
}

func cloneMacros(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// define stores a user #define. Callers must reject built-in names before
// calling this (so the caller can anchor a positioned error); define itself
// just refuses as a safety net.
func (s *macroStore) define(name, value string) error {
	if isBuiltinMacro(name) {
		return fmt.Errorf("cannot define built-in macro %q", name)
	}
	s.values[name] = value
	return nil
}

// undef removes a user macro. Undefining a name that was never defined is
// not an error.
func (s *macroStore) undef(name string) error {
	if isBuiltinMacro(name) {
		return fmt.Errorf("cannot undef built-in macro %q", name)
	}
	delete(s.values, name)
	return nil
}

func (s *macroStore) get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

func (s *macroStore) exists(name string) bool {
	_, ok := s.values[name]
	return ok
}

// setRaw bypasses the built-in guard; used internally to bind FILE and LINE.
// The three time built-ins are seeded through newMacroStore instead.
func (s *macroStore) setRaw(name, value string) {
	s.values[name] = value
}

// isFalsyValue reports whether a macro's value reads as false for the
// purposes of #if/#elif: empty, "0", or "false" (case-insensitively). A
// macro defined with no value at all is stored as "" and falls under the
// same rule as one explicitly defined empty.
func isFalsyValue(v string) bool {
	return v == "" || v == "0" || strings.EqualFold(v, "false")
}
