package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable keys (vertex ids, triangle indices)
// into random readable names. It leaks the memo table, but names are
// generated lazily, so it costs nothing unless you're actually debugging.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are generated in order of demand, so we make them
	// nondeterministic to remind the user that the same name doesn't refer
	// to the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(key interface{}) string {
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
