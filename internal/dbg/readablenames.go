package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary keys into random readable names. It leaks memory but
// generates the names lazily, so it's not a problem unless something is
// actually asking for names, which only happens when debug logging is on. This
// makes it much easier to follow a single circumcircle through a trace than
// reading raw indices.

var (
	mu   sync.Mutex
	memo map[interface{}]string
)

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name for any comparable key. Nil pointers get a placeholder.
func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(key); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

// Forget all names. Mostly useful in tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	memo = make(map[interface{}]string)
}
