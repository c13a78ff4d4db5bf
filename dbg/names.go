package dbg

import (
	"reflect"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name turns arbitrary values (usually pointers) into random readable names,
// so that log lines about the same table or engine are easy to pick out. Names
// are generated lazily and never forgotten, so only call this when logging is
// actually enabled.

var (
	memoMu sync.Mutex
	memo   = make(map[interface{}]string)
	title  = cases.Title(language.English)
)

func init() {
	// Names are handed out in order of demand, so make them differ between runs
	// as a reminder that a name only means something within one process.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := title.String(petname.Adjective()) + title.String(petname.Name())
	memo[obj] = r
	return r
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}
	return false
}
