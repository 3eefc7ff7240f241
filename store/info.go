package store

import (
	"fmt"
	"regexp"
)

// compileKeyPattern compiles pat as a regular expression for the keys
// command. The dialect is Go's RE2 (package regexp) -- linear-time, no
// backreferences/lookaround.
func compileKeyPattern(pat string) (*regexp.Regexp, error) {
	return regexp.Compile(pat)
}

var memsizeUnits = []string{"", "k", "M", "G", "T", "P", "E"}

// Info reports the store's total synthetic capacity as "Data size:
// N[unit]B", where N is divided by the largest power of 1024 that keeps it
// >= 1, using suffixes up to "E".
func (s *Store) Info() Value {
	s.mu.Lock()
	size := float64(s.memsize())
	s.mu.Unlock()

	unit := 0
	for size >= 1024 && unit < len(memsizeUnits)-1 {
		size /= 1024
		unit++
	}
	var text string
	if unit == 0 {
		text = fmt.Sprintf("Data size: %dB", int64(size))
	} else {
		text = fmt.Sprintf("Data size: %.2f%sB", size, memsizeUnits[unit])
	}
	return SimpleString(text)
}
