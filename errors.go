package melt

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidCodepoint is returned for values that are not Unicode scalar
// values: surrogates and anything above U+10FFFF.
var ErrInvalidCodepoint = errors.New("melt: invalid codepoint")

// ToRune converts a codepoint to a rune.
func ToRune(cp uint32) (rune, error) {
	if cp > utf8.MaxRune || !utf8.ValidRune(rune(cp)) {
		return 0, fmt.Errorf("%w: %#x", ErrInvalidCodepoint, cp)
	}
	return rune(cp), nil
}
