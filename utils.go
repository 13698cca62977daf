package refstring

import "math"

// terminated reports whether the final byte of the view is NUL.
func (s String) terminated() bool {
	return s.size > 0 && s.data[s.size-1] == 0
}

// Valid UTF-8 is
// 0xxxxxxx
// 110xxxxx 10xxxxxx
// 1110xxxx 10xxxxxx 10xxxxxx
// 11110xxx 10xxxxxx 10xxxxxx 10xxxxxx
// so 10xxxxxx (0x80-0xBF) never starts a character.
func isContinuation(b byte) bool {
	return b >= 0x80 && b <= 0xBF
}

// checkConcatSize rejects concatenations whose result size would wrap.
func checkConcatSize(a, b int) error {
	if a > math.MaxInt-b {
		return ErrOverflow
	}
	return nil
}
