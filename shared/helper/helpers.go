package helper

import "strings"

// TrimSet is the byte set stripped from both ends of a value before it is stored.
// It covers space, tab, newline, carriage return, NUL and vertical tab.
const TrimSet = " \t\n\r\x00\x0B"

// Trim removes every leading and trailing byte found in TrimSet.
func Trim(s string) string {
	return strings.Trim(s, TrimSet)
}

// ToLowerASCII lowercases the bytes 'A' through 'Z' and leaves every other byte untouched,
// including bytes that do not form valid UTF-8.
func ToLowerASCII(s string) string {
	idx := -1
	for i := 0; i < len(s); i++ {
		if isUpperASCII(s[i]) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	b := []byte(s)
	for i := idx; i < len(b); i++ {
		if isUpperASCII(b[i]) {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func isUpperASCII(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

// UniqueBy returns the elements of values whose key has not been seen before,
// in the order of their first occurrence. The input slice is left untouched.
func UniqueBy[T any, K comparable](values []T, keyFn func(T) K) []T {
	if len(values) == 0 {
		return []T{}
	}

	seen := make(map[K]struct{}, len(values))
	unique := make([]T, 0, len(values))
	for _, v := range values {
		k := keyFn(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, v)
	}
	return unique
}

// RemoveIf returns a new slice holding the elements for which pred is false,
// preserving their relative order, and the number of elements dropped.
func RemoveIf[T any](values []T, pred func(T) bool) ([]T, int) {
	kept := make([]T, 0, len(values))
	for _, v := range values {
		if !pred(v) {
			kept = append(kept, v)
		}
	}
	return kept, len(values) - len(kept)
}
