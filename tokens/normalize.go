package tokens

import "github.com/on-the-ground/vectors/shared/helper"

// Normalize trims raw and, with changeCase, lowercases its ASCII letters.
// ok is false when nothing is left after trimming.
func Normalize(raw string, changeCase bool) (token string, ok bool) {
	token = helper.Trim(raw)
	if token == "" {
		return "", false
	}
	if changeCase {
		token = helper.ToLowerASCII(token)
	}
	return token, true
}
