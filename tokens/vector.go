package tokens

import (
	"iter"
	"slices"

	"github.com/on-the-ground/vectors/internal/store"
	"github.com/on-the-ground/vectors/shared/helper"
	"github.com/on-the-ground/vectors/shared/log"
	"github.com/on-the-ground/vectors/vector"
	"go.uber.org/zap"
)

// Vector is an ordered list of delimiter-separated value tokens.
// Tokens enter only through Add, so every stored token is normalized.
type Vector struct {
	tokens store.Store[string]
	config Config
}

var _ vector.StringInterface = (*Vector)(nil)

// New returns an empty vector governed by config.
func New(config Config) *Vector {
	return &Vector{config: config}
}

// NewDefault returns an empty vector using DefaultConfig.
func NewDefault() *Vector {
	return New(DefaultConfig())
}

func (v *Vector) Config() Config {
	return v.config
}

func (v *Vector) Count() int {
	return v.tokens.Count()
}

// Values yields the tokens in storage order.
func (v *Vector) Values() iter.Seq[string] {
	return v.tokens.Values()
}

func (v *Vector) All() iter.Seq2[int, string] {
	return v.tokens.All()
}

// Array returns a copy of the tokens.
func (v *Vector) Array() []string {
	return v.tokens.Array()
}

// Join concatenates the tokens separated by a one-byte glue.
func (v *Vector) Join(glue string) (string, error) {
	return store.Join(&v.tokens, glue)
}

func (v *Vector) Digest() uint64 {
	return store.Digest(&v.tokens)
}

// Add normalizes and appends every value, skipping those that trim to nothing.
func (v *Vector) Add(values ...string) *Vector {
	added := 0
	for _, raw := range values {
		token, ok := Normalize(raw, v.config.ChangeCase)
		if !ok {
			continue
		}
		v.tokens.Push(token)
		added++
	}

	if v.config.UniqueTokensOnly && added > 0 {
		v.filterUnique()
	}
	return v
}

// Has reports whether token is stored. Matching ignores ASCII case.
func (v *Vector) Has(token string) bool {
	token = helper.Trim(token)
	if token == "" {
		return false
	}

	token = helper.ToLowerASCII(token)
	items := v.tokens.Items()
	if v.config.ChangeCase {
		return slices.Contains(items, token)
	}
	return slices.ContainsFunc(items, func(s string) bool {
		return helper.ToLowerASCII(s) == token
	})
}

// Delete removes every stored token equal to token ignoring ASCII case,
// whatever the case policy, and reports whether anything was removed.
func (v *Vector) Delete(token string) bool {
	token = helper.Trim(token)
	if token == "" {
		return false
	}

	token = helper.ToLowerASCII(token)
	kept, removed := helper.RemoveIf(v.tokens.Items(), func(s string) bool {
		return helper.ToLowerASCII(s) == token
	})
	if removed == 0 {
		return false
	}

	v.tokens.Reset(kept)
	log.Named("tokens").Debug("deleted token", zap.String("token", token), zap.Int("removed", removed))
	return true
}

func (v *Vector) filterUnique() {
	key := func(s string) string { return s }
	if !v.config.ChangeCase {
		key = helper.ToLowerASCII
	}

	before := v.Count()
	v.tokens.Reset(helper.UniqueBy(v.tokens.Items(), key))
	if removed := before - v.Count(); removed > 0 {
		log.Named("tokens").Debug("filtered duplicate tokens", zap.Int("removed", removed))
	}
}
