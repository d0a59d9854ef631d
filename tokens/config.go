package tokens

// Config holds the policy of a Vector. It is fixed at construction.
type Config struct {
	// ChangeCase lowercases tokens as they are added.
	ChangeCase bool
	// UniqueTokensOnly removes duplicates after every Add that stored a token.
	// Without ChangeCase duplicates are detected case-insensitively.
	UniqueTokensOnly bool
}

// DefaultConfig lowercases and deduplicates.
func DefaultConfig() Config {
	return Config{
		ChangeCase:       true,
		UniqueTokensOnly: true,
	}
}
