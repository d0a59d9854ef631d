package vector

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/vectors/shared/log"
	"go.uber.org/zap"
)

// ErrInvalidGlue is returned by Join when the glue is not exactly one byte long.
var ErrInvalidGlue = errors.New("invalid glue byte")

// Join concatenates values separated by glue, which must be exactly one byte.
// Any single byte is accepted, NUL and other control bytes included.
func Join(values []string, glue string) (string, error) {
	if len(glue) != 1 {
		log.Named("vector").Debug("rejected join glue", zap.Int("glueLen", len(glue)))
		return "", fmt.Errorf("%w: length %d", ErrInvalidGlue, len(glue))
	}
	return strings.Join(values, glue), nil
}

// Digest hashes values with xxhash. Every element is prefixed with its length
// so that ["ab"] and ["a", "b"] hash differently.
func Digest(values []string) uint64 {
	d := xxhash.New()
	var lenBuf [binary.MaxVarintLen64]byte
	for _, v := range values {
		n := binary.PutUvarint(lenBuf[:], uint64(len(v)))
		_, _ = d.Write(lenBuf[:n])
		_, _ = d.WriteString(v)
	}
	return d.Sum64()
}
