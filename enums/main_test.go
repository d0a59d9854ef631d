package enums_test

import (
	"os"
	"testing"

	"github.com/on-the-ground/vectors/shared/log"
)

func TestMain(m *testing.M) {
	restore := log.SetLogger(log.NewTestLogger())
	code := m.Run()
	restore()
	os.Exit(code)
}
