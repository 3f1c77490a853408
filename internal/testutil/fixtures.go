package testutil

import (
	"os"
	"path/filepath"
	"runtime"
)

// Fixture returns the contents of testdata/name, relative to this package
// so that tests in any package can load the shared gateway responses.
func Fixture(name string) string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		panic("testutil: cannot locate fixtures")
	}
	raw, err := os.ReadFile(filepath.Join(filepath.Dir(file), "testdata", name))
	if err != nil {
		panic(err)
	}
	return string(raw)
}
