// Package testutil provides helpers shared by package tests
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/focusquest/internal/osutil"
)

const fixtureDir = "testdata"

// GoldenTest is a test case whose output is compared against a golden file.
// A nil output asserts that no golden file exists.
type GoldenTest interface {
	Output() (out []byte, goldenFile string)
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: need to sort out line endings
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir(fixtureDir),
	)

	out, golden := tc.Output()

	if out != nil {
		g.Assert(t, golden, out)

		return
	}

	f := filepath.Join(fixtureDir, golden+".golden")
	if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
		t.Fatalf("expected no output, but golden file exists: %s", f)
	}
}

// ReadFixture returns the contents of a file in the package's testdata
// directory.
func ReadFixture(t *testing.T, name string) []byte {
	t.Helper()

	b, err := os.ReadFile(filepath.Join(fixtureDir, name))
	if err != nil {
		t.Fatalf("reading fixture %s: %v", name, err)
	}

	return b
}
