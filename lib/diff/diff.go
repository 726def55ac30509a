// Package diff wraps oss.terrastruct.com/diff with test assertion helpers.
package diff

import (
	"testing"

	"oss.terrastruct.com/diff"
)

// AssertStringEq fails t with a readable unified diff when got differs from
// exp. Prefer this over plain equality asserts for multi-line render output.
func AssertStringEq(t testing.TB, exp, got string) {
	t.Helper()

	ds, err := diff.Strings(exp, got)
	if err != nil {
		t.Fatal(err)
	}
	if ds != "" {
		t.Errorf("unexpected diff:\n%s", ds)
	}
}
