// A wrapper around *testing.T. I hate the if a != b { t.ErrorF(....) } pattern.
// Generic where it can be, so mismatched types fail at compile time rather
// than at runtime.
package assert

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// a == b
func Equal[T comparable](t testing.TB, actual T, expected T) {
	t.Helper()
	if actual != expected {
		t.Fatalf("expected '%v' to equal '%v'", actual, expected)
	}
}

// Two lists are equal (same length & same values in the same order)
func List[T comparable](t testing.TB, actuals []T, expecteds []T) {
	t.Helper()
	if len(actuals) != len(expecteds) {
		t.Fatalf("expected %v (len %d) to equal %v (len %d)", actuals, len(actuals), expecteds, len(expecteds))
	}
	for i, actual := range actuals {
		if actual != expecteds[i] {
			t.Fatalf("expected %v to equal %v (first difference at %d)", actuals, expecteds, i)
		}
	}
}

// A value is nil
func Nil(t testing.TB, actual interface{}) {
	t.Helper()
	if actual != nil && !reflect.ValueOf(actual).IsNil() {
		t.Fatalf("expected %v to be nil", actual)
	}
}

// A value is not nil
func NotNil(t testing.TB, actual interface{}) {
	t.Helper()
	if actual == nil || reflect.ValueOf(actual).IsNil() {
		t.Fatalf("expected %v to be not nil", actual)
	}
}

// A value is true
func True(t testing.TB, actual bool) {
	t.Helper()
	if !actual {
		t.Fatal("expected true, got false")
	}
}

// A value is false
func False(t testing.TB, actual bool) {
	t.Helper()
	if actual {
		t.Fatal("expected false, got true")
	}
}

// The string contains the given value
func StringContains(t testing.TB, actual string, expected string) {
	t.Helper()
	if !strings.Contains(actual, expected) {
		t.Fatalf("expected %s to contain %s", actual, expected)
	}
}

// errors.Is(actual, expected)
func Error(t testing.TB, actual error, expected error) {
	t.Helper()
	if !errors.Is(actual, expected) {
		t.Fatalf("expected '%v' to be '%v'", actual, expected)
	}
}

// No error
func Nope(t testing.TB, actual error) {
	t.Helper()
	if actual != nil {
		t.Fatalf("expected no error, got '%v'", actual)
	}
}
