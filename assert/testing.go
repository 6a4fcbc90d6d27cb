package assert

import "testing"

func True(t *testing.T, value bool) {
	t.Helper()

	if !value {
		t.Errorf("Assertion failed")
	}
}

func Equal[T comparable](t *testing.T, expected T, actual T) {
	t.Helper()

	if actual != expected {
		t.Errorf("want: %v; got: %v", expected, actual)
	}
}
