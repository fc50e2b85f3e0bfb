// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package test collects small helper functions used by the _test.go files
// throughout the module. None of it is required by the emulation itself.
package test

import (
	"math"
	"reflect"
	"testing"
)

// Equate fails the test if got is not equal to want. Unlike ExpectEquality
// it does not special-case errors, and is intended for simple sentinel
// comparisons (eg. comparing an error against nil).
func Equate(t *testing.T, got, want interface{}) bool {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected value: got %v, wanted %v", got, want)
		return false
	}
	return true
}

// ExpectFailure fails the test unless v represents a failure: a false
// boolean or a non-nil error.
func ExpectFailure(t *testing.T, v interface{}) bool {
	t.Helper()
	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("expected failure, got success")
			return false
		}
	case error:
		if v == nil {
			t.Errorf("expected failure, got success")
			return false
		}
	default:
		t.Errorf("ExpectFailure: unsupported type %T", v)
		return false
	}
	return true
}

// ExpectSuccess fails the test unless v represents success: a true boolean,
// or a nil error.
func ExpectSuccess(t *testing.T, v interface{}) bool {
	t.Helper()
	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("expected success, got failure")
			return false
		}
	case error:
		if v != nil {
			t.Errorf("expected success, got: %v", v)
			return false
		}
	case nil:
		return true
	default:
		t.Errorf("ExpectSuccess: unsupported type %T", v)
		return false
	}
	return true
}

// ExpectedFailure is an alias of ExpectFailure, matching the naming used by
// some of the older chip-level test files.
func ExpectedFailure(t *testing.T, v interface{}) bool {
	t.Helper()
	return ExpectFailure(t, v)
}

// ExpectedSuccess is an alias of ExpectSuccess, matching the naming used by
// some of the older chip-level test files.
func ExpectedSuccess(t *testing.T, v interface{}) bool {
	t.Helper()
	return ExpectSuccess(t, v)
}

// ExpectEquality fails the test if got and want are not equal.
func ExpectEquality(t *testing.T, got, want interface{}) bool {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected value: got %v, wanted %v", got, want)
		return false
	}
	return true
}

// ExpectInequality fails the test if got and want are equal.
func ExpectInequality(t *testing.T, got, want interface{}) bool {
	t.Helper()
	if reflect.DeepEqual(got, want) {
		t.Errorf("unexpected equality: got %v, same as %v", got, want)
		return false
	}
	return true
}

// ExpectApproximate fails the test unless got and want are within delta of
// one another.
func ExpectApproximate(t *testing.T, got, want, delta float64) bool {
	t.Helper()
	if math.Abs(got-want) > delta {
		t.Errorf("unexpected value: got %v, wanted approximately %v (+/- %v)", got, want, delta)
		return false
	}
	return true
}
