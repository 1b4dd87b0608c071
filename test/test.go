package test

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"testing"
)

// Test if expected == actual, else call t.Fatalf with values printed
func TestEqual[V comparable](t *testing.T, expected V, actual V) {
	caller := _callerLine()
	if expected != actual {
		t.Fatalf("[FAIL] %v -> Expected: %v, actual: %v", caller, expected, actual)
	} else {
		t.Logf("[PASS] %v -> Expected: %v, actual: %v", caller, expected, actual)
	}
}

// Test if actual is true, else call t.Fatalf with values printed
func TestTrue(t *testing.T, actual bool) {
	caller := _callerLine()
	if !actual {
		t.Fatalf("[FAIL] %v -> Expected: true, actual: %v", caller, actual)
	} else {
		t.Logf("[PASS] %v -> Expected: true, actual: %v", caller, actual)
	}
}

// Test if actual is false, else call t.Fatalf with values printed
func TestFalse(t *testing.T, actual bool) {
	caller := _callerLine()
	if actual {
		t.Fatalf("[FAIL] %v -> Expected: false, actual: %v", caller, actual)
	} else {
		t.Logf("[PASS] %v -> Expected: false, actual: %v", caller, actual)
	}
}

// Test if err is nil, else call t.Fatalf with the error printed
func TestNoErr(t *testing.T, err error) {
	caller := _callerLine()
	if err != nil {
		t.Fatalf("[FAIL] %v -> Unexpected error: %v", caller, err)
	} else {
		t.Logf("[PASS] %v -> No error", caller)
	}
}

// Test if errors.Is(err, target), else call t.Fatalf with values printed
func TestErrIs(t *testing.T, err error, target error) {
	caller := _callerLine()
	if !errors.Is(err, target) {
		t.Fatalf("[FAIL] %v -> Expected error: %v, actual: %v", caller, target, err)
	} else {
		t.Logf("[PASS] %v -> Error matched: %v", caller, err)
	}
}

// Test if value is nil, else call t.Fatalf with values printed
func TestIsNil(t *testing.T, value any) {
	caller := _callerLine()
	if value != nil {
		t.Fatalf("[FAIL] %v -> Expected: <nil>, actual: %v", caller, value)
	} else {
		t.Logf("[PASS] %v -> Expected: <nil>, actual: %v", caller, value)
	}
}

// Test if value is not nil, else call t.Fatalf with values printed
func TestNotNil(t *testing.T, value any) {
	caller := _callerLine()
	if value == nil {
		t.Fatalf("[FAIL] %v -> Should not be nil", caller)
	} else {
		t.Logf("[PASS] %v -> Expected: non-nil, actual: %v", caller, value)
	}
}

func _callerLine() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown:0"
	}
	ftkn := strings.Split(file, string(os.PathSeparator))
	file = ftkn[len(ftkn)-1]
	return fmt.Sprintf("%v:%-4v", file, line)
}
