package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrIsByCode(t *testing.T) {
	e1 := ErrInvalidFormat.WithInternalMsg("bad literal: '%v'", "x")
	e2 := ErrInvalidFormat.WithInternalMsg("another one")

	if !errors.Is(e1, ErrInvalidFormat) || !errors.Is(e2, ErrInvalidFormat) {
		t.Fatal("derived errors should match the sentinel by code")
	}
	if errors.Is(e1, ErrIllegalArgument) {
		t.Fatal("codes differ, should not match")
	}
	if e1.Code() != ErrCodeInvalidFormat {
		t.Fatalf("unexpected code: %v", e1.Code())
	}
	if e1.InternalMsg() != "bad literal: 'x'" {
		t.Fatalf("unexpected internalMsg: %v", e1.InternalMsg())
	}
}

func TestErrWrap(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	e := ErrNotPermitted.Wrapf(cause, "mutation rejected")

	if !errors.Is(e, ErrNotPermitted) {
		t.Fatal("should match sentinel")
	}
	if !errors.Is(e, cause) {
		t.Fatal("should unwrap to the cause")
	}

	if ErrNotPermitted.Wrap(nil) != nil {
		t.Fatal("wrapping nil should be nil")
	}
	if ErrNotPermitted.Wrapf(nil, "msg") != nil {
		t.Fatal("wrapping nil should be nil")
	}
}

func TestErrErrorString(t *testing.T) {
	e := ErrIllegalArgument.WithInternalMsg("value out of range")
	exp := "Illegal Argument, value out of range"
	if e.Error() != exp {
		t.Fatalf("unexpected Error(): %v", e.Error())
	}
}

func TestWithCode(t *testing.T) {
	e := NewErrf("custom failure").WithCode("CUSTOM")
	if !e.HasCode() {
		t.Fatal("should have code")
	}
	if !errors.Is(e.WithInternalMsg("detail"), e) {
		t.Fatal("same code should match")
	}
}

func TestWrapErr(t *testing.T) {
	if WrapErr(nil) != nil {
		t.Fatal("nil should stay nil")
	}

	e := ErrOverflow.WithInternalMsg("too large")
	if WrapErr(e) != e {
		t.Fatal("ChrononErr should be returned as is")
	}

	w := WrapErrf(fmt.Errorf("io failure"), "loading %v", "f.yml")
	if w.Error() != "loading f.yml, io failure" {
		t.Fatalf("unexpected Error(): %v", w.Error())
	}
	if _, ok := UnwrapErrStack(w); !ok {
		t.Fatal("should carry a stacktrace")
	}
}
