package errs

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/curtisnewbie/chronon/util/strutil"
)

const (
	ErrCodeUnknownError    string = "UNKNOWN_ERROR"
	ErrCodeIllegalArgument string = "ILLEGAL_ARGUMENT"
	ErrCodeInvalidFormat   string = "INVALID_FORMAT"
	ErrCodeAmbiguousMatch  string = "AMBIGUOUS_MATCH"
	ErrCodeOverflow        string = "OVERFLOW"
	ErrCodeNotPermitted    string = "NOT_PERMITTED"
)

var (
	ErrUnknownError    *ChrononErr = NewErrfCode(ErrCodeUnknownError, "Unknown Error")
	ErrIllegalArgument *ChrononErr = NewErrfCode(ErrCodeIllegalArgument, "Illegal Argument")
	ErrInvalidFormat   *ChrononErr = NewErrfCode(ErrCodeInvalidFormat, "Invalid Format")
	ErrAmbiguousMatch  *ChrononErr = NewErrfCode(ErrCodeAmbiguousMatch, "Ambiguous Converter Match")
	ErrOverflow        *ChrononErr = NewErrfCode(ErrCodeOverflow, "Arithmetic Overflow")
	ErrNotPermitted    *ChrononErr = NewErrfCode(ErrCodeNotPermitted, "Not Permitted")
)

var (
	Errf = NewErrf
)

// Chronon Error.
//
//	Use NewErrf(...) to instantiate.
type ChrononErr struct {
	code        string // error code.
	msg         string // error message describing the category of the error.
	internalMsg string // detailed message describing the actual failure.
	stack       string
	err         error
}

func (e *ChrononErr) Cause() error {
	return e.err
}

func (e *ChrononErr) InternalMsg() string {
	return e.internalMsg
}

func (e *ChrononErr) Msg() string {
	return e.msg
}

func (e *ChrononErr) Code() string {
	return e.code
}

func (e *ChrononErr) StackTrace() string {
	return e.stack
}

// Create new *ChrononErr to wrap the cause error
//
// if cause is nil, nil is returned.
func (e *ChrononErr) Wrap(cause error) error {
	if cause == nil {
		return nil
	}
	n := e.copyNew()
	n.err = cause
	n.withStack()
	return n
}

// Create new *ChrononErr to wrap the cause error
//
// if cause is nil, nil is returned.
func (e *ChrononErr) Wrapf(cause error, internalMsg string, args ...any) error {
	if cause == nil {
		return nil
	}
	n := e.copyNew()
	n.err = cause
	n.withStack()
	if len(args) > 0 {
		n.internalMsg = fmt.Sprintf(internalMsg, args...)
	} else {
		n.internalMsg = internalMsg
	}
	return n
}

func (e *ChrononErr) copyNew() *ChrononErr {
	n := new(ChrononErr)
	n.code = e.code
	n.msg = e.msg
	n.internalMsg = e.internalMsg
	n.stack = e.stack
	n.err = e.err
	return n
}

func (e *ChrononErr) New() error {
	n := new(ChrononErr)
	n.code = e.code
	n.msg = e.msg
	n.internalMsg = e.internalMsg
	n.err = e.err
	n.withStack()
	return n
}

func (e *ChrononErr) Error() string {
	tok := []string{}
	if e.msg != "" {
		tok = append(tok, e.msg)
	}
	if e.internalMsg != "" {
		tok = append(tok, e.internalMsg)
	}
	uw := e.Unwrap()
	if uw != nil {
		tok = append(tok, uw.Error())
	}
	return strings.Join(tok, ", ")
}

func (e *ChrononErr) HasCode() bool {
	return !strutil.IsBlankStr(e.code)
}

func (e *ChrononErr) WithCode(code string) *ChrononErr {
	n := e.copyNew()
	n.code = code
	return n
}

func (e *ChrononErr) WithMsg(msg string) *ChrononErr {
	n := e.copyNew()
	n.msg = msg
	n.withStack()
	return n
}

// Implements *ChrononErr Is check.
//
// Returns true, if both are *ChrononErr and the code matches.
//
// WithInternalMsg always create new error, so we can basically
// reuse the same error created using 'errs.NewErrf(...).WithCode(...)'
//
//	var e1 = ErrInvalidFormat.WithInternalMsg(...)
//	var e2 = ErrInvalidFormat.WithInternalMsg(...)
//
//	errors.Is(e1, ErrInvalidFormat)
//	errors.Is(e2, ErrInvalidFormat)
func (e *ChrononErr) Is(target error) bool {
	if tme, ok := target.(*ChrononErr); ok && e.code != "" && e.code == tme.code {
		return true
	}
	return false
}

func (e *ChrononErr) WithInternalMsg(msg string, args ...any) *ChrononErr {
	ne := e.copyNew()
	ne.withStack()
	if len(args) > 0 {
		ne.internalMsg = fmt.Sprintf(msg, args...)
	} else {
		ne.internalMsg = msg
	}
	return ne
}

func (e *ChrononErr) withStack() *ChrononErr {
	e.stack = stack(3)
	return e
}

func (e *ChrononErr) Unwrap() error {
	return e.err
}

// Create new *ChrononErr with message.
func NewErrf(msg string, args ...any) *ChrononErr {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	me := &ChrononErr{msg: msg, internalMsg: "", err: nil}
	me.withStack()
	return me
}

// Create new *ChrononErr with message and error code.
func NewErrfCode(code string, msg string, args ...any) *ChrononErr {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	me := &ChrononErr{msg: msg, internalMsg: "", err: nil, code: code}
	me.withStack()
	return me
}

// Wrap an error to create new *ChrononErr with stacktrace.
//
// If err is nil, nil is returned.
//
// If err is *ChrononErr, err is returned directly.
func WrapErr(err error) error {
	if err == nil {
		return nil
	}
	if me, ok := err.(*ChrononErr); ok {
		return me
	}
	me := &ChrononErr{msg: "", internalMsg: "", err: err, code: ""}
	me.withStack()
	return me
}

// Wrap an error to create new ChrononErr with message.
//
// If the wrapped err is nil, nil is returned.
func WrapErrf(err error, msg string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	me := &ChrononErr{msg: msg, internalMsg: "", err: err}
	me.withStack()
	return me
}

func UnwrapErrStack(err error) (string, bool) {
	var stack string
	var ue error = err
	for {
		if me, ok := ue.(*ChrononErr); ok {
			if me != nil {
				stack = me.stack
			}
		}
		u := errors.Unwrap(ue)
		if u == nil {
			break
		}
		ue = u
	}

	return stack, stack != ""
}

func ErrorStackTrace(err error) string {
	if err == nil {
		return "nil"
	}
	stackTrace, withStack := UnwrapErrStack(err)
	m := err.Error()
	if withStack {
		m += stackTrace
	}
	return m
}

var stackPool = sync.Pool{
	New: func() any {
		var v []uintptr = make([]uintptr, 50)
		return &v
	},
}

func stack(n int) string {
	stack := stackPool.Get().(*[]uintptr)
	defer func() {
		clear(*stack)
		stackPool.Put(stack)
	}()

	length := runtime.Callers(n, *stack)
	frames := runtime.CallersFrames((*stack)[:length])
	b := strings.Builder{}

	for {
		f, next := frames.Next()
		if !next {
			break
		}
		b.WriteString(fmt.Sprintf("\n\t%v\n\t\t%v:%v", f.Function, f.File, f.Line))
	}
	return b.String()
}
