package errorutil_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/goseq/internal/errorutil"
)

const errSentinel errorutil.Error = "sentinel"

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")

	cases := []struct {
		name    string
		args    []any
		wantMsg string
		wantIs  []error
	}{
		{"no args", nil, "sentinel", []error{errSentinel}},
		{"error", []any{inner}, "sentinel: inner", []error{errSentinel, inner}},
		{"already wrapped", []any{errorutil.NewWrapperError(errSentinel, "x")}, "sentinel: x", []error{errSentinel}},
		{"message", []any{"bad %d"}, "sentinel: bad %d", []error{errSentinel}},
		{"format", []any{"bad %d", 5}, "sentinel: bad 5", []error{errSentinel}},
		{"other", []any{42}, "sentinel", []error{errSentinel}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(errSentinel, c.args...)
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("NewWrapperError(%v).Error() = %q, want %q", c.args, got, c.wantMsg)
			}
			for _, want := range c.wantIs {
				if !errors.Is(err, want) {
					t.Errorf("errors.Is(NewWrapperError(%v), %v) = false, want true", c.args, want)
				}
			}
		})
	}
}

func TestNewInvalidArgumentError(t *testing.T) {
	t.Parallel()

	err := errorutil.NewInvalidArgumentError("size %d", -1)
	if diff := cmp.Diff(err, error(errorutil.ErrInvalidArgument), cmpopts.EquateErrors()); diff != "" {
		t.Errorf("NewInvalidArgumentError() = %v, want %v\ndiff (-got +want):\n%v", err, errorutil.ErrInvalidArgument, diff)
	}
	if got, want := err.Error(), "invalid argument: size -1"; got != want {
		t.Errorf("NewInvalidArgumentError().Error() = %q, want %q", got, want)
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	errA, errB := errors.New("a"), errors.New("b")

	cases := []struct {
		name    string
		errs    []error
		wantMsg string
	}{
		{"none", nil, ""},
		{"only nil", []error{nil, nil}, ""},
		{"single", []error{nil, errA}, "a"},
		{"multiple", []error{errA, nil, errB}, "\n  - a\n  - b"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.Join(c.errs...)
			if c.wantMsg == "" {
				if err != nil {
					t.Errorf("Join() = %v, want nil", err)
				}
				return
			}
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("Join().Error() = %q, want %q", got, c.wantMsg)
			}
			for _, e := range c.errs {
				if e != nil && !errors.Is(err, e) {
					t.Errorf("errors.Is(Join(), %v) = false, want true", e)
				}
			}
		})
	}
}

func TestJoinPrefix(t *testing.T) {
	t.Parallel()

	errA, errB := errors.New("a"), errors.New("b\nmore")

	if err := errorutil.JoinPrefix("suite"); err != nil {
		t.Errorf("JoinPrefix(\"suite\") = %v, want nil", err)
	}
	if got, want := errorutil.JoinPrefix("suite:", errA).Error(), "suite: a"; got != want {
		t.Errorf("JoinPrefix(single).Error() = %q, want %q", got, want)
	}

	nested := errorutil.JoinPrefix("inner", errA, errB)
	got := errorutil.JoinPrefix("outer", nested, errA).Error()
	want := "outer\n  - inner\n    - a\n    - b\n      more\n  - a"
	if got != want {
		t.Errorf("JoinPrefix(nested).Error() = %q, want %q", got, want)
	}
}
