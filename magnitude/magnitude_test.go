package magnitude_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/goseq/internal/errorutil"
	"github.com/ghettovoice/goseq/magnitude"
)

type count struct{}

func (count) DomainName() string { return "count" }

type width struct{}

func (width) DomainName() string { return "width" }

type handle struct{}

func (handle) DomainName() string { return "handle" }

func TestNew_Signed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		val     int
		wantErr error
	}{
		{"zero", 0, nil},
		{"positive", 42, nil},
		{"max", math.MaxInt, nil},
		{"negative", -1, magnitude.ErrInvalidMagnitude},
		{"min", math.MinInt, magnitude.ErrInvalidMagnitude},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := magnitude.New[count](c.val)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("magnitude.New(%d) error = %v, want %v\ndiff (-got +want):\n%v", c.val, err, c.wantErr, diff)
			}
			if err != nil {
				if !errors.Is(err, errorutil.ErrInvalidArgument) {
					t.Errorf("magnitude.New(%d) error = %v, want it to match %v", c.val, err, errorutil.ErrInvalidArgument)
				}
				return
			}
			if got.Get() != c.val {
				t.Errorf("magnitude.New(%d).Get() = %d, want %d", c.val, got.Get(), c.val)
			}
		})
	}
}

func TestNew_Float(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		val     float64
		wantErr error
	}{
		{"zero", 0, nil},
		{"negative zero", math.Copysign(0, -1), nil},
		{"positive", 2.5, nil},
		{"inf", math.Inf(1), nil},
		{"negative", -4, magnitude.ErrInvalidMagnitude},
		{"negative inf", math.Inf(-1), magnitude.ErrInvalidMagnitude},
		{"nan", math.NaN(), magnitude.ErrInvalidMagnitude},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := magnitude.New[width](c.val)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("magnitude.New(%v) error = %v, want %v\ndiff (-got +want):\n%v", c.val, err, c.wantErr, diff)
			}
			if err == nil && got.Get() != c.val {
				t.Errorf("magnitude.New(%v).Get() = %v, want %v", c.val, got.Get(), c.val)
			}
		})
	}
}

func TestNew_Unsigned(t *testing.T) {
	t.Parallel()

	for _, v := range []uint32{0, 1, math.MaxUint32} {
		got, err := magnitude.New[count](v)
		if err != nil {
			t.Fatalf("magnitude.New(%d) error = %v, want nil", v, err)
		}
		if got.Get() != v {
			t.Errorf("magnitude.New(%d).Get() = %d, want %d", v, got.Get(), v)
		}
	}
}

func TestMust(t *testing.T) {
	t.Parallel()

	if got := magnitude.Must[count](7).Get(); got != 7 {
		t.Errorf("magnitude.Must(7).Get() = %d, want 7", got)
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, magnitude.ErrInvalidMagnitude) {
			t.Errorf("magnitude.Must(-1) panic = %v, want %v", r, magnitude.ErrInvalidMagnitude)
		}
	}()
	magnitude.Must[count](-1)
}

func TestMagnitude_Ptr(t *testing.T) {
	t.Parallel()

	m := magnitude.Must[count](3)
	cp := m
	*m.Ptr() = 5

	if got := m.Get(); got != 5 {
		t.Errorf("m.Get() after write = %d, want 5", got)
	}
	if got := cp.Get(); got != 3 {
		t.Errorf("cp.Get() after write to m = %d, want 3", got)
	}

	*m.Ptr() = -2
	if m.IsValid() {
		t.Errorf("m.IsValid() after negative write = true, want false")
	}
	if err := m.Validate(); !errors.Is(err, magnitude.ErrInvalidMagnitude) {
		t.Errorf("m.Validate() = %v, want %v", err, magnitude.ErrInvalidMagnitude)
	}
}

func TestMagnitude_Equal(t *testing.T) {
	t.Parallel()

	m := magnitude.Must[count](3)
	same := magnitude.Must[count](3)
	cases := []struct {
		name string
		val  any
		want bool
	}{
		{"nil", nil, false},
		{"nil ptr", (*magnitude.Magnitude[int, count])(nil), false},
		{"same value", magnitude.Must[count](3), true},
		{"same value ptr", &same, true},
		{"other value", magnitude.Must[count](4), false},
		{"other domain", magnitude.Must[width](3), false},
		{"other type", magnitude.Must[count](int64(3)), false},
		{"raw value", 3, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := m.Equal(c.val); got != c.want {
				t.Errorf("m.Equal(val) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestMagnitude_Format(t *testing.T) {
	t.Parallel()

	m := magnitude.Must[width](2.5)
	cases := []struct {
		format string
		want   string
	}{
		{"%v", "2.5"},
		{"%s", "2.5"},
		{"%+v", "width(2.5)"},
		{"%.2f", "2.50"},
		{"%6.1f", "   2.5"},
	}

	for _, c := range cases {
		if got := fmt.Sprintf(c.format, m); got != c.want {
			t.Errorf("fmt.Sprintf(%q, m) = %q, want %q", c.format, got, c.want)
		}
	}
}

func TestTagged(t *testing.T) {
	t.Parallel()

	type fd uintptr

	h := magnitude.Tag[handle](fd(3))
	if got := h.Get(); got != 3 {
		t.Errorf("h.Get() = %d, want 3", got)
	}
	if !h.Equal(magnitude.Tag[handle](fd(3))) {
		t.Errorf("h.Equal(same) = false, want true")
	}
	if h.Equal(magnitude.Tag[handle](fd(4))) {
		t.Errorf("h.Equal(other) = true, want false")
	}
	if h.Equal((*magnitude.Tagged[fd, handle])(nil)) {
		t.Errorf("h.Equal(nil ptr) = true, want false")
	}

	*h.Ptr() = 9
	if got := h.String(); got != "9" {
		t.Errorf("h.String() = %q, want %q", got, "9")
	}
}
