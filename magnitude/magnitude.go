// Package magnitude provides non-negative numeric values tagged with a semantic domain.
//
// A domain is a zero-sized type used only as a type parameter. Two magnitudes
// that wrap the same numeric type but belong to different domains are distinct
// Go types, so a width cannot be passed where a count is expected:
//
//	type Width struct{}
//
//	func (Width) DomainName() string { return "width" }
//
//	w, err := magnitude.New[Width](2.5) // magnitude.Magnitude[float64, Width]
//
// Validation happens once, at construction. Values written through [Magnitude.Ptr]
// are not re-validated; use [Magnitude.Validate] to re-check them.
package magnitude

//go:generate go tool errtrace -w .

import (
	"fmt"

	"braces.dev/errtrace"

	"github.com/ghettovoice/goseq/internal/constraints"
	"github.com/ghettovoice/goseq/internal/errorutil"
	"github.com/ghettovoice/goseq/internal/util"
)

// ErrInvalidMagnitude is returned when a negative or NaN value is used to construct a [Magnitude].
// Errors carrying it also match [errorutil.ErrInvalidArgument].
const ErrInvalidMagnitude errorutil.Error = "invalid magnitude"

func newInvalidMagnitudeError(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidMagnitude, errorutil.NewInvalidArgumentError(args...)) //errtrace:skip
}

// Domain is implemented by phantom tag types.
// DomainName is used only for rendering, it never takes part in comparison.
type Domain interface {
	DomainName() string
}

// DomainName returns the name of the domain D.
func DomainName[D Domain]() string {
	var d D
	return d.DomainName()
}

// Magnitude is a non-negative value of the numeric type T in the domain D.
// The zero value is a valid zero magnitude.
type Magnitude[T constraints.Number, D Domain] struct {
	v T
}

// New returns a magnitude of the domain D wrapping v.
// It fails with [ErrInvalidMagnitude] when v is negative or NaN.
func New[D Domain, T constraints.Number](v T) (Magnitude[T, D], error) {
	if err := check[D](v); err != nil {
		return Magnitude[T, D]{}, errtrace.Wrap(err)
	}
	return Magnitude[T, D]{v}, nil
}

// Must is like [New] but panics on error.
func Must[D Domain, T constraints.Number](v T) Magnitude[T, D] {
	return util.Must2(New[D](v))
}

func check[D Domain, T constraints.Number](v T) error {
	if isNaN(v) {
		return errtrace.Wrap(newInvalidMagnitudeError("%s is NaN", DomainName[D]()))
	}
	if v < 0 {
		return errtrace.Wrap(newInvalidMagnitudeError("%s %v is negative", DomainName[D](), v))
	}
	return nil
}

func isNaN[T constraints.Number](v T) bool { return v != v } //nolint:staticcheck

// Get returns the wrapped value.
func (m Magnitude[T, D]) Get() T { return m.v }

// Ptr returns a pointer to the wrapped value.
// Writes through the pointer bypass validation.
func (m *Magnitude[T, D]) Ptr() *T { return &m.v }

// IsValid reports whether the wrapped value is still a non-negative number.
func (m Magnitude[T, D]) IsValid() bool { return m.Validate() == nil }

// Validate re-checks the wrapped value.
func (m Magnitude[T, D]) Validate() error { return errtrace.Wrap(check[D](m.v)) }

// Equal reports whether val is a magnitude of the same type holding the same value.
func (m Magnitude[T, D]) Equal(val any) bool {
	var other Magnitude[T, D]
	switch v := val.(type) {
	case Magnitude[T, D]:
		other = v
	case *Magnitude[T, D]:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return m.v == other.v
}

func (m Magnitude[T, D]) String() string { return fmt.Sprint(m.v) }

// Format implements [fmt.Formatter].
// Verb %+v renders the domain name along with the value, other verbs are applied to the value.
func (m Magnitude[T, D]) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('+'):
		fmt.Fprintf(f, "%s(%v)", DomainName[D](), m.v)
	case verb == 's':
		fmt.Fprint(f, m.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), m.v)
	}
}
