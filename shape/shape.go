// Package shape provides plane shapes with validated non-negative dimensions.
package shape

//go:generate go tool errtrace -w .

import (
	"fmt"
	"math"

	"braces.dev/errtrace"

	"github.com/ghettovoice/goseq/magnitude"
)

// Shape is a plane figure with an area.
type Shape interface {
	// Area returns the area of the shape.
	Area() float64
	// String describes the dimensions and the area of the shape.
	String() string
}

// Width is the domain of horizontal extents.
type Width struct{}

// Height is the domain of vertical extents.
type Height struct{}

// Radius is the domain of circle radii.
type Radius struct{}

func (Width) DomainName() string  { return "width" }
func (Height) DomainName() string { return "height" }
func (Radius) DomainName() string { return "radius" }

// Dim is a validated non-negative dimension of the domain D.
type Dim[D magnitude.Domain] = magnitude.Magnitude[float64, D]

// Rectangle is a rectangle with the given width and height.
type Rectangle struct {
	w Dim[Width]
	h Dim[Height]
}

// NewRectangle returns a rectangle w wide and h high.
// It fails with [magnitude.ErrInvalidMagnitude] on a negative dimension.
func NewRectangle(w, h float64) (*Rectangle, error) {
	wm, err := magnitude.New[Width](w)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	hm, err := magnitude.New[Height](h)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Rectangle{wm, hm}, nil
}

// Width returns the width of the rectangle.
func (r *Rectangle) Width() Dim[Width] { return r.w }

// Height returns the height of the rectangle.
func (r *Rectangle) Height() Dim[Height] { return r.h }

// Area implements [Shape].
func (r *Rectangle) Area() float64 { return r.w.Get() * r.h.Get() }

func (r *Rectangle) String() string {
	return fmt.Sprintf("Width: %v Height: %v The area is: %v", r.w, r.h, r.Area())
}

// Circle is a circle with the given radius.
type Circle struct {
	r Dim[Radius]
}

// NewCircle returns a circle of the radius r.
// It fails with [magnitude.ErrInvalidMagnitude] on a negative radius.
func NewCircle(r float64) (*Circle, error) {
	rm, err := magnitude.New[Radius](r)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Circle{rm}, nil
}

// Radius returns the radius of the circle.
func (c *Circle) Radius() Dim[Radius] { return c.r }

// Area implements [Shape].
func (c *Circle) Area() float64 { return math.Pi * c.r.Get() * c.r.Get() }

func (c *Circle) String() string {
	return fmt.Sprintf("Radius: %v The area is: %v", c.r, c.Area())
}

// TotalArea returns the sum of the areas of shapes.
func TotalArea(shapes ...Shape) float64 {
	var sum float64
	for _, s := range shapes {
		sum += s.Area()
	}
	return sum
}
