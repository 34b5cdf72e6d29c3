// Package constraints provides constraints for various types.
package constraints

// Byteseq represents a generic UTF-8 byte string.
type Byteseq interface {
	~string | ~[]byte
}

// Signed represents any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned represents any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer represents any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float represents any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Number represents any arithmetic type.
type Number interface {
	Integer | Float
}

// Addable represents types that support the + operator.
type Addable interface {
	Number | ~string
}
