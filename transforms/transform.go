package transforms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alekLukanen/errs"

	"github.com/alekLukanen/IcebergTransforms/icetypes"
)

// RowMapper maps one source value to its partition value. A nil
// input is the explicit null marker and always maps to nil.
type RowMapper func(value any) (any, error)

/*
* A partition transform. Implementations are immutable value objects
* identified by their canonical specifier string; two transforms are
* equal iff their canonical strings are equal. The source type is
* passed explicitly on every call and is never cached on the
* transform, so one instance can be shared across columns and
* goroutines without restriction.
 */
type Transform interface {
	fmt.Stringer

	// CanTransform reports whether the transform accepts the source
	// type. It never fails; it is the gate that avoids
	// ErrUnsupportedTransform from Bind and ResultType.
	CanTransform(source icetypes.Type) bool

	// Bind returns the value mapping function for the source type.
	Bind(source icetypes.Type) (RowMapper, error)

	// ResultType returns the type of the partition values the bound
	// mapper produces.
	ResultType(source icetypes.Type) (icetypes.Type, error)

	// PreservesOrder reports whether output ordering is monotonic in
	// the input.
	PreservesOrder() bool

	// SatisfiesOrderOf reports whether this transform's output
	// ordering, over the given source type, is at least as fine as
	// the other transform's. Used for predicate pushdown across
	// partition boundaries.
	SatisfiesOrderOf(source icetypes.Type, other Transform) bool

	// ToHumanString renders a partition value for display. A nil
	// value renders as the literal "null".
	ToHumanString(source icetypes.Type, value any) string
}

// Equal compares transforms by canonical specifier string.
func Equal(a, b Transform) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}

const (
	identitySpec = "identity"
	voidSpec     = "void"
	bucketSpec   = "bucket"
	truncateSpec = "truncate"
	unknownSpec  = "unknown"
)

/*
* Parses a canonical transform specifier string. Recognized forms are
* "identity", "void", "bucket[N]" and "truncate[W]" with N, W
* positive integers. A malformed bucket or truncate parameter is a
* parse error; any other string parses as an UnknownTransform so
* specifiers written by newer format versions do not fail until they
* are actually applied.
 */
func ParseTransform(spec string) (Transform, error) {
	switch spec {
	case identitySpec:
		return IdentityTransform{}, nil
	case voidSpec:
		return VoidTransform{}, nil
	}

	if numBuckets, ok, err := parseBracketNumber(spec, bucketSpec); err != nil {
		return nil, err
	} else if ok {
		return NewBucketTransform(numBuckets), nil
	}

	if width, ok, err := parseBracketNumber(spec, truncateSpec); err != nil {
		return nil, err
	} else if ok {
		return NewTruncateTransform(width), nil
	}

	return NewUnknownTransform(spec), nil
}

func parseBracketNumber(spec string, name string) (int, bool, error) {
	prefix := name + "["
	if !strings.HasPrefix(spec, prefix) || !strings.HasSuffix(spec, "]") {
		return 0, false, nil
	}

	inner := spec[len(prefix) : len(spec)-1]
	value, err := strconv.Atoi(inner)
	if err != nil {
		return 0, false, errs.NewStackError(
			fmt.Errorf("%w: %s parameter %q is not an integer", ErrParseTransform, name, inner),
		)
	}
	if value <= 0 {
		return 0, false, errs.NewStackError(
			fmt.Errorf("%w: %s parameter must be positive, got %d", ErrParseTransform, name, value),
		)
	}
	return value, true, nil
}
