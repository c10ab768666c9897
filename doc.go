// Package fromenv materializes a strongly-typed, nested record value from a
// flat mapping of uppercase string keys to string values (typically the
// process environment), driven entirely by the shape of a Go struct. The
// hard part it solves is the recursion over that shape: deriving a variable
// name for every leaf, discovering which leaves are actually present,
// picking exactly one "default" when a composite type can be produced from
// zero input, and making sure no input key is ever silently claimed by two
// different schema positions.
//
// Schema kinds map onto Go types as follows: a record is a struct; a scalar
// is any int/uint/float/string kind; a boolean is the bool kind; a custom
// leaf is any type whose pointer implements Unmarshaler; Optional[T], the
// Union2/Union3 family and the Tuple2/Tuple3/Tuple4 family cover optional
// values, ordered alternatives and fixed-length heterogeneous tuples; a
// plain slice []T is a homogeneous sequence, and the named VarTuple[T]
// slice type is its any-length-tuple twin.
package fromenv
