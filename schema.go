package fromenv

import "reflect"

// Marker interfaces used purely for reflect.Type.Implements() detection:
// Go generics can't be type-switched by "is this Optional[T] for some T",
// but a no-op method satisfies Implements() regardless of the concrete
// type argument the generic was instantiated with.
type (
	optionalKind interface{ isFromEnvOptional() }
	unionKind    interface{ isFromEnvUnion() }
	tupleKind    interface{ isFromEnvTuple() }
	varTupleKind interface{ isFromEnvVarTuple() }
)

var (
	unmarshalerType  = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
	optionalKindType = reflect.TypeOf((*optionalKind)(nil)).Elem()
	unionKindType    = reflect.TypeOf((*unionKind)(nil)).Elem()
	tupleKindType    = reflect.TypeOf((*tupleKind)(nil)).Elem()
	varTupleKindType = reflect.TypeOf((*varTupleKind)(nil)).Elem()
)

// isCustom reports whether t's pointer type implements Unmarshaler.
func isCustom(t reflect.Type) bool {
	return reflect.PointerTo(t).Implements(unmarshalerType)
}

func isOptional(t reflect.Type) bool { return t.Implements(optionalKindType) }

// stripOptional returns the inner (non-null) type of an Optional[T].
func stripOptional(t reflect.Type) reflect.Type { return t.Field(0).Type }

func isUnion(t reflect.Type) bool { return t.Implements(unionKindType) }

// unionArms returns the ordered alternative types of a Union2/Union3,
// dropping the trailing Index discriminant field.
func unionArms(t reflect.Type) []reflect.Type {
	n := t.NumField() - 1
	arms := make([]reflect.Type, n)
	for i := 0; i < n; i++ {
		arms[i] = t.Field(i).Type
	}
	return arms
}

func isFixedTuple(t reflect.Type) bool { return t.Implements(tupleKindType) }

// tupleElems returns the positional element types of a Tuple2/3/4.
func tupleElems(t reflect.Type) []reflect.Type {
	n := t.NumField()
	elems := make([]reflect.Type, n)
	for i := 0; i < n; i++ {
		elems[i] = t.Field(i).Type
	}
	return elems
}

func isAnyLengthTuple(t reflect.Type) bool { return t.Implements(varTupleKindType) }

// isSequence reports whether t is a plain homogeneous slice, excluding the
// VarTuple family even though both share reflect.Slice as their kind.
func isSequence(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && !isAnyLengthTuple(t)
}

func isRecord(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && !isOptional(t) && !isUnion(t) && !isFixedTuple(t)
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isUnsignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}
