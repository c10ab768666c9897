package fromenv

// strategy binds a Config's handler order to the decode walk, resolving
// each position to the first handler in the list that claims its type.
type strategy struct {
	cfg      Config
	handlers []Handler
}

func (s *strategy) resolve(pos position) (Handler, error) {
	for _, h := range s.handlers {
		if h.canHandle(pos) {
			return h, nil
		}
	}
	return nil, &UnsupportedValueTypeError{QualifiedName: pos.qual, Type: pos.typ}
}

// DefaultHandlers returns the canonical dispatch order: custom types take
// priority over their structural kind, Optional is tried before the kind it
// wraps, and records/unions/sequences/tuples are tried after every scalar
// kind so a record never accidentally shadows a scalar's Kind().
func DefaultHandlers() []Handler {
	return []Handler{
		customHandler{},
		optionalHandler{},
		integerScalarHandler{},
		floatScalarHandler{},
		stringScalarHandler{},
		booleanHandler{},
		recordHandler{},
		unionHandler{},
		sequenceHandler{},
		fixedTupleHandler{},
		anyLengthTupleHandler{},
	}
}
