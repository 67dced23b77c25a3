package lookup

// Operator is a lookup operator named by the final segment of a path.
type Operator uint8

const (
	// OpNone means the final segment names no operator: plain equality.
	OpNone Operator = iota
	// OpNot is inequality, or "non-empty" against a null target.
	OpNot
	// OpIsNull tests for missing or empty values.
	OpIsNull
	// OpExact is trimmed, case-sensitive string equality.
	OpExact
	// OpIExact is trimmed, case-insensitive string equality.
	OpIExact
	// OpContains is a trimmed, case-sensitive substring test.
	OpContains
	// OpIContains is a trimmed, case-insensitive substring test.
	OpIContains
	// OpStartsWith is a case-sensitive prefix test.
	OpStartsWith
	// OpIStartsWith is a case-insensitive prefix test.
	OpIStartsWith
	// OpEndsWith is a case-sensitive suffix test.
	OpEndsWith
	// OpIEndsWith is a case-insensitive suffix test.
	OpIEndsWith
	// OpIn tests membership in the target array.
	OpIn
	// OpNotIn tests absence from the target array.
	OpNotIn
	// OpLt is "less than".
	OpLt
	// OpLte is "less than or equal".
	OpLte
	// OpGt is "greater than".
	OpGt
	// OpGte is "greater than or equal".
	OpGte
	// OpRange tests low <= value <= high for a [low, high] target.
	OpRange
)

var operatorNames = [...]string{
	OpNone:        "",
	OpNot:         "not",
	OpIsNull:      "isnull",
	OpExact:       "exact",
	OpIExact:      "iexact",
	OpContains:    "contains",
	OpIContains:   "icontains",
	OpStartsWith:  "startswith",
	OpIStartsWith: "istartswith",
	OpEndsWith:    "endswith",
	OpIEndsWith:   "iendswith",
	OpIn:          "in",
	OpNotIn:       "not_in",
	OpLt:          "lt",
	OpLte:         "lte",
	OpGt:          "gt",
	OpGte:         "gte",
	OpRange:       "range",
}

var operatorByName = func() map[string]Operator {
	m := make(map[string]Operator, len(operatorNames))
	for op, name := range operatorNames {
		if name != "" {
			m[name] = Operator(op)
		}
	}
	return m
}()

// ParseOperator returns the operator named by s.
func ParseOperator(s string) (Operator, bool) {
	op, ok := operatorByName[s]
	return op, ok
}

// String returns the path token for the operator.
func (o Operator) String() string {
	if int(o) < len(operatorNames) {
		return operatorNames[o]
	}
	return "unknown"
}

func (o Operator) isString() bool {
	return o >= OpExact && o <= OpIEndsWith
}

func (o Operator) isOrdering() bool {
	return o >= OpLt && o <= OpGte
}
