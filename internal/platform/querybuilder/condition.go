package querybuilder

// Condition is one AND-joined predicate of a WHERE clause.
type Condition interface {
	writeTo(w *sqlWriter)
}

type compareCondition struct {
	column string
	op     string
	value  any
}

func Eq(column string, value any) Condition {
	return compareCondition{column: column, op: "=", value: value}
}

func Ne(column string, value any) Condition {
	return compareCondition{column: column, op: "<>", value: value}
}

func Gte(column string, value any) Condition {
	return compareCondition{column: column, op: ">=", value: value}
}

func (c compareCondition) writeTo(w *sqlWriter) {
	w.write(c.column, " ", c.op, " ")
	w.bind(c.value)
}

type inCondition struct {
	column string
	values []any
}

// In expands to one placeholder per value. An empty list matches nothing.
func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

// InStrings is In for string slices.
func InStrings(column string, values []string) Condition {
	items := make([]any, 0, len(values))
	for _, v := range values {
		items = append(items, v)
	}
	return In(column, items)
}

func (c inCondition) writeTo(w *sqlWriter) {
	if len(c.values) == 0 {
		w.write("1=0")
		return
	}

	w.write(c.column, " IN (")
	for i, v := range c.values {
		if i > 0 {
			w.write(", ")
		}
		w.bind(v)
	}
	w.write(")")
}

type anyCondition struct {
	column string
	array  any
}

// Any binds a single array argument, e.g. pq.Array(ids), as "column = ANY($n)".
func Any(column string, array any) Condition {
	return anyCondition{column: column, array: array}
}

func (c anyCondition) writeTo(w *sqlWriter) {
	w.write(c.column, " = ANY(")
	w.bind(c.array)
	w.write(")")
}

type isNullCondition struct {
	column string
}

func IsNull(column string) Condition {
	return isNullCondition{column: column}
}

func (c isNullCondition) writeTo(w *sqlWriter) {
	w.write(c.column, " IS NULL")
}

type exprCondition struct {
	expr string
	args []any
}

// Expr is a raw predicate where each '?' is bound to the next arg.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) writeTo(w *sqlWriter) {
	w.writeExpr(c.expr, c.args)
}
