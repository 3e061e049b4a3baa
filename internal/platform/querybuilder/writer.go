package querybuilder

import (
	"strconv"
	"strings"
)

// sqlWriter accumulates a statement and its positional ($n) arguments.
type sqlWriter struct {
	buf  strings.Builder
	args []any
	next int
}

func newSQLWriter(argCap int) *sqlWriter {
	return &sqlWriter{args: make([]any, 0, argCap), next: 1}
}

func (w *sqlWriter) write(parts ...string) {
	for _, p := range parts {
		w.buf.WriteString(p)
	}
}

func (w *sqlWriter) bind(value any) {
	w.buf.WriteString(placeholder(w.next))
	w.args = append(w.args, value)
	w.next++
}

// writeExpr copies expr, binding each '?' to the next value of exprArgs.
// Extra '?' without a value are written as-is.
func (w *sqlWriter) writeExpr(expr string, exprArgs []any) {
	if len(exprArgs) == 0 {
		w.buf.WriteString(expr)
		return
	}

	used := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] != '?' || used >= len(exprArgs) {
			w.buf.WriteByte(expr[i])
			continue
		}
		w.bind(exprArgs[used])
		used++
	}
}

func (w *sqlWriter) writeWhere(conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.write(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			w.write(" AND ")
		}
		c.writeTo(w)
	}
}

func (w *sqlWriter) writeSuffix(suffix string) {
	if suffix == "" {
		return
	}
	w.write(" ", suffix)
}

func (w *sqlWriter) result() (string, []any, error) {
	return w.buf.String(), w.args, nil
}

func placeholder(i int) string {
	return "$" + strconv.Itoa(i)
}
