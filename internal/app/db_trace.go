package app

import (
	"regexp"
	"strings"
)

const maxTracedQueryLength = 512

var (
	sqlLineCommentRegex = regexp.MustCompile(`--[^\n]*`)
	sqlWhitespaceRegex  = regexp.MustCompile(`\s+`)
)

// formatDBQueryForTrace collapses a statement onto one line for the db.statement span attribute.
func formatDBQueryForTrace(query string) string {
	query = sqlLineCommentRegex.ReplaceAllString(query, " ")
	query = strings.TrimSpace(sqlWhitespaceRegex.ReplaceAllString(query, " "))

	if len(query) > maxTracedQueryLength {
		return query[:maxTracedQueryLength] + "..."
	}
	return query
}
