package tool

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE metacharacters in user-supplied search text.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
