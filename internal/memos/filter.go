// ABOUTME: Builders for Memos server-side filter expressions.
// ABOUTME: Escapes interpolated values against the remote filter grammar.

package memos

import (
	"fmt"
	"strings"
)

var filterEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// escapeFilterValue quotes backslashes and single quotes so an interpolated
// value cannot terminate the surrounding string literal.
func escapeFilterValue(s string) string {
	return filterEscaper.Replace(s)
}

// SearchFilter returns the filter matching active memos whose content
// contains keyword.
func SearchFilter(keyword string) string {
	return fmt.Sprintf("row_status == 'NORMAL' && content_search == ['%s']", escapeFilterValue(keyword))
}

// TagVisibilityFilter returns the filter restricting tags to a single
// visibility.
func TagVisibilityFilter(v Visibility) string {
	return fmt.Sprintf("visibilities == ['%s']", v)
}
