// ABOUTME: Tests for filter expression builders.
// ABOUTME: Covers the expected grammar and escaping of interpolated values.

package memos

import "testing"

func TestSearchFilter(t *testing.T) {
	want := `row_status == 'NORMAL' && content_search == ['today']`
	if got := SearchFilter("today"); got != want {
		t.Errorf("expected filter %q, got %q", want, got)
	}
}

func TestSearchFilterEscapesQuotes(t *testing.T) {
	want := `row_status == 'NORMAL' && content_search == ['it\'s']`
	if got := SearchFilter("it's"); got != want {
		t.Errorf("expected filter %q, got %q", want, got)
	}
}

func TestSearchFilterEscapesBackslashes(t *testing.T) {
	want := `row_status == 'NORMAL' && content_search == ['a\\b']`
	if got := SearchFilter(`a\b`); got != want {
		t.Errorf("expected filter %q, got %q", want, got)
	}
}

func TestTagVisibilityFilter(t *testing.T) {
	want := `visibilities == ['PRIVATE']`
	if got := TagVisibilityFilter(VisibilityPrivate); got != want {
		t.Errorf("expected filter %q, got %q", want, got)
	}
}
