// ABOUTME: Tests for the visibility enumeration.
// ABOUTME: Covers parsing, rejection of unknown values, and wire round-trips.

package memos

import (
	"strings"
	"testing"

	v1pb "github.com/usememos/memos/proto/gen/api/v1"
)

func TestParseVisibility(t *testing.T) {
	for _, v := range Visibilities() {
		got, err := ParseVisibility(string(v))
		if err != nil {
			t.Errorf("failed to parse %q: %v", v, err)
		}
		if got != v {
			t.Errorf("expected %q, got %q", v, got)
		}
	}
}

func TestParseVisibilityRejectsUnknown(t *testing.T) {
	for _, s := range []string{"BOGUS", "public", ""} {
		if _, err := ParseVisibility(s); err == nil {
			t.Errorf("expected error for %q", s)
		} else if !strings.Contains(err.Error(), "visibility") {
			t.Errorf("expected error to name the visibility field, got %q", err)
		}
	}
}

func TestVisibilityWireRoundTrip(t *testing.T) {
	for _, v := range Visibilities() {
		wire := v.Wire()
		if wire == v1pb.Visibility_VISIBILITY_UNSPECIFIED {
			t.Errorf("visibility %q mapped to unspecified wire value", v)
		}

		back, ok := FromWire(wire)
		if !ok {
			t.Errorf("wire value %v did not map back", wire)
		}
		if back != v {
			t.Errorf("expected round-trip to %q, got %q", v, back)
		}
	}
}

func TestFromWireUnspecified(t *testing.T) {
	if _, ok := FromWire(v1pb.Visibility_VISIBILITY_UNSPECIFIED); ok {
		t.Error("expected unspecified wire value to be rejected")
	}
}
