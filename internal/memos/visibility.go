// ABOUTME: Visibility enumeration controlling memo access scope.
// ABOUTME: Maps bidirectionally to the Memos API wire representation.

package memos

import (
	"fmt"

	v1pb "github.com/usememos/memos/proto/gen/api/v1"
)

// Visibility controls who can see a memo or tag.
type Visibility string

const (
	VisibilityPublic    Visibility = "PUBLIC"
	VisibilityProtected Visibility = "PROTECTED"
	VisibilityPrivate   Visibility = "PRIVATE"
)

// Visibilities returns every valid visibility value.
func Visibilities() []Visibility {
	return []Visibility{VisibilityPublic, VisibilityProtected, VisibilityPrivate}
}

// ParseVisibility validates s against the closed enumeration. Out-of-enum
// values fail rather than coerce.
func ParseVisibility(s string) (Visibility, error) {
	switch v := Visibility(s); v {
	case VisibilityPublic, VisibilityProtected, VisibilityPrivate:
		return v, nil
	default:
		return "", fmt.Errorf("invalid visibility %q, must be one of PUBLIC, PROTECTED, PRIVATE", s)
	}
}

// Wire returns the Memos API representation of v.
func (v Visibility) Wire() v1pb.Visibility {
	switch v {
	case VisibilityPublic:
		return v1pb.Visibility_PUBLIC
	case VisibilityProtected:
		return v1pb.Visibility_PROTECTED
	case VisibilityPrivate:
		return v1pb.Visibility_PRIVATE
	default:
		return v1pb.Visibility_VISIBILITY_UNSPECIFIED
	}
}

// FromWire converts a Memos API visibility back to the local enumeration.
// The second return value reports whether w maps to a known variant.
func FromWire(w v1pb.Visibility) (Visibility, bool) {
	switch w {
	case v1pb.Visibility_PUBLIC:
		return VisibilityPublic, true
	case v1pb.Visibility_PROTECTED:
		return VisibilityProtected, true
	case v1pb.Visibility_PRIVATE:
		return VisibilityPrivate, true
	default:
		return "", false
	}
}
