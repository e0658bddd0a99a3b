// ABOUTME: Request records for the four memo tools.
// ABOUTME: Applies defaults and validates untyped arguments before dispatch.

package mcp

import (
	"fmt"
	"strings"

	"github.com/rumman157/memos-mcp/internal/memos"
)

type searchMemoRequest struct {
	KeyWord string `json:"key_word"`
}

func (r *searchMemoRequest) validate() error {
	if r.KeyWord == "" {
		return fmt.Errorf("key_word: required field is missing")
	}
	return nil
}

type createMemoRequest struct {
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

func defaultCreateMemoRequest() createMemoRequest {
	return createMemoRequest{Visibility: string(memos.VisibilityPublic)}
}

func (r *createMemoRequest) validate() error {
	if r.Content == "" {
		return fmt.Errorf("content: required field is missing")
	}
	if _, err := memos.ParseVisibility(r.Visibility); err != nil {
		return fmt.Errorf("visibility: %w", err)
	}
	return nil
}

// visibility returns the parsed enum value. Call validate first.
func (r *createMemoRequest) visibility() memos.Visibility {
	return memos.Visibility(r.Visibility)
}

type getMemoRequest struct {
	Name string `json:"name"`
}

func (r *getMemoRequest) validate() error {
	if r.Name == "" {
		return fmt.Errorf("name: required field is missing")
	}
	if !strings.HasPrefix(r.Name, "memos/") || r.Name == "memos/" {
		return fmt.Errorf("name: %q does not match the memos/{id} format", r.Name)
	}
	return nil
}

type listMemoTagsRequest struct {
	Parent     string `json:"parent"`
	Visibility string `json:"visibility"`
}

func defaultListMemoTagsRequest() listMemoTagsRequest {
	return listMemoTagsRequest{
		Parent:     "memos/-",
		Visibility: string(memos.VisibilityPrivate),
	}
}

func (r *listMemoTagsRequest) validate() error {
	if r.Parent == "" {
		return fmt.Errorf("parent: required field is missing")
	}
	if _, err := memos.ParseVisibility(r.Visibility); err != nil {
		return fmt.Errorf("visibility: %w", err)
	}
	return nil
}

// visibility returns the parsed enum value. Call validate first.
func (r *listMemoTagsRequest) visibility() memos.Visibility {
	return memos.Visibility(r.Visibility)
}
