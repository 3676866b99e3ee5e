package domain

import (
	"errors"
	"time"
)

// DefaultLanguage is applied when a project is created without one.
const DefaultLanguage = "javascript"

var ErrProjectNotFound = errors.New("project not found")
var ErrForbidden = errors.New("access forbidden")
var ErrNameRequired = errors.New("project name is required")

// Project is the core aggregate: a single-file source buffer plus an
// optional multi-file layout, owned by exactly one user.
//
// Files and FileTree are opaque ordered sequences supplied by the editor
// frontend. The backend stores and returns them verbatim; it never
// inspects individual entries.
type Project struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Code        string    `json:"code"`
	Files       []any     `json:"files"`
	FileTree    []any     `json:"file_tree"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
