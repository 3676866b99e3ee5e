package handler

import "time"

// --- Request types ---

type createProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Language    string `json:"language"`
}

// saveProjectRequest is a partial update: nil fields were absent from the
// payload and leave the stored value untouched. Files and FileTree must be
// JSON arrays; any other shape fails binding and is rejected outright.
type saveProjectRequest struct {
	Code     *string `json:"code"`
	Files    *[]any  `json:"files"`
	FileTree *[]any  `json:"file_tree"`
}

type renameProjectRequest struct {
	Name string `json:"name" validate:"required"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal domain changes. Every response carries the success/msg envelope.

type projectBody struct {
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

// projectSummaryBody intentionally omits code, files, and file_tree to
// keep list payloads small.
type projectSummaryBody struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type projectResponse struct {
	Success bool        `json:"success"`
	Msg     string      `json:"msg"`
	Project projectBody `json:"project"`
}

type listProjectsResponse struct {
	Success  bool                 `json:"success"`
	Msg      string               `json:"msg"`
	Projects []projectSummaryBody `json:"projects"`
	Total    int                  `json:"total"`
}

type deleteProjectResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}
