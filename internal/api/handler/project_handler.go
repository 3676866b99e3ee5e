package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mayursuryawanshi23/CodeX-backend/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations. Every route
// sits behind the BearerToken middleware; identity resolution itself
// happens in the service.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create handles POST /v1/projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  projectResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.Create(c.Request().Context(), token, ports.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Language:    req.Language,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, projectResponse{
		Success: true,
		Msg:     "project created successfully",
		Project: toProjectBody(project),
	})
}

// Save handles PUT /v1/projects/:id, a partial save of code, files,
// and/or the file tree.
//
// @Summary      Save project contents
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Project id"
// @Param        body  body      saveProjectRequest  true  "Fields to update; absent fields are untouched"
// @Success      200   {object}  projectResponse
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /v1/projects/{id} [put]
func (h *ProjectHandler) Save(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	var req saveProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	project, err := h.service.Save(c.Request().Context(), token, c.Param("id"), ports.SaveProjectInput{
		Code:     req.Code,
		Files:    req.Files,
		FileTree: req.FileTree,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectResponse{
		Success: true,
		Msg:     "project saved successfully",
		Project: toProjectBody(project),
	})
}

// List handles GET /v1/projects.
//
// @Summary      List the caller's projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listProjectsResponse
// @Failure      401  {object}  map[string]any
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	summaries, err := h.service.List(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listProjectsResponse{
		Success:  true,
		Msg:      "projects fetched successfully",
		Projects: toSummaryBodies(summaries),
		Total:    len(summaries),
	})
}

// Get handles GET /v1/projects/:id.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  projectResponse
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /v1/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	project, err := h.service.Get(c.Request().Context(), token, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectResponse{
		Success: true,
		Msg:     "project fetched successfully",
		Project: toProjectBody(project),
	})
}

// Rename handles PATCH /v1/projects/:id.
//
// @Summary      Rename a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      renameProjectRequest  true  "New name"
// @Success      200   {object}  projectResponse
// @Failure      404   {object}  map[string]any
// @Router       /v1/projects/{id} [patch]
func (h *ProjectHandler) Rename(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	var req renameProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.Rename(c.Request().Context(), token, c.Param("id"), req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectResponse{
		Success: true,
		Msg:     "project edited successfully",
		Project: toProjectBody(project),
	})
}

// Delete handles DELETE /v1/projects/:id. Deleting a project that no
// longer exists still reports success.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  deleteProjectResponse
// @Failure      403  {object}  map[string]any
// @Router       /v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), token, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deleteProjectResponse{
		Success: true,
		Msg:     "project deleted successfully",
	})
}
