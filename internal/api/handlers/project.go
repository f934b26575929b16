package handlers

import (
	"net/http"

	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for projects and everything nested
// under them: modules, tasks and project members.
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects handles GET /projects
// @Summary List visible projects
// @Description Admins see every project, leaders the projects they own, members the projects they belong to
// @Tags projects
// @Produce json
// @Success 200 {array} service.ProjectResponse "Visible projects"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	projects, err := h.projectService.ListProjects(c, actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateProject handles POST /projects
// @Summary Create a new project
// @Description Create a project owned by the caller. Only leaders and admins may create projects.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} service.ProjectResponse "Successfully created project"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req service.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.CreateProject(c, actor, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject handles GET /projects/:projectId
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectResponse "Successfully retrieved project"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /api/projects/{projectId} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "projectId", "project")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c, actor, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject handles PUT /projects/:projectId
// @Summary Update project
// @Description Update title, description, dates or status. At least one field is required.
// @Tags projects
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param project body service.UpdateProjectRequest true "Updated project data"
// @Success 200 {object} service.ProjectResponse "Successfully updated project"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /api/projects/{projectId} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "projectId", "project")
	if !ok {
		return
	}

	var req service.UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.UpdateProject(c, actor, id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:projectId
// @Summary Delete project
// @Description Delete a project together with its modules, tasks and members
// @Tags projects
// @Param projectId path string true "Project ID (UUID)"
// @Success 204 "Successfully deleted project"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /api/projects/{projectId} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "projectId", "project")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c, actor, id); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RecomputeProgress handles POST /projects/:projectId/recompute
// @Summary Recompute project progress
// @Description Recalculate module and project completion from the current tasks
// @Tags projects
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {object} service.ProgressResponse "Recomputed progress"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /api/projects/{projectId}/recompute [post]
func (h *ProjectHandler) RecomputeProgress(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "projectId", "project")
	if !ok {
		return
	}

	result, err := h.projectService.RecomputeProgress(c, actor, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// MyTasks handles GET /projects/my-tasks
// @Summary Tasks assigned to the caller
// @Tags tasks
// @Produce json
// @Success 200 {array} service.AssignedTaskResponse "Assigned tasks with module and project names"
// @Security BearerAuth
// @Router /api/projects/my-tasks [get]
func (h *ProjectHandler) MyTasks(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	tasks, err := h.projectService.MyTasks(c, actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}
