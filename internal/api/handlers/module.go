package handlers

import (
	"net/http"

	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ListModules handles GET /projects/:projectId/modules
// @Summary List modules of a project
// @Tags modules
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {array} service.ModuleResponse "Modules with their progress"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /api/projects/{projectId}/modules [get]
func (h *ProjectHandler) ListModules(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "projectId", "project")
	if !ok {
		return
	}

	modules, err := h.projectService.ListModules(c, actor, projectID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, modules)
}

// CreateModule handles POST /projects/:projectId/modules
// @Summary Create a module
// @Tags modules
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param module body service.CreateModuleRequest true "Module data"
// @Success 201 {object} service.ModuleResponse "Created module"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /api/projects/{projectId}/modules [post]
func (h *ProjectHandler) CreateModule(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "projectId", "project")
	if !ok {
		return
	}

	var req service.CreateModuleRequest
	if !bindJSON(c, &req) {
		return
	}

	module, err := h.projectService.CreateModule(c, actor, projectID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, module)
}

// UpdateModule handles PUT /projects/modules/:moduleId
// @Summary Rename a module
// @Tags modules
// @Accept json
// @Produce json
// @Param moduleId path string true "Module ID (UUID)"
// @Param module body service.UpdateModuleRequest true "Module data"
// @Success 200 {object} service.ModuleResponse "Updated module"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Module not found"
// @Security BearerAuth
// @Router /api/projects/modules/{moduleId} [put]
func (h *ProjectHandler) UpdateModule(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	moduleID, ok := pathUUID(c, "moduleId", "module")
	if !ok {
		return
	}

	var req service.UpdateModuleRequest
	if !bindJSON(c, &req) {
		return
	}

	module, err := h.projectService.UpdateModule(c, actor, moduleID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, module)
}

// DeleteModule handles DELETE /projects/modules/:moduleId
// @Summary Delete a module and its tasks
// @Tags modules
// @Param moduleId path string true "Module ID (UUID)"
// @Success 204 "Deleted"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Module not found"
// @Security BearerAuth
// @Router /api/projects/modules/{moduleId} [delete]
func (h *ProjectHandler) DeleteModule(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	moduleID, ok := pathUUID(c, "moduleId", "module")
	if !ok {
		return
	}

	if err := h.projectService.DeleteModule(c, actor, moduleID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
