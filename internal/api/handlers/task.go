package handlers

import (
	"net/http"

	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ListTasks handles GET /projects/modules/:moduleId/tasks
// @Summary List tasks of a module
// @Tags tasks
// @Produce json
// @Param moduleId path string true "Module ID (UUID)"
// @Success 200 {array} service.TaskResponse "Tasks"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Module not found"
// @Security BearerAuth
// @Router /api/projects/modules/{moduleId}/tasks [get]
func (h *ProjectHandler) ListTasks(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	moduleID, ok := pathUUID(c, "moduleId", "module")
	if !ok {
		return
	}

	tasks, err := h.projectService.ListTasks(c, actor, moduleID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask handles POST /projects/modules/:moduleId/tasks
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param moduleId path string true "Module ID (UUID)"
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} service.TaskResponse "Created task"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Module or assignee not found"
// @Security BearerAuth
// @Router /api/projects/modules/{moduleId}/tasks [post]
func (h *ProjectHandler) CreateTask(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	moduleID, ok := pathUUID(c, "moduleId", "module")
	if !ok {
		return
	}

	var req service.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.projectService.CreateTask(c, actor, moduleID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTask handles GET /projects/tasks/:taskId
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Param taskId path string true "Task ID (UUID)"
// @Success 200 {object} service.TaskResponse "Task"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /api/projects/tasks/{taskId} [get]
func (h *ProjectHandler) GetTask(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId", "task")
	if !ok {
		return
	}

	task, err := h.projectService.GetTask(c, actor, taskID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask handles PUT /projects/tasks/:taskId
// @Summary Update a task
// @Description Owners may change any field. The assignee may change only the status.
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskId path string true "Task ID (UUID)"
// @Param task body service.UpdateTaskRequest true "Task fields"
// @Success 200 {object} service.TaskResponse "Updated task"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /api/projects/tasks/{taskId} [put]
func (h *ProjectHandler) UpdateTask(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId", "task")
	if !ok {
		return
	}

	var req service.UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.projectService.UpdateTask(c, actor, taskID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /projects/tasks/:taskId
// @Summary Delete a task
// @Tags tasks
// @Param taskId path string true "Task ID (UUID)"
// @Success 204 "Deleted"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /api/projects/tasks/{taskId} [delete]
func (h *ProjectHandler) DeleteTask(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId", "task")
	if !ok {
		return
	}

	if err := h.projectService.DeleteTask(c, actor, taskID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
