package handlers

import (
	"net/http"

	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ListMembers handles GET /projects/:projectId/members
// @Summary List project members
// @Tags project-members
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {array} service.ProjectMemberResponse "Members"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /api/projects/{projectId}/members [get]
func (h *ProjectHandler) ListMembers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "projectId", "project")
	if !ok {
		return
	}

	members, err := h.projectService.ListMembers(c, actor, projectID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// AddMember handles POST /projects/:projectId/members
// @Summary Add a user to a project
// @Tags project-members
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param member body service.AddProjectMemberRequest true "Member data"
// @Success 201 {object} service.ProjectMemberResponse "Added member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Project or user not found"
// @Failure 409 {object} ErrorResponse "Already a member"
// @Security BearerAuth
// @Router /api/projects/{projectId}/members [post]
func (h *ProjectHandler) AddMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "projectId", "project")
	if !ok {
		return
	}

	var req service.AddProjectMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.projectService.AddMember(c, actor, projectID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// RemoveMember handles DELETE /projects/:projectId/members/:userId
// @Summary Remove a user from a project
// @Description Removes the membership. Task assignments in the project are kept.
// @Tags project-members
// @Param projectId path string true "Project ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 204 "Removed"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Project or membership not found"
// @Security BearerAuth
// @Router /api/projects/{projectId}/members/{userId} [delete]
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "projectId", "project")
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "userId", "user")
	if !ok {
		return
	}

	if err := h.projectService.RemoveMember(c, actor, projectID, userID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AvailableMembers handles GET /projects/:projectId/available-members
// @Summary Users that can still be added to a project
// @Tags project-members
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {array} service.UserSummary "Active users not yet in the project"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /api/projects/{projectId}/available-members [get]
func (h *ProjectHandler) AvailableMembers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "projectId", "project")
	if !ok {
		return
	}

	users, err := h.projectService.AvailableMembers(c, actor, projectID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// MemberTasks handles GET /projects/:projectId/member-tasks?userId=
// @Summary Tasks assigned to a user inside a project
// @Tags project-members
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param userId query string true "User ID (UUID)"
// @Success 200 {array} service.AssignedTaskResponse "Tasks"
// @Failure 400 {object} ErrorResponse "Missing or invalid userId"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /api/projects/{projectId}/member-tasks [get]
func (h *ProjectHandler) MemberTasks(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "projectId", "project")
	if !ok {
		return
	}
	userID, ok := queryUUID(c, "userId")
	if !ok {
		return
	}
	if userID == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "userId parameter is required"})
		return
	}

	tasks, err := h.projectService.MemberTasks(c, actor, projectID, *userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}
