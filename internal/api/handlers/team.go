package handlers

import (
	"net/http"

	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team rosters. Leaders act on their
// own roster; admins pick one with the leaderId query parameter, or for
// POST /teams/members with leaderId in the body.
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// GetMembers handles GET /teams/members
// @Summary List roster members
// @Tags teams
// @Produce json
// @Param leaderId query string false "Leader ID (admin only)"
// @Success 200 {array} service.TeamMemberResponse "Roster"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Leader not found"
// @Security BearerAuth
// @Router /api/teams/members [get]
func (h *TeamHandler) GetMembers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	leaderID, ok := queryUUID(c, "leaderId")
	if !ok {
		return
	}

	members, err := h.teamService.Members(c, actor, leaderID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// AddMember handles POST /teams/members
// @Summary Add a user to a roster
// @Tags teams
// @Accept json
// @Produce json
// @Param leaderId query string false "Leader ID (admin only)"
// @Param member body service.AddTeamMemberRequest true "User to add"
// @Success 201 {object} service.TeamMemberResponse "Added"
// @Failure 400 {object} ErrorResponse "Invalid request or conflicting leaderId"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Leader or user not found"
// @Failure 409 {object} ErrorResponse "Already on the roster"
// @Security BearerAuth
// @Router /api/teams/members [post]
func (h *TeamHandler) AddMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	leaderID, ok := queryUUID(c, "leaderId")
	if !ok {
		return
	}

	var req service.AddTeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.LeaderID != nil {
		if leaderID != nil && *leaderID != *req.LeaderID {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "leaderId in query and body differ"})
			return
		}
		leaderID = req.LeaderID
	}

	member, err := h.teamService.AddMember(c, actor, leaderID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// RemoveMember handles DELETE /teams/members/:userId
// @Summary Remove a user from a roster
// @Description Project memberships granted while on the roster are kept
// @Tags teams
// @Param userId path string true "User ID (UUID)"
// @Param leaderId query string false "Leader ID (admin only)"
// @Success 204 "Removed"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Not on the roster"
// @Security BearerAuth
// @Router /api/teams/members/{userId} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "userId", "user")
	if !ok {
		return
	}
	leaderID, ok := queryUUID(c, "leaderId")
	if !ok {
		return
	}

	if err := h.teamService.RemoveMember(c, actor, leaderID, userID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AvailableUsers handles GET /teams/available-users
// @Summary Active users not yet on the roster
// @Tags teams
// @Produce json
// @Param leaderId query string false "Leader ID (admin only)"
// @Success 200 {array} service.UserSummary "Users"
// @Security BearerAuth
// @Router /api/teams/available-users [get]
func (h *TeamHandler) AvailableUsers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	leaderID, ok := queryUUID(c, "leaderId")
	if !ok {
		return
	}

	users, err := h.teamService.AvailableUsers(c, actor, leaderID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// MemberTasks handles GET /teams/member-tasks?userId=
// @Summary Tasks of a roster member across the leader's projects
// @Tags teams
// @Produce json
// @Param userId query string true "User ID (UUID)"
// @Param leaderId query string false "Leader ID (admin only)"
// @Success 200 {array} service.AssignedTaskResponse "Tasks"
// @Failure 400 {object} ErrorResponse "Missing or invalid userId"
// @Security BearerAuth
// @Router /api/teams/member-tasks [get]
func (h *TeamHandler) MemberTasks(c *gin.Context) {
	actor, ok := requireActor(c)
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
	leaderID, ok := queryUUID(c, "leaderId")
	if !ok {
		return
	}

	tasks, err := h.teamService.MemberTasks(c, actor, leaderID, *userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetProjects handles GET /teams/projects
// @Summary Projects visible to a team
// @Description Projects owned by the leader or joined by any roster member
// @Tags teams
// @Produce json
// @Param leaderId query string false "Leader ID (admin only)"
// @Success 200 {array} service.ProjectResponse "Projects"
// @Security BearerAuth
// @Router /api/teams/projects [get]
func (h *TeamHandler) GetProjects(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	leaderID, ok := queryUUID(c, "leaderId")
	if !ok {
		return
	}

	projects, err := h.teamService.Projects(c, actor, leaderID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// AllTeams handles GET /teams/admin/all-teams
// @Summary Every leader with roster size
// @Tags teams-admin
// @Produce json
// @Success 200 {array} service.TeamSummaryResponse "Teams"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Security BearerAuth
// @Router /api/teams/admin/all-teams [get]
func (h *TeamHandler) AllTeams(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	teams, err := h.teamService.AllTeams(c, actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// TeamDetails handles GET /teams/admin/team-details/:leaderId
// @Summary Leader with full roster
// @Tags teams-admin
// @Produce json
// @Param leaderId path string true "Leader ID (UUID)"
// @Success 200 {object} service.TeamDetailsResponse "Team"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 404 {object} ErrorResponse "Leader not found"
// @Security BearerAuth
// @Router /api/teams/admin/team-details/{leaderId} [get]
func (h *TeamHandler) TeamDetails(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	leaderID, ok := pathUUID(c, "leaderId", "leader")
	if !ok {
		return
	}

	details, err := h.teamService.TeamDetails(c, actor, leaderID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// AvailableLeaders handles GET /teams/admin/available-leaders
// @Summary Active leaders
// @Tags teams-admin
// @Produce json
// @Success 200 {array} service.UserSummary "Leaders"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Security BearerAuth
// @Router /api/teams/admin/available-leaders [get]
func (h *TeamHandler) AvailableLeaders(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	leaders, err := h.teamService.AvailableLeaders(c, actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, leaders)
}
