package access

import (
	"testing"

	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var allOps = []Operation{OpRead, OpCreate, OpUpdate, OpUpdateStatus, OpDelete}

func actor(role models.Role) Actor {
	return Actor{ID: uuid.New(), Role: role, Active: true}
}

func TestDecide_AdminAllowedEverything(t *testing.T) {
	admin := actor(models.RoleAdmin)
	kinds := []Kind{KindProject, KindModule, KindTask, KindProjectMembers, KindUser, KindTeam}

	for _, kind := range kinds {
		for _, op := range allOps {
			target := Target{Kind: kind, ProjectOwnerID: uuid.New(), LeaderID: uuid.New()}
			assert.Equal(t, Allow, Decide(admin, target, op), "kind=%s op=%s", kind, op)
		}
	}
}

func TestDecide_LeaderOwnership(t *testing.T) {
	leader := actor(models.RoleLeader)
	other := uuid.New()

	for _, kind := range []Kind{KindProject, KindModule, KindTask, KindProjectMembers} {
		for _, op := range allOps {
			owned := Target{Kind: kind, ProjectOwnerID: leader.ID}
			foreign := Target{Kind: kind, ProjectOwnerID: other, IsProjectMember: true}

			if !(kind == KindProject && op == OpCreate) {
				assert.Equal(t, Allow, Decide(leader, owned, op), "owned kind=%s op=%s", kind, op)
				assert.Equal(t, Deny, Decide(leader, foreign, op), "foreign kind=%s op=%s", kind, op)
			}
		}
	}
}

func TestDecide_LeaderNeverGainsAccessThroughMembership(t *testing.T) {
	leader := actor(models.RoleLeader)
	target := Target{Kind: KindProject, ProjectOwnerID: uuid.New(), IsProjectMember: true}

	assert.Equal(t, Deny, Decide(leader, target, OpRead))
}

func TestDecide_ProjectCreation(t *testing.T) {
	target := Target{Kind: KindProject}

	assert.Equal(t, Allow, Decide(actor(models.RoleAdmin), target, OpCreate))
	assert.Equal(t, Allow, Decide(actor(models.RoleLeader), target, OpCreate))
	assert.Equal(t, Deny, Decide(actor(models.RoleMember), target, OpCreate))
}

func TestDecide_MemberRead(t *testing.T) {
	member := actor(models.RoleMember)

	tests := []struct {
		name     string
		kind     Kind
		isMember bool
		expected Decision
	}{
		{"project with membership", KindProject, true, Allow},
		{"project without membership", KindProject, false, Deny},
		{"module with membership", KindModule, true, Allow},
		{"module without membership", KindModule, false, Deny},
		{"task with membership", KindTask, true, Allow},
		{"task without membership", KindTask, false, Deny},
		{"member roster with membership", KindProjectMembers, true, Deny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := Target{Kind: tt.kind, ProjectOwnerID: uuid.New(), IsProjectMember: tt.isMember}
			assert.Equal(t, tt.expected, Decide(member, target, OpRead))
		})
	}
}

func TestDecide_MemberTaskWrite(t *testing.T) {
	member := actor(models.RoleMember)
	someoneElse := uuid.New()

	tests := []struct {
		name     string
		assignee *uuid.UUID
		isMember bool
		expected Decision
	}{
		{"assigned with membership", &member.ID, true, Allow},
		{"assigned without membership", &member.ID, false, Allow},
		{"assigned to someone else", &someoneElse, true, Deny},
		{"unassigned", nil, true, Deny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := Target{
				Kind:            KindTask,
				ProjectOwnerID:  uuid.New(),
				IsProjectMember: tt.isMember,
				TaskAssigneeID:  tt.assignee,
			}
			assert.Equal(t, tt.expected, Decide(member, target, OpUpdateStatus))
			assert.Equal(t, Deny, Decide(member, target, OpUpdate))
		})
	}
}

func TestDecide_MemberNeverWritesProjectOrModule(t *testing.T) {
	member := actor(models.RoleMember)

	for _, kind := range []Kind{KindProject, KindModule, KindProjectMembers} {
		for _, op := range []Operation{OpCreate, OpUpdate, OpUpdateStatus, OpDelete} {
			target := Target{Kind: kind, ProjectOwnerID: uuid.New(), IsProjectMember: true}
			assert.Equal(t, Deny, Decide(member, target, op), "kind=%s op=%s", kind, op)
		}
	}

	assigned := Target{Kind: KindTask, IsProjectMember: true, TaskAssigneeID: &member.ID}
	assert.Equal(t, Deny, Decide(member, assigned, OpDelete))
	assert.Equal(t, Deny, Decide(member, assigned, OpCreate))
}

func TestDecide_UserAndTeamManagement(t *testing.T) {
	leader := actor(models.RoleLeader)
	member := actor(models.RoleMember)

	for _, op := range allOps {
		assert.Equal(t, Deny, Decide(leader, Target{Kind: KindUser}, op))
		assert.Equal(t, Deny, Decide(member, Target{Kind: KindUser}, op))
	}

	assert.Equal(t, Allow, Decide(leader, Target{Kind: KindTeam, LeaderID: leader.ID}, OpCreate))
	assert.Equal(t, Deny, Decide(leader, Target{Kind: KindTeam, LeaderID: uuid.New()}, OpRead))
	assert.Equal(t, Deny, Decide(member, Target{Kind: KindTeam, LeaderID: member.ID}, OpRead))
}

func TestDecide_InactiveOrUnknownActor(t *testing.T) {
	inactive := Actor{ID: uuid.New(), Role: models.RoleAdmin, Active: false}
	assert.Equal(t, Deny, Decide(inactive, Target{Kind: KindProject}, OpRead))

	unknown := Actor{ID: uuid.New(), Role: models.Role("owner"), Active: true}
	assert.Equal(t, Deny, Decide(unknown, Target{Kind: KindProject, ProjectOwnerID: unknown.ID}, OpRead))

	member := actor(models.RoleMember)
	assert.Equal(t, Deny, Decide(member, Target{Kind: Kind("widget"), IsProjectMember: true}, OpRead))
}

func TestListScope(t *testing.T) {
	assert.Equal(t, ScopeAll, ListScope(actor(models.RoleAdmin)))
	assert.Equal(t, ScopeOwned, ListScope(actor(models.RoleLeader)))
	assert.Equal(t, ScopeMembership, ListScope(actor(models.RoleMember)))
	assert.Equal(t, ScopeNone, ListScope(Actor{Role: models.RoleAdmin}))
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "deny", Deny.String())
}

func TestActorRoles(t *testing.T) {
	assert.True(t, actor(models.RoleAdmin).IsAdmin())
	assert.False(t, actor(models.RoleAdmin).IsLeader())
	assert.True(t, actor(models.RoleLeader).IsLeader())
	assert.False(t, actor(models.RoleMember).IsAdmin())
}

func TestTargetAssignedTo(t *testing.T) {
	id := uuid.New()
	assert.True(t, Target{TaskAssigneeID: &id}.assignedTo(id))
	assert.False(t, Target{TaskAssigneeID: &id}.assignedTo(uuid.New()))
	assert.False(t, Target{}.assignedTo(id))
}
