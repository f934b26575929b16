// Package access decides whether an actor may perform an operation on a
// resource. Decide is the single decision table; Resolver gathers the
// membership facts Decide needs and turns a deny into apperrors.ErrForbidden.
package access

import (
	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// Kind identifies the resource family an operation targets
type Kind string

const (
	KindProject        Kind = "project"
	KindModule         Kind = "module"
	KindTask           Kind = "task"
	KindProjectMembers Kind = "project_members"
	KindUser           Kind = "user"
	KindTeam           Kind = "team"
)

// Operation is the requested action on a resource
type Operation string

const (
	OpRead   Operation = "read"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"

	// OpUpdateStatus is an update that only changes a task's status
	OpUpdateStatus Operation = "update_status"
)

// Decision is the outcome of Decide
type Decision bool

const (
	Deny  Decision = false
	Allow Decision = true
)

func (d Decision) String() string {
	if d {
		return "allow"
	}
	return "deny"
}

// Actor is an authenticated caller
type Actor struct {
	ID     uuid.UUID
	Role   models.Role
	Active bool
}

// ActorFromUser builds an Actor from a stored user
func ActorFromUser(u *models.User) Actor {
	return Actor{ID: u.ID, Role: u.Role, Active: u.Active}
}

func (a Actor) IsAdmin() bool  { return a.Role == models.RoleAdmin }
func (a Actor) IsLeader() bool { return a.Role == models.RoleLeader }

// Target carries the facts about a resource that the decision table reads.
// For project-scoped kinds ProjectOwnerID is the creator of the owning
// project and IsProjectMember tells whether the actor holds a
// ProjectMembership on it. TaskAssigneeID is only read for KindTask.
// LeaderID is only read for KindTeam.
type Target struct {
	Kind            Kind
	ProjectOwnerID  uuid.UUID
	IsProjectMember bool
	TaskAssigneeID  *uuid.UUID
	LeaderID        uuid.UUID
}

func (t Target) assignedTo(id uuid.UUID) bool {
	return t.TaskAssigneeID != nil && *t.TaskAssigneeID == id
}

// Decide evaluates the role decision table. It is total and has no side
// effects; the first matching rule wins.
func Decide(actor Actor, target Target, op Operation) Decision {
	if !actor.Active || !actor.Role.IsValid() {
		return Deny
	}

	if actor.IsAdmin() {
		return Allow
	}

	switch target.Kind {
	case KindUser:
		return Deny
	case KindTeam:
		return Decision(actor.IsLeader() && target.LeaderID == actor.ID)
	case KindProject, KindModule, KindTask, KindProjectMembers:
	default:
		return Deny
	}

	if target.Kind == KindProject && op == OpCreate {
		return Decision(actor.IsLeader())
	}

	switch actor.Role {
	case models.RoleLeader:
		// Ownership only; ProjectMembership never widens a leader's reach.
		return Decision(target.ProjectOwnerID != uuid.Nil && target.ProjectOwnerID == actor.ID)
	case models.RoleMember:
		return decideMember(actor, target, op)
	}
	return Deny
}

func decideMember(actor Actor, target Target, op Operation) Decision {
	switch op {
	case OpRead:
		if target.Kind == KindProjectMembers {
			return Deny
		}
		return Decision(target.IsProjectMember)
	case OpUpdateStatus:
		// Assignment is an independent grant; membership is not consulted.
		if target.Kind == KindTask {
			return Decision(target.assignedTo(actor.ID))
		}
	}
	return Deny
}

// needsMembership reports whether Decide would consult IsProjectMember for
// this actor and request.
func needsMembership(actor Actor, kind Kind, op Operation) bool {
	if actor.Role != models.RoleMember || !actor.Active || op != OpRead {
		return false
	}
	switch kind {
	case KindProject, KindModule, KindTask:
		return true
	}
	return false
}

// ProjectScope is the slice of projects a caller sees when listing
type ProjectScope int

const (
	ScopeNone ProjectScope = iota
	ScopeAll
	ScopeOwned
	ScopeMembership
)

// ListScope returns which projects a list operation returns for the actor.
// It mirrors Decide for OpRead on KindProject.
func ListScope(actor Actor) ProjectScope {
	if !actor.Active {
		return ScopeNone
	}
	switch actor.Role {
	case models.RoleAdmin:
		return ScopeAll
	case models.RoleLeader:
		return ScopeOwned
	case models.RoleMember:
		return ScopeMembership
	}
	return ScopeNone
}
