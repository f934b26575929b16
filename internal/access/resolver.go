package access

import (
	"context"
	"fmt"

	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/logger"

	"github.com/google/uuid"
)

// MembershipIndex answers the project membership query Decide depends on
type MembershipIndex interface {
	IsProjectMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
}

// Resolver collects facts for Decide and reports a deny as ErrForbidden.
// Callers resolve the resource (and its parent chain) before calling so a
// missing resource is reported as NotFound ahead of any permission check.
type Resolver struct {
	members MembershipIndex
}

// NewResolver creates a new Resolver
func NewResolver(members MembershipIndex) *Resolver {
	return &Resolver{members: members}
}

// CanCreateProject checks whether the actor may create projects
func (r *Resolver) CanCreateProject(actor Actor) error {
	return verdict(actor, Target{Kind: KindProject}, OpCreate)
}

// Project checks an operation on a project or on a project-scoped kind
// (modules, members) whose owning project is given.
func (r *Resolver) Project(ctx context.Context, actor Actor, project *models.Project, kind Kind, op Operation) error {
	target := Target{Kind: kind, ProjectOwnerID: project.CreatedBy}
	if err := r.fillMembership(ctx, actor, project.ID, &target, op); err != nil {
		return err
	}
	return verdict(actor, target, op)
}

// Task checks an operation on a task whose owning project is given
func (r *Resolver) Task(ctx context.Context, actor Actor, project *models.Project, task *models.Task, op Operation) error {
	target := Target{
		Kind:           KindTask,
		ProjectOwnerID: project.CreatedBy,
		TaskAssigneeID: task.AssignedTo,
	}
	if err := r.fillMembership(ctx, actor, project.ID, &target, op); err != nil {
		return err
	}
	return verdict(actor, target, op)
}

// Team checks an operation on the roster of the given leader
func (r *Resolver) Team(actor Actor, leaderID uuid.UUID, op Operation) error {
	return verdict(actor, Target{Kind: KindTeam, LeaderID: leaderID}, op)
}

// Users checks an operation on user accounts
func (r *Resolver) Users(actor Actor, op Operation) error {
	return verdict(actor, Target{Kind: KindUser}, op)
}

func (r *Resolver) fillMembership(ctx context.Context, actor Actor, projectID uuid.UUID, target *Target, op Operation) error {
	if !needsMembership(actor, target.Kind, op) {
		return nil
	}
	ok, err := r.members.IsProjectMember(ctx, projectID, actor.ID)
	if err != nil {
		return fmt.Errorf("failed to check project membership: %w", err)
	}
	target.IsProjectMember = ok
	return nil
}

func verdict(actor Actor, target Target, op Operation) error {
	if Decide(actor, target, op) == Allow {
		return nil
	}
	logger.New().WithFields(map[string]interface{}{
		"actor":  actor.ID,
		"role":   actor.Role,
		"kind":   target.Kind,
		"op":     op,
		"result": Deny.String(),
	}).Debug("access denied")
	return apperrors.ErrForbidden
}
