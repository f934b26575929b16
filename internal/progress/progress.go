// Package progress derives module and project completion percentages from a
// snapshot of a project's task tree.
package progress

import (
	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// ModuleTasks is the status of every task in one module
type ModuleTasks struct {
	ModuleID uuid.UUID
	Statuses []models.TaskStatus
}

// Snapshot is the task tree of one project at a point in time
type Snapshot struct {
	ProjectID uuid.UUID
	Modules   []ModuleTasks
}

// ModuleProgress is the derived percentage of a module
type ModuleProgress struct {
	ModuleID uuid.UUID
	Percent  int
}

// Result holds every derived percentage for a project. It is persisted as
// one unit.
type Result struct {
	ProjectID uuid.UUID
	Project   int
	Modules   []ModuleProgress
}

// Compute recomputes module and project percentages. It depends only on the
// snapshot, so repeated calls on the same tree give the same result.
func Compute(s Snapshot) Result {
	res := Result{
		ProjectID: s.ProjectID,
		Modules:   make([]ModuleProgress, 0, len(s.Modules)),
	}

	sum := 0
	for _, m := range s.Modules {
		pct := ModulePercent(m.Statuses)
		sum += pct
		res.Modules = append(res.Modules, ModuleProgress{ModuleID: m.ModuleID, Percent: pct})
	}
	res.Project = roundRatio(sum, len(s.Modules))

	return res
}

// ModulePercent is round(100 * completed / total), or 0 without tasks
func ModulePercent(statuses []models.TaskStatus) int {
	completed := 0
	for _, st := range statuses {
		if st == models.TaskStatusCompleted {
			completed++
		}
	}
	return roundRatio(100*completed, len(statuses))
}

// ProjectPercent is the rounded mean of module percentages, or 0 without
// modules
func ProjectPercent(modulePercents []int) int {
	sum := 0
	for _, p := range modulePercents {
		sum += p
	}
	return roundRatio(sum, len(modulePercents))
}

// roundRatio returns num/den rounded half up, in integer arithmetic so .5
// boundaries are exact. num is never negative.
func roundRatio(num, den int) int {
	if den <= 0 {
		return 0
	}
	return (2*num + den) / (2 * den)
}
