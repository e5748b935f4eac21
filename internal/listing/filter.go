// Package listing derives filtered, sectioned and sorted views of a task collection.
package listing

import (
	"strings"

	"github.com/runoshun/taskboard/internal/domain"
)

// ApplyFilter returns the tasks matching filter, in their original order.
func ApplyFilter(tasks []domain.Task, filter domain.FilterState) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if MatchesFilter(t, filter) {
			out = append(out, t)
		}
	}
	return out
}

// MatchesFilter reports whether a task passes every active filter.
func MatchesFilter(task domain.Task, filter domain.FilterState) bool {
	return matchesQuery(task, filter.Query) &&
		matchesTags(task, filter.Tags) &&
		matchesPriority(task, filter.Priority) &&
		matchesStatus(task, filter.Status) &&
		matchesDue(task, filter.Due)
}

func matchesQuery(task domain.Task, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(task.Title), q) ||
		strings.Contains(strings.ToLower(task.Description), q)
}

// matchesTags is an AND condition over tag slugs.
func matchesTags(task domain.Task, slugs []string) bool {
	for _, slug := range slugs {
		if !task.HasTag(slug) {
			return false
		}
	}
	return true
}

func matchesPriority(task domain.Task, p domain.Priority) bool {
	return p == "" || task.Priority == p
}

func matchesStatus(task domain.Task, status domain.StatusFilter) bool {
	switch status {
	case domain.StatusActive:
		return !task.IsCompleted()
	case domain.StatusCompleted:
		return task.IsCompleted()
	case domain.StatusAny:
		return true
	}
	return true
}

func matchesDue(task domain.Task, due *domain.DueFilter) bool {
	if due == nil {
		return true
	}
	return due.Matches(task.DueAt)
}
