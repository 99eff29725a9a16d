// Package query derives the display view of a task collection: conjunctive
// status/priority filtering, a selectable sort order, and grouping by status.
// Every function is a pure function of its inputs.
package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"taskboard/internal/core/domain"
)

// FilterAll is the wildcard value matching every status or priority.
const FilterAll = "all"

const (
	SortByCreatedAt = "createdAt"
	SortByDueDate   = "dueDate"
	SortByPriority  = "priority"
	SortByTitle     = "title"
)

type Filters struct {
	Status   string
	Priority string
	SortBy   string
}

func DefaultFilters() Filters {
	return Filters{
		Status:   FilterAll,
		Priority: FilterAll,
		SortBy:   SortByCreatedAt,
	}
}

var priorityRank = map[domain.TaskPriority]int{
	domain.TaskPriorityHigh:   0,
	domain.TaskPriorityMedium: 1,
	domain.TaskPriorityLow:    2,
}

// Apply filters the collection and sorts the survivors. The input slice is
// never mutated. An unknown SortBy leaves the filtered order unchanged.
func Apply(tasks []domain.Task, filters Filters) []domain.Task {
	filtered := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !matchesWildcard(filters.Status, string(task.Status)) {
			continue
		}
		if !matchesWildcard(filters.Priority, string(task.Priority)) {
			continue
		}
		filtered = append(filtered, task)
	}

	sortTasks(filtered, filters.SortBy)
	return filtered
}

func matchesWildcard(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

func sortTasks(tasks []domain.Task, sortBy string) {
	switch sortBy {
	case SortByCreatedAt:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		})
	case SortByDueDate:
		// Dateless tasks sort after every dated one and keep input order
		// among themselves.
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i].DueDate, tasks[j].DueDate
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.Before(*b)
			}
		})
	case SortByPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return priorityRank[tasks[i].Priority] < priorityRank[tasks[j].Priority]
		})
	case SortByTitle:
		collator := collate.New(language.English, collate.Loose)
		sort.SliceStable(tasks, func(i, j int) bool {
			return collator.CompareString(tasks[i].Title, tasks[j].Title) < 0
		})
	}
}

// Group is one status bucket of a grouped view, in sort order.
type Group struct {
	Status domain.TaskStatus
	Tasks  []domain.Task
}

// GroupByStatus partitions an already-sorted sequence into the three status
// buckets, preserving the relative order within each bucket.
func GroupByStatus(tasks []domain.Task) []Group {
	groups := []Group{
		{Status: domain.TaskStatusTodo},
		{Status: domain.TaskStatusInProgress},
		{Status: domain.TaskStatusCompleted},
	}

	index := make(map[domain.TaskStatus]int, len(groups))
	for i, group := range groups {
		index[group.Status] = i
	}

	for _, task := range tasks {
		i, ok := index[task.Status]
		if !ok {
			continue
		}
		groups[i].Tasks = append(groups[i].Tasks, task)
	}

	return groups
}
