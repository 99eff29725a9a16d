package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

var (
	ErrInvalidTaskPayload = errors.New("invalid task payload")
	ErrTitleRequired      = errors.New("title is required")
	ErrInvalidStatus      = errors.New("invalid task status")
	ErrInvalidPriority    = errors.New("invalid task priority")
	ErrInvalidDueDate     = errors.New("invalid due date")
)

// Due dates are accepted either as full RFC 3339 timestamps or bare dates.
var dueDateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// BuildCreateTaskInput validates a create payload. Title must be present and
// non-blank after trimming; every other field takes its default when absent
// or null.
func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	if req.Title == nil {
		return domain.CreateTaskInput{}, ErrTitleRequired
	}
	title := strings.TrimSpace(*req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrTitleRequired
	}

	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	status := domain.TaskStatusTodo
	if req.Status != nil {
		parsed, ok := domain.ParseTaskStatus(*req.Status)
		if !ok {
			return domain.CreateTaskInput{}, ErrInvalidStatus
		}
		status = parsed
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		parsed, ok := domain.ParseTaskPriority(*req.Priority)
		if !ok {
			return domain.CreateTaskInput{}, ErrInvalidPriority
		}
		priority = parsed
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		DueDate:     dueDate,
	}, nil
}

// BuildUpdateTaskInput validates a partial-update payload against the raw
// JSON body, so an omitted field and an explicit null are told apart. An
// explicit null clears dueDate and resets description; title, status and
// priority must carry a valid value whenever they appear.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTaskInput{}, ErrTitleRequired
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrTitleRequired
		}
		title = &value
	}

	descriptionSet := hasJSONField(raw, "description")

	var status *domain.TaskStatus
	if hasJSONField(raw, "status") {
		if req.Status == nil {
			return domain.UpdateTaskInput{}, ErrInvalidStatus
		}
		value, ok := domain.ParseTaskStatus(*req.Status)
		if !ok {
			return domain.UpdateTaskInput{}, ErrInvalidStatus
		}
		status = &value
	}

	var priority *domain.TaskPriority
	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			return domain.UpdateTaskInput{}, ErrInvalidPriority
		}
		value, ok := domain.ParseTaskPriority(*req.Priority)
		if !ok {
			return domain.UpdateTaskInput{}, ErrInvalidPriority
		}
		priority = &value
	}

	var dueDate *time.Time
	dueDateSet := hasJSONField(raw, "dueDate")
	if dueDateSet && !isJSONNull(raw["dueDate"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidDueDate
		}
		parsed, err := parseDueDate(req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
		dueDate = parsed
	}

	return domain.UpdateTaskInput{
		Title:          title,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		Status:         status,
		Priority:       priority,
		DueDate:        dueDate,
		DueDateSet:     dueDateSet,
	}, nil
}

// parseDueDate treats nil and blank values as "no due date".
func parseDueDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	raw := strings.TrimSpace(*value)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range dueDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}
	return nil, ErrInvalidDueDate
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "dueDate")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
