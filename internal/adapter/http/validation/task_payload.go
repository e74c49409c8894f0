package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"taskman/internal/adapter/http/dto"
	"taskman/internal/core/domain"
)

const maxTitleLength = 200

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildCreateTaskInput validates a create payload against the raw JSON body.
// The raw map tells explicitly-null fields apart from omitted ones, which the
// bound struct alone cannot.
func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || len(title) > maxTitleLength {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	if hasJSONField(raw, "done") && req.Done == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	done := false
	if req.Done != nil {
		done = *req.Done
	}

	// An omitted priority defaults to 3; an explicit null stores NULL.
	var priority *int
	if hasJSONField(raw, "priority") {
		priority = req.Priority
	} else {
		value := domain.DefaultPriority
		priority = &value
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsedDueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsedDueDate
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		Done:        done,
		Priority:    priority,
		DueDate:     dueDate,
	}, nil
}

// BuildUpdateTaskInput validates a partial-update payload. Omitted fields are
// left out of the returned input entirely; an empty payload is legal and
// yields an input with no fields set.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	var title *string
	if hasJSONField(raw, "title") {
		// title is non-nullable: an explicit null is rejected rather than
		// failing later on the NOT NULL constraint.
		if req.Title == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" || len(value) > maxTitleLength {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	if hasJSONField(raw, "done") && req.Done == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	descriptionSet := hasJSONField(raw, "description")
	prioritySet := hasJSONField(raw, "priority")

	var dueDate *time.Time
	dueDateSet := hasJSONField(raw, "due_date")
	if dueDateSet && !isJSONNull(raw["due_date"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsedDueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsedDueDate
	}

	return domain.UpdateTaskInput{
		Title:          title,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		Done:           req.Done,
		Priority:       req.Priority,
		PrioritySet:    prioritySet,
		DueDate:        dueDate,
		DueDateSet:     dueDateSet,
	}, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
