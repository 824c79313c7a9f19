// Package subjects manages user-defined custom subjects and their modules.
// All operations return an updated copy of the subject list; the caller's
// slice is never mutated, so a failed persistence write cannot leave the
// in-memory snapshot half-updated.
package subjects

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ineverydomain/exam-tracker/backend/models"
)

const (
	MinModules = 1
	MaxModules = 100

	// MaxModuleNameWords caps renamed module names at 9 whitespace-delimited
	// words.
	MaxModuleNameWords = 9
)

var (
	ErrEmptyName         = errors.New("subject name is required")
	ErrModuleCount       = fmt.Errorf("module count must be between %d and %d", MinModules, MaxModules)
	ErrEmptyModuleName   = errors.New("module name cannot be empty")
	ErrModuleNameTooLong = fmt.Errorf("module name cannot exceed %d words", MaxModuleNameWords)
	ErrNotFound          = errors.New("subject or module not found")
)

// Add appends a new subject with count sequentially named modules, all
// incomplete. Subject ids are uuid-based so rapid repeated calls still
// produce distinct ids.
func Add(list []models.CustomSubject, name string, count int, now time.Time) ([]models.CustomSubject, models.CustomSubject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.CustomSubject{}, ErrEmptyName
	}
	if count < MinModules || count > MaxModules {
		return nil, models.CustomSubject{}, ErrModuleCount
	}

	modules := make([]models.ModuleItem, count)
	for i := range modules {
		modules[i] = models.ModuleItem{
			ID:   fmt.Sprintf("module_%d", i+1),
			Name: fmt.Sprintf("Module %d", i+1),
		}
	}
	subject := models.CustomSubject{
		ID:        "custom_" + uuid.NewString(),
		Name:      name,
		Modules:   modules,
		CreatedAt: now.Format(time.RFC3339),
	}

	next := make([]models.CustomSubject, 0, len(list)+1)
	next = append(next, list...)
	next = append(next, subject)
	return next, subject, nil
}

// Delete removes the subject with the given id. Deleting an absent id is a
// no-op, not an error.
func Delete(list []models.CustomSubject, subjectID string) []models.CustomSubject {
	next := make([]models.CustomSubject, 0, len(list))
	for _, subject := range list {
		if subject.ID != subjectID {
			next = append(next, subject)
		}
	}
	return next
}

// ToggleModule flips one module's completed flag, leaving every other module
// and subject untouched.
func ToggleModule(list []models.CustomSubject, subjectID, moduleID string) ([]models.CustomSubject, error) {
	return updateModule(list, subjectID, moduleID, func(m models.ModuleItem) models.ModuleItem {
		m.Completed = !m.Completed
		return m
	})
}

// RenameModule replaces a module's name after validation. The completed flag
// is untouched, and nothing changes when validation fails.
func RenameModule(list []models.CustomSubject, subjectID, moduleID, newName string) ([]models.CustomSubject, error) {
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return nil, ErrEmptyModuleName
	}
	if len(strings.Fields(trimmed)) > MaxModuleNameWords {
		return nil, ErrModuleNameTooLong
	}
	return updateModule(list, subjectID, moduleID, func(m models.ModuleItem) models.ModuleItem {
		m.Name = trimmed
		return m
	})
}

func updateModule(list []models.CustomSubject, subjectID, moduleID string, apply func(models.ModuleItem) models.ModuleItem) ([]models.CustomSubject, error) {
	found := false
	next := make([]models.CustomSubject, len(list))
	for i, subject := range list {
		if subject.ID != subjectID {
			next[i] = subject
			continue
		}
		modules := make([]models.ModuleItem, len(subject.Modules))
		for j, module := range subject.Modules {
			if module.ID == moduleID {
				module = apply(module)
				found = true
			}
			modules[j] = module
		}
		subject.Modules = modules
		next[i] = subject
	}
	if !found {
		return nil, ErrNotFound
	}
	return next, nil
}
