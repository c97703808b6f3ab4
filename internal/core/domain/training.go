package domain

import "errors"

// ModuleState is the availability of a training module for a given user.
type ModuleState string

const (
	ModuleLocked    ModuleState = "locked"
	ModuleAvailable ModuleState = "available"
	ModuleCompleted ModuleState = "completed"
)

var ErrModuleNotFound = errors.New("training module not found")
var ErrModuleLocked = errors.New("training module is locked")

// TrainingModule is a unit of training content for marketers.
type TrainingModule struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Lessons     int      `json:"lessons"`
	Category    string   `json:"category"`
	Image       string   `json:"image,omitempty"`
	// Requires lists module IDs that must be completed before this one
	// unlocks. Empty means available from the start.
	Requires []string `json:"requires,omitempty"`
}

// ModuleProgress is a module annotated with a user's state.
type ModuleProgress struct {
	TrainingModule
	State    ModuleState `json:"state"`
	Progress int         `json:"progress"`
}
