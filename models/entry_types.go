package models

import "time"

// EntryType defines the kind of a notebook entry and determines how its
// details payload is interpreted.
type EntryType string

const (
	// EntryMedical records a vet visit, diagnosis or treatment.
	EntryMedical EntryType = "medical"

	// EntryDiet records a meal or a feeding plan change.
	EntryDiet EntryType = "diet"

	// EntryHabit records an observed behaviour or routine.
	EntryHabit EntryType = "habit"

	// EntryCommand records a training session for a single command.
	EntryCommand EntryType = "command"
)

// EntryPayload is the type-specific part of a [NotebookEntry]. Exactly one
// implementation exists per [EntryType].
type EntryPayload interface {
	// EntryType returns the entry type the payload belongs to.
	EntryType() EntryType
}

// MedicalDetails is the payload of a medical entry.
type MedicalDetails struct {
	// Condition is the diagnosis or reason for the visit.
	Condition string `json:"condition" client:"condition"`

	// Treatment describes what was prescribed or performed.
	Treatment string `json:"treatment,omitempty" client:"treatment"`

	// Veterinarian is the name of the attending vet or clinic.
	Veterinarian string `json:"veterinarian,omitempty" client:"veterinarian"`

	// Medications lists prescribed medications.
	Medications []string `json:"medications,omitempty" client:"medications"`

	// FollowUpDate is the date of a scheduled follow-up, if any.
	FollowUpDate *time.Time `json:"follow_up_date,omitempty" client:"followUpDate"`
}

// EntryType implements [EntryPayload].
func (MedicalDetails) EntryType() EntryType { return EntryMedical }

// DietDetails is the payload of a diet entry.
type DietDetails struct {
	// Food is the name of the food or brand.
	Food string `json:"food" client:"food"`

	// Amount is the portion size expressed in Unit.
	Amount float64 `json:"amount,omitempty" client:"amount"`

	// Unit is the unit of Amount (g, cup, can...).
	Unit string `json:"unit,omitempty" client:"unit"`

	// Calories is the estimated energy content of the portion.
	Calories int `json:"calories,omitempty" client:"calories"`

	// MealTime is a free-form meal label (breakfast, dinner...).
	MealTime string `json:"meal_time,omitempty" client:"mealTime"`
}

// EntryType implements [EntryPayload].
func (DietDetails) EntryType() EntryType { return EntryDiet }

// HabitDetails is the payload of a habit entry.
type HabitDetails struct {
	// Behavior describes the observed behaviour.
	Behavior string `json:"behavior" client:"behavior"`

	// Frequency is how often the behaviour occurs (daily, weekly...).
	Frequency string `json:"frequency,omitempty" client:"frequency"`

	// DurationMinutes is how long a single occurrence lasts.
	DurationMinutes int `json:"duration_minutes,omitempty" client:"durationMinutes"`

	// Notes holds free-form observations.
	Notes string `json:"notes,omitempty" client:"notes"`
}

// EntryType implements [EntryPayload].
func (HabitDetails) EntryType() EntryType { return EntryHabit }

// CommandDetails is the payload of a command training entry.
type CommandDetails struct {
	// Command is the trained command word (sit, stay...).
	Command string `json:"command" client:"command"`

	// Attempts is the number of attempts during the session.
	Attempts int `json:"attempts" client:"attempts"`

	// Success reports whether the command was performed correctly.
	Success bool `json:"success" client:"success"`

	// Notes holds free-form observations.
	Notes string `json:"notes,omitempty" client:"notes"`
}

// EntryType implements [EntryPayload].
func (CommandDetails) EntryType() EntryType { return EntryCommand }

// payloadFactories maps every known entry type to a constructor of its
// payload. Adding an entry type means adding one line here.
var payloadFactories = map[EntryType]func() EntryPayload{
	EntryMedical: func() EntryPayload { return &MedicalDetails{} },
	EntryDiet:    func() EntryPayload { return &DietDetails{} },
	EntryHabit:   func() EntryPayload { return &HabitDetails{} },
	EntryCommand: func() EntryPayload { return &CommandDetails{} },
}

// Known reports whether t is one of the supported entry types.
func (t EntryType) Known() bool {
	_, ok := payloadFactories[t]
	return ok
}
