// Package domain holds the show bounded context's pure business rules: the
// exhibitor application state machine and its enums.
package domain

import "errors"

// Status is the lifecycle state of an exhibitor application.
type Status string

const (
	StatusSubmitted Status = "SUBMITTED"
	StatusValidated Status = "VALIDATED"
	StatusRefused   Status = "REFUSED"
)

func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusSubmitted, StatusValidated, StatusRefused:
		return Status(raw), true
	}
	return "", false
}

// Target is an audience an exhibitor addresses at the show.
type Target string

const (
	TargetCats     Target = "CATS"
	TargetDogs     Target = "DOGS"
	TargetNACs     Target = "NACS"
	TargetEquines  Target = "EQUINES"
	TargetWildlife Target = "WILDLIFE"
)

func ParseTarget(raw string) (Target, bool) {
	switch Target(raw) {
	case TargetCats, TargetDogs, TargetNACs, TargetEquines, TargetWildlife:
		return Target(raw), true
	}
	return "", false
}

// ActivityField is a line of business an exhibitor operates in.
type ActivityField string

const (
	FieldFood        ActivityField = "FOOD"
	FieldAccessories ActivityField = "ACCESSORIES"
	FieldCare        ActivityField = "CARE"
	FieldTraining    ActivityField = "TRAINING"
	FieldAssociation ActivityField = "ASSOCIATION"
	FieldServices    ActivityField = "SERVICES"
)

func ParseActivityField(raw string) (ActivityField, bool) {
	switch ActivityField(raw) {
	case FieldFood, FieldAccessories, FieldCare, FieldTraining,
		FieldAssociation, FieldServices:
		return ActivityField(raw), true
	}
	return "", false
}

// ErrMissingRefusalMessage rejects a refusal carrying no message for the
// applicant.
var ErrMissingRefusalMessage = errors.New("refusal requires a message")

// ErrInvalidTransition rejects a move the state machine does not allow.
var ErrInvalidTransition = errors.New("invalid status transition")

// Command is a side effect the caller must execute after a transition. The
// transition function only decides; it never performs.
type Command int

const (
	// CommandCreateExhibitor derives the exhibitor record, atomically with
	// the status write.
	CommandCreateExhibitor Command = iota
	// CommandCreateStorageFolder provisions the exhibitor's document folder,
	// best effort.
	CommandCreateStorageFolder
	// CommandNotify informs the applicant, only after the state is committed.
	CommandNotify
)

// Transition decides the outcome of moving an application from current to
// next. It is total over the status domain: every input yields either the
// next state with its side-effect commands, or a typed rejection.
func Transition(current, next Status, refusalMessage string) ([]Command, error) {
	if current != StatusSubmitted {
		return nil, ErrInvalidTransition
	}
	switch next {
	case StatusValidated:
		return []Command{
			CommandCreateExhibitor,
			CommandCreateStorageFolder,
			CommandNotify,
		}, nil
	case StatusRefused:
		if refusalMessage == "" {
			return nil, ErrMissingRefusalMessage
		}
		return []Command{CommandNotify}, nil
	default:
		return nil, ErrInvalidTransition
	}
}
