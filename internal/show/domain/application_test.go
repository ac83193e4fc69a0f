package domain

import (
	"errors"
	"testing"
)

func TestTransitionValidation(t *testing.T) {
	commands, err := Transition(StatusSubmitted, StatusValidated, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Command{CommandCreateExhibitor, CommandCreateStorageFolder, CommandNotify}
	if len(commands) != len(want) {
		t.Fatalf("commands = %v, want %v", commands, want)
	}
	for i := range want {
		if commands[i] != want[i] {
			t.Fatalf("commands[%d] = %v, want %v", i, commands[i], want[i])
		}
	}
}

func TestTransitionRefusalRequiresMessage(t *testing.T) {
	if _, err := Transition(StatusSubmitted, StatusRefused, ""); !errors.Is(err, ErrMissingRefusalMessage) {
		t.Fatalf("err = %v, want ErrMissingRefusalMessage", err)
	}

	commands, err := Transition(StatusSubmitted, StatusRefused, "stand plan is full")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(commands) != 1 || commands[0] != CommandNotify {
		t.Fatalf("commands = %v, want notify only", commands)
	}
}

func TestTransitionRejectsSettledApplications(t *testing.T) {
	for _, current := range []Status{StatusValidated, StatusRefused} {
		if _, err := Transition(current, StatusValidated, ""); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("from %s: err = %v, want ErrInvalidTransition", current, err)
		}
	}
}

func TestTransitionRejectsSubmittedAsNextState(t *testing.T) {
	if _, err := Transition(StatusSubmitted, StatusSubmitted, ""); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}
