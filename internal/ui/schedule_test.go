package ui

import (
	"errors"
	"testing"

	"github.com/mindsyncapp/mindsync/internal/backend"
)

func TestCompletionSet(t *testing.T) {
	completions := []backend.Completion{
		{Day: "Monday", SessionIndex: 0},
		{Day: "monday", SessionIndex: 2},
	}
	set := completionSet(completions)

	if !set[completionKey("Monday", 0)] {
		t.Fatal("expected Monday#0 to be complete")
	}
	if !set[completionKey("MONDAY", 2)] {
		t.Fatal("completion keys should be case-insensitive on day")
	}
	if set[completionKey("Monday", 1)] {
		t.Fatal("Monday#1 should not be complete")
	}
}

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			"api error uses fixed taxonomy",
			&backend.APIError{Status: 429, Message: "slow down"},
			(&backend.APIError{Status: 429}).UserMessage(),
		},
		{
			"wrapped api error",
			errors.Join(errors.New("ctx"), &backend.APIError{Status: 402}),
			(&backend.APIError{Status: 402}).UserMessage(),
		},
		{
			"plain error gets generic message",
			errors.New("dial tcp: refused"),
			"Something went wrong. Please try again.",
		},
		{
			"nil error",
			nil,
			"",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := errorMessage(tc.err); got != tc.want {
				t.Fatalf("errorMessage = %q, want %q", got, tc.want)
			}
		})
	}
}
