package confirm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mergington/activities/pkg/cli/ui/confirm"
	"github.com/stretchr/testify/require"
)

//nolint:paralleltest,tparallel // Subtests cannot run in parallel - they share TTY checker state
func TestShouldSkipPrompt(t *testing.T) {
	tests := []struct {
		name     string
		force    bool
		isTTY    bool
		expected bool
	}{
		{
			name:     "force_true_skips_prompt",
			force:    true,
			isTTY:    true,
			expected: true,
		},
		{
			name:     "force_true_non_tty_skips_prompt",
			force:    true,
			isTTY:    false,
			expected: true,
		},
		{
			name:     "non_tty_skips_prompt",
			force:    false,
			isTTY:    false,
			expected: true,
		},
		{
			name:     "tty_without_force_shows_prompt",
			force:    false,
			isTTY:    true,
			expected: false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			// Do NOT run subtests in parallel - they share TTY checker state
			restoreTTY := confirm.SetTTYCheckerForTests(func() bool { return testCase.isTTY })
			defer restoreTTY()

			result := confirm.ShouldSkipPrompt(testCase.force)
			require.Equal(t, testCase.expected, result)
		})
	}
}

// promptTestCase is a test case for PromptForUnregister.
type promptTestCase struct {
	name     string
	input    string
	expected bool
}

// getPromptTestCases returns test cases for PromptForUnregister.
func getPromptTestCases() []promptTestCase {
	return []promptTestCase{
		{"y_lowercase_confirms", "y\n", true},
		{"yes_lowercase_confirms", "yes\n", true},
		{"yes_uppercase_confirms", "YES\n", true},
		{"yes_mixed_case_confirms", "Yes\n", true},
		{"no_denies", "no\n", false},
		{"empty_denies", "\n", false},
		{"random_text_denies", "maybe\n", false},
	}
}

//nolint:paralleltest,tparallel // Subtests cannot run in parallel - they share stdin reader state
func TestPromptForUnregister(t *testing.T) {
	for _, testCase := range getPromptTestCases() {
		t.Run(testCase.name, func(t *testing.T) {
			// Do NOT run subtests in parallel - they share stdin reader state
			restoreStdin := confirm.SetStdinReaderForTests(strings.NewReader(testCase.input))
			defer restoreStdin()

			var out bytes.Buffer

			result := confirm.PromptForUnregister(&out, "Chess Club", "michael@mergington.edu")

			require.Equal(t, testCase.expected, result)
			require.Contains(t, out.String(), "Remove michael@mergington.edu from Chess Club?")
		})
	}
}

func TestPromptForUnregister_ReaderWithoutNewlineDenies(t *testing.T) {
	restoreStdin := confirm.SetStdinReaderForTests(strings.NewReader("y"))
	defer restoreStdin()

	var out bytes.Buffer

	require.False(t, confirm.PromptForUnregister(&out, "Chess Club", "michael@mergington.edu"))
}
