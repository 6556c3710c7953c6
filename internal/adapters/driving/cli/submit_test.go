package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitCmd_Use(t *testing.T) {
	assert.Equal(t, "submit [project-id]", submitCmd.Use)
}

func TestSubmitCmd_HasUserFlag(t *testing.T) {
	flag := submitCmd.Flags().Lookup("user")
	require.NotNil(t, flag, "user flag should exist")
	assert.Equal(t, "u", flag.Shorthand)
}

func TestSubmitCmd_ReadsEntriesFromStdin(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	submission := submissionService.(*fakeSubmissionService)

	input := `[{"title": "Retro roulette", "details": "## Plan", "summary": "s", "vote": 1}]`

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs([]string{"submit", "proj-1", "--user", "u1"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Created 1 proposal(s):")
	assert.Contains(t, buf.String(), "Retro roulette")

	assert.Equal(t, "proj-1", submission.lastProjectID)
	assert.Equal(t, "u1", submission.lastUserID)
	require.Len(t, submission.lastEntries, 1)
	assert.Equal(t, 1, submission.lastEntries[0].Vote)
}

func TestSubmitCmd_InvalidJSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader("not json"))
	rootCmd.SetArgs([]string{"submit", "proj-1", "--user", "u1"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decoding entries")
}
