package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fnol-cli/internal/core/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeClaim(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "claim.txt")
	text := "Policy Number: HO-449021\n" +
		"Policyholder Name: Jane Doe\n" +
		"Date of Loss: 03/14/2024\n" +
		"Incident Location: 123 Main St\n" +
		"Claim Type: Fire\n" +
		"Estimated Damage: $18,000\n"
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestProcessCommand(t *testing.T) {
	out, err := execute(t, "process", writeClaim(t))

	require.NoError(t, err)
	assert.Contains(t, out, `"recommendedRoute": "Fast-track"`)
	assert.Contains(t, out, `"reasoning": "Estimated damage below 25000."`)
	assert.Contains(t, out, `"Policy Number": "HO-449021"`)
	assert.Contains(t, out, `"Incident Time": null`)
	assert.Contains(t, out, `"missingFields": []`)
}

func TestRootShorthand(t *testing.T) {
	out, err := execute(t, writeClaim(t))

	require.NoError(t, err)
	assert.Contains(t, out, `"recommendedRoute": "Fast-track"`)
}

func TestRootWithoutArgsShowsHelp(t *testing.T) {
	out, err := execute(t)

	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestProcessCommand_RequiresOneArg(t *testing.T) {
	_, err := execute(t, "process")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s), received 0")
}

func TestProcessCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "process", filepath.Join(t.TempDir(), "absent.txt"))

	assert.Error(t, err)
}

func TestProcessCommand_UnsupportedType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claim.docx")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := execute(t, "process", path)

	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestProcessCommand_ManualReviewOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparse.txt")
	require.NoError(t, os.WriteFile(path, []byte("Claim Type: Fire\n"), 0o644))

	out, err := execute(t, "process", path)

	require.NoError(t, err)
	assert.Contains(t, out, `"recommendedRoute": "Manual Review"`)
	assert.Contains(t, out, `"Policy Number"`)
	assert.Contains(t, out, "Missing mandatory field(s):")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "fnol version "+version)
}

func TestWatchCommand_RejectsNonDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claim.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := execute(t, "watch", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestWatchCommand_MissingDirectory(t *testing.T) {
	_, err := execute(t, "watch", filepath.Join(t.TempDir(), "absent"))

	assert.Error(t, err)
}
