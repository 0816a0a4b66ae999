package scale

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScaleFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	t.Parallel()

	s, err := Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 4.0, s.MaxGrade)
	assert.Equal(t, 5, s.GradeCount)
	assert.Equal(t, 0.005, s.Epsilon)
	assert.NotEmpty(t, s.Messages.Higher)
	assert.NotEmpty(t, s.Messages.Lower)
	assert.NotEmpty(t, s.Messages.Even)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeScaleFile(t, t.TempDir(), "scale.hcl", `
scale {
  max_grade   = 6.0
  grade_count = 4

  messages {
    higher = "Above average, nice."
  }
}
`)

	s, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 6.0, s.MaxGrade)
	assert.Equal(t, 4, s.GradeCount)
	// Untouched attributes keep their defaults.
	assert.Equal(t, 0.005, s.Epsilon)
	assert.Equal(t, "Above average, nice.", s.Messages.Higher)
	assert.Equal(t, Default().Messages.Lower, s.Messages.Lower)
}

func TestLoad_EvalContextVariable(t *testing.T) {
	t.Parallel()

	path := writeScaleFile(t, t.TempDir(), "scale.hcl", `
scale {
  max_grade = default_max_grade
  epsilon   = 0.01
}
`)

	s, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxGrade, s.MaxGrade)
	assert.Equal(t, 0.01, s.Epsilon)
}

func TestLoad_DirectoryMergesInSortedOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeScaleFile(t, dir, "10_base.hcl", `
scale {
  max_grade   = 10.0
  grade_count = 6
}
`)
	writeScaleFile(t, dir, "20_override.hcl", `
scale {
  max_grade = 5.0
}
`)

	s, err := Load(context.Background(), dir)
	require.NoError(t, err)

	// The later file wins on max_grade; the earlier one still contributes.
	assert.Equal(t, 5.0, s.MaxGrade)
	assert.Equal(t, 6, s.GradeCount)
}

func TestLoad_EmptyDirectoryFails(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .hcl files found")
}

func TestLoad_MissingPathFails(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scale path")
}

func TestLoad_MalformedHCLFails(t *testing.T) {
	t.Parallel()

	path := writeScaleFile(t, t.TempDir(), "broken.hcl", `
scale {
  max_grade =
`)

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_ValidationRejectsBadValues(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"negative epsilon": `
scale {
  epsilon = -0.1
}
`,
		"zero max grade": `
scale {
  max_grade = 0
}
`,
		"single grade": `
scale {
  grade_count = 1
}
`,
		"empty message": `
scale {
  messages {
    even = ""
  }
}
`,
	}

	for name, content := range cases {
		content := content
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := writeScaleFile(t, t.TempDir(), "scale.hcl", content)
			_, err := Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid scale configuration")
		})
	}
}
