package git

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a git repository with one commit in a temp directory
// and chdirs into it for the duration of the test.
func initRepo(t *testing.T) *gogit.Repository {
	t.Helper()

	tmpDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(originalDir) })

	repo, err := gogit.PlainInit(tmpDir, false)
	require.NoError(t, err)

	worktree, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "CHANGELOG.md"), []byte("## 1.0.0\nstuff\n"), 0o644))
	_, err = worktree.Add("CHANGELOG.md")
	require.NoError(t, err)
	_, err = worktree.Commit("Initial commit", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@test.com",
		},
	})
	require.NoError(t, err)

	return repo
}

func TestTagNames(t *testing.T) {
	repo := initRepo(t)

	head, err := repo.Head()
	require.NoError(t, err)

	// Lightweight tag
	_, err = repo.CreateTag("v1.0.0", head.Hash(), nil)
	require.NoError(t, err)

	// Annotated tag
	_, err = repo.CreateTag("v0.9.0", head.Hash(), &gogit.CreateTagOptions{
		Tagger:  &object.Signature{Name: "Test", Email: "test@test.com"},
		Message: "release v0.9.0",
	})
	require.NoError(t, err)

	names, err := TagNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"v0.9.0", "v1.0.0"}, names)
}

func TestTagNamesEmptyRepo(t *testing.T) {
	initRepo(t)

	names, err := TagNames()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestTagNamesNotARepository(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(originalDir) })

	_, err = TagNames()
	assert.ErrorIs(t, err, ErrNotRepository)
}

func TestIsGitRepository(t *testing.T) {
	initRepo(t)
	assert.True(t, IsGitRepository())
}

func TestIsGitRepositoryFalse(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(originalDir) })

	assert.False(t, IsGitRepository())
}

func TestTagNamesFromSubdirectory(t *testing.T) {
	repo := initRepo(t)

	head, err := repo.Head()
	require.NoError(t, err)
	_, err = repo.CreateTag("v2.0.0", head.Hash(), nil)
	require.NoError(t, err)

	// DetectDotGit should find the repo from a nested directory.
	require.NoError(t, os.MkdirAll("docs/releases", 0o755))
	require.NoError(t, os.Chdir("docs/releases"))

	names, err := TagNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"v2.0.0"}, names)
}
