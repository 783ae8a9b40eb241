package option_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KULeuven-KRR/idp-core/option"
)

func TestAcquireReleaseRestoresPrevious(t *testing.T) {
	orig := option.Current()

	tmp := option.Defaults()
	tmp.Verbose = !orig.Verbose

	release := option.Acquire(tmp)
	assert.Equal(t, tmp, option.Current())

	release()
	assert.Equal(t, orig, option.Current())
}

func TestAcquireReleaseOnPanicPath(t *testing.T) {
	orig := option.Current()

	func() {
		tmp := option.Defaults()
		tmp.StrictArity = !orig.StrictArity
		release := option.Acquire(tmp)
		defer release()

		defer func() { _ = recover() }()
		panic("boom")
	}()

	assert.Equal(t, orig, option.Current())
}

func TestLoadFileOverridesOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".idp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: true\n"), 0o600))

	bag, err := option.LoadFile(path)
	require.NoError(t, err)

	assert.True(t, bag.Verbose)
	assert.Equal(t, option.Defaults().FastIntLo, bag.FastIntLo)
}

func TestFindWalksUpDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".idp.yaml"), []byte("verbose: true\n"), 0o600))

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := option.Find(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".idp.yaml"), found)
}

func TestFindReturnsErrConfigNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := option.Find(dir)
	assert.ErrorIs(t, err, option.ErrConfigNotFound)
}
