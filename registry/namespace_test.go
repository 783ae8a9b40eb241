package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KULeuven-KRR/idp-core/diag"
	"github.com/KULeuven-KRR/idp-core/registry"
	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

func assertKind(t *testing.T, err error, k diag.ErrorKind) {
	t.Helper()
	entry, ok := err.(diag.Entry)
	require.True(t, ok, "expected a diag.Entry, got %T", err)
	assert.Equal(t, k, entry.Kind)
}

func TestNamespaceAddVocabularyRejectsDuplicateName(t *testing.T) {
	root := registry.NewNamespace("root", nil)
	l := vocabulary.NewLattice()
	v1 := vocabulary.NewVocabulary("v1", l)
	v2 := vocabulary.NewVocabulary("v2", l)

	require.NoError(t, root.AddVocabulary("v", v1))
	err := root.AddVocabulary("v", v2)
	require.Error(t, err)
	assertKind(t, err, diag.MultiDecl)
}

func TestNamespaceAddSubspaceBuildsPath(t *testing.T) {
	root := registry.NewNamespace("root", nil)
	child := registry.NewNamespace("child", nil)
	require.NoError(t, root.AddSubspace("child", child))

	assert.Equal(t, "root", root.Path())
	assert.Equal(t, "root::child", child.Path())
	assert.Same(t, root, child.Parent)
}
