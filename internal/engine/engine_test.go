package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/keyframes/internal/effect"
	"github.com/ivlev/keyframes/internal/keyframe"
	"github.com/ivlev/keyframes/internal/registry"
)

func testMetadata() *registry.Metadata {
	return &registry.Metadata{
		Effects: []registry.EffectMeta{{
			Kind: "fade",
			Parameters: []registry.Descriptor{
				{Name: "Level", Property: "level", IsCurve: true, Minimum: 0, Maximum: 1},
			},
		}},
	}
}

func writeDoc(t *testing.T, dir, name string, keys ...keyframe.Keyframe) string {
	t.Helper()
	doc := effect.NewDocument("fade", 0, 100)
	doc.SetAnimation("level", keys)
	path := filepath.Join(dir, name)
	require.NoError(t, effect.WriteDocument(doc, path))
	return path
}

func TestCheckAll(t *testing.T) {
	dir := t.TempDir()
	simple := writeDoc(t, dir, "simple.yaml",
		keyframe.Keyframe{Position: 0, Value: 0, Type: keyframe.Linear},
		keyframe.Keyframe{Position: 100, Value: 1, Type: keyframe.Linear})
	advanced := writeDoc(t, dir, "advanced.yaml",
		keyframe.Keyframe{Position: 0, Value: 0, Type: keyframe.Linear},
		keyframe.Keyframe{Position: 50, Value: 1, Type: keyframe.EaseInBounce},
		keyframe.Keyframe{Position: 100, Value: 0, Type: keyframe.Linear})
	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("service: [unclosed"), 0644))
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, effect.WriteDocument(effect.NewDocument("blur", 0, 10), other))

	checker := NewChecker(testMetadata(), 2)
	results, err := checker.CheckAll(context.Background(), []string{simple, advanced, broken, other})
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, 1, results[0].Parameters)
	assert.Equal(t, 2, results[0].Keyframes)
	assert.True(t, results[0].Simple)
	assert.False(t, results[0].Advanced)

	assert.NoError(t, results[1].Err)
	assert.Equal(t, 3, results[1].Keyframes)
	assert.True(t, results[1].Advanced)

	assert.Error(t, results[2].Err)
	assert.True(t, errors.Is(results[3].Err, registry.ErrUnknownKind))
}

func TestCheckAllCancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "a.yaml", keyframe.Keyframe{Position: 0, Value: 0.5})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewChecker(testMetadata(), 1).CheckAll(ctx, []string{path})
	assert.ErrorIs(t, err, context.Canceled)
}
