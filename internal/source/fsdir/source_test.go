package fsdir

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestListAndText(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Tarte aux pommes.txt", "Ingrédients\n- 200 g farine\n")
	writeFile(t, root, "plats/Gratin.md", "Ingrédients\n- 1 kg pommes de terre\n")
	writeFile(t, root, "photo.jpg", "binary")

	src, err := New(root)
	require.NoError(t, err)

	docs, err := src.List(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "Tarte aux pommes", docs[0].Name)
	assert.Equal(t, "text/plain", docs[0].MimeType)
	assert.Equal(t, "Gratin", docs[1].Name)
	assert.Equal(t, "plats/Gratin.md", docs[1].FullPath)
	assert.NotEmpty(t, docs[0].ModifiedTime)

	text, err := src.Text(context.Background(), docs[0])
	require.NoError(t, err)
	assert.Contains(t, text, "200 g farine")
}

func TestListSkipsHiddenDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".git/config.txt", "x")
	writeFile(t, root, "Soupe.txt", "Ingrédients\n")

	src, err := New(root)
	require.NoError(t, err)

	docs, err := src.List(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Soupe", docs[0].Name)
}

func TestNewRejectsMissingRoot(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
