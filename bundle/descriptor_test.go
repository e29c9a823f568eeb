package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDescriptor_Defaults(t *testing.T) {
	d := NewDescriptor("journal", "/tmp/journal.iatemplate", "style.css")

	assert.Equal(t, "journal", d.Name)
	assert.Equal(t, "style.css", d.Stylesheet)
	assert.Equal(t, 40, d.HeaderHeight)
	assert.Equal(t, 40, d.FooterHeight)
	assert.Equal(t, "document.html", d.DocumentFile)
	assert.Equal(t, "header.html", d.HeaderFile)
	assert.Equal(t, "footer.html", d.FooterFile)
	assert.Equal(t, DefaultMetadata(), d.Metadata)
	assert.Equal(t, "org.cph.journal_simple", d.Metadata.Identifier)
}

func TestOpenDescriptor(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "journal.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(`
name: journal
stylesheet: journal.css
header-height: 0
footer: page.html
metadata:
  identifier: org.example.journal
  author: someone
`), 0o644))

	d, err := OpenDescriptor(fn)
	require.NoError(t, err)

	assert.Equal(t, "journal", d.Name)
	assert.Equal(t, "journal.css", d.Stylesheet)
	assert.Equal(t, 0, d.HeaderHeight)
	assert.Equal(t, DefaultFooterHeight, d.FooterHeight)
	assert.Equal(t, DefaultDocumentFile, d.DocumentFile)
	assert.Equal(t, "page.html", d.FooterFile)
	assert.Empty(t, d.Dir)

	assert.Equal(t, "org.example.journal", d.Metadata.Identifier)
	assert.Equal(t, "someone", d.Metadata.Author)
	assert.Equal(t, "Claus Journal", d.Metadata.Description)
	assert.Equal(t, "6.0", d.Metadata.DictionaryVersion)
}

func TestOpenDescriptor_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := OpenDescriptor(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("header-height: [1, 2]\n"), 0o644))
	_, err = OpenDescriptor(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestManifest_RoundTripsDescriptor(t *testing.T) {
	d := NewDescriptor("journal", "", "style.css")
	d.Metadata.Author = "someone"
	d.HeaderHeight = 12
	d = buildTestBundle(t, d)

	m, err := OpenManifest(d.Dir)
	require.NoError(t, err)

	got := m.Descriptor(d.Dir)
	want := d
	want.Stylesheet = ""
	assert.Equal(t, want, got)
}

func TestOpenManifest_NotBundle(t *testing.T) {
	_, err := OpenManifest(t.TempDir())
	assert.ErrorIs(t, err, ErrNotBundle)
}

func TestOpenManifest_Garbage(t *testing.T) {
	root := BundleDir(t.TempDir(), "journal")
	require.NoError(t, Prepare(root))
	require.NoError(t, os.WriteFile(ManifestPath(root), []byte("<plist><dict><key>"), 0o644))

	_, err := OpenManifest(root)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotBundle)
}
