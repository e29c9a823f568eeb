package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Ext is the directory suffix iA Writer recognizes as a template bundle.
const Ext = ".iatemplate"

const (
	DefaultHeaderHeight = 40
	DefaultFooterHeight = 40
	DefaultDocumentFile = "document.html"
	DefaultHeaderFile   = "header.html"
	DefaultFooterFile   = "footer.html"
)

// Metadata is the fixed identity of a bundle as it appears in info.plist.
type Metadata struct {
	Identifier        string `yaml:"identifier"`
	Description       string `yaml:"description"`
	Author            string `yaml:"author"`
	AuthorURL         string `yaml:"author-url"`
	Region            string `yaml:"region"`
	DictionaryVersion string `yaml:"dictionary-version"`
	ShortVersion      string `yaml:"short-version"`
	Version           string `yaml:"version"`
	TitleFile         string `yaml:"title-file"`
}

// DefaultMetadata returns the identity used when no descriptor file overrides it.
func DefaultMetadata() Metadata {
	return Metadata{
		Identifier:        "org.cph.journal_simple",
		Description:       "Claus Journal",
		Author:            "cph",
		AuthorURL:         "https://claus-haslauer.de",
		Region:            "en",
		DictionaryVersion: "6.0",
		ShortVersion:      "1.0",
		Version:           "1",
		TitleFile:         "title",
	}
}

// Descriptor holds everything needed to generate one bundle. Heights are in
// points and are expected to be non-negative; filenames are relative to
// Contents/Resources.
type Descriptor struct {
	Name       string `yaml:"name"`
	Dir        string `yaml:"-"` // bundle root, <parent>/<Name>.iatemplate
	Stylesheet string `yaml:"stylesheet"`

	HeaderHeight int `yaml:"header-height"`
	FooterHeight int `yaml:"footer-height"`

	DocumentFile string `yaml:"document"`
	HeaderFile   string `yaml:"header"`
	FooterFile   string `yaml:"footer"`

	Metadata Metadata `yaml:"metadata"`
}

// NewDescriptor returns a descriptor with default heights, filenames and
// metadata.
func NewDescriptor(name, dir, stylesheet string) Descriptor {
	return Descriptor{
		Name:         name,
		Dir:          dir,
		Stylesheet:   stylesheet,
		HeaderHeight: DefaultHeaderHeight,
		FooterHeight: DefaultFooterHeight,
		DocumentFile: DefaultDocumentFile,
		HeaderFile:   DefaultHeaderFile,
		FooterFile:   DefaultFooterFile,
		Metadata:     DefaultMetadata(),
	}
}

// OpenDescriptor loads a descriptor from a yaml file. Keys that are absent in
// the file keep their defaults. Dir is left empty; callers place the bundle.
func OpenDescriptor(fn string) (Descriptor, error) {
	d := NewDescriptor("", "", "")

	buf, err := os.ReadFile(fn)
	if err != nil {
		return d, err
	}
	err = yaml.Unmarshal(buf, &d)
	if err != nil {
		return d, fmt.Errorf("%s: %w", fn, err)
	}
	return d, nil
}

// BundleDir returns the bundle root for name inside parent.
func BundleDir(parent, name string) string {
	return filepath.Join(parent, name+Ext)
}

// TrimBundleExt returns the bundle name for a bundle directory path.
func TrimBundleExt(dir string) string {
	return strings.TrimSuffix(filepath.Base(dir), Ext)
}

// ContentsDir returns root/Contents.
func ContentsDir(root string) string {
	return filepath.Join(root, "Contents")
}

// ResourcesDir returns root/Contents/Resources.
func ResourcesDir(root string) string {
	return filepath.Join(root, "Contents", "Resources")
}

// ManifestPath returns root/Contents/info.plist.
func ManifestPath(root string) string {
	return filepath.Join(root, "Contents", "info.plist")
}
