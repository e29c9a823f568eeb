package bundle

import (
	"errors"
	"fmt"
	"os"

	"github.com/adnsv/go-utils/fs"
	"howett.net/plist"
)

// ErrNotBundle is returned when a directory has no Contents/info.plist.
var ErrNotBundle = errors.New("not a template bundle")

// Manifest is the decoded content of a bundle's info.plist.
type Manifest struct {
	DevelopmentRegion     string `plist:"CFBundleDevelopmentRegion"`
	InfoDictionaryVersion string `plist:"CFBundleInfoDictionaryVersion"`
	Identifier            string `plist:"CFBundleIdentifier"`
	Name                  string `plist:"CFBundleName"`
	ShortVersion          string `plist:"CFBundleShortVersionString"`
	Version               string `plist:"CFBundleVersion"`

	DocumentFile string `plist:"IATemplateDocumentFile"`
	TitleFile    string `plist:"IATemplateTitleFile"`
	FooterFile   string `plist:"IATemplateFooterFile"`
	FooterHeight int    `plist:"IATemplateFooterHeight"`
	HeaderFile   string `plist:"IATemplateHeaderFile"`
	HeaderHeight int    `plist:"IATemplateHeaderHeight"`
	Description  string `plist:"IATemplateDescription"`
	Author       string `plist:"IATemplateAuthor"`
	AuthorURL    string `plist:"IATemplateAuthorURL"`
}

// OpenManifest decodes root/Contents/info.plist.
func OpenManifest(root string) (*Manifest, error) {
	fn := ManifestPath(root)
	if !fs.FileExists(fn) {
		return nil, fmt.Errorf("%s: %w", root, ErrNotBundle)
	}

	buf, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}

	m := &Manifest{}
	format, err := plist.Unmarshal(buf, m)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", fn, err)
	}
	if format != plist.XMLFormat {
		return nil, fmt.Errorf("%s: expected an xml property list, got %s", fn, plist.FormatNames[format])
	}
	return m, nil
}

// Descriptor converts m back into a descriptor for the bundle at root.
// The stylesheet is not part of the manifest and is left empty.
func (m *Manifest) Descriptor(root string) Descriptor {
	return Descriptor{
		Name:         m.Name,
		Dir:          root,
		HeaderHeight: m.HeaderHeight,
		FooterHeight: m.FooterHeight,
		DocumentFile: m.DocumentFile,
		HeaderFile:   m.HeaderFile,
		FooterFile:   m.FooterFile,
		Metadata: Metadata{
			Identifier:        m.Identifier,
			Description:       m.Description,
			Author:            m.Author,
			AuthorURL:         m.AuthorURL,
			Region:            m.DevelopmentRegion,
			DictionaryVersion: m.InfoDictionaryVersion,
			ShortVersion:      m.ShortVersion,
			Version:           m.Version,
			TitleFile:         m.TitleFile,
		},
	}
}
