package bundle

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/template"

	"github.com/adnsv/go-utils/fs"
)

// Prepare removes root if it exists and recreates the bundle skeleton:
// root, root/Contents and root/Contents/Resources.
func Prepare(root string) error {
	if fs.FileExists(root) || fs.DirExists(root) {
		log.Printf("deleting existing %s\n", root)
		if err := os.RemoveAll(root); err != nil {
			return fmt.Errorf("deleting %s: %w", root, err)
		}
	}

	for _, dir := range []string{root, ContentsDir(root), ResourcesDir(root)} {
		if err := os.Mkdir(dir, 0755); err != nil {
			return err
		}
	}
	log.Printf("created folder structure in %s\n", root)
	return nil
}

// Build runs the complete sequence: Prepare the bundle directory, then
// Generate its files.
func Build(d Descriptor) error {
	if err := Prepare(d.Dir); err != nil {
		return err
	}
	return Generate(d)
}

// Generate writes the document, header and footer files followed by the
// manifest. Contents/Resources must already exist. Files written before a
// failure are left in place.
func Generate(d Descriptor) error {
	if err := WriteDocumentFile(d); err != nil {
		return err
	}
	if err := WriteHeaderFile(d); err != nil {
		return err
	}
	if err := WriteFooterFile(d); err != nil {
		return err
	}
	return WriteManifest(d)
}

func WriteDocumentFile(d Descriptor) error {
	return writeTemplate(filepath.Join(ResourcesDir(d.Dir), d.DocumentFile), documentTemplate, d)
}

func WriteHeaderFile(d Descriptor) error {
	return writeTemplate(filepath.Join(ResourcesDir(d.Dir), d.HeaderFile), headerTemplate, d)
}

func WriteFooterFile(d Descriptor) error {
	return writeTemplate(filepath.Join(ResourcesDir(d.Dir), d.FooterFile), footerTemplate, d)
}

// WriteManifest writes Contents/info.plist.
func WriteManifest(d Descriptor) error {
	return writeTemplate(ManifestPath(d.Dir), manifestTemplate, d)
}

// writeTemplate renders t into fn. The parent directory must exist.
func writeTemplate(fn string, t *template.Template, d Descriptor) error {
	buf := bytes.Buffer{}
	if err := t.Execute(&buf, d); err != nil {
		return fmt.Errorf("rendering %s: %w", filepath.Base(fn), err)
	}
	if err := fs.WriteFileIfChanged(fn, buf.Bytes()); err != nil {
		return err
	}
	log.Printf("writing %s\n", fn)
	return nil
}

func xmlEscape(s string) (string, error) {
	buf := bytes.Buffer{}
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
