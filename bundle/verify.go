package bundle

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adnsv/go-utils/fs"
	"github.com/adnsv/iatemplate/bundle/source"
	"golang.org/x/net/html"
)

// Issue is a problem found by Verify.
type Issue struct {
	File string
	Loc  source.Location // zero when the issue is not tied to a position
	Msg  string
}

func (i Issue) String() string {
	if i.Loc.Valid() {
		return fmt.Sprintf("%s:%s: %s", i.File, i.Loc, i.Msg)
	}
	return fmt.Sprintf("%s: %s", i.File, i.Msg)
}

// placeholders that iA Writer fills in at render time, per file role
var (
	documentPlaceholders = []string{"data-document"}
	headerPlaceholders   = []string{"data-title", "data-date"}
	footerPlaceholders   = []string{"data-page-number", "data-page-count"}
)

// Verify checks that the bundle at root can be loaded by iA Writer: the
// manifest decodes, the files it names exist, each carries exactly one
// stylesheet link and the placeholders for its role. An error is returned
// only when the manifest itself cannot be read.
func Verify(root string) ([]Issue, error) {
	m, err := OpenManifest(root)
	if err != nil {
		return nil, err
	}

	issues := []Issue{}
	manifestFN := ManifestPath(root)

	if n := TrimBundleExt(root); m.Name != n {
		issues = append(issues, Issue{File: manifestFN,
			Msg: fmt.Sprintf("CFBundleName %q does not match bundle directory %q", m.Name, n)})
	}
	if m.HeaderHeight < 0 {
		issues = append(issues, Issue{File: manifestFN, Msg: "negative IATemplateHeaderHeight"})
	}
	if m.FooterHeight < 0 {
		issues = append(issues, Issue{File: manifestFN, Msg: "negative IATemplateFooterHeight"})
	}

	files := []struct {
		key  string
		name string
		want []string
	}{
		{"IATemplateDocumentFile", m.DocumentFile, documentPlaceholders},
		{"IATemplateHeaderFile", m.HeaderFile, headerPlaceholders},
		{"IATemplateFooterFile", m.FooterFile, footerPlaceholders},
	}
	for _, f := range files {
		if f.name == "" {
			issues = append(issues, Issue{File: manifestFN, Msg: "missing " + f.key})
			continue
		}
		fn := filepath.Join(ResourcesDir(root), f.name)
		if !fs.FileExists(fn) {
			issues = append(issues, Issue{File: fn, Msg: "file named by " + f.key + " does not exist"})
			continue
		}
		buf, err := os.ReadFile(fn)
		if err != nil {
			return issues, err
		}
		issues = append(issues, checkFragment(fn, buf, f.want)...)
	}
	return issues, nil
}

func checkFragment(fn string, buf []byte, want []string) []Issue {
	issues := []Issue{}
	sc := scanFragment(buf)

	switch len(sc.links) {
	case 0:
		issues = append(issues, Issue{File: fn, Msg: "no stylesheet link"})
	case 1:
		if sc.links[0].href == "" {
			issues = append(issues, Issue{File: fn, Loc: sc.links[0].loc, Msg: "stylesheet link without href"})
		}
	default:
		for _, l := range sc.links[1:] {
			issues = append(issues, Issue{File: fn, Loc: l.loc, Msg: "extra stylesheet link " + l.href})
		}
	}

	for _, p := range want {
		if _, ok := sc.placeholders[p]; !ok {
			issues = append(issues, Issue{File: fn, Msg: "missing placeholder " + p})
		}
	}
	return issues
}

// Stylesheets returns the hrefs of all stylesheet links in an html fragment.
func Stylesheets(buf []byte) []string {
	ret := []string{}
	for _, l := range scanFragment(buf).links {
		ret = append(ret, l.href)
	}
	return ret
}

type link struct {
	href string
	loc  source.Location
}

type scan struct {
	links        []link
	placeholders map[string]source.Location
}

func scanFragment(buf []byte) *scan {
	sc := &scan{placeholders: map[string]source.Location{}}
	text := string(buf)
	offset := 0

	z := html.NewTokenizer(bytes.NewReader(buf))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF, or malformed input: keep what was seen so far
			break
		}
		pos := offset
		offset += len(z.Raw())

		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		t := z.Token()
		loc := source.Locate(text, pos)

		if t.Data == "link" && isStylesheet(t) {
			sc.links = append(sc.links, link{href: attr(t, "href"), loc: loc})
		}
		for _, a := range t.Attr {
			if strings.HasPrefix(a.Key, "data-") {
				if _, seen := sc.placeholders[a.Key]; !seen {
					sc.placeholders[a.Key] = loc
				}
			}
		}
	}
	return sc
}

func isStylesheet(t html.Token) bool {
	for _, r := range strings.Fields(attr(t, "rel")) {
		if strings.EqualFold(r, "stylesheet") {
			return true
		}
	}
	return false
}

func attr(t html.Token, key string) string {
	for _, a := range t.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
