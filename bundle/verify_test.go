package bundle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueMessages(issues []Issue) []string {
	ret := []string{}
	for _, i := range issues {
		ret = append(ret, i.Msg)
	}
	return ret
}

func TestVerify_GeneratedBundle(t *testing.T) {
	d := buildTestBundle(t, NewDescriptor("ia_cph_template_01", "", "ia_claus.css"))

	issues, err := Verify(d.Dir)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestVerify_NotBundle(t *testing.T) {
	_, err := Verify(t.TempDir())
	assert.ErrorIs(t, err, ErrNotBundle)
}

func TestVerify_MissingFragment(t *testing.T) {
	d := buildTestBundle(t, NewDescriptor("journal", "", "style.css"))
	require.NoError(t, os.Remove(filepath.Join(ResourcesDir(d.Dir), DefaultFooterFile)))

	issues, err := Verify(d.Dir)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, filepath.Join(ResourcesDir(d.Dir), DefaultFooterFile), issues[0].File)
	assert.Contains(t, issues[0].Msg, "IATemplateFooterFile")
}

func TestVerify_RenamedDirectory(t *testing.T) {
	d := buildTestBundle(t, NewDescriptor("journal", "", "style.css"))
	renamed := BundleDir(filepath.Dir(d.Dir), "diary")
	require.NoError(t, os.Rename(d.Dir, renamed))

	issues, err := Verify(renamed)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Msg, `"journal"`)
	assert.Contains(t, issues[0].Msg, `"diary"`)
}

func TestVerify_BrokenHeader(t *testing.T) {
	d := buildTestBundle(t, NewDescriptor("journal", "", "style.css"))
	fn := filepath.Join(ResourcesDir(d.Dir), DefaultHeaderFile)
	require.NoError(t, os.WriteFile(fn, []byte(`<!doctype html>
<html>
<head>
	<link rel="stylesheet" href="a.css" />
	<link rel="stylesheet" href="b.css" />
</head>
<body class="header"><span data-title>&nbsp;</span></body>
</html>`), 0o644))

	issues, err := Verify(d.Dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"extra stylesheet link b.css",
		"missing placeholder data-date",
	}, issueMessages(issues))

	for _, i := range issues {
		if strings.HasPrefix(i.Msg, "extra") {
			assert.Equal(t, "5:2", i.Loc.String())
			assert.Equal(t, fn+":5:2: extra stylesheet link b.css", i.String())
		} else {
			assert.False(t, i.Loc.Valid())
			assert.Equal(t, fn+": missing placeholder data-date", i.String())
		}
	}
}

func TestCheckFragment_NoLink(t *testing.T) {
	issues := checkFragment("x.html", []byte(`<body data-document></body>`), documentPlaceholders)
	assert.Equal(t, []string{"no stylesheet link"}, issueMessages(issues))

	issues = checkFragment("x.html", []byte(`<link rel="stylesheet"><body data-document></body>`), documentPlaceholders)
	assert.Equal(t, []string{"stylesheet link without href"}, issueMessages(issues))
}

func TestStylesheets(t *testing.T) {
	buf := []byte(`<head>
<link rel="icon" href="favicon.png">
<link rel="alternate stylesheet" href="dark.css">
<LINK REL="Stylesheet" HREF="main.css"/>
</head>`)
	assert.Equal(t, []string{"dark.css", "main.css"}, Stylesheets(buf))
	assert.Empty(t, Stylesheets([]byte("plain text")))
}
