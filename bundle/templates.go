package bundle

import (
	"text/template"
)

// see https://github.com/iainc/iA-Writer-Templates for the keys iA Writer reads

var manifestTemplate = template.Must(template.New("info.plist").
	Option("missingkey=error").
	Funcs(template.FuncMap{"xml": xmlEscape}).
	Parse(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleDevelopmentRegion</key>
	<string>{{xml .Metadata.Region}}</string>
	<key>CFBundleInfoDictionaryVersion</key>
	<string>{{xml .Metadata.DictionaryVersion}}</string>
	<key>CFBundleIdentifier</key>
	<string>{{xml .Metadata.Identifier}}</string>
	<key>CFBundleName</key>
	<string>{{xml .Name}}</string>
	<key>CFBundleShortVersionString</key>
	<string>{{xml .Metadata.ShortVersion}}</string>
	<key>CFBundleVersion</key>
	<string>{{xml .Metadata.Version}}</string>
	<key>IATemplateDocumentFile</key>
	<string>{{xml .DocumentFile}}</string>
	<key>IATemplateTitleFile</key>
	<string>{{xml .Metadata.TitleFile}}</string>
	<key>IATemplateFooterFile</key>
	<string>{{xml .FooterFile}}</string>
	<key>IATemplateFooterHeight</key>
	<integer>{{.FooterHeight}}</integer>
	<key>IATemplateHeaderFile</key>
	<string>{{xml .HeaderFile}}</string>
	<key>IATemplateHeaderHeight</key>
	<integer>{{.HeaderHeight}}</integer>
	<key>IATemplateDescription</key>
	<string>{{xml .Metadata.Description}}</string>
	<key>IATemplateAuthor</key>
	<string>{{xml .Metadata.Author}}</string>
	<key>IATemplateAuthorURL</key>
	<string>{{xml .Metadata.AuthorURL}}</string>
</dict>
</plist>
`))

// The stylesheet href is a plain filename inside Contents/Resources; it is
// entity-escaped only, never URL-encoded. The document body is replaced by
// the rendered markdown.
var documentTemplate = template.Must(template.New("document").Parse(`<!doctype html>
<html>
<head>
	<meta charset="UTF-8">
  <link rel="stylesheet" media="all" href="{{html .Stylesheet}}"/>
  <meta name="viewport" content="initial-scale=1, viewport-fit=cover">
</head>
<body class="markdown-body" data-document>&nbsp;</body>
</html>`))

var headerTemplate = template.Must(template.New("header").Parse(`<!doctype html>
<html>
<head>
	<meta charset="UTF-8" />
	<link rel="stylesheet" media="all" href="{{html .Stylesheet}}" />
</head>
<body class="header">
<p><span data-title>&nbsp;</span>&nbsp;-&nbsp;<span data-date>&nbsp;</span></p>
</body>
</html>`))

var footerTemplate = template.Must(template.New("footer").Parse(`<!doctype html>
<html>
<head>
	<meta charset="UTF-8" />
	<link rel="stylesheet" media="all" href="{{html .Stylesheet}}"/>
</head>
<body>
<div class="footer">
<p><span data-page-number>&nbsp;</span>&nbsp;/&nbsp;<span data-page-count>&nbsp;</span></p>
</div>
</body>
</html>`))
