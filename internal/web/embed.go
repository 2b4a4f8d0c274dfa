package web

import (
	"embed"
	"io/fs"
	"net/http"
)

var (
	//go:embed static/*
	embeddedStaticFiles embed.FS

	//go:embed templates/*
	embeddedTemplates embed.FS
)

// templatesFS serves the embedded templates with names relative to the
// templates directory, so "home/home" resolves to templates/home/home.gohtml.
func templatesFS() http.FileSystem {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}

	return http.FS(sub)
}
