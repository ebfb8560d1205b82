package resumegen

import (
	"embed"
	"io/fs"
)

//go:embed pkg/runtime/assets/*.js pkg/runtime/assets/*.css
var embeddedRuntimeAssets embed.FS

// Runtime asset names inside RuntimeAssetsFS.
const (
	RuntimeScriptName = "resumegen-richtext.js"
	StylesheetName    = "resumegen.css"
)

// RuntimeAssetsFS exposes the browser runtime (rich text mounting and
// single-field form posts) and the default stylesheet.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(resumegen.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedRuntimeAssets, "pkg/runtime/assets")
	if err != nil {
		return embeddedRuntimeAssets
	}
	return sub
}
