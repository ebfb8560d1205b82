package openapi

import (
	"embed"
)

//go:embed personal_info.yaml
var embedded embed.FS

const (
	// PersonalInfoSchema names the component schema describing the personal
	// info form.
	PersonalInfoSchema = "PersonalInfo"
	personalInfoName   = "personal_info.yaml"
)

// PersonalInfoSpec returns a copy of the embedded OpenAPI document.
func PersonalInfoSpec() []byte {
	return PersonalInfoDocument().Raw()
}

// PersonalInfoDocument wraps the embedded OpenAPI document.
func PersonalInfoDocument() Document {
	doc, err := LoadFS(embedded, personalInfoName, SourceKindEmbedded)
	if err != nil {
		panic(err)
	}
	return doc
}
