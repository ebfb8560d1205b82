package model

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
)

// Widget names the input control a renderer should use for a field.
type Widget string

const (
	WidgetText     Widget = "text"
	WidgetEmail    Widget = "email"
	WidgetTel      Widget = "tel"
	WidgetURL      Widget = "url"
	WidgetTextArea Widget = "textarea"
	WidgetRichText Widget = "richtext"
)

// Multiline reports whether the widget edits multi-line content.
func (w Widget) Multiline() bool {
	return w == WidgetTextArea || w == WidgetRichText
}

// Field models an individual input inside a form. Struct fields are annotated
// so renderers can serialise them directly when needed.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	Format      string            `json:"format,omitempty"`
	Widget      Widget            `json:"widget"`
	Required    bool              `json:"required"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Order       int               `json:"order"`
	Value       string            `json:"value,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// FormModel is the top-level representation renderers consume.
type FormModel struct {
	ID          string            `json:"id"`
	Title       string            `json:"title,omitempty"`
	Endpoint    string            `json:"endpoint"`
	Method      string            `json:"method"`
	Description string            `json:"description,omitempty"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Field returns the field with the given name.
func (f FormModel) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Clone returns a deep copy so decorators can mutate the result freely.
func (f FormModel) Clone() FormModel {
	out := f
	out.Metadata = cloneStrings(f.Metadata)
	if f.Fields != nil {
		out.Fields = make([]Field, len(f.Fields))
		for i, field := range f.Fields {
			field.Metadata = cloneStrings(field.Metadata)
			out.Fields[i] = field
		}
	}
	return out
}

func cloneStrings(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
