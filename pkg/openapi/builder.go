package openapi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-resumegen/pkg/model"
)

const (
	extensionNamespace   = "x-resume"
	endpointExtensionKey = "x-endpoint"
)

// Builder converts component schemas into form models.
type Builder struct {
	validate bool
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithValidation toggles full document validation before building.
func WithValidation(enabled bool) BuilderOption {
	return func(b *Builder) {
		b.validate = enabled
	}
}

// NewBuilder constructs a Builder. Validation is enabled by default.
func NewBuilder(options ...BuilderOption) *Builder {
	b := &Builder{validate: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Build loads doc and converts the named component schema into a form model.
func (b *Builder) Build(ctx context.Context, doc Document, schemaName string) (model.FormModel, error) {
	if err := ctx.Err(); err != nil {
		return model.FormModel{}, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return model.FormModel{}, errors.New("openapi builder: document payload is empty")
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("openapi builder: load %s: %w", doc.Location(), err)
	}
	if b.validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return model.FormModel{}, fmt.Errorf("openapi builder: validate %s: %w", doc.Location(), err)
		}
	}

	if spec.Components == nil || spec.Components.Schemas == nil {
		return model.FormModel{}, fmt.Errorf("openapi builder: %s has no component schemas", doc.Location())
	}
	ref, ok := spec.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return model.FormModel{}, fmt.Errorf("openapi builder: schema %q not found in %s", schemaName, doc.Location())
	}
	return buildForm(schemaName, ref.Value)
}

func buildForm(name string, schema *openapi3.Schema) (model.FormModel, error) {
	if schema.Type != nil && !schema.Type.Is(openapi3.TypeObject) {
		return model.FormModel{}, fmt.Errorf("openapi builder: schema %q is not an object", name)
	}

	form := model.FormModel{
		ID:          formID(name),
		Title:       schema.Title,
		Description: schema.Description,
		Method:      "POST",
	}
	if endpoint, ok := schema.Extensions[endpointExtensionKey].(string); ok {
		form.Endpoint = strings.TrimSpace(endpoint)
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, field := range schema.Required {
		required[field] = struct{}{}
	}

	for propName, propRef := range schema.Properties {
		if propRef == nil || propRef.Value == nil {
			continue
		}
		field := buildField(propName, propRef.Value)
		_, field.Required = required[propName]
		form.Fields = append(form.Fields, field)
	}

	sort.SliceStable(form.Fields, func(i, j int) bool {
		left, right := form.Fields[i], form.Fields[j]
		if left.Order != right.Order {
			return left.Order < right.Order
		}
		return left.Name < right.Name
	})
	return form, nil
}

func buildField(name string, schema *openapi3.Schema) model.Field {
	field := model.Field{
		Name:        name,
		Type:        fieldType(schema.Type),
		Format:      schema.Format,
		Label:       schema.Title,
		Description: schema.Description,
		Order:       math.MaxInt32,
	}
	if field.Label == "" {
		field.Label = defaultLabel(name)
	}

	hints := extensionHints(schema.Extensions)
	if order, ok := hints["order"]; ok {
		if parsed, err := strconv.Atoi(order); err == nil {
			field.Order = parsed
		}
	}
	field.Placeholder = hints["placeholder"]
	field.Widget = widgetFor(schema.Format, hints["widget"])
	if len(hints) > 0 {
		field.Metadata = hints
	}
	return field
}

func fieldType(types *openapi3.Types) model.FieldType {
	if types == nil {
		return model.FieldTypeString
	}
	switch {
	case types.Is(openapi3.TypeInteger):
		return model.FieldTypeInteger
	case types.Is(openapi3.TypeNumber):
		return model.FieldTypeNumber
	case types.Is(openapi3.TypeBoolean):
		return model.FieldTypeBoolean
	default:
		return model.FieldTypeString
	}
}

func widgetFor(format, override string) model.Widget {
	switch model.Widget(strings.ToLower(strings.TrimSpace(override))) {
	case model.WidgetText:
		return model.WidgetText
	case model.WidgetEmail:
		return model.WidgetEmail
	case model.WidgetTel:
		return model.WidgetTel
	case model.WidgetURL:
		return model.WidgetURL
	case model.WidgetTextArea:
		return model.WidgetTextArea
	case model.WidgetRichText:
		return model.WidgetRichText
	}
	switch strings.ToLower(format) {
	case "email":
		return model.WidgetEmail
	case "uri", "url":
		return model.WidgetURL
	case "tel", "phone":
		return model.WidgetTel
	default:
		return model.WidgetText
	}
}

// extensionHints flattens the x-resume extension into string values.
func extensionHints(ext map[string]any) map[string]string {
	raw, ok := ext[extensionNamespace].(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			out[key] = strings.TrimSpace(v)
		case float64:
			out[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			out[key] = strconv.Itoa(v)
		case bool:
			out[key] = strconv.FormatBool(v)
		default:
			out[key] = fmt.Sprint(v)
		}
	}
	return out
}

func defaultLabel(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == '.'
	})
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func formID(schemaName string) string {
	var b strings.Builder
	for i, r := range schemaName {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// BuildPersonalInfoForm builds the personal info form from the embedded
// document.
func BuildPersonalInfoForm(ctx context.Context) (model.FormModel, error) {
	return NewBuilder().Build(ctx, PersonalInfoDocument(), PersonalInfoSchema)
}
