package model

// Decorator enriches a form model with additional data after the canonical
// schema-derived structure has been built.
type Decorator interface {
	Decorate(*FormModel) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*FormModel) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(form *FormModel) error {
	return fn(form)
}

// WithValues returns a decorator that copies values onto matching fields.
// Fields without an entry keep their current value.
func WithValues(values map[string]string) Decorator {
	return DecoratorFunc(func(form *FormModel) error {
		if form == nil || len(values) == 0 {
			return nil
		}
		for i := range form.Fields {
			if value, ok := values[form.Fields[i].Name]; ok {
				form.Fields[i].Value = value
			}
		}
		return nil
	})
}

// Apply runs decorators in order on a copy of form.
func Apply(form FormModel, decorators ...Decorator) (FormModel, error) {
	out := form.Clone()
	for _, decorator := range decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(&out); err != nil {
			return FormModel{}, err
		}
	}
	return out, nil
}
