// Package tui renders the personal info form as a sequence of terminal
// prompts bound to a resume.Store.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-resumegen/pkg/model"
	"github.com/goliatone/go-resumegen/pkg/resume"
	"github.com/goliatone/go-resumegen/pkg/richtext"
)

// Form prompts for every field of a form model, pre-filled with the current
// store values.
type Form struct {
	form    model.FormModel
	driver  PromptDriver
	confirm bool
	preview bool
	theme   Theme
}

// New constructs a terminal form using the survey driver by default.
func New(form model.FormModel, options ...Option) *Form {
	f := &Form{form: form.Clone()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.driver == nil {
		f.driver = NewSurveyDriver()
	}
	return f
}

// Result lists the fields updated by a run, in form order.
type Result struct {
	Updated []resume.FieldName
}

// Changed reports whether the run updated at least one field.
func (r Result) Changed() bool {
	return len(r.Updated) > 0
}

type answer struct {
	field resume.FieldName
	value string
}

// Run prompts for each field and issues exactly one SetField for every
// answer that differs from the current value. Fields the store does not know
// are skipped.
func (f *Form) Run(ctx context.Context, store resume.Store) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("tui: context is required")
	}
	if store == nil {
		return Result{}, ErrNoStore
	}

	var changes []answer
	for _, field := range f.form.Fields {
		name, err := resume.ParseFieldName(field.Name)
		if err != nil {
			continue
		}
		current, err := store.GetField(ctx, name)
		if err != nil {
			return Result{}, fmt.Errorf("tui: read %s: %w", name, err)
		}

		value, err := f.prompt(ctx, field, current)
		if err != nil {
			return Result{}, err
		}
		if f.preview && name.IsRichText() {
			if err := f.info(ctx, field.Label+": "+richtext.PlainText(value)); err != nil {
				return Result{}, err
			}
		}
		if value != current {
			changes = append(changes, answer{field: name, value: value})
		}
	}

	if len(changes) == 0 {
		return Result{}, nil
	}
	if f.confirm {
		ok, err := f.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Save %d change(s)?", len(changes)),
			Default: true,
		})
		if err != nil {
			return Result{}, err
		}
		if !ok {
			return Result{}, nil
		}
	}

	var result Result
	for _, change := range changes {
		if err := store.SetField(ctx, change.field, change.value); err != nil {
			return result, fmt.Errorf("tui: update %s: %w", change.field, err)
		}
		result.Updated = append(result.Updated, change.field)
	}
	return result, nil
}

func (f *Form) prompt(ctx context.Context, field model.Field, current string) (string, error) {
	message := field.Label
	if message == "" {
		message = field.Name
	}
	help := field.Description
	if help == "" {
		help = field.Placeholder
	}

	if field.Widget.Multiline() {
		return f.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: current, Help: help})
	}
	return f.driver.Input(ctx, InputConfig{Message: message, Default: current, Help: help})
}

func (f *Form) info(ctx context.Context, msg string) error {
	return f.driver.Info(ctx, f.theme.InfoPrefix+msg)
}
