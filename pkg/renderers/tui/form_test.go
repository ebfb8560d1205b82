package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resumegen/pkg/model"
	"github.com/goliatone/go-resumegen/pkg/resume"
)

type stubDriver struct {
	answers      map[string]string
	confirm      bool
	confirmErr   error
	inputErr     error
	prompts      []string
	multiline    []string
	confirmCalls int
	infoMessages []string
}

func (s *stubDriver) answer(message, def string) (string, error) {
	if s.inputErr != nil {
		return "", s.inputErr
	}
	s.prompts = append(s.prompts, message)
	if v, ok := s.answers[message]; ok {
		return v, nil
	}
	return def, nil
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	return s.answer(cfg.Message, cfg.Default)
}

func (s *stubDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	s.multiline = append(s.multiline, cfg.Message)
	return s.answer(cfg.Message, cfg.Default)
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	s.confirmCalls++
	return s.confirm, s.confirmErr
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

type recordingStore struct {
	*resume.MemoryStore
	sets []resume.FieldName
}

func (s *recordingStore) SetField(ctx context.Context, name resume.FieldName, value string) error {
	s.sets = append(s.sets, name)
	return s.MemoryStore.SetField(ctx, name, value)
}

func testForm() model.FormModel {
	return model.FormModel{
		ID: "personal-info",
		Fields: []model.Field{
			{Name: "name", Label: "Full name", Widget: model.WidgetText},
			{Name: "email", Label: "Email", Widget: model.WidgetEmail},
			{Name: "nickname", Label: "Nickname", Widget: model.WidgetText},
			{Name: "summary", Label: "Summary", Widget: model.WidgetRichText},
		},
	}
}

func newRecordingStore() *recordingStore {
	return &recordingStore{MemoryStore: resume.NewMemoryStore(resume.WithInitial(resume.Resume{
		Personal: resume.PersonalInfo{Name: "Ada", Email: "ada@example.com"},
	}))}
}

func TestFormRunUpdatesOnlyChangedFields(t *testing.T) {
	driver := &stubDriver{answers: map[string]string{
		"Full name": "Ada Lovelace",
		"Summary":   "<p>Hi &amp; bye</p>",
	}}
	store := newRecordingStore()

	result, err := New(testForm(), WithPromptDriver(driver), WithSummaryPreview(true)).Run(context.Background(), store)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := []resume.FieldName{resume.FieldFullName, resume.FieldSummary}
	if diff := cmp.Diff(want, store.sets); diff != "" {
		t.Fatalf("set calls mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, result.Updated); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Full name", "Email", "Summary"}, driver.prompts); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Summary"}, driver.multiline); diff != "" {
		t.Fatalf("multiline prompts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Summary: Hi   bye"}, driver.infoMessages); diff != "" {
		t.Fatalf("preview mismatch (-want +got):\n%s", diff)
	}

	snap, _ := store.Snapshot(context.Background())
	if snap.Personal.Name != "Ada Lovelace" || snap.Personal.Email != "ada@example.com" {
		t.Fatalf("unexpected snapshot %#v", snap.Personal)
	}
}

func TestFormRunNoChanges(t *testing.T) {
	driver := &stubDriver{}
	store := newRecordingStore()

	result, err := New(testForm(), WithPromptDriver(driver), WithConfirm(true)).Run(context.Background(), store)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Changed() || len(store.sets) != 0 {
		t.Fatalf("expected no updates, got %v", store.sets)
	}
	if driver.confirmCalls != 0 {
		t.Fatalf("expected no confirmation without changes")
	}
}

func TestFormRunDeclinedConfirmation(t *testing.T) {
	driver := &stubDriver{answers: map[string]string{"Email": "lovelace@example.com"}, confirm: false}
	store := newRecordingStore()

	result, err := New(testForm(), WithPromptDriver(driver), WithConfirm(true)).Run(context.Background(), store)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Changed() || len(store.sets) != 0 {
		t.Fatalf("expected declined run to leave store untouched, got %v", store.sets)
	}
	if driver.confirmCalls != 1 {
		t.Fatalf("expected one confirmation, got %d", driver.confirmCalls)
	}
}

func TestFormRunAborted(t *testing.T) {
	driver := &stubDriver{inputErr: ErrAborted}
	store := newRecordingStore()

	_, err := New(testForm(), WithPromptDriver(driver)).Run(context.Background(), store)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if len(store.sets) != 0 {
		t.Fatalf("expected no updates after abort")
	}
}

func TestFormRunRequiresStore(t *testing.T) {
	_, err := New(testForm(), WithPromptDriver(&stubDriver{})).Run(context.Background(), nil)
	if !errors.Is(err, ErrNoStore) {
		t.Fatalf("expected ErrNoStore, got %v", err)
	}
}
