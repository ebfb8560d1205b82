package tui

// Theme captures optional formatting hints applied to informational output.
type Theme struct {
	InfoPrefix string
}

// Option configures the terminal form.
type Option func(*Form)

// WithPromptDriver overrides the prompt driver used by the form.
func WithPromptDriver(driver PromptDriver) Option {
	return func(f *Form) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithConfirm asks for confirmation before any change is applied.
func WithConfirm(enabled bool) Option {
	return func(f *Form) {
		f.confirm = enabled
	}
}

// WithSummaryPreview prints the plain-text rendering of rich text answers.
func WithSummaryPreview(enabled bool) Option {
	return func(f *Form) {
		f.preview = enabled
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(f *Form) {
		f.theme = theme
	}
}
