package resume

// FieldName identifies one bindable resume field.
type FieldName string

const (
	FieldFullName FieldName = "name"
	FieldEmail    FieldName = "email"
	FieldPhone    FieldName = "phone"
	FieldLocation FieldName = "location"
	FieldLink     FieldName = "link"
	FieldSummary  FieldName = "summary"
)

// PersonalInfoFields lists the personal info fields in display order.
var PersonalInfoFields = []FieldName{
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldLocation,
	FieldLink,
	FieldSummary,
}

// PersonalInfo is the contact block at the top of a resume. Summary holds
// rich text in the restricted HTML subset.
type PersonalInfo struct {
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	Location string `json:"location" yaml:"location"`
	Link     string `json:"link" yaml:"link"`
	Summary  string `json:"summary" yaml:"summary"`
}

// Resume is the document edited by the builder.
type Resume struct {
	Personal PersonalInfo `json:"personal" yaml:"personal"`
}

// IsRichText reports whether the field stores rich text markup.
func (f FieldName) IsRichText() bool {
	return f == FieldSummary
}

// Valid reports whether f names a known field.
func (f FieldName) Valid() bool {
	_, ok := f.accessor()
	return ok
}

func (f FieldName) String() string {
	return string(f)
}

// Get returns the value of the named field.
func (p PersonalInfo) Get(name FieldName) (string, error) {
	access, ok := name.accessor()
	if !ok {
		return "", unknownField(name)
	}
	return *access(&p), nil
}

// With returns a copy of p with exactly one field replaced.
func (p PersonalInfo) With(name FieldName, value string) (PersonalInfo, error) {
	access, ok := name.accessor()
	if !ok {
		return p, unknownField(name)
	}
	*access(&p) = value
	return p, nil
}

// Values returns the fields keyed by name.
func (p PersonalInfo) Values() map[string]string {
	out := make(map[string]string, len(PersonalInfoFields))
	for _, name := range PersonalInfoFields {
		access, _ := name.accessor()
		out[name.String()] = *access(&p)
	}
	return out
}

func (f FieldName) accessor() (func(*PersonalInfo) *string, bool) {
	switch f {
	case FieldFullName:
		return func(p *PersonalInfo) *string { return &p.Name }, true
	case FieldEmail:
		return func(p *PersonalInfo) *string { return &p.Email }, true
	case FieldPhone:
		return func(p *PersonalInfo) *string { return &p.Phone }, true
	case FieldLocation:
		return func(p *PersonalInfo) *string { return &p.Location }, true
	case FieldLink:
		return func(p *PersonalInfo) *string { return &p.Link }, true
	case FieldSummary:
		return func(p *PersonalInfo) *string { return &p.Summary }, true
	default:
		return nil, false
	}
}
