// Package forms implements the form-submission pipeline: declarative field
// validation, the CAPTCHA gate, and the submission state machine shared by
// the contact and project-comment forms.
package forms

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func vd() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Check is one constraint on a field value with the message shown when it
// fails. Tags use validator/v10 syntax.
type Check struct {
	Tag     string
	Message string
}

// Field declares one form field and its ordered constraints. The first
// failing check wins.
type Field struct {
	Name        string
	Label       string
	Placeholder string
	Multiline   bool
	Checks      []Check
}

// Schema is the ordered field set of one form. Schemas are immutable and
// safe to share; each form instance owns its values separately.
type Schema struct {
	fields []Field
}

func NewSchema(fields ...Field) Schema {
	return Schema{fields: fields}
}

// Fields returns the declared fields in form order.
func (s Schema) Fields() []Field {
	return s.fields
}

// Validate evaluates every field against the given values. Validation runs
// continuously as the user types, not only on submit.
func (s Schema) Validate(values map[string]string) Result {
	errors := make(map[string]string)
	for _, f := range s.fields {
		value := values[f.Name]
		for _, check := range f.Checks {
			if err := vd().Var(value, check.Tag); err != nil {
				errors[f.Name] = check.Message
				break
			}
		}
	}
	return Result{errors: errors}
}

// Result is the outcome of one validation pass.
type Result struct {
	errors map[string]string
}

// Valid reports whether every field passed.
func (r Result) Valid() bool {
	return len(r.errors) == 0
}

// Message returns the failure message for a field, or "" if it passed.
func (r Result) Message(field string) string {
	return r.errors[field]
}

// ContactSchema declares the contact form fields: name 2..50 characters,
// a well-formed email address, message 10..1000 characters.
func ContactSchema() Schema {
	return NewSchema(
		Field{
			Name:        "name",
			Label:       "Name",
			Placeholder: "Your name",
			Checks: []Check{
				{Tag: "required,min=2", Message: "Name must be at least 2 characters"},
				{Tag: "max=50", Message: "Name must be at most 50 characters"},
			},
		},
		Field{
			Name:        "email",
			Label:       "Email",
			Placeholder: "your@email.com",
			Checks: []Check{
				{Tag: "required,email", Message: "Invalid email address"},
			},
		},
		Field{
			Name:        "message",
			Label:       "Message",
			Placeholder: "How can I help?",
			Multiline:   true,
			Checks: []Check{
				{Tag: "required,min=10", Message: "Message must be at least 10 characters"},
				{Tag: "max=1000", Message: "Message is too long"},
			},
		},
	)
}

// CommentSchema declares the project-comment form fields: name at least 2
// characters, a well-formed email address, content at least 5 characters.
func CommentSchema() Schema {
	return NewSchema(
		Field{
			Name:        "name",
			Label:       "Name",
			Placeholder: "Your full name",
			Checks: []Check{
				{Tag: "required,min=2", Message: "Name must be at least 2 characters"},
			},
		},
		Field{
			Name:        "email",
			Label:       "Email",
			Placeholder: "your@email.com",
			Checks: []Check{
				{Tag: "required,email", Message: "Invalid email"},
			},
		},
		Field{
			Name:        "content",
			Label:       "Comment Content",
			Placeholder: "What did you think about the project?",
			Multiline:   true,
			Checks: []Check{
				{Tag: "required,min=5", Message: "Comment must be at least 5 characters"},
			},
		},
	)
}
