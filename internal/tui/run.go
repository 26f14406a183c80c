package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sivadev/folio/internal/forms"
	"github.com/sivadev/folio/internal/service"
)

// contactPageModel adapts FormModel to tea.Model for the standalone
// contact page.
type contactPageModel struct {
	form FormModel
}

func (m contactPageModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m contactPageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m contactPageModel) View() string {
	return m.form.View()
}

// NewContactSubmitter wires the contact schema, a fresh gate and the
// contact service into one submission pipeline.
func NewContactSubmitter(contacts *service.ContactService, siteKey string) *forms.Submitter {
	return forms.NewSubmitter(
		forms.ContactSchema(),
		forms.NewGate(siteKey),
		func(ctx context.Context, values map[string]string, token string) error {
			_, err := contacts.Send(ctx, service.ContactInput{
				Name:         values["name"],
				Email:        values["email"],
				Message:      values["message"],
				CaptchaToken: token,
			})
			return err
		},
		forms.WithSuccessText("Thanks! Your message has been sent."),
	)
}

// NewCommentSubmitter wires the comment schema, a fresh gate and the
// project service into one submission pipeline for the given project.
// onSuccess may be nil.
func NewCommentSubmitter(projects *service.ProjectService, slug, siteKey string, onSuccess func()) *forms.Submitter {
	opts := []forms.SubmitterOption{
		forms.WithSuccessText("Your comment has been submitted!"),
		forms.WithFallbackText("An error occurred while submitting the comment. Please try again."),
	}
	if onSuccess != nil {
		opts = append(opts, forms.WithOnSuccess(onSuccess))
	}
	return forms.NewSubmitter(
		forms.CommentSchema(),
		forms.NewGate(siteKey),
		func(ctx context.Context, values map[string]string, token string) error {
			_, err := projects.PostComment(ctx, slug, service.CommentInput{
				Name:         values["name"],
				Email:        values["email"],
				Content:      values["content"],
				CaptchaToken: token,
			})
			return err
		},
		opts...,
	)
}

// RunContactForm runs the interactive contact form until the user quits.
func RunContactForm(contacts *service.ContactService, siteKey string) error {
	form := NewFormModel("Contact", NewContactSubmitter(contacts, siteKey), DefaultStyles())
	_, err := tea.NewProgram(contactPageModel{form: form}).Run()
	return err
}

// RunCommentForm runs the interactive comment form for one project.
func RunCommentForm(projects *service.ProjectService, slug, siteKey string) error {
	page := NewCommentPage(slug, projects, siteKey, DefaultStyles())
	_, err := tea.NewProgram(page).Run()
	return err
}
