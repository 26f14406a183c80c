package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sivadev/folio/internal/models"
	"github.com/sivadev/folio/internal/service"
)

// commentsLoadedMsg carries a fetched comment list. Results whose seq no
// longer matches the page are discarded so a late response cannot clobber
// newer state; the request itself is not aborted.
type commentsLoadedMsg struct {
	seq      int
	comments []models.Comment
	err      error
}

// CommentPageModel shows a project's comment form above its approved
// comments. A successful submission re-fetches the list through the
// submitter's completion callback.
type CommentPageModel struct {
	form     FormModel
	slug     string
	projects *service.ProjectService

	comments []models.Comment
	loading  bool
	fetchErr error
	fetchSeq int

	// set by the submitter's completion callback; drained on the next
	// Update pass.
	needsRefresh *bool

	styles Styles
}

// NewCommentPage builds the comment page for one project.
func NewCommentPage(slug string, projects *service.ProjectService, siteKey string, styles Styles) CommentPageModel {
	needsRefresh := new(bool)
	submitter := NewCommentSubmitter(projects, slug, siteKey, func() { *needsRefresh = true })

	return CommentPageModel{
		form:         NewFormModel("Add a Comment — "+slug, submitter, styles),
		slug:         slug,
		projects:     projects,
		loading:      true,
		needsRefresh: needsRefresh,
		styles:       styles,
	}
}

func (m CommentPageModel) fetchComments(seq int) tea.Cmd {
	projects := m.projects
	slug := m.slug
	return func() tea.Msg {
		comments, err := projects.Comments(context.Background(), slug)
		return commentsLoadedMsg{seq: seq, comments: comments, err: err}
	}
}

func (m CommentPageModel) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), m.fetchComments(m.fetchSeq))
}

func (m CommentPageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(commentsLoadedMsg); ok {
		if loaded.seq != m.fetchSeq {
			return m, nil
		}
		m.loading = false
		m.fetchErr = loaded.err
		if loaded.err == nil {
			m.comments = loaded.comments
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)

	if *m.needsRefresh {
		*m.needsRefresh = false
		m.fetchSeq++
		m.loading = true
		return m, tea.Batch(cmd, m.fetchComments(m.fetchSeq))
	}
	return m, cmd
}

func (m CommentPageModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.View())
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(m.styles.Muted.Render("Loading comments..."))
	case m.fetchErr != nil:
		b.WriteString(m.styles.FieldError.Render("Could not load comments: " + m.fetchErr.Error()))
	case len(m.comments) == 0:
		b.WriteString(m.styles.Muted.Render("No comments yet. Be the first!"))
	default:
		b.WriteString(m.styles.Label.Render(fmt.Sprintf("Comments (%d)", len(m.comments))))
		for _, c := range m.comments {
			b.WriteString("\n\n")
			b.WriteString(m.styles.Label.Render(c.Name))
			if c.CreatedAt != "" {
				b.WriteString(m.styles.Muted.Render("  " + c.CreatedAt))
			}
			b.WriteString("\n")
			b.WriteString(c.Content)
		}
	}
	b.WriteString("\n")

	return b.String()
}
