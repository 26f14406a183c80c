package tui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sivadev/folio/internal/api/rest"
	"github.com/sivadev/folio/internal/models"
	"github.com/sivadev/folio/internal/service"
)

func newTestCommentPage(t *testing.T) CommentPageModel {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [], "error": null}`))
	}))
	t.Cleanup(srv.Close)
	projects := service.NewProjectService(rest.New(srv.URL))
	return NewCommentPage("folio", projects, "", DefaultStyles())
}

func TestCommentPageAppliesFreshFetch(t *testing.T) {
	m := newTestCommentPage(t)

	updated, _ := m.Update(commentsLoadedMsg{
		seq:      0,
		comments: []models.Comment{{ID: 1, Name: "Jane", Content: "Great project!"}},
	})
	page := updated.(CommentPageModel)
	if page.loading {
		t.Error("loading still true after fetch result")
	}
	if len(page.comments) != 1 {
		t.Fatalf("len(comments) = %d, want 1", len(page.comments))
	}
	if !strings.Contains(page.View(), "Great project!") {
		t.Error("comment content not rendered")
	}
}

func TestCommentPageDiscardsStaleFetch(t *testing.T) {
	m := newTestCommentPage(t)
	m.fetchSeq = 2 // a newer fetch is in flight

	updated, _ := m.Update(commentsLoadedMsg{
		seq:      0,
		comments: []models.Comment{{ID: 1, Name: "Old", Content: "stale"}},
	})
	page := updated.(CommentPageModel)
	if len(page.comments) != 0 {
		t.Error("stale fetch result applied")
	}
	if !page.loading {
		t.Error("stale result cleared the loading state")
	}
}

func TestCommentPageRefetchesAfterSuccess(t *testing.T) {
	m := newTestCommentPage(t)
	*m.needsRefresh = true

	// any message the form ignores drives the Update pass
	updated, cmd := m.Update(struct{}{})
	page := updated.(CommentPageModel)
	if page.fetchSeq != 1 {
		t.Errorf("fetchSeq = %d, want 1 after refresh", page.fetchSeq)
	}
	if cmd == nil {
		t.Error("no fetch command issued for refresh")
	}
}
