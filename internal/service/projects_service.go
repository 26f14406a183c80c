package service

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/sivadev/folio/internal/api/rest"
	"github.com/sivadev/folio/internal/errs"
	"github.com/sivadev/folio/internal/models"
)

// ProjectService exposes the project and comment endpoints
type ProjectService struct {
	client *rest.Client
}

// NewProjectService creates a new project service
func NewProjectService(client *rest.Client) *ProjectService {
	return &ProjectService{client: client}
}

// List fetches projects matching the given parameters.
//
// Compatibility shim: the backend has answered with both a bare array and a
// {items, total} object across revisions. Both are accepted and normalized
// to the latter.
func (s *ProjectService) List(ctx context.Context, params models.ListProjectsParams) (*models.ListProjectsResult, error) {
	query := url.Values{}
	if params.Featured != nil {
		if *params.Featured {
			query.Set("featured", "1")
		} else {
			query.Set("featured", "0")
		}
	}
	if params.Query != "" {
		query.Set("q", params.Query)
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(params.PageSize))
	}

	raw, err := s.client.Get(ctx, "/api/projects/", query)
	if err != nil {
		return nil, err
	}

	var items []models.Project
	if err := json.Unmarshal(raw, &items); err == nil {
		return &models.ListProjectsResult{Items: items, Total: len(items)}, nil
	}

	var result models.ListProjectsResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &errs.Error{Kind: errs.KindServer, Message: "unexpected response shape from server", Err: err}
	}
	if result.Items == nil {
		result.Items = []models.Project{}
	}
	return &result, nil
}

// GetBySlug fetches a single project. Fails without a network call when the
// slug is empty.
func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	if slug == "" {
		return nil, errs.Input("slug is required")
	}

	raw, err := s.client.Get(ctx, "/api/projects/"+url.PathEscape(slug), nil)
	if err != nil {
		return nil, err
	}

	var project models.Project
	if err := json.Unmarshal(raw, &project); err != nil {
		return nil, &errs.Error{Kind: errs.KindServer, Message: "unexpected response shape from server", Err: err}
	}
	return &project, nil
}

// Comments fetches a project's comments. The server returns approved
// comments only; an empty list is a valid result.
func (s *ProjectService) Comments(ctx context.Context, slug string) ([]models.Comment, error) {
	if slug == "" {
		return nil, errs.Input("slug is required")
	}

	raw, err := s.client.Get(ctx, "/api/projects/"+url.PathEscape(slug)+"/comments", nil)
	if err != nil {
		return nil, err
	}

	var comments []models.Comment
	if err := json.Unmarshal(raw, &comments); err != nil {
		return nil, &errs.Error{Kind: errs.KindServer, Message: "unexpected response shape from server", Err: err}
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// CommentInput is a comment submission. CaptchaToken is translated to the
// backend's captcha_token wire field.
type CommentInput struct {
	Name         string
	Email        string
	Content      string
	CaptchaToken string
}

// PostComment creates a comment on a project.
func (s *ProjectService) PostComment(ctx context.Context, slug string, input CommentInput) (*models.CommentReceipt, error) {
	if slug == "" {
		return nil, errs.Input("slug is required")
	}

	payload := map[string]string{
		"name":          input.Name,
		"email":         input.Email,
		"content":       input.Content,
		"captcha_token": input.CaptchaToken,
	}

	raw, err := s.client.Post(ctx, "/api/projects/"+url.PathEscape(slug)+"/comments", payload)
	if err != nil {
		return nil, err
	}

	var receipt models.CommentReceipt
	if err := json.Unmarshal(raw, &receipt); err != nil {
		return nil, &errs.Error{Kind: errs.KindServer, Message: "unexpected response shape from server", Err: err}
	}
	return &receipt, nil
}
