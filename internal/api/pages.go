package api

import (
	"context"
	"time"

	"github.com/pressmill/console/internal/model"
	"github.com/pressmill/console/internal/routes"
)

// Page is a standalone page (about, contact, ...) on the remote platform.
type Page struct {
	ID      string            `json:"id"`
	Title   string            `json:"title"`
	Content string            `json:"content"`
	Slug    string            `json:"slug"`
	Status  model.DraftStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PageInput struct {
	Title   string            `json:"title"`
	Content string            `json:"content"`
	Slug    string            `json:"slug,omitempty"`
	Status  model.DraftStatus `json:"status,omitempty"`
}

type PagesService struct {
	client *Client
}

func (s *PagesService) List(ctx context.Context, params ListParams) (Paginated[Page], error) {
	return getList[Page](ctx, s.client, routes.Pages, params)
}

func (s *PagesService) Get(ctx context.Context, id string) (Page, error) {
	var out Page
	err := s.client.Get(ctx, routes.Pages+"/"+id, nil, &out)
	return out, err
}

func (s *PagesService) Create(ctx context.Context, in PageInput) (Page, error) {
	var out Page
	err := s.client.Post(ctx, routes.Pages, in, &out)
	return out, err
}

func (s *PagesService) Update(ctx context.Context, id string, in PageInput) (Page, error) {
	var out Page
	err := s.client.Put(ctx, routes.Pages+"/"+id, in, &out)
	return out, err
}

func (s *PagesService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, routes.Pages+"/"+id)
}
