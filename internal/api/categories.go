package api

import (
	"context"

	"github.com/pressmill/console/internal/routes"
)

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	PostCount   int    `json:"postCount,omitempty"`
}

type CategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
}

type CategoriesService struct {
	client *Client
}

func (s *CategoriesService) List(ctx context.Context, params ListParams) (Paginated[Category], error) {
	return getList[Category](ctx, s.client, routes.Categories, params)
}

func (s *CategoriesService) Get(ctx context.Context, id string) (Category, error) {
	var out Category
	err := s.client.Get(ctx, routes.Categories+"/"+id, nil, &out)
	return out, err
}

func (s *CategoriesService) Create(ctx context.Context, in CategoryInput) (Category, error) {
	var out Category
	err := s.client.Post(ctx, routes.Categories, in, &out)
	return out, err
}

func (s *CategoriesService) Update(ctx context.Context, id string, in CategoryInput) (Category, error) {
	var out Category
	err := s.client.Put(ctx, routes.Categories+"/"+id, in, &out)
	return out, err
}

func (s *CategoriesService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, routes.Categories+"/"+id)
}
