package api

import (
	"context"
	"time"

	"github.com/pressmill/console/internal/model"
	"github.com/pressmill/console/internal/routes"
)

// Post is a published or publishable article on the remote platform.
type Post struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Excerpt    string            `json:"excerpt,omitempty"`
	HeroImage  string            `json:"heroImage,omitempty"`
	CategoryID string            `json:"categoryId,omitempty"`
	Status     model.DraftStatus `json:"status"`
	AuthorID   string            `json:"authorId,omitempty"`

	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// PostInput is the writable subset sent on create and update.
type PostInput struct {
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Excerpt    string            `json:"excerpt,omitempty"`
	HeroImage  string            `json:"heroImage,omitempty"`
	CategoryID string            `json:"categoryId,omitempty"`
	Status     model.DraftStatus `json:"status,omitempty"`
}

type PostsService struct {
	client *Client
}

func (s *PostsService) List(ctx context.Context, params ListParams) (Paginated[Post], error) {
	return getList[Post](ctx, s.client, routes.Posts, params)
}

func (s *PostsService) Get(ctx context.Context, id string) (Post, error) {
	var out Post
	err := s.client.Get(ctx, routes.Posts+"/"+id, nil, &out)
	return out, err
}

func (s *PostsService) Create(ctx context.Context, in PostInput) (Post, error) {
	var out Post
	err := s.client.Post(ctx, routes.Posts, in, &out)
	return out, err
}

func (s *PostsService) Update(ctx context.Context, id string, in PostInput) (Post, error) {
	var out Post
	err := s.client.Put(ctx, routes.Posts+"/"+id, in, &out)
	return out, err
}

func (s *PostsService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, routes.Posts+"/"+id)
}

func (s *PostsService) Publish(ctx context.Context, id string) (Post, error) {
	var out Post
	err := s.client.Patch(ctx, routes.Posts+"/"+id+"/publish", nil, &out)
	return out, err
}

func (s *PostsService) Unpublish(ctx context.Context, id string) (Post, error) {
	var out Post
	err := s.client.Patch(ctx, routes.Posts+"/"+id+"/unpublish", nil, &out)
	return out, err
}
