package api

import (
	"context"
	"time"

	"github.com/pressmill/console/internal/routes"
)

type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
	CommentSpam     CommentStatus = "spam"
)

type Comment struct {
	ID          string        `json:"id"`
	PostID      string        `json:"postId"`
	AuthorName  string        `json:"authorName"`
	AuthorEmail string        `json:"authorEmail,omitempty"`
	Content     string        `json:"content"`
	Status      CommentStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type CommentsService struct {
	client *Client
}

func (s *CommentsService) List(ctx context.Context, params ListParams) (Paginated[Comment], error) {
	return getList[Comment](ctx, s.client, routes.Comments, params)
}

func (s *CommentsService) Approve(ctx context.Context, id string) (Comment, error) {
	var out Comment
	err := s.client.Patch(ctx, routes.Comments+"/"+id+"/approve", nil, &out)
	return out, err
}

func (s *CommentsService) MarkSpam(ctx context.Context, id string) (Comment, error) {
	var out Comment
	err := s.client.Patch(ctx, routes.Comments+"/"+id+"/spam", nil, &out)
	return out, err
}

func (s *CommentsService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, routes.Comments+"/"+id)
}
