package api

import (
	"context"

	"github.com/pressmill/console/internal/routes"
)

// Settings is the site-wide configuration managed from the dashboard.
type Settings struct {
	SiteTitle       string `json:"siteTitle"`
	SiteDescription string `json:"siteDescription,omitempty"`
	SiteURL         string `json:"siteUrl,omitempty"`
	Language        string `json:"language,omitempty"`
	PostsPerPage    int    `json:"postsPerPage,omitempty"`
	CommentsEnabled bool   `json:"commentsEnabled"`
}

type SettingsService struct {
	client *Client
}

func (s *SettingsService) Get(ctx context.Context) (Settings, error) {
	var out Settings
	err := s.client.Get(ctx, routes.Settings, nil, &out)
	return out, err
}

func (s *SettingsService) Update(ctx context.Context, in Settings) (Settings, error) {
	var out Settings
	err := s.client.Put(ctx, routes.Settings, in, &out)
	return out, err
}
