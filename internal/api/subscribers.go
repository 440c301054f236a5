package api

import (
	"context"
	"time"

	"github.com/pressmill/console/internal/routes"
)

type Subscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Confirmed    bool      `json:"confirmed"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

type SubscribersService struct {
	client *Client
}

func (s *SubscribersService) List(ctx context.Context, params ListParams) (Paginated[Subscriber], error) {
	return getList[Subscriber](ctx, s.client, routes.Subscribers, params)
}

func (s *SubscribersService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, routes.Subscribers+"/"+id)
}

// Export fetches the full, unpaginated subscriber list.
func (s *SubscribersService) Export(ctx context.Context) ([]Subscriber, error) {
	var out []Subscriber
	err := s.client.Get(ctx, routes.SubscribersExport, nil, &out)
	return out, err
}
