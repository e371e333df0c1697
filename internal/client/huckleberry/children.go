package huckleberry

import (
	"context"
	"net/http"
)

type ChildService interface {
	List(ctx context.Context) ([]Child, error)
}

type childService struct {
	client *Client
}

func (s *childService) List(ctx context.Context) ([]Child, error) {
	const route = "/v1/users/me/children"

	var resp struct {
		Children []Child `json:"children"`
	}
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Children, nil
}
