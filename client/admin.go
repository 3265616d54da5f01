package client

import "context"

// AdminService handles administrative operations.
type AdminService struct {
	c *Client
}

// Resync rebuilds the server's in-memory graph from its database.
// Returns the number of follow edges loaded.
func (s *AdminService) Resync(ctx context.Context) (int, error) {
	var resp struct {
		Follows int `json:"follows"`
	}
	if err := s.c.post(ctx, "/api/v1/admin/resync", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Follows, nil
}
