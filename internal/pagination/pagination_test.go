package pagination

import "testing"

func TestDefaults(t *testing.T) {
	tests := []struct {
		name         string
		in           PageRequest
		wantPage     int
		wantPageSize int
	}{
		{"empty", PageRequest{}, 1, DefaultPageSize},
		{"kept", PageRequest{Page: 3, PageSize: 10}, 3, 10},
		{"negative", PageRequest{Page: -2, PageSize: -1}, 1, DefaultPageSize},
		{"oversized", PageRequest{Page: 1, PageSize: 500}, 1, MaxPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.in
			req.Defaults()
			if req.Page != tt.wantPage || req.PageSize != tt.wantPageSize {
				t.Errorf("got page %d size %d, want %d %d", req.Page, req.PageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestWindow(t *testing.T) {
	req := PageRequest{Page: 3, PageSize: 25}
	skip, limit := req.Window()
	if skip != 50 || limit != 25 {
		t.Errorf("expected skip 50 limit 25, got %d %d", skip, limit)
	}
}

func TestNewPageResponse(t *testing.T) {
	t.Run("rounds_pages_up", func(t *testing.T) {
		resp := NewPageResponse([]int{1, 2}, 1, 2, 5)
		if resp.TotalPages != 3 {
			t.Errorf("expected 3 pages, got %d", resp.TotalPages)
		}
	})

	t.Run("nil_data_becomes_empty", func(t *testing.T) {
		resp := NewPageResponse[string](nil, 1, 20, 0)
		if resp.Data == nil || len(resp.Data) != 0 || resp.TotalPages != 0 {
			t.Errorf("unexpected response %+v", resp)
		}
	})
}
