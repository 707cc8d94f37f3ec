package stations

import (
	"strings"
	"testing"
)

func TestCatalog_NoDuplicateIDs(t *testing.T) {
	c := NewCatalog()
	if len(c.All()) != len(c.byID) {
		t.Errorf("catalog has duplicate station ids: %d entries, %d unique", len(c.All()), len(c.byID))
	}
	for _, s := range c.All() {
		if s.ID == "" || s.Name == "" || s.Genre == "" {
			t.Errorf("station %+v missing required fields", s)
		}
		if !strings.HasPrefix(s.StreamURL, "https://") {
			t.Errorf("station %s has non-https stream url %q", s.ID, s.StreamURL)
		}
	}
}

func TestCatalog_Get(t *testing.T) {
	c := NewCatalog()

	s, ok := c.Get("somafm-groovesalad")
	if !ok {
		t.Fatal("expected groove salad in catalog")
	}
	if s.Name != "Groove Salad" {
		t.Errorf("unexpected station %q", s.Name)
	}

	if _, ok := c.Get("no-such-station"); ok {
		t.Error("expected unknown id to miss")
	}
}

func TestCatalog_Genres(t *testing.T) {
	c := NewCatalog()
	genres := c.Genres()
	if len(genres) == 0 {
		t.Fatal("expected genres")
	}
	for i := 1; i < len(genres); i++ {
		if genres[i-1] >= genres[i] {
			t.Errorf("genres not sorted: %q before %q", genres[i-1], genres[i])
		}
	}
}

func TestCatalog_Filter(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		name    string
		genre   string
		query   string
		wantID  string
		wantAll bool
	}{
		{"all", "", "", "", true},
		{"genre All matches everything", "All", "", "", true},
		{"by genre", "Jazz", "", "somafm-sonicuniverse", false},
		{"by name query", "", "groove salad", "somafm-groovesalad", false},
		{"by city query", "", "new orleans", "wwoz", false},
		{"genre and query combined", "Classical", "seattle", "king-fm", false},
		{"query is case insensitive", "", "KEXP", "kexp", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Filter(tt.genre, tt.query)
			if tt.wantAll {
				if len(got) != len(c.All()) {
					t.Errorf("expected full catalog, got %d", len(got))
				}
				return
			}
			if len(got) == 0 {
				t.Fatal("expected matches")
			}
			found := false
			for _, s := range got {
				if s.ID == tt.wantID {
					found = true
				}
			}
			if !found {
				t.Errorf("expected %s in results", tt.wantID)
			}
		})
	}

	if got := c.Filter("", "zzz-no-match"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}
