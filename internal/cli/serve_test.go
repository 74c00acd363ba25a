package cli

import (
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/eloquentlyAzaria/videosystem-concept/pkg/catalog"
	"github.com/eloquentlyAzaria/videosystem-concept/pkg/thumb"
)

func newTestServer(t *testing.T, count int) (*httptest.Server, []catalog.VideoRecord) {
	t.Helper()
	records, err := catalog.Generate(catalog.DefaultSeed, count)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	c := New(io.Discard, LogInfo)
	srv := httptest.NewServer(newServeMux(records, thumb.NewDefaultCache(), c))
	t.Cleanup(srv.Close)
	return srv, records
}

func TestServeVideos(t *testing.T) {
	srv, records := newTestServer(t, 8)

	resp, err := http.Get(srv.URL + "/videos")
	if err != nil {
		t.Fatalf("GET /videos error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /videos status = %d, want 200", resp.StatusCode)
	}
	var got []videoResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode /videos: %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("GET /videos returned %d records, want %d", len(got), len(records))
	}
	if got[0].Meta == "" || got[0].ViewsLabel == "" || got[0].AgeLabel == "" {
		t.Errorf("formatted fields missing: %+v", got[0])
	}
}

func TestServeVideosSearch(t *testing.T) {
	srv, records := newTestServer(t, 8)

	resp, err := http.Get(srv.URL + "/videos?q=" + url.QueryEscape(records[0].Channel))
	if err != nil {
		t.Fatalf("GET /videos?q error = %v", err)
	}
	defer resp.Body.Close()

	var got []videoResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) == 0 || len(got) > len(records) {
		t.Errorf("search returned %d records", len(got))
	}
	for _, v := range got {
		if v.Channel != records[0].Channel {
			t.Errorf("record %s has channel %q, want %q", v.ID, v.Channel, records[0].Channel)
		}
	}
}

func TestServeVideoByID(t *testing.T) {
	srv, records := newTestServer(t, 4)

	resp, err := http.Get(srv.URL + "/videos/" + records[2].ID)
	if err != nil {
		t.Fatalf("GET /videos/{id} error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var got videoResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != records[2].ID || got.Title != records[2].Title {
		t.Errorf("got %s/%q, want %s/%q", got.ID, got.Title, records[2].ID, records[2].Title)
	}
}

func TestServeVideoNotFound(t *testing.T) {
	srv, _ := newTestServer(t, 4)

	for _, path := range []string{"/videos/vid_99", "/videos/vid_99/thumb.png"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s error = %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", path, resp.StatusCode)
		}
	}
}

func TestServeThumb(t *testing.T) {
	srv, records := newTestServer(t, 2)

	resp, err := http.Get(srv.URL + "/videos/" + records[0].ID + "/thumb.png?w=320&h=180")
	if err != nil {
		t.Fatalf("GET thumb error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 180 {
		t.Errorf("thumbnail is %dx%d, want 320x180", b.Dx(), b.Dy())
	}
}

func TestServeThumbBadRequests(t *testing.T) {
	srv, records := newTestServer(t, 2)
	base := srv.URL + "/videos/" + records[0].ID + "/thumb.png"

	tests := []struct {
		name  string
		query string
	}{
		{"zero width", "?w=0&h=180"},
		{"negative height", "?w=320&h=-1"},
		{"unknown variant", "?variant=neon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(base + tt.query)
			if err != nil {
				t.Fatalf("GET error = %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestServeThumbVariants(t *testing.T) {
	srv, records := newTestServer(t, 2)
	base := srv.URL + "/videos/" + records[0].ID + "/thumb.png?w=160&h=90&variant="

	for _, variant := range []string{"base", "bright", "dark"} {
		resp, err := http.Get(base + variant)
		if err != nil {
			t.Fatalf("GET variant %s error = %v", variant, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("variant %s status = %d, want 200", variant, resp.StatusCode)
		}
	}
}
