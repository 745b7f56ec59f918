package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	mandel "github.com/marben/mandelbench"
	"github.com/marben/mandelbench/bench"
	"github.com/marben/mandelbench/render"
)

func newTestServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(NewService(2).Handler())
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL)
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestFramePreview(t *testing.T) {
	_, client := newTestServer(t)

	f, err := client.Frame(testContext(t), "")
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}

	want, err := render.Render(mandel.Grid{Region: mandel.PreviewView, W: FrameWidth, H: FrameHeight}, FrameMaxIter)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if f.Region != "preview" || f.Width != 80 || f.Height != 40 || f.MaxIter != 100 {
		t.Errorf("unexpected frame info %+v", f.FrameInfo)
	}
	if f.Stats != want.Stats() {
		t.Errorf("Stats = %+v, want %+v", f.Stats, want.Stats())
	}
	for row := range f.Rows {
		if f.Rows[row] != want.Row(row) {
			t.Errorf("row %d\n got %q\nwant %q", row, f.Rows[row], want.Row(row))
		}
	}
}

func TestFrameLandmark(t *testing.T) {
	_, client := newTestServer(t)

	f, err := client.Frame(testContext(t), "seahorse-valley")
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	want, err := render.Render(mandel.Grid{Region: mandel.SeahorseValley, W: FrameWidth, H: FrameHeight}, FrameMaxIter)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if f.Rows[13] != want.Row(13) {
		t.Errorf("row 13\n got %q\nwant %q", f.Rows[13], want.Row(13))
	}
}

func TestFrameUnknownRegion(t *testing.T) {
	_, client := newTestServer(t)
	if _, err := client.Frame(testContext(t), "nowhere"); err == nil {
		t.Fatal("Frame(nowhere) returned nil error")
	}
}

// frameServer serves a single frame made of info followed by rows.
func frameServer(t *testing.T, info FrameInfo, rows []string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer c.CloseNow()

		if err := wsjson.Write(r.Context(), c, info); err != nil {
			return
		}
		for _, row := range rows {
			if err := c.Write(r.Context(), websocket.MessageText, []byte(row)); err != nil {
				return
			}
		}
		c.Close(websocket.StatusNormalClosure, "")
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestFrameRejectsBadHeader(t *testing.T) {
	tests := []struct {
		name string
		info FrameInfo
		rows []string
	}{
		{"negative height", FrameInfo{Width: 2, Height: -1}, nil},
		{"huge height", FrameInfo{Width: 2, Height: 1 << 40}, nil},
		{"too few rows", FrameInfo{Width: 2, Height: 2}, []string{"##"}},
		{"too many rows", FrameInfo{Width: 2, Height: 1}, []string{"##", "##"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := frameServer(t, tt.info, tt.rows)
			if f, err := client.Frame(testContext(t), ""); err == nil {
				t.Fatalf("Frame returned %+v, want error", f.FrameInfo)
			}
		})
	}
}

func TestFrameSmallHeader(t *testing.T) {
	client := frameServer(t, FrameInfo{Region: "tiny", Width: 2, Height: 2}, []string{"##", " ."})
	f, err := client.Frame(testContext(t), "")
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if len(f.Rows) != 2 || f.Rows[1] != " ." {
		t.Errorf("Rows = %q", f.Rows)
	}
}

func TestBench(t *testing.T) {
	_, client := newTestServer(t)

	var results []bench.Result
	err := client.Bench(testContext(t), "standard", func(r bench.Result) error {
		results = append(results, r)
		return nil
	})
	if err != nil {
		t.Fatalf("Bench: %v", err)
	}

	want := []int64{461020, 1419533, 399924, 10000}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i, r := range results {
		if r.Iterations != want[i] {
			t.Errorf("%s: Iterations = %d, want %d", r.Name, r.Iterations, want[i])
		}
	}
	if r := results[3]; r.Kind != bench.KindPoint || r.PointRe != -0.7 || r.EscapedAt != 10000 {
		t.Errorf("stress result = %+v", r)
	}
}

func TestBenchUnknownSuite(t *testing.T) {
	_, client := newTestServer(t)
	err := client.Bench(testContext(t), "light", func(bench.Result) error { return nil })
	if err == nil {
		t.Fatal("Bench(light) returned nil error")
	}
}

func TestRegions(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/regions")
	if err != nil {
		t.Fatalf("GET /regions: %v", err)
	}
	defer resp.Body.Close()

	var slugs []string
	if err := json.NewDecoder(resp.Body).Decode(&slugs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(slugs) != len(mandel.Landmarks) || slugs[0] != "preview" || slugs[1] != "seahorse-valley" {
		t.Errorf("unexpected regions %v", slugs)
	}
}

func TestLookupLandmark(t *testing.T) {
	for _, slug := range Slugs() {
		l, ok := LookupLandmark(slug)
		if !ok || Slug(l) != slug {
			t.Errorf("LookupLandmark(%q) = %+v, %v", slug, l, ok)
		}
	}
	if l, ok := LookupLandmark("minibrot-in-a-mini-spiral"); !ok || l.Region != mandel.MinibrotInMiniSpiral {
		t.Errorf("LookupLandmark(minibrot-in-a-mini-spiral) = %+v, %v", l, ok)
	}
}
