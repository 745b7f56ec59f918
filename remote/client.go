package remote

import (
	"context"
	"fmt"
	"strings"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/marben/mandelbench/bench"
)

// Client talks to a Service.
type Client struct {
	baseURL string
}

// NewClient returns a client for the service at baseURL, e.g. "ws://localhost:8080".
func NewClient(baseURL string) *Client {
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (cl *Client) dial(ctx context.Context, path string) (*websocket.Conn, error) {
	c, _, err := websocket.Dial(ctx, cl.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", path, err)
	}
	return c, nil
}

// Frame fetches the frame of the named region. An empty region is the preview.
func (cl *Client) Frame(ctx context.Context, region string) (*Frame, error) {
	path := "/ws/render"
	if region != "" {
		path += "/" + region
	}
	c, err := cl.dial(ctx, path)
	if err != nil {
		return nil, err
	}
	defer c.CloseNow()

	var f Frame
	if err := wsjson.Read(ctx, c, &f.FrameInfo); err != nil {
		return nil, fmt.Errorf("read frame info: %w", err)
	}

	if f.Height < 0 || f.Height > FrameHeight {
		return nil, fmt.Errorf("invalid frame height %d", f.Height)
	}

	f.Rows = make([]string, 0, f.Height)
	for {
		_, msg, err := c.Read(ctx)
		if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(f.Rows), err)
		}
		if len(f.Rows) == f.Height {
			return nil, fmt.Errorf("more than %d rows", f.Height)
		}
		f.Rows = append(f.Rows, string(msg))
	}

	if len(f.Rows) != f.Height {
		return nil, fmt.Errorf("got %d rows, want %d", len(f.Rows), f.Height)
	}
	return &f, nil
}

// Bench runs the named suite on the server and calls fn with every result as
// it arrives.
func (cl *Client) Bench(ctx context.Context, suite string, fn func(bench.Result) error) error {
	c, err := cl.dial(ctx, "/ws/bench/"+suite)
	if err != nil {
		return err
	}
	defer c.CloseNow()

	for {
		var res bench.Result
		err := wsjson.Read(ctx, c, &res)
		if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read result: %w", err)
		}
		if err := fn(res); err != nil {
			return err
		}
	}
}
