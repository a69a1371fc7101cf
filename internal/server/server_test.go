package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/corkboard/corkboard/pkg/canvas"
	"github.com/corkboard/corkboard/pkg/errors"
)

func newTestServer(t *testing.T, policy canvas.PolicyProvider) *httptest.Server {
	t.Helper()
	v := canvas.NewViewport(canvas.Size{Width: 100, Height: 100}, nil)
	coord := canvas.NewCoordinator(v, policy, nil)
	ts := httptest.NewServer(New(coord, nil).Router())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any, out any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := doJSON(t, http.MethodGet, ts.URL+"/healthz", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRegisterAndGetNode(t *testing.T) {
	ts := newTestServer(t, nil)

	var reg registerNodeResponse
	resp := doJSON(t, http.MethodPost, ts.URL+"/nodes", map[string]any{"id": "n", "x": 1, "y": 2}, &reg)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d, want 201", resp.StatusCode)
	}
	if reg.Node.ID != "n" || reg.Node.X != 1 || reg.Node.Y != 2 {
		t.Errorf("registered node = %+v", reg.Node)
	}
	// Default footprint 200x100 on a 100x100 canvas overflows.
	if !reg.Result.Overflow {
		t.Error("expected overflow after registration")
	}

	var node canvas.NodePosition
	resp = doJSON(t, http.MethodGet, ts.URL+"/nodes/n", nil, &node)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d, want 200", resp.StatusCode)
	}
	if node != (canvas.NodePosition{ID: "n", X: 1, Y: 2}) {
		t.Errorf("node = %+v", node)
	}
}

func TestRegisterGeneratesID(t *testing.T) {
	ts := newTestServer(t, nil)

	var reg registerNodeResponse
	doJSON(t, http.MethodPost, ts.URL+"/nodes", map[string]any{"x": 0, "y": 0}, &reg)
	if reg.Node.ID == "" {
		t.Error("server should generate an id when none is supplied")
	}
}

func TestGetUnknownNode(t *testing.T) {
	ts := newTestServer(t, nil)

	var errResp errorResponse
	resp := doJSON(t, http.MethodGet, ts.URL+"/nodes/ghost", nil, &errResp)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if errResp.Code != errors.ErrCodeNodeNotFound {
		t.Errorf("code = %q, want %q", errResp.Code, errors.ErrCodeNodeNotFound)
	}
}

func TestUnregisterNode(t *testing.T) {
	ts := newTestServer(t, nil)
	doJSON(t, http.MethodPost, ts.URL+"/nodes", map[string]any{"id": "n", "x": 0, "y": 0}, nil)

	resp := doJSON(t, http.MethodDelete, ts.URL+"/nodes/n", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodGet, ts.URL+"/nodes/n", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", resp.StatusCode)
	}
}

func TestDragFlow(t *testing.T) {
	ts := newTestServer(t, nil)
	doJSON(t, http.MethodPost, ts.URL+"/nodes", map[string]any{"id": "a", "x": 10, "y": 10}, nil)
	doJSON(t, http.MethodPost, ts.URL+"/nodes", map[string]any{"id": "b", "x": 500, "y": 500}, nil)

	resp := doJSON(t, http.MethodPost, ts.URL+"/drag/start", map[string]any{"id": "a"}, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("drag start status = %d, want 204", resp.StatusCode)
	}

	var upd dragUpdateResponse
	doJSON(t, http.MethodPost, ts.URL+"/drag/update", map[string]any{"id": "a", "delta_x": 5, "delta_y": -3}, &upd)
	if !upd.Updated {
		t.Error("matching drag update should apply")
	}

	// Mismatched id is discarded, not an error.
	doJSON(t, http.MethodPost, ts.URL+"/drag/update", map[string]any{"id": "b", "delta_x": 100, "delta_y": 0}, &upd)
	if upd.Updated {
		t.Error("mismatched drag update must be discarded")
	}

	var node canvas.NodePosition
	doJSON(t, http.MethodGet, ts.URL+"/nodes/a", nil, &node)
	if node.X != 15 || node.Y != 7 {
		t.Errorf("node a = %+v, want {15 7}", node)
	}
	doJSON(t, http.MethodGet, ts.URL+"/nodes/b", nil, &node)
	if node.X != 500 || node.Y != 500 {
		t.Errorf("node b moved: %+v", node)
	}

	resp = doJSON(t, http.MethodPost, ts.URL+"/drag/end", nil, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("drag end status = %d, want 204", resp.StatusCode)
	}

	// After the drag ended, updates no longer apply.
	doJSON(t, http.MethodPost, ts.URL+"/drag/update", map[string]any{"id": "a", "delta_x": 1, "delta_y": 1}, &upd)
	if upd.Updated {
		t.Error("drag update after end must be discarded")
	}
}

func TestDragWithSnapPolicy(t *testing.T) {
	policy := canvas.PolicyFunc(func() canvas.GridPolicy {
		return canvas.GridPolicy{SnapToGrid: true, GridSize: 20}
	})
	ts := newTestServer(t, policy)
	doJSON(t, http.MethodPost, ts.URL+"/nodes", map[string]any{"id": "n", "x": 5, "y": 5}, nil)

	doJSON(t, http.MethodPost, ts.URL+"/drag/start", map[string]any{"id": "n"}, nil)
	doJSON(t, http.MethodPost, ts.URL+"/drag/update", map[string]any{"id": "n", "delta_x": 1, "delta_y": 1}, nil)

	var node canvas.NodePosition
	doJSON(t, http.MethodGet, ts.URL+"/nodes/n", nil, &node)
	if node.X != 0 || node.Y != 0 {
		t.Errorf("snapped node = %+v, want {0 0}", node)
	}
}

func TestSetZoomClampsOverAPI(t *testing.T) {
	ts := newTestServer(t, nil)

	var res canvas.OverflowResult
	resp := doJSON(t, http.MethodPut, ts.URL+"/viewport/zoom", map[string]any{"zoom": 100}, &res)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("zoom status = %d, want 200", resp.StatusCode)
	}
	if res.Zoom != 3.0 {
		t.Errorf("applied zoom = %v, want clamped 3.0", res.Zoom)
	}
}

func TestSetSizeValidation(t *testing.T) {
	ts := newTestServer(t, nil)

	var errResp errorResponse
	resp := doJSON(t, http.MethodPut, ts.URL+"/viewport/size", map[string]any{"width": -1, "height": 100}, &errResp)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if errResp.Code != errors.ErrCodeInvalidConfig {
		t.Errorf("code = %q, want %q", errResp.Code, errors.ErrCodeInvalidConfig)
	}
}

func TestVisibleElements(t *testing.T) {
	ts := newTestServer(t, nil)
	// 100x100 canvas, default 200x100 footprint: one node near the origin
	// and one far outside the window.
	doJSON(t, http.MethodPost, ts.URL+"/nodes", map[string]any{"id": "near", "x": 0, "y": 0}, nil)
	doJSON(t, http.MethodPost, ts.URL+"/nodes", map[string]any{"id": "far", "x": 5000, "y": 5000}, nil)

	var visible []canvas.Element
	doJSON(t, http.MethodGet, ts.URL+"/viewport/visible", nil, &visible)
	if len(visible) != 1 {
		t.Fatalf("visible = %d elements, want 1: %+v", len(visible), visible)
	}
	if visible[0].X != 0 || visible[0].Y != 0 {
		t.Errorf("visible element = %+v, want the near node", visible[0])
	}
}

func TestMalformedBody(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Post(ts.URL+"/nodes", "application/json", bytes.NewBufferString("{not json"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestListNodesSorted(t *testing.T) {
	ts := newTestServer(t, nil)
	for _, id := range []string{"c", "a", "b"} {
		doJSON(t, http.MethodPost, ts.URL+"/nodes", map[string]any{"id": id, "x": 0, "y": 0}, nil)
	}

	var nodes []canvas.NodePosition
	doJSON(t, http.MethodGet, ts.URL+"/nodes", nil, &nodes)
	if len(nodes) != 3 {
		t.Fatalf("listed %d nodes, want 3", len(nodes))
	}
	for i, want := range []string{"a", "b", "c"} {
		if nodes[i].ID != want {
			t.Errorf("nodes[%d].ID = %q, want %q", i, nodes[i].ID, want)
		}
	}
}
