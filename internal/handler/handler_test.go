package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorpass/colorpass-go/internal/config"
	"github.com/colorpass/colorpass-go/internal/crypto"
	"github.com/colorpass/colorpass-go/internal/model"
	"github.com/colorpass/colorpass-go/internal/palette"
	"github.com/colorpass/colorpass-go/internal/service"
)

type fakeClipboard struct {
	mu   sync.Mutex
	text string
	done chan struct{}
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.mu.Lock()
	f.text = text
	f.mu.Unlock()
	f.done <- struct{}{}
	return nil
}

type testServer struct {
	handler http.Handler
	gen     *service.GeneratorService
	bg      *service.BackgroundService
	clip    *fakeClipboard
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	clip := &fakeClipboard{done: make(chan struct{}, 4)}
	gen, err := service.NewGeneratorService(crypto.NewGenerator(crypto.NewSeededSource(31, 32)), crypto.DefaultOptions(), clip)
	require.NoError(t, err)
	bg := service.NewBackgroundService(palette.Default)

	cfg := config.Config{RateLimit: config.RateLimitConfig{RPS: 1000, Burst: 1000}}
	return &testServer{
		handler: NewRouter(ctx, cfg, gen, bg),
		gen:     gen,
		bg:      bg,
		clip:    clip,
	}
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := newTestServer(t).do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHandleGenerate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantLength int
	}{
		{name: "empty body uses defaults", body: "", wantStatus: http.StatusOK, wantLength: 8},
		{name: "custom length", body: `{"length": 20, "digits": true}`, wantStatus: http.StatusOK, wantLength: 20},
		{name: "length too short", body: `{"length": 2}`, wantStatus: http.StatusBadRequest},
		{name: "length too long", body: `{"length": 64}`, wantStatus: http.StatusBadRequest},
		{name: "malformed json", body: `{"length":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newTestServer(t).do(http.MethodPost, "/api/v1/generate", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.wantStatus != http.StatusOK {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp["error"])
				return
			}

			var resp model.GenerateResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantLength, resp.Length)
			assert.Len(t, resp.Password, tt.wantLength)
		})
	}
}

func TestHandleGenerate_BodyTooLarge(t *testing.T) {
	body := `{"length": 8, "pad": "` + strings.Repeat("x", 2<<20) + `"}`
	rec := newTestServer(t).do(http.MethodPost, "/api/v1/generate", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestPasswordState(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/password", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var st model.PasswordState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, 8, st.Length)
	assert.False(t, st.Digits)
	assert.True(t, st.Symbols)
	assert.Len(t, st.Password, 8)

	rec = s.do(http.MethodPut, "/api/v1/password/config", `{"length": 40, "digits": true, "symbols": false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, 32, st.Length)
	assert.Len(t, st.Password, 32)
	assert.True(t, st.Digits)
	assert.False(t, st.Symbols)

	rec = s.do(http.MethodPost, "/api/v1/password/regenerate", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var regenerated model.PasswordState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &regenerated))
	assert.Equal(t, st.Length, regenerated.Length)
	assert.Equal(t, regenerated, s.gen.State())
}

func TestPasswordConfig_BadBody(t *testing.T) {
	rec := newTestServer(t).do(http.MethodPut, "/api/v1/password/config", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPasswordCopy(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/password/copy", "")
	require.Equal(t, http.StatusAccepted, rec.Code)

	select {
	case <-s.clip.done:
	case <-time.After(time.Second):
		t.Fatal("clipboard never written")
	}

	s.clip.mu.Lock()
	defer s.clip.mu.Unlock()
	assert.Equal(t, s.gen.State().Password, s.clip.text)
}

func TestColors(t *testing.T) {
	rec := newTestServer(t).do(http.MethodGet, "/api/v1/colors", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var colors []model.ColorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &colors))
	require.Len(t, colors, 10)
	assert.Equal(t, model.ColorResponse{Name: "red", Label: "Red", Hex: "#FF0000"}, colors[0])
}

func TestBackground(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/background", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"olive","label":"Olive","hex":"#808000"}`, rec.Body.String())

	rec = s.do(http.MethodPut, "/api/v1/background", `{"color": "blue"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"blue","label":"Blue","hex":"#0000FF"}`, rec.Body.String())

	rec = s.do(http.MethodPut, "/api/v1/background", `{"color": "purple"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "blue", s.bg.Current().Name)
}

func TestSwitcherPage(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/switcher", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="label">olive</div>`)
	for _, c := range palette.All() {
		assert.Contains(t, rec.Body.String(), ">"+c.Label()+"</button>")
	}

	rec = s.do(http.MethodPost, "/switcher/blue", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/switcher", rec.Header().Get("Location"))

	rec = s.do(http.MethodGet, "/switcher", "")
	assert.Contains(t, rec.Body.String(), `id="label">blue</div>`)

	rec = s.do(http.MethodPost, "/switcher/purple", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func postForm(s *testServer, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func TestGeneratorPage(t *testing.T) {
	s := newTestServer(t)

	// Letters only, so the password needs no HTML escaping in the assertion below.
	off := false
	_, err := s.gen.Configure(model.ConfigureRequest{Symbols: &off})
	require.NoError(t, err)

	rec := s.do(http.MethodGet, "/generator", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `min="6" max="32" value="8"`)
	assert.Contains(t, body, `value="`+s.gen.State().Password+`"`)

	rec = postForm(s, "/generator", url.Values{"length": {"12"}, "digits": {"on"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	st := s.gen.State()
	assert.Equal(t, 12, st.Length)
	assert.True(t, st.Digits)
	assert.False(t, st.Symbols, "unchecked checkbox must turn symbols off")
	assert.Len(t, st.Password, 12)

	rec = postForm(s, "/generator", url.Values{"length": {"abc"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGeneratorPageCopy(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/generator/copy", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/generator?copied=1", rec.Header().Get("Location"))

	select {
	case <-s.clip.done:
	case <-time.After(time.Second):
		t.Fatal("clipboard never written")
	}

	rec = s.do(http.MethodGet, "/generator?copied=1", "")
	assert.Contains(t, rec.Body.String(), `id="status">Copied`)
}

func TestIndexPage(t *testing.T) {
	rec := newTestServer(t).do(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/switcher"`)
	assert.Contains(t, rec.Body.String(), `href="/generator"`)
}
