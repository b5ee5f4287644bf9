package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_console/internal/adapters/backend"
	httpserver "hotel_console/internal/adapters/http_server"
	"hotel_console/internal/adapters/notify"
	"hotel_console/internal/app"
	"hotel_console/internal/domain"
	"hotel_console/internal/storage/file"
	"hotel_console/internal/testutil/fakebackend"
)

type harness struct {
	fb  *fakebackend.Server
	c   *app.Console
	srv *httptest.Server
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	fb := fakebackend.New()
	t.Cleanup(fb.Close)

	client, err := backend.New(fb.URL, 0, 100)
	require.NoError(t, err)
	kv, err := file.New(t.TempDir())
	require.NoError(t, err)

	c := app.NewConsole(client, kv, notify.Log{}, nil)
	client.UseToken(c.Session.Token)

	s := httpserver.New(0)
	s.MountHandlers(&httpserver.Handlers{C: c})
	srv := httptest.NewServer(s.Mux())
	t.Cleanup(srv.Close)
	return &harness{fb: fb, c: c, srv: srv}
}

func (h *harness) post(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(h.srv.URL+path, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (h *harness) get(t *testing.T, path string, hdr http.Header) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, h.srv.URL+path, nil)
	require.NoError(t, err)
	for k, v := range hdr {
		req.Header[k] = v
	}
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	resp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (h *harness) login(t *testing.T) {
	t.Helper()
	resp := h.post(t, "/auth/login", map[string]string{"email": fakebackend.AdminEmail, "password": fakebackend.AdminPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	h := newHarness(t)
	resp := h.get(t, "/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGuard_LoadingThenAnonymous(t *testing.T) {
	h := newHarness(t)

	resp := h.get(t, "/v1/hotels", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Location"), "loading never redirects")

	h.c.Session.Restore(context.Background())
	resp = h.get(t, "/v1/hotels", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, app.LoginPath, resp.Header.Get("Location"))
	assert.Equal(t, 0, h.fb.Count(http.MethodGet, "/hotels"))
}

func TestLogin_ValidationAndRejection(t *testing.T) {
	h := newHarness(t)

	resp := h.post(t, "/auth/login", map[string]string{"email": "nope", "password": "x"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var p struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Contains(t, p.Errors, "email")
	assert.Contains(t, p.Errors, "password")
	assert.Equal(t, 0, h.fb.Count(http.MethodPost, "/admin-user"))

	resp = h.post(t, "/auth/login", map[string]string{"email": fakebackend.AdminEmail, "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, app.SessionAnonymous, h.c.Session.State())
}

func TestHotels_FilterAndETag(t *testing.T) {
	h := newHarness(t)
	h.fb.SeedHotel(domain.Hotel{Name: "Baku Plaza", City: "Baku", IsOrderable: true})
	h.fb.SeedHotel(domain.Hotel{Name: "Ganja Inn", City: "Ganja"})
	h.login(t)

	resp := h.get(t, "/v1/hotels?q=BAKU", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var hotels []domain.Hotel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&hotels))
	require.Len(t, hotels, 1)
	assert.Equal(t, "Baku Plaza", hotels[0].Name)

	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)
	resp = h.get(t, "/v1/hotels?q=BAKU", http.Header{"If-None-Match": {etag}})
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
}

func TestDashboardAndUsers(t *testing.T) {
	h := newHarness(t)
	hotel := h.fb.SeedHotel(domain.Hotel{Name: "Baku Plaza", City: "Baku", IsOrderable: true})
	h.fb.SeedHotel(domain.Hotel{Name: "Ganja Inn", City: "Ganja"})
	h.fb.SeedUser(domain.User{Username: "ahmed", Name: "Ahmed", HotelID: hotel.ID})
	h.login(t)

	resp := h.get(t, "/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var st app.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, app.Stats{Hotels: 2, HotelAdmins: 1, ActiveHotels: 1, ActivePercent: 50}, st)

	resp = h.get(t, "/v1/users?q=plaza", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var users []domain.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	require.Len(t, users, 1)
	assert.Equal(t, "ahmed", users[0].Username)
}

func TestBackendFailureIs502(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.fb.Fail("GET /hotels", http.StatusInternalServerError, "database is down")

	resp := h.get(t, "/v1/hotels", nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	var p struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, "database is down", p.Detail)
}

func TestLogout(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	assert.Equal(t, http.StatusOK, h.get(t, "/v1/me", nil).StatusCode)

	resp := h.post(t, "/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, h.get(t, "/v1/me", nil).StatusCode)
}
