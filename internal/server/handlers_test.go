package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cert-publisher/internal/controller"
	"github.com/jonathan/cert-publisher/internal/orgconfig"
	"github.com/jonathan/cert-publisher/internal/render"
	"github.com/jonathan/cert-publisher/internal/state"
)

func testMapping() orgconfig.Mapping {
	return orgconfig.Mapping{
		"acme": {OrganizationName: "ACME Formation"},
	}
}

func newTestServer(t *testing.T, renderer render.Renderer) *Server {
	t.Helper()
	if renderer == nil {
		renderer = render.Func(func(context.Context, string, float64) ([]byte, error) {
			return []byte("png-bytes"), nil
		})
	}
	ctrl := controller.New(testMapping(), state.NewStore(state.NewMemoryKV()), renderer)
	return &Server{controller: ctrl, kv: state.NewMemoryKV()}
}

func validSessionQuery() url.Values {
	q := url.Values{}
	q.Set("org", "acme")
	q.Set("pdf", "https://x/y.pdf")
	q.Set("formation", "Go avancé")
	q.Set("certId", "CERT-123")
	q.Set("prenom", "marie")
	return q
}

func doRequest(s *Server, method, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doRequest(s, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleSession_OK(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doRequest(s, "GET", "/session?"+validSessionQuery().Encode(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

	assert.Equal(t, "Félicitations Marie !", view["greeting"])
	assert.Equal(t, "ACME Formation", view["organizationName"])
	assert.Contains(t, view["profileAddUrl"], "linkedin.com/profile/add")
	assert.Contains(t, view["shareUrl"], "linkedin.com/feed")
	assert.Equal(t, false, view["step1Done"])

	// The raw PNG never travels in the view JSON.
	assert.NotContains(t, rec.Body.String(), "png-bytes")
}

func TestHandleSession_GenericErrorForAllPreContentFailures(t *testing.T) {
	s := newTestServer(t, nil)

	// Missing pdf with a valid org.
	q := validSessionQuery()
	q.Del("pdf")
	missingParam := doRequest(s, "GET", "/session?"+q.Encode(), "")

	// Unknown org with valid params.
	q = validSessionQuery()
	q.Set("org", "initech")
	unknownOrg := doRequest(s, "GET", "/session?"+q.Encode(), "")

	// No org at all.
	q = validSessionQuery()
	q.Del("org")
	noOrg := doRequest(s, "GET", "/session?"+q.Encode(), "")

	for _, rec := range []*httptest.ResponseRecorder{missingParam, unknownOrg, noOrg} {
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	// Identical body for every failure: the response never reveals which
	// parameter was at fault.
	assert.Equal(t, missingParam.Body.String(), unknownOrg.Body.String())
	assert.Equal(t, missingParam.Body.String(), noOrg.Body.String())
	assert.JSONEq(t, `{"error":"page not available"}`, missingParam.Body.String())
}

func TestHandleMarkStep_CompletesStep(t *testing.T) {
	s := newTestServer(t, nil)
	target := "/session/steps/step1?" + validSessionQuery().Encode()

	rec := doRequest(s, "POST", target, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var sv map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sv))
	assert.Equal(t, true, sv["step1Done"])
	assert.Equal(t, false, sv["step2Done"])
	assert.Equal(t, true, sv["showProgressBanner"])
}

func TestHandleMarkStep_LiveMessage(t *testing.T) {
	s := newTestServer(t, nil)
	target := "/session/steps/step2?" + validSessionQuery().Encode()

	rec := doRequest(s, "POST", target, `{"message":"Mon texte personnalisé"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var sv map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sv))

	shareURL, ok := sv["shareUrl"].(string)
	require.True(t, ok)
	u, err := url.Parse(shareURL)
	require.NoError(t, err)
	assert.Contains(t, u.Query().Get("text"), "Mon texte personnalisé")
}

func TestHandleMarkStep_UnknownStep(t *testing.T) {
	s := newTestServer(t, nil)
	target := "/session/steps/step3?" + validSessionQuery().Encode()

	rec := doRequest(s, "POST", target, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleShareLink(t *testing.T) {
	s := newTestServer(t, nil)
	q := validSessionQuery()
	q.Set("message", "Bonjour")

	rec := doRequest(s, "GET", "/session/share-link?"+q.Encode(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	u, err := url.Parse(resp["shareUrl"])
	require.NoError(t, err)
	assert.Contains(t, u.Query().Get("text"), "Bonjour")
}

func TestHandlePreview_PNG(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doRequest(s, "GET", "/preview?"+validSessionQuery().Encode(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestHandlePreview_FallbackOnRenderFailure(t *testing.T) {
	failing := render.Func(func(_ context.Context, url string, _ float64) ([]byte, error) {
		return nil, &render.RenderError{Message: "failed to render " + url, Cause: errors.New("boom")}
	})
	s := newTestServer(t, failing)

	rec := doRequest(s, "GET", "/preview?"+validSessionQuery().Encode(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["fallback"])
	assert.Equal(t, "https://x/y.pdf", resp["pdfUrl"])
}
