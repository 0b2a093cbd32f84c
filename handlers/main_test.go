// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

package handlers_test

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pollbox/pollbox/router"
	"github.com/pollbox/pollbox/testutil"
)

// setupServer builds the full router over a fresh in-memory database, so
// these tests exercise routing, middleware, handlers, and store together.
func setupServer(t *testing.T) (*sql.DB, http.Handler) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	mux := router.NewRouter(conn, testutil.GetTestConfig())
	return conn, mux
}

func serve(mux http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func authHeader(token string) map[string]string {
	return map[string]string{"X-Session-Token": token}
}
