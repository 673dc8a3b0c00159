package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRecoverRendersErrorPage(t *testing.T) {
	renderCalled := false
	handler := Recover(discardLogger(), func(w http.ResponseWriter) {
		renderCalled = true
		w.Write([]byte("something went wrong"))
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if !renderCalled {
		t.Error("expected error page render")
	}
	if !strings.Contains(rec.Body.String(), "something went wrong") {
		t.Error("expected error page body")
	}
}

func TestRecoverAfterResponseStarted(t *testing.T) {
	handler := Recover(discardLogger(), func(w http.ResponseWriter) {
		t.Fatal("must not render once the response has started")
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("partial"))
		panic("boom after write")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want the original %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "partial" {
		t.Errorf("body = %q, want only the partial response", rec.Body.String())
	}
}

func TestRecoverPassthrough(t *testing.T) {
	handler := Recover(discardLogger(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}
