package timeedit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const searchOneResult = `<div id="objectbasketitemX0" class="searchObject" data-id="98765.5" data-idonly="98765">
	<div class="searchObjectField">DD1337 Software Engineering</div>
</div>`

func TestResolveCourse(t *testing.T) {
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/objects.html", r.URL.Path)
		gotQuery = map[string]string{
			"max":         r.URL.Query().Get("max"),
			"types":       r.URL.Query().Get("types"),
			"search_text": r.URL.Query().Get("search_text"),
			"sid":         r.URL.Query().Get("sid"),
		}
		w.Write([]byte(searchOneResult))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	id, err := c.ResolveCourse(context.Background(), "DD1337")
	require.NoError(t, err)
	require.Equal(t, "98765", id)

	require.Equal(t, "1", gotQuery["max"])
	require.Equal(t, "5", gotQuery["types"])
	require.Equal(t, "DD1337", gotQuery["search_text"])
	require.Equal(t, "3", gotQuery["sid"])
}

func TestResolveCourseNotFound(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no results", `<div id="objectsearch"></div>`},
		{"result without identifier", `<div class="searchObject" data-idonly="">x</div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			c, err := NewClient(Options{BaseURL: srv.URL + "/"})
			require.NoError(t, err)

			id, err := c.ResolveCourse(context.Background(), "XX0000")
			require.ErrorIs(t, err, ErrNotFound)
			require.Contains(t, err.Error(), "XX0000")
			require.Empty(t, id)
		})
	}
}

func TestResolveCoursePropagatesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such instance", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	_, err = c.ResolveCourse(context.Background(), "DD1337")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusNotFound, statusErr.Status)
}
