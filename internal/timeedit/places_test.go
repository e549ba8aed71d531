package timeedit

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceURLs(t *testing.T) {
	got := placeURLs([]string{"§Room 1", "V22"})
	require.Len(t, got, 2)

	first, err := url.Parse(got[0])
	require.NoError(t, err)
	require.Equal(t, "www.kth.se", first.Host)
	require.Equal(t, "/search", first.Path)
	require.Equal(t, "Room 1", first.Query().Get("q"))
	require.Equal(t, "kth-place", first.Query().Get("entityFilter"))
	require.Equal(t, "en", first.Query().Get("lang"))
	require.NotContains(t, got[0], "§")

	second, err := url.Parse(got[1])
	require.NoError(t, err)
	require.Equal(t, "V22", second.Query().Get("q"))
}

func TestPlaceURLsLengthPreserving(t *testing.T) {
	require.Empty(t, placeURLs([]string{}))
	require.Len(t, placeURLs([]string{""}), 1)
	require.Len(t, placeURLs([]string{"a", "b", "c"}), 3)
}
