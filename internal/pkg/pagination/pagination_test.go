package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromQuery(t *testing.T) {
	p := FromQuery("2", "10", 10, 500)
	require.Equal(t, 2, p.Page)
	require.Equal(t, 10, p.Limit)
	require.Equal(t, 10, p.Offset)

	// Defaults on garbage input
	p = FromQuery("", "", 10, 500)
	require.Equal(t, 1, p.Page)
	require.Equal(t, 10, p.Limit)
	require.Equal(t, 0, p.Offset)

	p = FromQuery("abc", "-5", 20, 100)
	require.Equal(t, 1, p.Page)
	require.Equal(t, 20, p.Limit)

	// Limit is clamped server-side regardless of client request
	p = FromQuery("1", "10000", 10, 500)
	require.Equal(t, 500, p.Limit)
}

func TestPages(t *testing.T) {
	// 25 documents at limit 10 span 3 pages
	require.Equal(t, 3, Pages(25, 10))

	require.Equal(t, 1, Pages(0, 10))
	require.Equal(t, 1, Pages(10, 10))
	require.Equal(t, 2, Pages(11, 10))
}
