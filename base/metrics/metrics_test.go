package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"method:GET", "path:/explore"}, parseTag([]string{"method", "GET", "path", "/explore"}))
	req.Equal([]string{"method:GET"}, parseTag([]string{"method", "GET", "dangling"}))
	req.Empty(parseTag(nil))
}

func TestBumpWithoutAgent(t *testing.T) {
	met := New("test")
	require.NotPanics(t, func() {
		met.BumpSum("call.err", 1, "method", "placeBid")
		met.BumpAvg("pool.size", 3)
		met.BumpHistogram("page.size", 12)
		met.BumpTime("call.time", "method", "getActiveListings").End()
	})
}
