package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	bCtx "github.com/x-xyz/swipebid/base/ctx"
)

func newServer(t *testing.T) (*httptest.Server, *[]string) {
	paths := []string{}
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/ipfs/QmMeta":
			require.Equal(t, "swipebid", r.Header.Get("User-Agent"))
			_, _ = w.Write([]byte(`{"image":"ipfs://QmImage"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(s.Close)
	return s, &paths
}

func Test_httpReaderRepo_Get(t *testing.T) {
	req := require.New(t)
	s, _ := newServer(t)
	r := NewHttpReaderRepo(s.Client(), time.Second, map[string]string{"User-Agent": "swipebid"})

	b, err := r.Get(bCtx.Background(), s.URL+"/ipfs/QmMeta")
	req.NoError(err)
	req.Equal(`{"image":"ipfs://QmImage"}`, string(b))

	_, err = r.Get(bCtx.Background(), s.URL+"/missing")
	req.ErrorIs(err, ErrBadStatus)
}

func Test_ipfsGatewayReaderRepo_Get(t *testing.T) {
	req := require.New(t)
	s, paths := newServer(t)
	h := NewHttpReaderRepo(s.Client(), time.Second, map[string]string{"User-Agent": "swipebid"})
	r := NewIpfsGatewayReaderRepo(h, s.URL+"/ipfs/", rate.NewLimiter(rate.Inf, 1))

	b, err := r.Get(bCtx.Background(), "QmMeta")
	req.NoError(err)
	req.Equal(`{"image":"ipfs://QmImage"}`, string(b))
	req.Equal([]string{"/ipfs/QmMeta"}, *paths)
}

func Test_ipfsGatewayReaderRepo_LimiterCancelled(t *testing.T) {
	req := require.New(t)
	s, paths := newServer(t)
	h := NewHttpReaderRepo(s.Client(), time.Second, nil)
	// burst 0 never admits a request
	r := NewIpfsGatewayReaderRepo(h, s.URL+"/ipfs", rate.NewLimiter(rate.Every(time.Hour), 0))

	c, cancel := bCtx.WithTimeout(bCtx.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := r.Get(c, "QmMeta")
	req.Error(err)
	req.Empty(*paths)
}
