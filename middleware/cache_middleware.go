package middleware

import (
	"bytes"
	"hash/fnv"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/log"
	"github.com/x-xyz/swipebid/service/cache"
)

const HeaderXCache = "X-Cache"

type cachedResponse struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// recorder tees the body into buf and remembers the status
type recorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	w      io.Writer
}

func newRecorder(w http.ResponseWriter) *recorder {
	r := &recorder{ResponseWriter: w, status: http.StatusOK}
	r.w = io.MultiWriter(w, &r.buf)
	return r
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	return r.w.Write(b)
}

// cacheKey hashes the path and the query with its values sorted, so
// ?x=2&x=1 and ?x=1&x=2 share an entry
func cacheKey(u *url.URL) string {
	params := u.Query()
	for _, vs := range params {
		sort.Strings(vs)
	}
	h := fnv.New64a()
	h.Write([]byte(u.Path))
	h.Write([]byte{'?'})
	h.Write([]byte(params.Encode()))
	return strconv.FormatUint(h.Sum64(), 36)
}

// CacheHttp replays successful GET responses keyed by URL. Only mount it on
// routes whose response depends on nothing but the URL.
func CacheHttp(cacheService cache.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Get("ctx").(ctx.Ctx)
			key := cacheKey(c.Request().URL)

			cached := cachedResponse{}
			err := cacheService.Get(ctx, key, &cached)
			if err == nil {
				header := c.Response().Header()
				for k, v := range cached.Header {
					header[k] = v
				}
				header.Set(HeaderXCache, "HIT")
				return c.Blob(cached.Status, header.Get(echo.HeaderContentType), cached.Body)
			} else if err != cache.ErrNotFound {
				ctx.WithFields(log.Fields{
					"err": err,
					"key": key,
				}).Error("cacheService.Get failed")
			}

			c.Response().Header().Set(HeaderXCache, "MISS")
			rec := newRecorder(c.Response().Writer)
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}
			if rec.status >= http.StatusBadRequest {
				return nil
			}

			// encoding headers belong to the outer writers, not to the body kept here
			header := rec.Header().Clone()
			for _, k := range []string{HeaderXCache, echo.HeaderContentEncoding, echo.HeaderContentLength, echo.HeaderVary} {
				header.Del(k)
			}
			if err := cacheService.Set(ctx, key, cachedResponse{
				Status: rec.status,
				Header: header,
				Body:   rec.buf.Bytes(),
			}); err != nil {
				ctx.WithFields(log.Fields{
					"err": err,
					"key": key,
				}).Error("cacheService.Set failed")
			}
			return nil
		}
	}
}
