package compound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/service/cache/provider"
	"github.com/x-xyz/swipebid/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	lyr0 provider.Provider
	lyr1 provider.Provider
	im   *impl
}

func (ts *testsuite) SetupTest() {
	ts.lyr0 = primitive.NewPrimitive("layer 0", 1)
	ts.lyr1 = primitive.NewPrimitive("layer 1", 1)
	ts.im = NewCompound([]provider.Provider{ts.lyr0, ts.lyr1}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "key"
	v := []byte("value")

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Minute))
	r0, _, e := ts.lyr0.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r0)
	r1, _, e := ts.lyr1.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r1)
}

func (ts *testsuite) TestGetFillsFront() {
	k := "key"
	v := []byte("value")
	ts.NoError(ts.lyr1.Set(mockCtx, k, v, time.Minute))

	r, _, e := ts.im.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r)

	r0, _, e := ts.lyr0.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r0)

	_, _, e = ts.im.Get(mockCtx, "missing")
	ts.Equal(provider.ErrNotFound, e)
}

func (ts *testsuite) TestSetNXUsesLastLayer() {
	// another instance already holds the mark in the shared layer
	ts.NoError(ts.lyr1.Set(mockCtx, "mark", []byte("other"), time.Minute))

	ok, err := ts.im.SetNX(mockCtx, "mark", []byte("mine"), time.Minute)
	ts.NoError(err)
	ts.False(ok)

	ok, err = ts.im.SetNX(mockCtx, "free", []byte("mine"), time.Minute)
	ts.NoError(err)
	ts.True(ok)
	r0, _, e := ts.lyr0.Get(mockCtx, "free")
	ts.NoError(e)
	ts.Equal("mine", string(r0))
}

func (ts *testsuite) TestIncr() {
	_, _, err := ts.im.Incr(mockCtx, "gen", 1)
	ts.Equal(provider.ErrNotFound, err)

	ts.NoError(ts.lyr1.Set(mockCtx, "gen", []byte("3"), 0))
	v, _, err := ts.im.Incr(mockCtx, "gen", 2)
	ts.NoError(err)
	ts.Equal(int64(5), v)

	r0, _, e := ts.lyr0.Get(mockCtx, "gen")
	ts.NoError(e)
	ts.Equal("5", string(r0))
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "key", []byte("v"), time.Minute))
	ts.NoError(ts.im.Del(mockCtx, "key"))
	_, _, e := ts.lyr0.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, e)
	_, _, e = ts.lyr1.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, e)
}
