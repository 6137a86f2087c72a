package redis

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type entry struct {
	val []byte
	exp time.Time
}

// fakeConn speaks the handful of commands the provider sends
type fakeConn struct {
	mu   sync.Mutex
	data map[string]entry
	cmds []string
}

func (f *fakeConn) GetContext(context.Context) (redis.Conn, error) { return f, nil }
func (f *fakeConn) Close() error                                   { return nil }
func (f *fakeConn) Err() error                                     { return nil }
func (f *fakeConn) Send(string, ...interface{}) error              { return nil }
func (f *fakeConn) Flush() error                                   { return nil }
func (f *fakeConn) Receive() (interface{}, error)                  { return nil, nil }

func (f *fakeConn) Do(cmd string, args ...interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cmds = append(f.cmds, cmd)
	key := args[0].(string)
	e, ok := f.data[key]
	switch cmd {
	case "GET":
		if !ok {
			return nil, nil
		}
		return e.val, nil
	case "SET":
		n := entry{val: args[1].([]byte)}
		for i := 2; i < len(args); i++ {
			switch args[i] {
			case "PX":
				n.exp = time.Now().Add(time.Duration(args[i+1].(int64)) * time.Millisecond)
				i++
			case "NX":
				if ok {
					return nil, nil
				}
			}
		}
		f.data[key] = n
		return "OK", nil
	case "PTTL":
		if !ok {
			return int64(-2), nil
		}
		if e.exp.IsZero() {
			return int64(-1), nil
		}
		return time.Until(e.exp).Milliseconds(), nil
	case "EXISTS":
		if ok {
			return int64(1), nil
		}
		return int64(0), nil
	case "INCRBY":
		i, err := strconv.ParseInt(string(e.val), 10, 64)
		if err != nil {
			return nil, err
		}
		i += int64(args[1].(int))
		e.val = []byte(strconv.FormatInt(i, 10))
		f.data[key] = e
		return i, nil
	case "DEL":
		delete(f.data, key)
		return int64(1), nil
	}
	return nil, fmt.Errorf("unexpected command %s", cmd)
}

type testsuite struct {
	suite.Suite
	conn *fakeConn
	im   *impl
}

func (ts *testsuite) SetupTest() {
	ts.conn = &fakeConn{data: map[string]entry{}}
	ts.im = NewRedis(ts.conn).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetGet() {
	k := "key"
	v := []byte("value")

	_, _, err := ts.im.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, err)

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Minute))
	res, ttl, err := ts.im.Get(mockCtx, k)
	ts.NoError(err)
	ts.Equal(v, res)
	ts.True(ttl > 0 && ttl <= time.Minute)

	ts.NoError(ts.im.Set(mockCtx, "forever", v, 0))
	_, ttl, err = ts.im.Get(mockCtx, "forever")
	ts.NoError(err)
	ts.Equal(time.Duration(0), ttl)
}

func (ts *testsuite) TestSetNX() {
	ok, err := ts.im.SetNX(mockCtx, "mark", []byte("a"), time.Minute)
	ts.NoError(err)
	ts.True(ok)

	ok, err = ts.im.SetNX(mockCtx, "mark", []byte("b"), time.Minute)
	ts.NoError(err)
	ts.False(ok)
}

func (ts *testsuite) TestIncr() {
	_, _, err := ts.im.Incr(mockCtx, "gen", 2)
	ts.Equal(provider.ErrNotFound, err)

	ts.NoError(ts.im.Set(mockCtx, "gen", []byte("1"), 0))
	res, ttl, err := ts.im.Incr(mockCtx, "gen", 2)
	ts.NoError(err)
	ts.Equal(int64(3), res)
	ts.Equal(time.Duration(0), ttl)
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "key", []byte("v"), 0))
	ts.NoError(ts.im.Del(mockCtx, "key"))
	_, _, err := ts.im.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, err)
}
