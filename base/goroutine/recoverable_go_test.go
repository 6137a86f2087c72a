package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverableGo(t *testing.T) {
	res := []string{}

	ev := <-RecoverableGo(
		func() {
			res = append(res, "run task")
			panic("receipt watcher")
		},
		WithName("watcher"),
		WithBeforeStart(func() {
			res = append(res, "before start")
		}),
		WithAfterEnded(func() {
			res = append(res, "after ended")
		}),
		WithAfterRecovered(func(p interface{}, stack []byte) {
			res = append(res, "after recovered")
			res = append(res, p.(string))
		}),
	)

	assert.Equal(t, []string{
		"before start",
		"run task",
		"after ended",
		"after recovered",
		"receipt watcher",
	}, res)
	assert.NotNil(t, ev)
	assert.NotEmpty(t, ev.Stack)
}

func TestRecoverableGoNoPanic(t *testing.T) {
	done := false
	ev, ok := <-RecoverableGo(func() { done = true })
	assert.False(t, ok)
	assert.Nil(t, ev)
	assert.True(t, done)
}
