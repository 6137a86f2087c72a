package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	repo := mocks.NewHealthCheckRepo(t)
	repo.On("PingChain", mock.Anything).Return(nil).Once()
	repo.On("PingCache", mock.Anything).Return(nil).Once()

	assert.NoError(t, New(repo).Check(ctx.Background()))
}

func TestCheckChainDown(t *testing.T) {
	repo := mocks.NewHealthCheckRepo(t)
	rpcErr := errors.New("dial tcp: connection refused")
	repo.On("PingChain", mock.Anything).Return(rpcErr).Once()

	assert.ErrorIs(t, New(repo).Check(ctx.Background()), rpcErr)
	repo.AssertNotCalled(t, "PingCache", mock.Anything)
}
