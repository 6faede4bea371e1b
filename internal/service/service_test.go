package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ezpay/ezpay/internal/pg"
	"github.com/ezpay/ezpay/internal/repo"
	"github.com/ezpay/ezpay/internal/service/accountservice"
	"github.com/ezpay/ezpay/internal/service/authservice"
	"github.com/ezpay/ezpay/internal/service/faillogservice"
	"github.com/ezpay/ezpay/internal/service/limitservice"
	"github.com/ezpay/ezpay/internal/service/transferservice"
	"github.com/ezpay/ezpay/internal/transport"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{
		UserRepo:        authservice.NewMockUserRepo(ctrl),
		AccountRepo:     accountservice.NewMockRepo(ctrl),
		TransactionRepo: transferservice.NewMockTransactionRepo(ctrl),
		LimitRepo:       limitservice.NewMockLimitRepo(ctrl),
		FailLogRepo:     faillogservice.NewMockRepo(ctrl),
	}

	services := New(repos, pg.NewMockTXManager(ctrl), nil, transport.NewWorkerPool(1))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.AccountService)
	assert.NotNil(t, services.TransferService)
	assert.NotNil(t, services.LimitService)
	assert.NotNil(t, services.FailLogService)
}
