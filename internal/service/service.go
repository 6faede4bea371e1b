package service

import (
	"github.com/ezpay/ezpay/internal/handlers/accounts"
	"github.com/ezpay/ezpay/internal/handlers/auth"

	pkgauth "github.com/ezpay/ezpay/pkg/auth"

	"github.com/ezpay/ezpay/internal/pg"
	"github.com/ezpay/ezpay/internal/repo"
	accountservice "github.com/ezpay/ezpay/internal/service/accountservice"
	authservice "github.com/ezpay/ezpay/internal/service/authservice"
	faillogservice "github.com/ezpay/ezpay/internal/service/faillogservice"
	limitservice "github.com/ezpay/ezpay/internal/service/limitservice"
	notifyservice "github.com/ezpay/ezpay/internal/service/notifyservice"
	transferservice "github.com/ezpay/ezpay/internal/service/transferservice"
	"github.com/ezpay/ezpay/internal/transport"
)

// Services wires the service layer. TransferService, LimitService and
// FailLogService are exposed concretely: the message consumer and the admin
// handlers reach past the user-facing handler interfaces.
type Services struct {
	AuthService     auth.Service
	AccountService  accounts.Service
	TransferService *transferservice.Service
	LimitService    *limitservice.Service
	FailLogService  *faillogservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, producer *transport.Producer, pool transport.WorkerPoolI) *Services {
	limitService := limitservice.New(repo.LimitRepo, repo.AccountRepo, repo.TransactionRepo)
	accountService := accountservice.New(repo.AccountRepo, repo.TransactionRepo, txManager)
	notifyService := notifyservice.New(producer, pool)
	transferService := transferservice.New(repo.TransactionRepo, repo.AccountRepo, repo.UserRepo, limitService, producer, notifyService, txManager)
	failLogService := faillogservice.New(repo.FailLogRepo)
	authService := authservice.New(repo.UserRepo, accountService, limitService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:     authService,
		AccountService:  accountService,
		TransferService: transferService,
		LimitService:    limitService,
		FailLogService:  failLogService,
	}
}
