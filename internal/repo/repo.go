package repo

import (
	"github.com/ezpay/ezpay/internal/pg"
	accountrepo "github.com/ezpay/ezpay/internal/repo/account-repo"
	faillogrepo "github.com/ezpay/ezpay/internal/repo/faillog-repo"
	limitrepo "github.com/ezpay/ezpay/internal/repo/limit-repo"
	transactionrepo "github.com/ezpay/ezpay/internal/repo/transaction-repo"
	userrepo "github.com/ezpay/ezpay/internal/repo/user-repo"
	"github.com/ezpay/ezpay/internal/service/accountservice"
	"github.com/ezpay/ezpay/internal/service/authservice"
	"github.com/ezpay/ezpay/internal/service/faillogservice"
	"github.com/ezpay/ezpay/internal/service/limitservice"
	"github.com/ezpay/ezpay/internal/service/transferservice"
)

type Repositories struct {
	UserRepo        authservice.UserRepo
	AccountRepo     accountservice.Repo
	TransactionRepo transferservice.TransactionRepo
	LimitRepo       limitservice.LimitRepo
	FailLogRepo     faillogservice.Repo
}

func New(conn pg.Database) *Repositories {
	userRepo := userrepo.New(conn)
	accountRepo := accountrepo.New(conn)
	transactionRepo := transactionrepo.New(conn)
	limitRepo := limitrepo.New(conn)
	failLogRepo := faillogrepo.New(conn)

	return &Repositories{
		UserRepo:        userRepo,
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
		LimitRepo:       limitRepo,
		FailLogRepo:     failLogRepo,
	}
}
