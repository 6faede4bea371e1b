package limits

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/ezpay/ezpay/internal/domain"
	"github.com/ezpay/ezpay/internal/dto"
	"github.com/ezpay/ezpay/pkg/auth"
	"github.com/ezpay/ezpay/pkg/utils"
)

type Service interface {
	GetUserLimit(ctx context.Context, userID int) (*domain.TransferLimit, error)
	GetRemainingDailyLimit(ctx context.Context, userID int) (decimal.Decimal, error)
}

type LimitHandler struct {
	limitService Service
}

func New(limitService Service) *LimitHandler {
	return &LimitHandler{
		limitService: limitService,
	}
}

// GetMyLimit godoc
//
//	@Summary		Get transfer limits
//	@Description	Return the authenticated user's transfer ceilings and today's remaining headroom
//	@Tags			Limits
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TransferLimitResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/limits [get]
func (h *LimitHandler) GetMyLimit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var (
		limit     *domain.TransferLimit
		remaining decimal.Decimal
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		limit, err = h.limitService.GetUserLimit(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		remaining, err = h.limitService.GetRemainingDailyLimit(ctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TransferLimitResponseDTO{
		UserID:              limit.UserID,
		DailyLimit:          limit.DailyLimit,
		PerTransactionLimit: limit.PerTransactionLimit,
		RemainingDaily:      remaining,
	})
}
