package transfers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ezpay/ezpay/internal/domain"
	"github.com/ezpay/ezpay/internal/dto"
	"github.com/ezpay/ezpay/internal/metrics"
	transferservice "github.com/ezpay/ezpay/internal/service/transferservice"
	"github.com/ezpay/ezpay/pkg/auth"
	"github.com/ezpay/ezpay/pkg/utils"
)

type Service interface {
	SubmitTransfer(ctx context.Context, cmd domain.TransferCommand) (string, error)
	GetTransaction(ctx context.Context, userID, transactionID int) (*domain.Transaction, error)
	GetAccountTransactions(ctx context.Context, userID, accountID int, direction string, limit int) ([]domain.Transaction, error)
}

type OwnershipChecker interface {
	GetAccount(ctx context.Context, userID, accountID int) (*domain.Account, error)
}

const defaultHistoryLimit = 50

type TransferHandler struct {
	transferService Service
	accountService  OwnershipChecker
}

func New(transferService Service, accountService OwnershipChecker) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
		accountService:  accountService,
	}
}

// Submit godoc
//
//	@Summary		Submit a transfer
//	@Description	Accept a transfer command for asynchronous processing. The response carries the idempotency key used to track the outcome.
//	@Tags			Transfers
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.TransferRequestDTO	true	"Transfer request body"
//	@Security		BearerAuth
//	@Success		202	{object}	dto.TransferAcceptedResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Sender account belongs to another user"
//	@Failure		422	{object}	utils.Response	"Invalid transfer"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/transfers [post]
func (h *TransferHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Only the account owner may send from it.
	if _, err := h.accountService.GetAccount(r.Context(), userID, req.FromAccountID); err != nil {
		utils.RespondWithError(w, http.StatusForbidden, "Sender account does not belong to user")
		return
	}

	key, err := h.transferService.SubmitTransfer(r.Context(), domain.TransferCommand{
		FromAccountID:  req.FromAccountID,
		ToAccountID:    req.ToAccountID,
		Amount:         req.Amount,
		Memo:           req.Memo,
		Category:       req.Category,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, transferservice.ErrInvalidAmount),
			errors.Is(err, transferservice.ErrSameAccount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	metrics.TransfersSubmitted.Inc()
	utils.RespondWithJSON(w, http.StatusAccepted, dto.TransferAcceptedResponseDTO{
		Message:        "Transfer accepted for processing",
		IdempotencyKey: key,
	})
}

// GetTransaction godoc
//
//	@Summary		Get a transaction
//	@Description	Return one transaction visible to the authenticated user
//	@Tags			Transfers
//	@Produce		json
//	@Param			transactionID	path	int	true	"Transaction ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TransactionResponseDTO
//	@Failure		403	{object}	utils.Response	"Transaction belongs to other users"
//	@Failure		404	{object}	utils.Response	"Transaction not found"
//	@Router			/api/transfers/{transactionID} [get]
func (h *TransferHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	transactionID, err := strconv.Atoi(chi.URLParam(r, "transactionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	transaction, err := h.transferService.GetTransaction(r.Context(), userID, transactionID)
	if err != nil {
		if errors.Is(err, transferservice.ErrNotAccountOwner) {
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if transaction == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(transaction))
}

// GetAccountTransactions godoc
//
//	@Summary		List account transactions
//	@Description	Return recent transactions of one of the user's accounts
//	@Tags			Transfers
//	@Produce		json
//	@Param			accountID	path	int		true	"Account ID"
//	@Param			direction	query	string	false	"Filter by direction (sent or received)"
//	@Param			limit		query	int		false	"Maximum number of rows"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid direction or limit"
//	@Failure		403	{object}	utils.Response	"Account belongs to another user"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Router			/api/accounts/{accountID}/transactions [get]
func (h *TransferHandler) GetAccountTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	accountID, err := strconv.Atoi(chi.URLParam(r, "accountID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	direction := r.URL.Query().Get("direction")

	transactions, err := h.transferService.GetAccountTransactions(r.Context(), userID, accountID, direction, limit)
	if err != nil {
		switch {
		case errors.Is(err, transferservice.ErrInvalidDirection):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, transferservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, transferservice.ErrNotAccountOwner):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := make([]dto.TransactionResponseDTO, 0, len(transactions))
	for i := range transactions {
		response = append(response, toTransactionDTO(&transactions[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toTransactionDTO(transaction *domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:                transaction.ID,
		SenderAccountID:   transaction.SenderAccountID,
		ReceiverAccountID: transaction.ReceiverAccountID,
		Amount:            transaction.Amount,
		Status:            transaction.Status,
		Memo:              transaction.Memo,
		Category:          transaction.Category,
		CreatedAt:         transaction.CreatedAt,
	}
}
