package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ezpay/ezpay/internal/domain"
	"github.com/ezpay/ezpay/internal/dto"
	accountservice "github.com/ezpay/ezpay/internal/service/accountservice"
	"github.com/ezpay/ezpay/pkg/auth"
	"github.com/ezpay/ezpay/pkg/utils"
	"github.com/ezpay/ezpay/pkg/validate"
)

type Service interface {
	CreateAccount(ctx context.Context, userID int, bankName string, isPrimary bool) (*domain.Account, error)
	GetUserAccounts(ctx context.Context, userID int) ([]domain.Account, error)
	GetAccount(ctx context.Context, userID, accountID int) (*domain.Account, error)
	GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
	SetPrimaryAccount(ctx context.Context, userID, accountID int) error
	DeleteAccount(ctx context.Context, userID, accountID int) error
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// CreateAccount godoc
//
//	@Summary		Open a new account
//	@Description	Create an account at the given bank for the authenticated user
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateAccountRequestDTO	true	"Create account request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.AccountResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BankName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.accountService.CreateAccount(r.Context(), userID, req.BankName, false)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toAccountDTO(account))
}

// GetAccounts godoc
//
//	@Summary		List accounts
//	@Description	Return all accounts of the authenticated user
//	@Tags			Accounts
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.AccountResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts [get]
func (h *AccountHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	accounts, err := h.accountService.GetUserAccounts(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.AccountResponseDTO, 0, len(accounts))
	for i := range accounts {
		response = append(response, toAccountDTO(&accounts[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetAccount godoc
//
//	@Summary		Get one account
//	@Description	Return a single account owned by the authenticated user
//	@Tags			Accounts
//	@Produce		json
//	@Param			accountID	path	int	true	"Account ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AccountResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Account belongs to another user"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Router			/api/accounts/{accountID} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	accountID, err := strconv.Atoi(chi.URLParam(r, "accountID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	account, err := h.accountService.GetAccount(r.Context(), userID, accountID)
	if err != nil {
		respondWithAccountError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAccountDTO(account))
}

// GetAccountByNumber godoc
//
//	@Summary		Look up a recipient account
//	@Description	Resolve an account by its number before submitting a transfer
//	@Tags			Accounts
//	@Produce		json
//	@Param			accountNumber	path	string	true	"Account number"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AccountResponseDTO
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		422	{object}	utils.Response	"Invalid account number format"
//	@Router			/api/accounts/number/{accountNumber} [get]
func (h *AccountHandler) GetAccountByNumber(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "accountNumber")
	if !validate.IsAccountNumber(accountNumber) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid account number")
		return
	}

	account, err := h.accountService.GetAccountByNumber(r.Context(), accountNumber)
	if err != nil {
		respondWithAccountError(w, err)
		return
	}
	// The caller is not the owner: expose identity fields only.
	utils.RespondWithJSON(w, http.StatusOK, dto.AccountResponseDTO{
		ID:            account.ID,
		BankName:      account.BankName,
		AccountNumber: account.AccountNumber,
	})
}

// SetPrimary godoc
//
//	@Summary		Mark an account as primary
//	@Tags			Accounts
//	@Produce		json
//	@Param			accountID	path	int	true	"Account ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Primary account updated"
//	@Failure		403	{object}	utils.Response	"Account belongs to another user"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Router			/api/accounts/{accountID}/primary [post]
func (h *AccountHandler) SetPrimary(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	accountID, err := strconv.Atoi(chi.URLParam(r, "accountID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	if err := h.accountService.SetPrimaryAccount(r.Context(), userID, accountID); err != nil {
		respondWithAccountError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Primary account updated"})
}

// DeleteAccount godoc
//
//	@Summary		Close an account
//	@Description	Delete the account together with its transfer history
//	@Tags			Accounts
//	@Produce		json
//	@Param			accountID	path	int	true	"Account ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Account deleted"
//	@Failure		403	{object}	utils.Response	"Account belongs to another user"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Router			/api/accounts/{accountID} [delete]
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	accountID, err := strconv.Atoi(chi.URLParam(r, "accountID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	if err := h.accountService.DeleteAccount(r.Context(), userID, accountID); err != nil {
		respondWithAccountError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Account deleted"})
}

func respondWithAccountError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accountservice.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, accountservice.ErrNotAccountOwner):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toAccountDTO(account *domain.Account) dto.AccountResponseDTO {
	return dto.AccountResponseDTO{
		ID:            account.ID,
		BankName:      account.BankName,
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance,
		IsPrimary:     account.IsPrimary,
		CreatedAt:     account.CreatedAt,
	}
}
