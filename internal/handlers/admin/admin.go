package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ezpay/ezpay/internal/domain"
	"github.com/ezpay/ezpay/internal/dto"
	faillogservice "github.com/ezpay/ezpay/internal/service/faillogservice"
	"github.com/ezpay/ezpay/pkg/utils"
)

type LimitService interface {
	GetAllLimits(ctx context.Context) ([]domain.TransferLimit, error)
	GetUserLimit(ctx context.Context, userID int) (*domain.TransferLimit, error)
	UpdateUserLimit(ctx context.Context, userID int, dailyLimit, perTransactionLimit decimal.Decimal) error
	ResetUserLimit(ctx context.Context, userID int) error
}

type ErrorLogService interface {
	GetAll(ctx context.Context) ([]domain.FailedEvent, error)
	GetByStatus(ctx context.Context, status string) ([]domain.FailedEvent, error)
	Resolve(ctx context.Context, eventID int) error
	Delete(ctx context.Context, eventID int) error
}

type AdminHandler struct {
	limitService    LimitService
	errorLogService ErrorLogService
}

func New(limitService LimitService, errorLogService ErrorLogService) *AdminHandler {
	return &AdminHandler{
		limitService:    limitService,
		errorLogService: errorLogService,
	}
}

// GetAllLimits godoc
//
//	@Summary		List all transfer limits
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TransferLimitResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/transfer-limits [get]
func (h *AdminHandler) GetAllLimits(w http.ResponseWriter, r *http.Request) {
	limits, err := h.limitService.GetAllLimits(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TransferLimitResponseDTO, 0, len(limits))
	for _, limit := range limits {
		response = append(response, dto.TransferLimitResponseDTO{
			UserID:              limit.UserID,
			DailyLimit:          limit.DailyLimit,
			PerTransactionLimit: limit.PerTransactionLimit,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateLimit godoc
//
//	@Summary		Update a user's transfer limits
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			userID	path	int								true	"User ID"
//	@Param			request	body	dto.UpdateTransferLimitRequestDTO	true	"New ceilings"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Transfer limits updated"
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/transfer-limits/{userID} [put]
func (h *AdminHandler) UpdateLimit(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req dto.UpdateTransferLimitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.DailyLimit.IsPositive() || !req.PerTransactionLimit.IsPositive() {
		utils.RespondWithError(w, http.StatusBadRequest, "Limits must be positive")
		return
	}
	if req.PerTransactionLimit.GreaterThan(req.DailyLimit) {
		utils.RespondWithError(w, http.StatusBadRequest, "Per-transaction limit cannot exceed daily limit")
		return
	}

	if err := h.limitService.UpdateUserLimit(r.Context(), userID, req.DailyLimit, req.PerTransactionLimit); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Transfer limits updated"})
}

// ResetLimit godoc
//
//	@Summary		Reset a user's transfer limits to platform defaults
//	@Tags			Admin
//	@Produce		json
//	@Param			userID	path	int	true	"User ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Transfer limits reset"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/transfer-limits/{userID}/reset [post]
func (h *AdminHandler) ResetLimit(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.limitService.ResetUserLimit(r.Context(), userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Transfer limits reset"})
}

// GetErrorLogs godoc
//
//	@Summary		List dead-lettered events
//	@Description	Return archived failed events, optionally filtered by status
//	@Tags			Admin
//	@Produce		json
//	@Param			status	query	string	false	"PENDING or RESOLVED"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.FailedEventResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid status"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/error-logs [get]
func (h *AdminHandler) GetErrorLogs(w http.ResponseWriter, r *http.Request) {
	var (
		events []domain.FailedEvent
		err    error
	)
	if status := r.URL.Query().Get("status"); status != "" {
		events, err = h.errorLogService.GetByStatus(r.Context(), status)
	} else {
		events, err = h.errorLogService.GetAll(r.Context())
	}
	if err != nil {
		if errors.Is(err, faillogservice.ErrInvalidStatus) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.FailedEventResponseDTO, 0, len(events))
	for _, event := range events {
		response = append(response, dto.FailedEventResponseDTO{
			ID:           event.ID,
			Topic:        event.Topic,
			RoutingKey:   event.RoutingKey,
			Payload:      event.Payload,
			ErrorMessage: event.ErrorMessage,
			Status:       event.Status,
			OccurredAt:   event.OccurredAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ResolveErrorLog godoc
//
//	@Summary		Mark a dead-lettered event as resolved
//	@Tags			Admin
//	@Produce		json
//	@Param			eventID	path	int	true	"Event ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Event resolved"
//	@Failure		404	{object}	utils.Response	"Event not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/error-logs/{eventID}/resolve [post]
func (h *AdminHandler) ResolveErrorLog(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.Atoi(chi.URLParam(r, "eventID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	if err := h.errorLogService.Resolve(r.Context(), eventID); err != nil {
		if errors.Is(err, faillogservice.ErrEventNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Event resolved"})
}

// DeleteErrorLog godoc
//
//	@Summary		Delete a dead-lettered event record
//	@Tags			Admin
//	@Produce		json
//	@Param			eventID	path	int	true	"Event ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Event deleted"
//	@Failure		404	{object}	utils.Response	"Event not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/error-logs/{eventID} [delete]
func (h *AdminHandler) DeleteErrorLog(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.Atoi(chi.URLParam(r, "eventID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	if err := h.errorLogService.Delete(r.Context(), eventID); err != nil {
		if errors.Is(err, faillogservice.ErrEventNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Event deleted"})
}
