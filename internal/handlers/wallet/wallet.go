package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shareit/shareit/internal/domain"
	"github.com/shareit/shareit/internal/dto"
	ledgerservice "github.com/shareit/shareit/internal/service/ledgerservice"
	"github.com/shareit/shareit/pkg/auth"
	"github.com/shareit/shareit/pkg/utils"
	"github.com/shareit/shareit/pkg/validate"
)

// The "topup:<user>:" prefix plus the client key must fit the ledger's
// op_ref column.
const maxIdempotencyKeyLen = 100

type Service interface {
	Balance(ctx context.Context, userID int) (decimal.Decimal, error)
	History(ctx context.Context, userID, limit int) ([]domain.LedgerEntry, error)
	TopUp(ctx context.Context, userID int, amount decimal.Decimal, opRef, description string) (decimal.Decimal, error)
}

type WalletHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *WalletHandler {
	return &WalletHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get wallet balance
//	@Description	Return the authenticated user's balance, the running sum of their ledger entries
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.ledgerService.Balance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance: balance.InexactFloat64(),
	})
}

// TopUp godoc
//
//	@Summary		Add funds to the wallet
//	@Description	Top up the wallet from a payment card. Replaying the same Idempotency-Key does not credit the wallet twice.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string				false	"Client-chosen operation key"
//	@Param			request			body		dto.TopUpRequestDTO	true	"Top-up payload"
//	@Success		200				{object}	dto.TopUpResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid amount, amount above the single top-up limit, or oversized Idempotency-Key"
//	@Failure		401				{object}	utils.Response	"User not authorized"
//	@Failure		409				{object}	utils.Response	"Idempotency key replayed with different parameters"
//	@Failure		422				{object}	utils.Response	"Invalid card number"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/topup [post]
func (h *WalletHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TopUpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Card != "" && !validate.IsCardNumber(req.Card) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}

	opRef := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	if len(opRef) > maxIdempotencyKeyLen {
		utils.RespondWithError(w, http.StatusBadRequest, "Idempotency-Key must not exceed 100 characters")
		return
	}
	if opRef == "" {
		opRef = uuid.NewString()
	}
	opRef = fmt.Sprintf("topup:%d:%s", userID, opRef)

	balance, err := h.ledgerService.TopUp(r.Context(), userID, decimal.NewFromFloat(req.Amount), opRef, "wallet top-up")
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ledgerservice.ErrOpConflict):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TopUpResponseDTO{
		Balance: balance.InexactFloat64(),
	})
}

// GetHistory godoc
//
//	@Summary		Get wallet history
//	@Description	List the authenticated user's ledger entries, newest first
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LedgerEntryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/history [get]
func (h *WalletHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	entries, err := h.ledgerService.History(r.Context(), userID, 100)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch history")
		return
	}

	out := make([]dto.LedgerEntryResponseDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.LedgerEntryResponseDTO{
			ID:          e.ID,
			EntryType:   e.EntryType,
			Amount:      e.Amount.InexactFloat64(),
			BookingID:   e.BookingID,
			DisputeID:   e.DisputeID,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}
