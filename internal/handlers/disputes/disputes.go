package disputes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/shareit/shareit/internal/domain"
	"github.com/shareit/shareit/internal/dto"
	disputeservice "github.com/shareit/shareit/internal/service/disputeservice"
	"github.com/shareit/shareit/pkg/auth"
	"github.com/shareit/shareit/pkg/utils"
)

type Service interface {
	Open(ctx context.Context, actorID, bookingID int, description string, estimatedCost *decimal.Decimal) (*domain.Dispute, error)
	Resolve(ctx context.Context, disputeID int, outcome, notes string) (*domain.Dispute, error)
	GetUserDisputes(ctx context.Context, userID int) ([]domain.Dispute, error)
	GetByID(ctx context.Context, actorID int, isAdmin bool, disputeID int) (*domain.Dispute, error)
}

type DisputeHandler struct {
	disputeService Service
}

func New(disputeService Service) *DisputeHandler {
	return &DisputeHandler{
		disputeService: disputeService,
	}
}

// OpenDispute godoc
//
//	@Summary		Open a dispute
//	@Description	Freeze a booking because the item was damaged, lost or not returned. Only a party of an active booking may open one.
//	@Tags			Disputes
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OpenDisputeRequestDTO	true	"Dispute payload"
//	@Success		201		{object}	dto.DisputeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not a booking party"
//	@Failure		404		{object}	utils.Response	"Booking not found"
//	@Failure		409		{object}	utils.Response	"Booking not active or dispute already open"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/disputes [post]
func (h *DisputeHandler) OpenDispute(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.OpenDisputeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Description == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Description is required")
		return
	}

	var estimatedCost *decimal.Decimal
	if req.EstimatedCost != nil {
		v := decimal.NewFromFloat(*req.EstimatedCost)
		estimatedCost = &v
	}

	dispute, err := h.disputeService.Open(r.Context(), userID, req.BookingID, req.Description, estimatedCost)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDisputeDTO(dispute))
}

// GetDisputes godoc
//
//	@Summary		List own disputes
//	@Description	List disputes on bookings where the authenticated user is a party
//	@Tags			Disputes
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DisputeResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/disputes [get]
func (h *DisputeHandler) GetDisputes(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	disputes, err := h.disputeService.GetUserDisputes(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch disputes")
		return
	}

	out := make([]dto.DisputeResponseDTO, 0, len(disputes))
	for i := range disputes {
		out = append(out, toDisputeDTO(&disputes[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GetDispute godoc
//
//	@Summary		Get a single dispute
//	@Description	Fetch one dispute; visible to the booking parties and to admins
//	@Tags			Disputes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Dispute ID"
//	@Success		200	{object}	dto.DisputeResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not a booking party"
//	@Failure		404	{object}	utils.Response	"Dispute not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/disputes/{id} [get]
func (h *DisputeHandler) GetDispute(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role, _ := r.Context().Value(auth.RoleKey).(string)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid dispute id")
		return
	}

	dispute, err := h.disputeService.GetByID(r.Context(), userID, role == domain.RoleAdmin, id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDisputeDTO(dispute))
}

// ResolveDispute godoc
//
//	@Summary		Resolve a dispute
//	@Description	Uphold or reject an open dispute and settle the frozen deposit accordingly. Admin only.
//	@Tags			Disputes
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Dispute ID"
//	@Param			request	body		dto.ResolveDisputeRequestDTO	true	"Resolution payload"
//	@Success		200		{object}	dto.DisputeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or unknown outcome"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	utils.Response	"Dispute not found"
//	@Failure		409		{object}	utils.Response	"Dispute is not open"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/disputes/{id} [patch]
func (h *DisputeHandler) ResolveDispute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid dispute id")
		return
	}

	var req dto.ResolveDisputeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dispute, err := h.disputeService.Resolve(r.Context(), id, req.Outcome, req.Notes)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDisputeDTO(dispute))
}

func (h *DisputeHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, disputeservice.ErrBookingNotFound),
		errors.Is(err, disputeservice.ErrDisputeNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, disputeservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, disputeservice.ErrDisputeExists),
		errors.Is(err, disputeservice.ErrBookingNotActive),
		errors.Is(err, disputeservice.ErrDisputeNotOpen):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, disputeservice.ErrInvalidOutcome):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toDisputeDTO(d *domain.Dispute) dto.DisputeResponseDTO {
	var estimatedCost *float64
	if d.EstimatedCost != nil {
		v := d.EstimatedCost.InexactFloat64()
		estimatedCost = &v
	}
	return dto.DisputeResponseDTO{
		ID:              d.ID,
		BookingID:       d.BookingID,
		RaisedBy:        d.RaisedBy,
		Description:     d.Description,
		EstimatedCost:   estimatedCost,
		Status:          d.Status,
		ResolutionNotes: d.ResolutionNotes,
		ResolvedAt:      d.ResolvedAt,
		CreatedAt:       d.CreatedAt,
		ItemTitle:       d.ItemTitle,
		LenderName:      d.LenderName,
		BorrowerName:    d.BorrowerName,
	}
}
