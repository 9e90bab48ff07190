package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shareit/shareit/internal/domain"
	"github.com/shareit/shareit/internal/dto"
	bookingservice "github.com/shareit/shareit/internal/service/bookingservice"
	ledgerservice "github.com/shareit/shareit/internal/service/ledgerservice"
	"github.com/shareit/shareit/pkg/auth"
	"github.com/shareit/shareit/pkg/utils"
)

type Service interface {
	Request(ctx context.Context, borrowerID, itemID int, startDate, endDate time.Time, reason string) (*domain.Booking, error)
	Decide(ctx context.Context, actorID, bookingID int, targetStatus string) (*domain.Booking, error)
	GetUserBookings(ctx context.Context, userID int) ([]domain.Booking, error)
	GetPendingForLender(ctx context.Context, lenderID int) ([]domain.Booking, error)
	GetByID(ctx context.Context, actorID, bookingID int) (*domain.Booking, error)
}

type Availability interface {
	ActiveItems(ctx context.Context) (map[int]int, error)
}

type BookingHandler struct {
	bookingService Service
	availability   Availability
}

func New(bookingService Service, availability Availability) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		availability:   availability,
	}
}

// CreateBooking godoc
//
//	@Summary		Request a booking
//	@Description	Request to rent an item for a date range; the total deposit is held on the borrower's wallet
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBookingRequestDTO	true	"Booking request payload"
//	@Success		201		{object}	dto.BookingResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request or item cannot be booked"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient wallet balance"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings [post]
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.bookingService.Request(r.Context(), userID, req.ItemID, req.StartDate, req.EndDate, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, bookingservice.ErrItemNotFound),
			errors.Is(err, bookingservice.ErrOwnItem),
			errors.Is(err, bookingservice.ErrItemUnavailable),
			errors.Is(err, bookingservice.ErrInvalidDuration):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toBookingDTO(booking))
}

// GetBookings godoc
//
//	@Summary		List own bookings
//	@Description	List all bookings where the authenticated user is borrower or lender
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.BookingResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings [get]
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	bookings, err := h.bookingService.GetUserBookings(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBookingDTOs(bookings))
}

// GetPending godoc
//
//	@Summary		List pending requests
//	@Description	List bookings waiting for the authenticated lender's decision
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.BookingResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/pending [get]
func (h *BookingHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	bookings, err := h.bookingService.GetPendingForLender(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBookingDTOs(bookings))
}

// GetActiveItems godoc
//
//	@Summary		Map of currently rented items
//	@Description	Return item ids that are held by an active booking together with the whole days left until the booking ends
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ActiveItemsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/active-items [get]
func (h *BookingHandler) GetActiveItems(w http.ResponseWriter, r *http.Request) {
	active, err := h.availability.ActiveItems(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch active items")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ActiveItemsResponseDTO{Active: active})
}

// GetBooking godoc
//
//	@Summary		Get a single booking
//	@Description	Fetch one booking; only its borrower or lender may see it
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not a booking party"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id} [get]
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	booking, err := h.bookingService.GetByID(r.Context(), userID, id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBookingDTO(booking))
}

// DecideBooking godoc
//
//	@Summary		Move a booking through its lifecycle
//	@Description	Accept, reject, cancel, announce or confirm a return. Which transitions are allowed depends on the caller's side of the booking and its current status.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Booking ID"
//	@Param			request	body		dto.DecideBookingRequestDTO	true	"Target status"
//	@Success		200		{object}	dto.BookingResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Wrong side of the booking"
//	@Failure		404		{object}	utils.Response	"Booking not found"
//	@Failure		409		{object}	utils.Response	"Transition not allowed from the current status"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id} [patch]
func (h *BookingHandler) DecideBooking(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var req dto.DecideBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.bookingService.Decide(r.Context(), userID, id, req.Status)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBookingDTO(booking))
}

func (h *BookingHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bookingservice.ErrBookingNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, bookingservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, bookingservice.ErrInvalidTransition),
		errors.Is(err, bookingservice.ErrDisputeOpen):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toBookingDTO(b *domain.Booking) dto.BookingResponseDTO {
	return dto.BookingResponseDTO{
		ID:           b.ID,
		ItemID:       b.ItemID,
		BorrowerID:   b.BorrowerID,
		LenderID:     b.LenderID,
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		TotalDeposit: b.TotalDeposit.InexactFloat64(),
		Status:       b.Status,
		Reason:       b.Reason,
		CreatedAt:    b.CreatedAt,
		ItemTitle:    b.ItemTitle,
		LenderName:   b.LenderName,
		BorrowerName: b.BorrowerName,
	}
}

func toBookingDTOs(bookings []domain.Booking) []dto.BookingResponseDTO {
	out := make([]dto.BookingResponseDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingDTO(&bookings[i]))
	}
	return out
}
