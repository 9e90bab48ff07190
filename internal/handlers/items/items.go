package items

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
	itemservice "github.com/shareit/shareit/internal/service/itemservice"
	"github.com/shareit/shareit/pkg/auth"
	"github.com/shareit/shareit/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	List(ctx context.Context, skip, limit int) ([]itemservice.ItemWithStatus, error)
	ListByLender(ctx context.Context, lenderID int) ([]itemservice.ItemWithStatus, error)
	Get(ctx context.Context, id int) (*itemservice.ItemWithStatus, error)
	Update(ctx context.Context, actorID int, item *domain.Item) (*domain.Item, error)
	Deactivate(ctx context.Context, actorID, itemID int) error
}

type ItemHandler struct {
	itemService Service
}

func New(itemService Service) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

// CreateItem godoc
//
//	@Summary		Publish an item for rent
//	@Description	Create a new rentable item owned by the authenticated user
//	@Tags			Items
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateItemRequestDTO	true	"Item payload"
//	@Success		201		{object}	dto.ItemResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/items [post]
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.itemService.Create(r.Context(), &domain.Item{
		LenderID:       userID,
		Title:          req.Title,
		Description:    req.Description,
		Condition:      req.Condition,
		EstimatedPrice: decimal.NewFromFloat(req.EstimatedPrice),
		MinDays:        req.MinDays,
		MaxDays:        req.MaxDays,
		DailyDeposit:   decimal.NewFromFloat(req.DailyDeposit),
		Location:       req.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, itemservice.ErrInvalidItem):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toItemDTO(item, domain.ItemStatusAvailable))
}

// ListItems godoc
//
//	@Summary		Browse the catalogue
//	@Description	List active items together with their derived availability status
//	@Tags			Items
//	@Security		BearerAuth
//	@Produce		json
//	@Param			skip	query		int	false	"Offset"	default(0)
//	@Param			limit	query		int	false	"Page size"	default(20)
//	@Success		200		{array}		dto.ItemResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/items [get]
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", 20)

	items, err := h.itemService.List(r.Context(), skip, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toItemDTOs(items))
}

// MyItems godoc
//
//	@Summary		List own published items
//	@Description	List all items owned by the authenticated user, including inactive ones
//	@Tags			Items
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ItemResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/items/mine [get]
func (h *ItemHandler) MyItems(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	items, err := h.itemService.ListByLender(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toItemDTOs(items))
}

// GetItem godoc
//
//	@Summary		Get a single item
//	@Description	Fetch one item with its derived availability status
//	@Tags			Items
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Item ID"
//	@Success		200	{object}	dto.ItemResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Item not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/items/{id} [get]
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	item, err := h.itemService.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, itemservice.ErrItemNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toItemDTO(&item.Item, item.Status))
}

// UpdateItem godoc
//
//	@Summary		Update an item
//	@Description	Update a published item; only the owning lender may do this
//	@Tags			Items
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Item ID"
//	@Param			request	body		dto.UpdateItemRequestDTO	true	"Item payload"
//	@Success		200		{object}	dto.ItemResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the item owner"
//	@Failure		404		{object}	utils.Response	"Item not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/items/{id} [patch]
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	var req dto.UpdateItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.itemService.Update(r.Context(), userID, &domain.Item{
		ID:             id,
		Title:          req.Title,
		Description:    req.Description,
		Condition:      req.Condition,
		EstimatedPrice: decimal.NewFromFloat(req.EstimatedPrice),
		MinDays:        req.MinDays,
		MaxDays:        req.MaxDays,
		DailyDeposit:   decimal.NewFromFloat(req.DailyDeposit),
		Location:       req.Location,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toItemDTO(item, domain.ItemStatusAvailable))
}

// DeleteItem godoc
//
//	@Summary		Take an item off the catalogue
//	@Description	Deactivate an item so no new bookings can be requested for it
//	@Tags			Items
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Item ID"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the item owner"
//	@Failure		404	{object}	utils.Response	"Item not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/items/{id} [delete]
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	if err := h.itemService.Deactivate(r.Context(), userID, id); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "item deactivated"})
}

func (h *ItemHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, itemservice.ErrItemNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, itemservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, itemservice.ErrInvalidItem):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toItemDTO(item *domain.Item, status string) dto.ItemResponseDTO {
	return dto.ItemResponseDTO{
		ID:             item.ID,
		LenderID:       item.LenderID,
		Title:          item.Title,
		Description:    item.Description,
		Condition:      item.Condition,
		EstimatedPrice: item.EstimatedPrice.InexactFloat64(),
		MinDays:        item.MinDays,
		MaxDays:        item.MaxDays,
		DailyDeposit:   item.DailyDeposit.InexactFloat64(),
		Location:       item.Location,
		Status:         status,
		CreatedAt:      item.CreatedAt,
	}
}

func toItemDTOs(items []itemservice.ItemWithStatus) []dto.ItemResponseDTO {
	out := make([]dto.ItemResponseDTO, 0, len(items))
	for i := range items {
		out = append(out, toItemDTO(&items[i].Item, items[i].Status))
	}
	return out
}

func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
