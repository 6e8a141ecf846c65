// Package transactiondelivery manages delivery layer of transactions.
package transactiondelivery

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/transaction-api/internal/domain"
	"github.com/go-petr/transaction-api/pkg/web"
)

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	Get(ctx context.Context, id int64) (domain.Transaction, error)
	List(ctx context.Context) ([]domain.Transaction, error)
	Delete(ctx context.Context, id int64) error
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(ts Service) *Handler {
	return &Handler{service: ts}
}

// createRequest accepts a zero amount; only an absent or null amount is rejected.
type createRequest struct {
	Details string    `json:"details" binding:"required"`
	Amount  *float64  `json:"amount" binding:"required"`
	Account string    `json:"account" binding:"required"`
	Type    string    `json:"type" binding:"required"`
	Date    time.Time `json:"date" binding:"required"`
}

// List handles http request to list all transactions.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	items, err := h.service.List(ctx)
	if err != nil {
		internalError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, items)
}

// Create handles http request to create a transaction.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			l.Info().Str("field", ve[0].Field()).Str("tag", ve[0].Tag()).Msg("invalid transaction field")
		} else {
			l.Info().Err(err).Send()
		}

		gctx.JSON(http.StatusBadRequest, web.NewMessage(web.MsgInvalidInput))

		return
	}

	arg := domain.CreateTransactionParams{
		Details: req.Details,
		Amount:  *req.Amount,
		Account: req.Account,
		Type:    req.Type,
		Date:    req.Date,
	}

	created, err := h.service.Create(ctx, arg)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			gctx.JSON(http.StatusBadRequest, web.NewMessage(web.MsgInvalidInput))
			return
		}

		internalError(gctx, err)

		return
	}

	gctx.JSON(http.StatusCreated, created)
}

// Get handles http request to get a transaction by id.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, ok := parseID(gctx)
	if !ok {
		notFound(gctx)
		return
	}

	tr, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			notFound(gctx)
			return
		}

		internalError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, tr)
}

// Delete handles http request to delete a transaction by id.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, ok := parseID(gctx)
	if !ok {
		notFound(gctx)
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			notFound(gctx)
			return
		}

		internalError(gctx, err)

		return
	}

	gctx.Status(http.StatusNoContent)
}

// InvalidRequest answers every method and path that no route matches.
func InvalidRequest(gctx *gin.Context) {
	gctx.JSON(http.StatusBadRequest, web.NewMessage(web.MsgInvalidRequest))
}

// parseID reads the base-10 id path parameter.
//
// Ids that are not positive integers cannot match a row, so callers treat them as not found.
func parseID(gctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(gctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		zerolog.Ctx(gctx.Request.Context()).Info().Str("id", gctx.Param("id")).Msg("invalid transaction id")
		return 0, false
	}

	return id, true
}

func notFound(gctx *gin.Context) {
	gctx.JSON(http.StatusNotFound, web.NewMessage(web.MsgNotFound))
}

// internalError hides err from the client; the request logger reports it.
func internalError(gctx *gin.Context, err error) {
	_ = gctx.Error(err)
	gctx.JSON(http.StatusInternalServerError, web.NewMessage(web.MsgInternal))
}
