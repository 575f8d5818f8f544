// Package transferdelivery manages the delivery layer of transfers.
package transferdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-bic/bic-bank/internal/domain"
	"github.com/go-bic/bic-bank/pkg/datepkg"
	"github.com/go-bic/bic-bank/pkg/errorspkg"
	"github.com/go-bic/bic-bank/pkg/web"
)

// Service provides the service layer interface needed by the transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferTxResult, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns a transfer handler.
func NewHandler(ts Service) *Handler {
	return &Handler{service: ts}
}

type request struct {
	FromAccountID string `json:"from_account_id" binding:"required"`
	ToAccountID   string `json:"to_account_id"`
	RoutingKind   string `json:"routing_kind" binding:"omitempty,keykind"`
	RoutingKey    string `json:"routing_key"`
	Amount        string `json:"amount" binding:"required"`
	ScheduledFor  string `json:"scheduled_for"`
}

type data struct {
	Transfer domain.TransferTxResult `json:"transfer"`
}

// Create handles the http request to settle a transfer between two accounts.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req request
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors

		errMsg := err.Error()
		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	arg := domain.CreateTransferParams{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		RoutingKind:   domain.KeyKind(req.RoutingKind),
		RoutingKey:    req.RoutingKey,
		Amount:        req.Amount,
	}

	if req.ScheduledFor != "" {
		scheduled, err := datepkg.Parse(req.ScheduledFor)
		if err != nil {
			l.Info().Err(err).Send()
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		}

		arg.ScheduledFor = &scheduled
	}

	result, err := h.service.Transfer(ctx, arg)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrAccountNotFound, domain.ErrPixKeyNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))

			return
		case
			domain.ErrInvalidAmount,
			domain.ErrNegativeAmount,
			domain.ErrInsufficientBalance,
			domain.ErrUnknownKeyKind,
			domain.ErrScheduledDateInPast:
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{result}})
}
