// Package billdelivery manages the delivery layer of boleto settlement.
package billdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-bic/bic-bank/internal/domain"
	"github.com/go-bic/bic-bank/pkg/errorspkg"
	"github.com/go-bic/bic-bank/pkg/web"
)

// Service provides the service layer interface needed by the bill delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package billdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateBoletoParams) (domain.Boleto, error)
	Pay(ctx context.Context, boleto domain.Boleto) (domain.BillTxResult, error)
}

// Handler facilitates bill delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns a bill handler.
func NewHandler(bs Service) *Handler {
	return &Handler{service: bs}
}

type request struct {
	FromAccountID     string `json:"from_account_id" binding:"required"`
	ToAccountID       string `json:"to_account_id" binding:"required"`
	Value             string `json:"value" binding:"required"`
	LatePercentPerDay string `json:"late_percent_per_day" binding:"required"`
	DueDate           string `json:"due_date" binding:"required"`
}

type data struct {
	Payment domain.BillTxResult `json:"payment"`
}

// Pay handles the http request to settle a boleto: the bill is validated,
// issued and paid in one request.
func (h *Handler) Pay(gctx *gin.Context) {
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

	boleto, err := h.service.Create(ctx, domain.CreateBoletoParams{
		Value:             req.Value,
		LatePercentPerDay: req.LatePercentPerDay,
		DueDate:           req.DueDate,
		FromAccountID:     req.FromAccountID,
		ToAccountID:       req.ToAccountID,
	})
	if err != nil {
		l.Info().Err(err).Send()
		writeError(gctx, err)

		return
	}

	result, err := h.service.Pay(ctx, boleto)
	if err != nil {
		l.Info().Err(err).Send()
		writeError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{result}})
}

func writeError(gctx *gin.Context, err error) {
	var invalid *domain.InvalidValueError

	switch {
	case err == domain.ErrAccountNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case err == domain.ErrInvalidAmount,
		err == domain.ErrNegativeAmount,
		err == domain.ErrInsufficientBalance,
		errors.As(err, &invalid):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
