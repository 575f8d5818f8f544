// Package loandelivery manages the delivery layer of loans.
package loandelivery

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

// Service provides the service layer interface needed by the loan delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package loandelivery
type Service interface {
	Create(ctx context.Context, accountID, amount string, installments int32) (domain.Account, error)
	Pay(ctx context.Context, accountID string) (domain.Account, error)
	PayInstallment(ctx context.Context, accountID string) (domain.Account, error)
}

// Handler facilitates loan delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns a loan handler.
func NewHandler(ls Service) *Handler {
	return &Handler{service: ls}
}

type accountData struct {
	Account domain.Account `json:"account"`
}

func writeError(gctx *gin.Context, err error) {
	var invalid *domain.InvalidValueError

	switch {
	case err == domain.ErrAccountNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case err == domain.ErrLoanAlreadyActive:
		gctx.JSON(http.StatusConflict, web.Error(err))
	case err == domain.ErrInvalidAmount,
		err == domain.ErrNoActiveLoan,
		err == domain.ErrLoanInsufficientBalance,
		errors.As(err, &invalid):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

type createRequest struct {
	AccountID    string `json:"account_id" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
	Installments int32  `json:"installments" binding:"required,min=1"`
}

// Create handles the http request to issue a loan.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
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

	account, err := h.service.Create(ctx, req.AccountID, req.Amount, req.Installments)
	if err != nil {
		l.Info().Err(err).Send()
		writeError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountData{account}})
}

type payRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	// Full settles the remaining principal at once; otherwise one
	// installment is paid.
	Full bool `json:"full"`
}

// Pay handles the http request to repay a loan in full or by installment.
func (h *Handler) Pay(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req payRequest
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

	pay := h.service.PayInstallment
	if req.Full {
		pay = h.service.Pay
	}

	account, err := pay(ctx, req.AccountID)
	if err != nil {
		l.Info().Err(err).Send()
		writeError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountData{account}})
}
