// Package accountdelivery manages the delivery layer of accounts.
package accountdelivery

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

// Service provides the service layer interface needed by the account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, owner string, tier domain.Tier) (domain.Account, error)
	Get(ctx context.Context, id string) (domain.Account, error)
	List(ctx context.Context, owner string) ([]domain.Account, error)
	Deposit(ctx context.Context, accountID, amount string) (domain.Account, error)
	ResetDailyDeposits(ctx context.Context, accountID string) (domain.Account, error)
	History(ctx context.Context, accountID string) ([]domain.Transaction, error)
	Notifications(ctx context.Context, accountID string) ([]domain.Transaction, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns an account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

func bindErrorMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + web.GetErrorMsg(field)
	}

	return err.Error()
}

type accountData struct {
	Account domain.Account `json:"account"`
}

type createRequest struct {
	Owner string `json:"owner" binding:"required"`
	Tier  string `json:"tier" binding:"required,tier"`
}

// Create handles the http request to create an account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrorMessage(err)})

		return
	}

	account, err := h.service.Create(ctx, req.Owner, domain.Tier(req.Tier))
	if err != nil {
		switch err {
		case domain.ErrUnknownTier:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrAccountAlreadyExists:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountData{account}})
}

type uriRequest struct {
	ID string `uri:"id" binding:"required"`
}

// Get handles the http request to get an account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrorMessage(err)})

		return
	}

	account, err := h.service.Get(ctx, req.ID)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountData{account}})
}

type listRequest struct {
	Owner string `form:"owner" binding:"required"`
}

type accountsData struct {
	Accounts []domain.Account `json:"accounts"`
}

// List handles the http request to list a client's accounts.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrorMessage(err)})

		return
	}

	accounts, err := h.service.List(ctx, req.Owner)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountsData{accounts}})
}

type depositRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// Deposit handles the http request to deposit into an account.
func (h *Handler) Deposit(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrorMessage(err)})

		return
	}

	var req depositRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrorMessage(err)})

		return
	}

	account, err := h.service.Deposit(ctx, uri.ID, req.Amount)
	if err != nil {
		l.Info().Err(err).Send()

		var invalid *domain.InvalidValueError

		switch {
		case err == domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case err == domain.ErrInvalidAmount,
			err == domain.ErrNonPositiveAmount,
			errors.As(err, &invalid):
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountData{account}})
}

// ResetDailyDeposits handles the day-boundary reset of the deposit counter.
func (h *Handler) ResetDailyDeposits(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrorMessage(err)})

		return
	}

	account, err := h.service.ResetDailyDeposits(ctx, uri.ID)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountData{account}})
}

type transactionsData struct {
	Transactions []domain.Transaction `json:"transactions"`
}

// History handles the http request to read an account's transaction history.
func (h *Handler) History(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrorMessage(err)})

		return
	}

	history, err := h.service.History(ctx, uri.ID)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: transactionsData{history}})
}

// Notifications handles the http request to read an account's alerts.
func (h *Handler) Notifications(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrorMessage(err)})

		return
	}

	notifications, err := h.service.Notifications(ctx, uri.ID)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: transactionsData{notifications}})
}
