// Package pixdelivery manages the delivery layer of routing keys.
package pixdelivery

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

// Service provides the service layer interface needed by the pix delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package pixdelivery
type Service interface {
	Register(ctx context.Context, accountID string, kind domain.KeyKind, value string) (domain.PixKey, error)
	RegisterRandom(ctx context.Context, accountID string) (domain.PixKey, error)
	Resolve(ctx context.Context, kind domain.KeyKind, value string) (string, error)
}

// Handler facilitates pix delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns a pix handler.
func NewHandler(ps Service) *Handler {
	return &Handler{service: ps}
}

type keyData struct {
	Key domain.PixKey `json:"key"`
}

type registerRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	Kind      string `json:"kind" binding:"required,keykind"`
	// Value is ignored for RANDOM keys: the token comes from the generator.
	Value string `json:"value"`
}

// Register handles the http request to attach a routing key to an account.
func (h *Handler) Register(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req registerRequest
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

	kind := domain.KeyKind(req.Kind)

	var (
		key domain.PixKey
		err error
	)

	if kind == domain.KeyKindRandom {
		key, err = h.service.RegisterRandom(ctx, req.AccountID)
	} else {
		key, err = h.service.Register(ctx, req.AccountID, kind, req.Value)
	}

	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))

			return
		case domain.ErrPixKeyTaken:
			gctx.JSON(http.StatusConflict, web.Error(err))

			return
		case domain.ErrUnknownKeyKind, domain.ErrInvalidKeyFormat:
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: keyData{key}})
}

type resolveRequest struct {
	Kind  string `form:"kind" binding:"required,keykind"`
	Value string `form:"value" binding:"required"`
}

type resolveData struct {
	AccountID string `json:"account_id"`
}

// Resolve handles the http request to resolve a routing key to an account id.
func (h *Handler) Resolve(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req resolveRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
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

	accountID, err := h.service.Resolve(ctx, domain.KeyKind(req.Kind), req.Value)
	if err != nil {
		if err == domain.ErrPixKeyNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: resolveData{accountID}})
}
