package api

import (
	"errors"

	"github.com/luiskerner/finance-newsletter/internal/domain/models"
	"github.com/luiskerner/finance-newsletter/internal/domain/repository"
	"github.com/luiskerner/finance-newsletter/internal/usecase"
	xhttp "github.com/luiskerner/finance-newsletter/pkg/http"
	xlogger "github.com/luiskerner/finance-newsletter/pkg/logger"
	"github.com/luiskerner/finance-newsletter/pkg/util"

	"github.com/labstack/echo/v4"
)

// NewsletterHandler is the catch-all boundary for the pipeline: every
// error surfaces here as an inline payload and never crashes the shell.
type NewsletterHandler struct {
	logger  *xlogger.Logger
	builder *usecase.Builder
	tickers repository.TickerSource
}

func NewNewsletterHandler(logger *xlogger.Logger, builder *usecase.Builder, tickers repository.TickerSource) *NewsletterHandler {
	return &NewsletterHandler{logger: logger, builder: builder, tickers: tickers}
}

func (h *NewsletterHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/newsletter/preview", h.Preview)
	g.POST("/newsletter/send", h.Send)
	g.GET("/tickers/random", h.RandomTickers)
	g.GET("/regions", h.Regions)
	e.GET("/health", h.Health)
}

// Preview runs the full pipeline and returns the assembled document
// without sending it.
func (h *NewsletterHandler) Preview(c echo.Context) error {
	req := &models.BuildRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	tickers := util.NormalizeTickers(req.Tickers, models.MaxTickers)
	if len(tickers) == 0 {
		return xhttp.BadRequestResponse(c, xhttp.BadRequestError("at least one non-empty ticker is required"))
	}

	res, err := h.builder.Build(c.Request().Context(), tickers, req.Region)
	if err != nil {
		h.logger.Error("newsletter build failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapDomainError(err))
	}

	return xhttp.SuccessResponse(c, buildResponse(res))
}

// Send rebuilds the newsletter from the same inputs and delivers it. The
// delivery credential is checked only here, never at preview time.
func (h *NewsletterHandler) Send(c echo.Context) error {
	req := &models.SendRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	tickers := util.NormalizeTickers(req.Tickers, models.MaxTickers)
	if len(tickers) == 0 {
		return xhttp.BadRequestResponse(c, xhttp.BadRequestError("at least one non-empty ticker is required"))
	}

	ctx := c.Request().Context()
	res, err := h.builder.Build(ctx, tickers, req.Region)
	if err != nil {
		h.logger.Error("newsletter build failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapDomainError(err))
	}

	receipt, err := h.builder.Send(ctx, req.Email, res.Document)
	if err != nil {
		h.logger.Error("newsletter delivery failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapDomainError(err))
	}

	return xhttp.SuccessResponse(c, models.SendResponse{
		Recipient:  req.Email,
		StatusCode: receipt.StatusCode,
	})
}

// RandomTickers samples symbols from the reference index.
func (h *NewsletterHandler) RandomTickers(c echo.Context) error {
	n := util.ParseIntDefault(c.QueryParam("n"), models.MaxTickers)
	if n < 1 || n > models.MaxTickers {
		n = models.MaxTickers
	}

	tickers, err := h.tickers.Random(c.Request().Context(), n)
	if err != nil {
		h.logger.Error("random tickers failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("reference index unavailable").WithError(err))
	}

	return xhttp.SuccessResponse(c, models.RandomTickersResponse{Tickers: tickers})
}

// Regions lists the fixed region choices.
func (h *NewsletterHandler) Regions(c echo.Context) error {
	return xhttp.SuccessResponse(c, models.RegionsResponse{Regions: models.Regions})
}

// Health is a liveness probe.
func (h *NewsletterHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func buildResponse(res *usecase.BuildResult) models.BuildResponse {
	last := res.Prices.LastClose()
	rows := make([]models.TickerClose, 0, len(res.Prices.Tickers))
	for _, t := range res.Prices.Tickers {
		rows = append(rows, models.TickerClose{Ticker: t, Close: last[t]})
	}

	return models.BuildResponse{
		Document:    res.Document.Body,
		ChartPNG:    res.Document.Chart.Base64(),
		LatestClose: rows,
		News:        res.News,
	}
}

// mapDomainError translates pipeline error kinds to HTTP app errors.
func mapDomainError(err error) error {
	var (
		genErr      *models.GenerationError
		feedErr     *models.FeedError
		priceErr    *models.PriceDataError
		cfgErr      *models.ConfigError
		deliveryErr *models.DeliveryError
	)
	switch {
	case errors.As(err, &genErr):
		return xhttp.UpstreamError("text generation failed").WithError(err)
	case errors.As(err, &feedErr):
		return xhttp.UpstreamError("news feed unavailable").WithError(err)
	case errors.As(err, &priceErr):
		return xhttp.UpstreamError(err.Error()).WithError(err)
	case errors.As(err, &cfgErr):
		return xhttp.PreconditionError(err.Error()).WithError(err)
	case errors.As(err, &deliveryErr):
		return xhttp.UpstreamError("email delivery rejected").WithError(err)
	default:
		return xhttp.InternalErrorf("newsletter pipeline: %v", err)
	}
}
