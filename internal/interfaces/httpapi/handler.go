package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/seriea-gateway/internal/platform/logging"
	"github.com/riskibarqy/seriea-gateway/internal/usecase"
)

const maxRequestBodyBytes = 64 << 10

type Handler struct {
	clubService   *usecase.ClubService
	playerService *usecase.PlayerService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(clubService *usecase.ClubService, playerService *usecase.PlayerService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		clubService:   clubService,
		playerService: playerService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClub")
	defer span.End()

	club, ok := h.clubParam(ctx, w, r, "team")
	if !ok {
		return
	}

	item, err := h.clubService.GetClub(ctx, club)
	if err != nil {
		h.fail(ctx, w, "get club failed", err, "club", club)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubInfoToDTO(item))
}

func (h *Handler) GetClubStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClubStats")
	defer span.End()

	club, ok := h.clubParam(ctx, w, r, "team")
	if !ok {
		return
	}

	item, err := h.clubService.GetClubStats(ctx, club)
	if err != nil {
		h.fail(ctx, w, "get club stats failed", err, "club", club)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubStatsToDTO(item))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	club, ok := h.clubParam(ctx, w, r, "team")
	if !ok {
		return
	}

	players, err := h.playerService.ListPlayers(ctx, club)
	if err != nil {
		h.fail(ctx, w, "list players failed", err, "club", club)
		return
	}

	items := make([]playerStatsDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerStatsToDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateClub")
	defer span.End()

	club, ok := h.clubParam(ctx, w, r, "club")
	if !ok {
		return
	}

	var req updateClubRequest
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.clubService.UpdateClub(ctx, club, req.toUpdate())
	if err != nil {
		h.fail(ctx, w, "update club failed", err, "club", club)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubInfoToDTO(item))
}

func (h *Handler) RefreshClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshClub")
	defer span.End()

	club, ok := h.clubParam(ctx, w, r, "club")
	if !ok {
		return
	}

	item, err := h.clubService.RefreshClub(ctx, club)
	if err != nil {
		h.fail(ctx, w, "refresh club failed", err, "club", club)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubInfoToDTO(item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	player := strings.TrimSpace(r.PathValue("player"))
	if err := h.validateRequest(ctx, playerPathRequest{Player: player}); err != nil {
		writeError(ctx, w, err)
		return
	}

	deleted, err := h.playerService.DeletePlayer(ctx, player)
	if err != nil {
		h.fail(ctx, w, "delete player failed", err, "player", player)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deletedPlayerDTO{
		Message: fmt.Sprintf("%s has been successfully deleted from the team", deleted.Player.FirstName),
		Player:  playerStatsToDTO(deleted),
	})
}

func (h *Handler) clubParam(ctx context.Context, w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	club := strings.TrimSpace(r.PathValue(name))
	if err := h.validateRequest(ctx, clubPathRequest{Club: club}); err != nil {
		writeError(ctx, w, err)
		return "", false
	}
	return club, true
}

// fail logs client mistakes at warn and server failures at error before
// writing the mapped response.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
