package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"phonebook/internal/token"
	dErrors "phonebook/pkg/domain-errors"
	"phonebook/pkg/platform/httputil"
	"phonebook/pkg/requestcontext"
)

// Service defines the auth operations the handler depends on.
type Service interface {
	IssueClientCredentials(ctx context.Context, clientID, clientSecret string) (*token.IssuedToken, error)
	Authorize(ctx context.Context, clientID string) (*token.IssuedToken, error)
}

// Handler wires the token-issuing endpoints. These routes are mounted outside
// the bearer middleware: their purpose is to mint the tokens that middleware
// verifies.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an auth handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the auth endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/v1/oauth/authorize", h.HandleAuthorize)
	r.Post("/api/v1/oauth/token", h.HandleToken)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// HandleToken handles POST /api/v1/oauth/token (client credentials grant).
func (h *Handler) HandleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "malformed form body"))
		return
	}

	if grantType := r.PostForm.Get("grant_type"); grantType != "client_credentials" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "unsupported grant type"))
		return
	}

	clientID := r.PostForm.Get("client_id")
	clientSecret := r.PostForm.Get("client_secret")
	if id, secret, ok := r.BasicAuth(); ok {
		clientID, clientSecret = id, secret
	}

	issued, err := h.service.IssueClientCredentials(r.Context(), clientID, clientSecret)
	if err != nil {
		h.logger.WarnContext(r.Context(), "token request rejected",
			"request_id", requestcontext.RequestID(r.Context()),
			"client_id", clientID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "access token issued",
		"request_id", requestcontext.RequestID(r.Context()),
		"client_id", clientID,
		"jti", issued.TokenID,
	)
	httputil.WriteJSON(w, http.StatusOK, tokenResponse{
		AccessToken: issued.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   issued.ExpiresIn,
	})
}

// HandleAuthorize handles GET /api/v1/oauth/authorize. The legacy endpoint
// auto-approved its single user and answered with the token payload; that
// behavior is kept.
func (h *Handler) HandleAuthorize(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("client_id")
	if clientID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "client_id is required"))
		return
	}

	issued, err := h.service.Authorize(r.Context(), clientID)
	if err != nil {
		h.logger.WarnContext(r.Context(), "authorize request rejected",
			"request_id", requestcontext.RequestID(r.Context()),
			"client_id", clientID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"token": issued.AccessToken})
}
