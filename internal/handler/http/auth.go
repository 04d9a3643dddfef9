package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/brickmart/console-backend-go/internal/domain/auth"
	"github.com/brickmart/console-backend-go/internal/handler/http/response"
	"github.com/brickmart/console-backend-go/internal/pkg/jwt"
	"github.com/brickmart/console-backend-go/internal/pkg/oauth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService    jwt.Service
	authService   auth.AuthService
	googleService oauth.GoogleService
	frontendURL   string
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService, googleService oauth.GoogleService, frontendURL string) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:    jwtService,
		authService:   authService,
		googleService: googleService,
		frontendURL:   frontendURL,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	session := auth.SessionTrackingRequest{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
	loginResp, err := a.authService.Login(r.Context(), loginReq, session)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	refreshTokenCookie := a.jwtService.RefreshTokenCookie(loginResp.RefreshToken, loginResp.RefreshExpiresAt)
	http.SetCookie(w, refreshTokenCookie)
	slog.Info("User logged in", "user_id", loginResp.UserID)
	response.Created(w, "Logged in successfully", loginResp)
}

// LoginWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state := a.googleService.GenerateState(r.UserAgent())
	cookie := &http.Cookie{
		Name:     "state",
		Value:    state,
		Path:     "/api/v1/auth/oauth/callback/google",
		Expires:  time.Now().Add(5 * time.Minute),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	url := a.googleService.RedirectURL(state)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	redirectWithError := func(errorMsg string) {
		redirectURL := fmt.Sprintf("%s/auth/callback/google?error=%s", a.frontendURL, url.QueryEscape(errorMsg))
		http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
	}

	stateCookie, err := r.Cookie("state")
	if err != nil || stateCookie.Value == "" {
		slog.Error("OAuth state cookie missing", "error", auth.ErrOAuthStateMismatch)
		redirectWithError("state_cookie_missing")
		return
	}
	if errorValue := r.URL.Query().Get("error"); errorValue != "" {
		slog.Error("OAuth callback error", "error", errorValue)
		redirectWithError(errorValue)
		return
	}
	if stateParam := r.URL.Query().Get("state"); stateParam != stateCookie.Value {
		slog.Error("OAuth state mismatch", "error", auth.ErrOAuthStateMismatch)
		redirectWithError("state_mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		redirectWithError("code_missing")
		return
	}

	token, err := a.googleService.VerifyToken(r.Context(), code)
	if err != nil {
		slog.Error("OAuth token exchange failed", "error", err)
		redirectWithError("token_exchange_failed")
		return
	}

	info, err := a.googleService.VerifyUser(r.Context(), token)
	if err != nil {
		slog.Error("OAuth userinfo fetch failed", "error", err)
		redirectWithError("userinfo_failed")
		return
	}

	session := auth.SessionTrackingRequest{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
	loginResp, err := a.authService.LoginWithGoogle(r.Context(), info, session)
	if err != nil {
		slog.Error("Google login service error", "error", err)
		redirectWithError("login_failed")
		return
	}

	refreshTokenCookie := a.jwtService.RefreshTokenCookie(loginResp.RefreshToken, loginResp.RefreshExpiresAt)
	http.SetCookie(w, refreshTokenCookie)

	redirectURL := fmt.Sprintf("%s/auth/callback/google?access_token=%s", a.frontendURL, url.QueryEscape(loginResp.AccessToken))
	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := refreshTokenFromCookie(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	session := auth.SessionTrackingRequest{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
	loginResp, err := a.authService.Refresh(r.Context(), refreshToken, session)
	if err != nil {
		slog.Error("Refresh service error", "error", err)
		response.HandleError(w, err)
		return
	}

	refreshTokenCookie := a.jwtService.RefreshTokenCookie(loginResp.RefreshToken, loginResp.RefreshExpiresAt)
	http.SetCookie(w, refreshTokenCookie)
	response.Success(w, loginResp)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := refreshTokenFromCookie(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := a.authService.Logout(r.Context(), refreshToken); err != nil {
		response.HandleError(w, err)
		return
	}

	clearedCookie := &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
	http.SetCookie(w, clearedCookie)
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

func refreshTokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil || cookie.Value == "" {
		return "", auth.ErrInvalidToken
	}
	return cookie.Value, nil
}
