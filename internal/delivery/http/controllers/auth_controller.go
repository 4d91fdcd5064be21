package controllers

import (
	"log/slog"
	"net/http"

	"timeledger/internal/delivery/http/helpers"
	"timeledger/internal/domain"
)

// LoginRequest is the request body for POST /api/v1/auth/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// Validate implements Validator.
func (r LoginRequest) Validate() []string {
	var errs []string
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the data payload returned on a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// LoginSuccessResponse is the success envelope for POST /api/v1/auth/login.
type LoginSuccessResponse struct {
	Data  *LoginResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AuthController handles the single-password owner login. The tracker has no
// user accounts; the password gates the whole instance.
type AuthController struct {
	Logger       *slog.Logger
	PasswordHash string
	Passwords    domain.PasswordVerifier
	Tokens       domain.TokenIssuer
	TokenTTLSecs int64
}

func NewAuthController(logger *slog.Logger, passwordHash string, passwords domain.PasswordVerifier, tokens domain.TokenIssuer, ttlSecs int64) *AuthController {
	return &AuthController{
		Logger:       logger,
		PasswordHash: passwordHash,
		Passwords:    passwords,
		Tokens:       tokens,
		TokenTTLSecs: ttlSecs,
	}
}

// Login godoc
// @Summary Log in
// @Description Exchanges the instance password for a Bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Instance password"
// @Success 200 {object} controllers.LoginSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/v1/auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Passwords.Compare(c.PasswordHash, req.Password); err != nil {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid password")
		return
	}
	token, err := c.Tokens.Issue()
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, &LoginResponse{
		Token:     token,
		ExpiresIn: c.TokenTTLSecs,
	})
}
