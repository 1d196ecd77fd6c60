package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"

	"timetable-app/config"
	"timetable-app/database"
	"timetable-app/internal/domain/security"
	"timetable-app/internal/domain/users"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

// University single sign-on against the campus OIDC identity provider.

func ssoProvider(c *gin.Context) (*oidc.Provider, error) {
	if config.SSO_ISSUER_URL == "" {
		return nil, errors.New("SSO not configured")
	}
	return oidc.NewProvider(c.Request.Context(), config.SSO_ISSUER_URL)
}

func ssoOAuthConfig(provider *oidc.Provider) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.SSO_CLIENT_ID,
		ClientSecret: config.SSO_CLIENT_SECRET,
		RedirectURL:  config.SSO_REDIRECT_URL,
		Scopes: []string{
			oidc.ScopeOpenID,
			"email",
			"profile",
		},
		Endpoint: provider.Endpoint(),
	}
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GET /auth/sso
func SSOStart(c *gin.Context) {
	provider, err := ssoProvider(c)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "SSO not configured"})
		return
	}

	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}

	// store state in an HttpOnly cookie (simple + works well)
	c.SetCookie(
		"oauth_state",
		state,
		300, // 5 minutes
		"/",
		"",    // domain (set in prod)
		false, // secure (true in prod HTTPS)
		true,  // httpOnly
	)

	url := ssoOAuthConfig(provider).AuthCodeURL(state, oauth2.AccessTypeOnline)
	c.Redirect(http.StatusFound, url)
}

// GET /auth/sso/callback
func SSOCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code/state"})
		return
	}

	cookieState, err := c.Cookie("oauth_state")
	if err != nil || cookieState != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}

	provider, err := ssoProvider(c)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "SSO not configured"})
		return
	}

	tok, err := ssoOAuthConfig(provider).Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "failed to exchange code"})
		return
	}

	rawIDToken, ok := tok.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing id_token"})
		return
	}

	claims, err := verifySSOIDToken(c, provider, rawIDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := findOrCreateSSOUser(claims)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	// issue our normal JWT (same as Login)
	tokenString, err := issueAppJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create token"})
		return
	}

	redirect := config.SSO_FRONTEND_REDIRECT
	if redirect == "" {
		c.JSON(http.StatusOK, gin.H{"token": tokenString})
		return
	}
	c.Redirect(http.StatusFound, redirect+"?token="+tokenString)
}

/* ---------------- helpers ---------------- */

type ssoIDClaims struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}

func verifySSOIDToken(c *gin.Context, provider *oidc.Provider, rawIDToken string) (*ssoIDClaims, error) {
	ctx := c.Request.Context()

	verifier := provider.Verifier(&oidc.Config{
		ClientID: config.SSO_CLIENT_ID,
	})

	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, errors.New("invalid id_token")
	}

	var claims ssoIDClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, errors.New("failed to decode token claims")
	}

	if claims.Email == "" || claims.Sub == "" {
		return nil, errors.New("token missing required claims")
	}

	return &claims, nil
}

func findOrCreateSSOUser(sc *ssoIDClaims) (users.User, error) {
	var user users.User

	// 1) Try by sso_sub
	if sc.Sub != "" {
		if err := database.DB.Where("sso_sub = ?", sc.Sub).First(&user).Error; err == nil {
			return user, nil
		}
	}

	// 2) Try by email, then link sso_sub if missing
	if err := database.DB.Where("email = ?", sc.Email).First(&user).Error; err == nil {
		if user.SSOSub == nil {
			sub := sc.Sub
			user.SSOSub = &sub
			user.AuthProvider = "sso"
			user.IsVerified = true
			if err := database.DB.Save(&user).Error; err != nil {
				return users.User{}, err
			}
		}
		return user, nil
	}

	// 3) Create new user
	sub := sc.Sub
	user = users.User{
		Name:         firstNonEmpty(sc.GivenName, sc.Name),
		Lastname:     sc.FamilyName,
		Email:        sc.Email,
		Password:     nil,
		AuthProvider: "sso",
		SSOSub:       &sub,
		Role:         security.RoleNoRole,
		IsVerified:   true,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return users.User{}, err
	}
	return user, nil
}

func firstNonEmpty(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}
