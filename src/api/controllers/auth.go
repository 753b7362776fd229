package controllers

import (
	"context"
	"errors"

	"tracker/src/models"
	"tracker/src/repositories"
	"tracker/src/schemas"
	"tracker/src/utils"

	"github.com/go-chi/jwtauth"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// Signup registers a new account. The password is stored only as a bcrypt hash.
func (c *Controller) Signup(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return utils.BadRequest("Username and password required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	user := &models.User{Username: username, PasswordHash: string(hash)}
	if err := c.Users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			return utils.BadRequest("Username already exists")
		}
		return err
	}
	return nil
}

// Login verifies credentials and issues a signed bearer token. An unknown
// username and a wrong password produce the same error.
func (c *Controller) Login(ctx context.Context, username, password string) (*schemas.TokenResponse, error) {
	if username == "" || password == "" {
		return nil, utils.BadRequest("Username and password required")
	}

	user, err := c.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, utils.Unauthorized("Invalid credentials")
	}

	claims := map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
		"jti":      uuid.NewString(),
	}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiryIn(claims, c.TokenTTL)

	_, tokenString, err := c.TokenAuth.Encode(claims)
	if err != nil {
		return nil, err
	}

	return &schemas.TokenResponse{Token: tokenString}, nil
}
