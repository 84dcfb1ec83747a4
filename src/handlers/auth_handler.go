package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"fintrack-server/src/models"
	"fintrack-server/src/store"
	"fintrack-server/src/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func Signup(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Errorf("Failed to decode signup request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		req.Email = strings.TrimSpace(req.Email)
		req.Username = strings.TrimSpace(req.Username)

		if !util.ValidateName(req.FirstName) || !util.ValidateName(req.LastName) {
			http.Error(w, "firstname and lastname must be at least 3 characters", http.StatusBadRequest)
			return
		}
		if !util.ValidateName(req.Username) {
			http.Error(w, "username must be at least 3 characters", http.StatusBadRequest)
			return
		}
		if !util.ValidateEmail(req.Email) {
			logrus.Errorf("Email validation failed during signup - Email: %s", req.Email)
			http.Error(w, "invalid email format", http.StatusBadRequest)
			return
		}
		if !util.ValidatePassword(req.Password) {
			http.Error(w, "password must be at least 5 characters", http.StatusBadRequest)
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logrus.Errorf("Failed to hash password for user %s: %v", req.Username, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		created, err := users.Create(r.Context(), &models.User{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Username:     req.Username,
			Email:        strings.ToLower(req.Email),
			PasswordHash: string(hashedPassword),
		})
		if err != nil {
			if strings.Contains(err.Error(), "duplicate key") {
				logrus.Errorf("Signup failed - email already exists - Email: %s", req.Email)
				http.Error(w, "email already exists", http.StatusConflict)
				return
			}
			logrus.Errorf("Failed to create user %s: %v", req.Username, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		logrus.Infof("Successful signup - User: %s, ID: %d", created.Username, created.ID)

		tokenString, err := signToken(created)
		if err != nil {
			logrus.Errorf("Failed to generate JWT token for user %s: %v", created.Username, err)
			http.Error(w, "error generating token", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{"token": tokenString})
	}
}

func Login(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			logrus.Errorf("Failed to decode login request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		user, err := users.FindByEmail(r.Context(), strings.ToLower(strings.TrimSpace(credentials.Email)))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				logrus.Errorf("Login failed - unknown email: %s", credentials.Email)
				http.Error(w, "invalid credentials", http.StatusUnauthorized)
				return
			}
			logrus.Errorf("Failed to look up user during login - Email: %s: %v", credentials.Email, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
			logrus.Errorf("Invalid password attempt for email %s from IP %s", credentials.Email, r.RemoteAddr)
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		tokenString, err := signToken(user)
		if err != nil {
			logrus.Errorf("Failed to generate JWT token for user %s: %v", user.Username, err)
			http.Error(w, "error generating token", http.StatusInternalServerError)
			return
		}

		logrus.Infof("Successful login - User: %s, ID: %d", user.Username, user.ID)
		writeJSON(w, http.StatusOK, map[string]string{"token": tokenString})
	}
}

func signToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(time.Hour * 168).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
