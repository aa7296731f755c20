package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/hpmalinova/Finance-Tracker/model"
	"github.com/hpmalinova/Finance-Tracker/repository"
)

func (a *App) register(w http.ResponseWriter, r *http.Request) {
	user := &model.User{}
	if err := json.NewDecoder(r.Body).Decode(user); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.Validator.Struct(user); err != nil {
		errs := err.(validator.ValidationErrors)
		respondWithValidationError(errs.Translate(a.Translator), w)
		return
	}

	// Check if user exists
	if _, err := a.Users.FindByEmail(r.Context(), user.Email); err == nil {
		respondWithError(w, http.StatusBadRequest, "User already exists")
		return
	} else if err != repository.ErrNotFound {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	pass, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Password encryption failed")
		return
	}
	user.Password = string(pass)

	if user, err = a.Users.Create(r.Context(), user); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := a.createToken(user)
	if err != nil {
		log.Printf("signing token: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Could not create token")
		return
	}
	a.setTokenCookie(w, token)

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"token": token,
		"user": map[string]string{
			"id":       user.ID.Hex(),
			"email":    user.Email,
			"username": user.Username,
		},
	})
}

func (a *App) login(w http.ResponseWriter, r *http.Request) {
	credentials := &model.UserLogin{}
	if err := json.NewDecoder(r.Body).Decode(credentials); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := a.Users.FindByEmail(r.Context(), credentials.Email)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(credentials.Password))
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := a.createToken(user)
	if err != nil {
		log.Printf("signing token: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Could not create token")
		return
	}
	a.setTokenCookie(w, token)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user": map[string]string{
			"id":       user.ID.Hex(),
			"email":    user.Email,
			"username": user.Username,
		},
	})
}

func (a *App) logout(w http.ResponseWriter, r *http.Request) {
	a.clearTokenCookie(w)
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}
