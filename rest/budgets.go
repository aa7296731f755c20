package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hpmalinova/Finance-Tracker/model"
	"github.com/hpmalinova/Finance-Tracker/stats"
)

func (a *App) getBudgets(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	month := stats.MonthKey(time.Now())
	budgets, err := a.Budgets.FindByMonth(r.Context(), userID, month)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, budgets)
}

func (a *App) setBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	body := &model.BudgetLimit{}
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.Validator.Struct(body); err != nil {
		errs := err.(validator.ValidationErrors)
		respondWithValidationError(errs.Translate(a.Translator), w)
		return
	}

	now := time.Now()
	budget, err := a.Budgets.SetLimit(r.Context(), userID, body.Category, stats.MonthKey(now), now.Year(), body.LimitAmount)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, budget)
}

func (a *App) getBudgetAlerts(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	month := stats.MonthKey(time.Now())
	budgets, err := a.Budgets.FindByMonth(r.Context(), userID, month)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, stats.Alerts(budgets))
}
