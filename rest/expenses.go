package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hpmalinova/Finance-Tracker/model"
	"github.com/hpmalinova/Finance-Tracker/repository"
)

// Legacy expense endpoints. New clients use /api/transactions; these
// stay for data written before the transactions collection existed.

func (a *App) getExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	expenses, err := a.Expenses.FindRecent(r.Context(), userID, recentLimit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, expenses)
}

func (a *App) getExpensePage(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	start, end, err := getDateRange(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid date filter")
		return
	}
	page, limit := getPageParams(r)

	expenses, total, err := a.Expenses.FindPage(r.Context(), userID, start, end, page, limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	pages := totalPages(total, limit)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"expenses": expenses,
		"pagination": model.Pagination{
			CurrentPage:  page,
			TotalPages:   pages,
			TotalItems:   total,
			ItemsPerPage: limit,
			HasNext:      page < pages,
			HasPrev:      page > 1,
		},
	})
}

func (a *App) addExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	expense := &model.Expense{}
	if err := json.NewDecoder(r.Body).Decode(expense); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	expense.UserID = userID

	if err := a.Validator.Struct(expense); err != nil {
		errs := err.(validator.ValidationErrors)
		respondWithValidationError(errs.Translate(a.Translator), w)
		return
	}

	expense, err := a.Expenses.Create(r.Context(), expense)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := a.applyToBudget(r, userID, expense.Category, expense.Date, expense.Amount); err != nil {
		log.Printf("updating budget for expense %s: %v", expense.ID.Hex(), err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, expense)
}

func (a *App) updateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid expense ID")
		return
	}

	expense := &model.Expense{}
	if err := json.NewDecoder(r.Body).Decode(expense); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.Validator.Struct(expense); err != nil {
		errs := err.(validator.ValidationErrors)
		respondWithValidationError(errs.Translate(a.Translator), w)
		return
	}

	updated, err := a.Expenses.Update(r.Context(), id, userID, expense)
	if err != nil {
		switch err {
		case repository.ErrNotFound:
			respondWithError(w, http.StatusNotFound, "Expense not found")
		default:
			respondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

func (a *App) deleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid expense ID")
		return
	}

	if err := a.Expenses.Delete(r.Context(), id, userID); err != nil {
		switch err {
		case repository.ErrNotFound:
			respondWithError(w, http.StatusNotFound, "Expense not found")
		default:
			respondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Expense deleted successfully"})
}
