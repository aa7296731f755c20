package rest

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hpmalinova/Finance-Tracker/model"
	"github.com/hpmalinova/Finance-Tracker/repository"
	"github.com/hpmalinova/Finance-Tracker/stats"
)

const recentLimit = 100

func (a *App) getTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	transactions, err := a.Transactions.FindRecent(r.Context(), userID, recentLimit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, transactions)
}

func (a *App) getTransactionPage(w http.ResponseWriter, r *http.Request) {
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

	transactions, total, err := a.Transactions.FindPage(r.Context(), userID, start, end, page, limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	pages := totalPages(total, limit)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": transactions,
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

func (a *App) addTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	transaction := &model.Transaction{}
	if err := json.NewDecoder(r.Body).Decode(transaction); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	transaction.UserID = userID

	if err := a.Validator.Struct(transaction); err != nil {
		errs := err.(validator.ValidationErrors)
		respondWithValidationError(errs.Translate(a.Translator), w)
		return
	}

	transaction, err := a.Transactions.Create(r.Context(), transaction)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// The transaction is already durable at this point; a failed budget
	// update is surfaced but never rolls it back.
	if err := a.applyToBudget(r, userID, transaction.Category, transaction.Date, transaction.Amount); err != nil {
		log.Printf("updating budget for transaction %s: %v", transaction.ID.Hex(), err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, transaction)
}

// applyToBudget increments the matching budget's running spend for the
// calendar month of the record's date.
func (a *App) applyToBudget(r *http.Request, userID primitive.ObjectID, category string, date time.Time, amount float64) error {
	month := stats.MonthKey(date)
	return a.Budgets.AddSpent(r.Context(), userID, category, month, date.Year(), amount)
}

func (a *App) updateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	transaction := &model.Transaction{}
	if err := json.NewDecoder(r.Body).Decode(transaction); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.Validator.Struct(transaction); err != nil {
		errs := err.(validator.ValidationErrors)
		respondWithValidationError(errs.Translate(a.Translator), w)
		return
	}

	updated, err := a.Transactions.Update(r.Context(), id, userID, transaction)
	if err != nil {
		switch err {
		case repository.ErrNotFound:
			respondWithError(w, http.StatusNotFound, "Transaction not found")
		default:
			respondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

func (a *App) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	if err := a.Transactions.Delete(r.Context(), id, userID); err != nil {
		switch err {
		case repository.ErrNotFound:
			respondWithError(w, http.StatusNotFound, "Transaction not found")
		default:
			respondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
}

func (a *App) getDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	dashboard, err := stats.Dashboard(r.Context(), a.Transactions, userID, time.Now())
	if err != nil {
		log.Printf("building dashboard for %s: %v", userID.Hex(), err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, dashboard)
}
