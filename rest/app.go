package rest

import (
	"log"
	"net/http"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/hpmalinova/Finance-Tracker/contract"
)

type App struct {
	Router *mux.Router

	Users        contract.UserRepo
	Transactions contract.TransactionRepo
	Expenses     contract.ExpenseRepo
	Budgets      contract.BudgetRepo

	Validator  *validator.Validate
	Translator ut.Translator

	JWTSecret   []byte
	TokenTTL    time.Duration
	FrontendURL string
}

func (a *App) Init() {
	a.Validator = validator.New()
	eng := en.New()
	uni := ut.New(eng, eng)

	var found bool
	a.Translator, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(a.Validator, a.Translator); err != nil {
		log.Fatal(err)
	}

	if a.TokenTTL == 0 {
		a.TokenTTL = 7 * 24 * time.Hour
	}

	a.Router = mux.NewRouter()
	a.initializeRoutes()
}

func (a *App) Run(addr string) {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{a.FrontendURL}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	)
	log.Fatal(http.ListenAndServe(addr, cors(a.Router)))
}

func (a *App) initializeRoutes() {
	a.Router.HandleFunc("/health", a.health).Methods(http.MethodGet)

	auth := a.Router.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/register", a.register).Methods(http.MethodPost)
	auth.HandleFunc("/login", a.login).Methods(http.MethodPost)
	auth.HandleFunc("/logout", a.logout).Methods(http.MethodPost)

	// Auth routes
	api := a.Router.PathPrefix("/api").Subrouter()
	api.Use(a.JwtVerify)

	api.HandleFunc("/transactions", a.getTransactions).Methods(http.MethodGet)
	api.HandleFunc("/transactions", a.addTransaction).Methods(http.MethodPost)
	api.HandleFunc("/transactions/transactions", a.getTransactionPage).Methods(http.MethodGet)
	api.HandleFunc("/transactions/dashboard", a.getDashboard).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{id:[0-9a-fA-F]{24}}", a.updateTransaction).Methods(http.MethodPut)
	api.HandleFunc("/transactions/{id:[0-9a-fA-F]{24}}", a.deleteTransaction).Methods(http.MethodDelete)

	api.HandleFunc("/expenses", a.getExpenses).Methods(http.MethodGet)
	api.HandleFunc("/expenses", a.addExpense).Methods(http.MethodPost)
	api.HandleFunc("/expenses/transactions", a.getExpensePage).Methods(http.MethodGet)
	api.HandleFunc("/expenses/{id:[0-9a-fA-F]{24}}", a.updateExpense).Methods(http.MethodPut)
	api.HandleFunc("/expenses/{id:[0-9a-fA-F]{24}}", a.deleteExpense).Methods(http.MethodDelete)

	api.HandleFunc("/budgets", a.getBudgets).Methods(http.MethodGet)
	api.HandleFunc("/budgets", a.setBudget).Methods(http.MethodPost)
	api.HandleFunc("/budgets/alerts", a.getBudgetAlerts).Methods(http.MethodGet)
}

func (a *App) health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
