package api

import (
	"net/http"

	"fintrack-server/src/handlers"
	"fintrack-server/src/middleware"
	"fintrack-server/src/service"
	"fintrack-server/src/store"

	"github.com/go-chi/chi/v5"
)

func NewRouter(users store.UserStore, transactions *service.TransactionService, budgets *service.BudgetService, isDemo bool) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.DemoModeMiddleware(isDemo))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/user", func(r chi.Router) {
		r.Post("/signup", handlers.Signup(users))
		r.Post("/login", handlers.Login(users))
		r.With(middleware.JWTAuthMiddleware(users)).Get("/getuser", handlers.GetUser(users))
	})

	r.Route("/transaction", func(r chi.Router) {
		r.Use(middleware.JWTAuthMiddleware(users))
		r.Post("/addTransaction", handlers.AddTransaction(transactions))
		r.Get("/getTransaction", handlers.GetAllTransactions(transactions))
		r.Get("/getTransaction/{type}", handlers.GetTransactionsByType(transactions))
		r.Get("/balance", handlers.GetBalance(transactions))
		r.Get("/weeklyExpense", handlers.GetWeeklyExpense(transactions))
		r.Get("/categoryWiseExpense", handlers.GetCategoryWiseExpense(transactions))
		r.Delete("/delete/{transactionId}", handlers.DeleteTransaction(transactions))
	})

	r.Route("/budget", func(r chi.Router) {
		r.Use(middleware.JWTAuthMiddleware(users))
		r.Post("/createBudget", handlers.CreateBudget(budgets))
		r.Get("/getBudget", handlers.GetBudgets(budgets))
		// Route spelling kept for compatibility with existing clients.
		r.Get("/remaningBudget", handlers.GetRemainingBudgets(budgets))
		r.Delete("/deleteBudget/{id}", handlers.DeleteBudget(budgets))
	})

	return r
}
