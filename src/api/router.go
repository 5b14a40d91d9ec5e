package api

import (
	"net/http"

	"fintrack-server/src/config"
	"fintrack-server/src/handlers"
	"fintrack-server/src/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRouter(pool *pgxpool.Pool, cfg config.Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.Get("/", handlers.APIRoot())
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", handlers.APIStatus())

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", handlers.GetTransactions(pool))
			r.Post("/", handlers.CreateTransaction(pool))
			r.Get("/dashboard", handlers.GetDashboardSummary(pool))
			r.Get("/charts/monthly-expenses", handlers.GetMonthlyExpensesChart(pool))
			r.Get("/charts/category-pie", handlers.GetCategoryPieChart(pool))
			r.Post("/seed", handlers.SeedTransactions(pool, cfg))

			// Legacy aliases; both serve the summary-only view of the list.
			r.Get("/summary", func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, "/api/transactions?limit=0", http.StatusFound)
			})
			r.Get("/categories", func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, "/api/transactions?limit=0", http.StatusFound)
			})

			r.Put("/{id}", handlers.UpdateTransaction(pool))
			r.Delete("/{id}", handlers.DeleteTransaction(pool))
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Get("/", handlers.GetBudgets(pool))
			r.Post("/", handlers.CreateBudget(pool))
			r.Get("/comparison", handlers.GetBudgetComparison(pool))
			r.Put("/{id}", handlers.UpdateBudget(pool))
			r.Delete("/{id}", handlers.DeleteBudget(pool))
		})
	})

	r.NotFound(handlers.NotFound())

	return r
}
