package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	billAPI "utilibill/internal/app/server/api/http/bill"
	branchAPI "utilibill/internal/app/server/api/http/branch"
	customerAPI "utilibill/internal/app/server/api/http/customer"
	demandtypeAPI "utilibill/internal/app/server/api/http/demandtype"
	employeeAPI "utilibill/internal/app/server/api/http/employee"
	healthAPI "utilibill/internal/app/server/api/http/health"
	"utilibill/internal/app/server/api/http/middleware"
	"utilibill/internal/app/server/api/http/middleware/auth"
	"utilibill/internal/app/server/api/http/middleware/logger"
	paymentAPI "utilibill/internal/app/server/api/http/payment"
	userAPI "utilibill/internal/app/server/api/http/user"
	"utilibill/internal/domain/bill"
	"utilibill/internal/domain/branch"
	"utilibill/internal/domain/customer"
	"utilibill/internal/domain/demandtype"
	"utilibill/internal/domain/employee"
	"utilibill/internal/domain/payment"
	"utilibill/internal/domain/session"
	"utilibill/internal/domain/user"
	"utilibill/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health     *healthAPI.Handler
	User       *userAPI.Handler
	Branch     *branchAPI.Handler
	DemandType *demandtypeAPI.Handler
	Customer   *customerAPI.Handler
	Employee   *employeeAPI.Handler
	Bill       *billAPI.Handler
	Payment    *paymentAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Utilibill API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(storage, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Branch.SetupRoutes(API)
	h.DemandType.SetupRoutes(API)
	h.Customer.SetupRoutes(API)
	h.Employee.SetupRoutes(API)
	h.Bill.SetupRoutes(API)
	h.Payment.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, log *slog.Logger) *Handlers {
	pool := storage.Pool()

	sessionRepo := postgres.NewSessionRepository(pool, log)
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(pool, log)
	userService := user.NewService(userRepo, user.NewPasswordValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	publicMWs := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, publicMWs, middlewares.GetAllAndClear())

	branchRepo := postgres.NewBranchRepository(pool, log)
	branchService := branch.NewService(branchRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	branchHandler := branchAPI.NewHandler(branchService, log, middlewares.GetAllAndClear())

	demandTypeRepo := postgres.NewDemandTypeRepository(pool, log)
	demandTypeService := demandtype.NewService(demandTypeRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	demandTypeHandler := demandtypeAPI.NewHandler(demandTypeService, log, middlewares.GetAllAndClear())

	customerRepo := postgres.NewCustomerRepository(pool, log)
	customerService := customer.NewService(customerRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	customerHandler := customerAPI.NewHandler(customerService, log, middlewares.GetAllAndClear())

	employeeRepo := postgres.NewEmployeeRepository(pool, log)
	employeeService := employee.NewService(employeeRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	employeeHandler := employeeAPI.NewHandler(employeeService, log, middlewares.GetAllAndClear())

	billRepo := postgres.NewBillRepository(pool, log)
	billService := bill.NewService(billRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	billHandler := billAPI.NewHandler(billService, log, middlewares.GetAllAndClear())

	paymentRepo := postgres.NewPaymentRepository(pool, log)
	paymentService := payment.NewService(paymentRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	paymentHandler := paymentAPI.NewHandler(paymentService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:     healthHandler,
		User:       userHandler,
		Branch:     branchHandler,
		DemandType: demandTypeHandler,
		Customer:   customerHandler,
		Employee:   employeeHandler,
		Bill:       billHandler,
		Payment:    paymentHandler,
	}
}
