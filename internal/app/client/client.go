package client

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"utilibill/internal/app/client/config"
	"utilibill/internal/domain/bill"
	"utilibill/internal/domain/branch"
	"utilibill/internal/domain/customer"
	"utilibill/internal/domain/demandtype"
	"utilibill/internal/domain/employee"
	"utilibill/internal/domain/payment"
	"utilibill/internal/editsession"
)

// App wires the HTTP client, the local store and the per-entity edit
// sessions together for the CLI commands.
type App struct {
	config *config.Config
	log    *slog.Logger
	store  *LocalStore
	http   *HTTPClient

	branches    *Resource[branch.Branch]
	demandTypes *Resource[demandtype.DemandType]
	customers   *Resource[customer.Customer]
	employees   *Resource[employee.Employee]
	bills       *Resource[bill.Bill]
	payments    *Resource[payment.Payment]

	billSession       *editsession.Store[bill.Bill]
	employeeSession   *editsession.Store[employee.Employee]
	customerSession   *editsession.Store[customer.Customer]
	demandTypeSession *editsession.Store[demandtype.DemandType]
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("init http client: %w", err)
	}

	store, err := NewLocalStore(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("init local store: %w", err)
	}

	return &App{
		config: cfg,
		log:    log,
		store:  store,
		http:   httpCl,

		branches:    NewResource[branch.Branch](httpCl, "/api/branches"),
		demandTypes: NewResource[demandtype.DemandType](httpCl, "/api/demand-types"),
		customers:   NewResource[customer.Customer](httpCl, "/api/customers"),
		employees:   NewResource[employee.Employee](httpCl, "/api/employees"),
		bills:       NewResource[bill.Bill](httpCl, "/api/bills"),
		payments:    NewResource[payment.Payment](httpCl, "/api/payments"),

		billSession:       editsession.NewStore[bill.Bill](store, "bill", log),
		employeeSession:   editsession.NewStore[employee.Employee](store, "employee", log),
		customerSession:   editsession.NewStore[customer.Customer](store, "customer", log),
		demandTypeSession: editsession.NewStore[demandtype.DemandType](store, "demandtype", log),
	}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

func (a *App) HealthCheck(ctx context.Context) error {
	return a.http.HealthCheck(ctx)
}

// Authenticate loads the saved token into the HTTP client. A missing token
// short-circuits to ErrUnauthorized before any network call.
func (a *App) Authenticate(ctx context.Context) error {
	token, err := a.store.Token(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return ErrUnauthorized
	}
	a.http.SetToken(token)
	return nil
}

func (a *App) Login(ctx context.Context, login, password string) error {
	token, err := a.http.Login(ctx, login, password)
	if err != nil {
		return err
	}
	return a.store.SaveToken(ctx, token)
}

func (a *App) Register(ctx context.Context, login, password string) error {
	return a.http.Register(ctx, login, password)
}

// Logout revokes the session server-side and always drops the local token
// together with any pending edit sessions, so the next login starts clean.
func (a *App) Logout(ctx context.Context) error {
	if err := a.Authenticate(ctx); err == nil {
		if err := a.http.Logout(ctx); err != nil {
			a.log.Warn("server-side logout failed", slog.String("error", err.Error()))
		}
	}

	for _, clear := range []func(context.Context) error{
		a.billSession.ClearEdit,
		a.employeeSession.ClearEdit,
		a.customerSession.ClearEdit,
		a.demandTypeSession.ClearEdit,
	} {
		if err := clear(ctx); err != nil {
			return err
		}
	}

	return a.store.ClearToken(ctx)
}

func (a *App) Branches() *Resource[branch.Branch]   { return a.branches }
func (a *App) Payments() *Resource[payment.Payment] { return a.payments }

func (a *App) BillList() *ListView[bill.Bill] {
	return NewListView[bill.Bill](a.bills, a.billSession, a.log)
}

func (a *App) CustomerList() *ListView[customer.Customer] {
	return NewListView[customer.Customer](a.customers, a.customerSession, a.log)
}

func (a *App) EmployeeList() *ListView[employee.Employee] {
	return NewListView[employee.Employee](a.employees, a.employeeSession, a.log)
}

func (a *App) DemandTypeList() *ListView[demandtype.DemandType] {
	return NewListView[demandtype.DemandType](a.demandTypes, a.demandTypeSession, a.log)
}

// BillRefs holds the reference data the bill form needs.
type BillRefs struct {
	Customers []customer.Customer
}

func (a *App) BillForm() (*FormView[bill.Bill], *BillRefs) {
	refs := &BillRefs{}
	form := NewFormView[bill.Bill](a.bills, a.billSession, a.log,
		func(ctx context.Context) error {
			items, err := a.customers.List(ctx)
			refs.Customers = items
			return err
		},
	)
	return form, refs
}

// CustomerRefs holds the reference data the customer form needs.
type CustomerRefs struct {
	Branches    []branch.Branch
	DemandTypes []demandtype.DemandType
}

func (a *App) CustomerForm() (*FormView[customer.Customer], *CustomerRefs) {
	refs := &CustomerRefs{}
	form := NewFormView[customer.Customer](a.customers, a.customerSession, a.log,
		func(ctx context.Context) error {
			items, err := a.branches.List(ctx)
			refs.Branches = items
			return err
		},
		func(ctx context.Context) error {
			items, err := a.demandTypes.List(ctx)
			refs.DemandTypes = items
			return err
		},
	)
	return form, refs
}

// EmployeeRefs holds the reference data the employee form needs.
type EmployeeRefs struct {
	Branches []branch.Branch
	Types    []employee.EmployeeType
}

func (a *App) EmployeeForm() (*FormView[employee.Employee], *EmployeeRefs) {
	refs := &EmployeeRefs{}
	form := NewFormView[employee.Employee](a.employees, a.employeeSession, a.log,
		func(ctx context.Context) error {
			items, err := a.branches.List(ctx)
			refs.Branches = items
			return err
		},
		func(ctx context.Context) error {
			items, err := a.http.ListEmployeeTypes(ctx)
			refs.Types = items
			return err
		},
	)
	return form, refs
}

func (a *App) DemandTypeForm() *FormView[demandtype.DemandType] {
	return NewFormView[demandtype.DemandType](a.demandTypes, a.demandTypeSession, a.log)
}
