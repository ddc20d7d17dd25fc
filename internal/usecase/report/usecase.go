package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cashit-backend/internal/domain/area"
	"cashit-backend/internal/domain/customer"
	"cashit-backend/internal/domain/expense"
	"cashit-backend/internal/domain/ledger"
	"cashit-backend/internal/domain/loan"
	"cashit-backend/internal/domain/repayment"
)

const (
	dashboardKey = "report:dashboard"
	dashboardTTL = 60 * time.Second
)

type Usecase struct {
	areas      area.Repository
	customers  customer.Repository
	loans      loan.Repository
	repayments repayment.Repository
	expenses   expense.Repository
	rdb        *redis.Client
	now        func() time.Time
}

func NewUsecase(areas area.Repository, customers customer.Repository, loans loan.Repository, repayments repayment.Repository, expenses expense.Repository, rdb *redis.Client) *Usecase {
	return &Usecase{
		areas: areas, customers: customers, loans: loans,
		repayments: repayments, expenses: expenses,
		rdb: rdb, now: time.Now,
	}
}

// monthKey buckets a timestamp into a UTC calendar month ("2026-08").
// The single derivation point for every report.
func monthKey(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("%04d-%02d", u.Year(), int(u.Month()))
}

type MonthlyBucket struct {
	Month          string  `json:"month"`
	DisbursedTotal float64 `json:"disbursed_total"`
	LoanCount      int     `json:"loan_count"`
	ReceivedTotal  float64 `json:"received_total"`
	ExpenseTotal   float64 `json:"expense_total"`
}

// Monthly reduces the loan/repayment/expense rows into per-month sums,
// oldest month first.
func (u *Usecase) Monthly(ctx context.Context) ([]MonthlyBucket, error) {
	loans, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	repayments, err := u.repayments.List(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := u.expenses.List(ctx)
	if err != nil {
		return nil, err
	}

	buckets := map[string]*MonthlyBucket{}
	get := func(key string) *MonthlyBucket {
		b, ok := buckets[key]
		if !ok {
			b = &MonthlyBucket{Month: key}
			buckets[key] = b
		}
		return b
	}

	for _, l := range loans {
		b := get(monthKey(l.LoanDate))
		b.DisbursedTotal += l.Amount
		b.LoanCount++
	}
	for _, r := range repayments {
		when := r.DueDate
		if r.RepaymentDate != nil {
			when = *r.RepaymentDate
		}
		get(monthKey(when)).ReceivedTotal += r.Amount
	}
	for _, e := range expenses {
		get(monthKey(e.Date)).ExpenseTotal += e.Amount
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]MonthlyBucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, *buckets[k])
	}
	return out, nil
}

type AreaSummary struct {
	AreaName      string  `json:"area_name"`
	ShortCode     string  `json:"short_code"`
	CustomerCount int     `json:"customer_count"`
	ActiveLoans   int     `json:"active_loans"`
	Outstanding   float64 `json:"outstanding"`
}

func (u *Usecase) Areawise(ctx context.Context) ([]AreaSummary, error) {
	areas, err := u.areas.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := u.customers.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	loans, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}

	customerArea := make(map[uint64]uint64, len(customers))
	for _, c := range customers {
		customerArea[c.ID] = c.AreaID
	}

	byArea := make(map[uint64]*AreaSummary, len(areas))
	out := make([]AreaSummary, len(areas))
	for i, a := range areas {
		out[i] = AreaSummary{AreaName: a.Name, ShortCode: a.ShortCode}
		byArea[a.ID] = &out[i]
	}
	for _, c := range customers {
		if s, ok := byArea[c.AreaID]; ok {
			s.CustomerCount++
		}
	}
	for _, l := range loans {
		s, ok := byArea[customerArea[l.CustomerID]]
		if !ok {
			continue
		}
		if ledger.StatusOf(l.PendingAmount) == ledger.StatusActive {
			s.ActiveLoans++
			s.Outstanding += l.PendingAmount
		}
	}
	return out, nil
}

type CustomerSummary struct {
	CustomerCode string  `json:"customer_code"`
	Name         string  `json:"name"`
	LoanCount    int     `json:"loan_count"`
	Borrowed     float64 `json:"borrowed"`
	Repaid       float64 `json:"repaid"`
	Pending      float64 `json:"pending"`
}

func (u *Usecase) Customer(ctx context.Context, customerCode string) (*CustomerSummary, error) {
	c, err := u.customers.GetByCode(ctx, customerCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrNotFound
		}
		return nil, err
	}
	loans, err := u.loans.ListByCustomerID(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	s := &CustomerSummary{CustomerCode: c.CustomerCode, Name: c.Name}
	for _, l := range loans {
		s.LoanCount++
		s.Borrowed += l.Amount
		s.Pending += l.PendingAmount
		rps, err := u.repayments.ListByLoanID(ctx, l.ID)
		if err != nil {
			return nil, err
		}
		for _, r := range rps {
			s.Repaid += r.Amount
		}
	}
	return s, nil
}

type Dashboard struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Monthly     []MonthlyBucket `json:"monthly"`
	Areawise    []AreaSummary   `json:"areawise"`
}

// Dashboard bundles the report payload the UI polls, cached briefly in redis.
func (u *Usecase) Dashboard(ctx context.Context) (*Dashboard, error) {
	if u.rdb != nil {
		if raw, err := u.rdb.Get(ctx, dashboardKey).Bytes(); err == nil {
			var d Dashboard
			if json.Unmarshal(raw, &d) == nil {
				return &d, nil
			}
		}
	}

	monthly, err := u.Monthly(ctx)
	if err != nil {
		return nil, err
	}
	areawise, err := u.Areawise(ctx)
	if err != nil {
		return nil, err
	}
	d := &Dashboard{GeneratedAt: u.now().UTC(), Monthly: monthly, Areawise: areawise}

	if u.rdb != nil {
		if raw, err := json.Marshal(d); err == nil {
			_ = u.rdb.Set(ctx, dashboardKey, raw, dashboardTTL).Err()
		}
	}
	return d, nil
}
