package growth

import (
	"fmt"
	gains_errors "gains/internal"
	"math"
)

// monthly cash-flow model of a leveraged portfolio loan. repayments are
// funded by dividends and savings; any shortfall is covered by selling
// down the portfolio, any surplus is reinvested unleveraged.

const monthsPerYear = 12

type Method string

const (
	// MethodStraightLine recomputes principal from the outstanding
	// balance each month, so repayments shrink over time.
	MethodStraightLine Method = "slm"
	// MethodHomeLoan keeps the total repayment fixed, annuity style.
	MethodHomeLoan Method = "hlm"
	// MethodInterestOnly never repays principal.
	MethodInterestOnly Method = "io"
)

func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodStraightLine, MethodHomeLoan, MethodInterestOnly:
		return Method(s), nil
	}
	return "", fmt.Errorf("unknown repayment method: %q", s)
}

type Params struct {
	AnnualGrowth    float64
	AnnualYield     float64
	MarginalTax     float64
	InterestRate    float64
	Deposit         float64
	LVR             float64
	SavingsPerMonth float64
	LoanTermYears   int
	Method          Method
}

func DefaultParams() Params {
	return Params{
		AnnualGrowth:    0.07,
		AnnualYield:     0.025,
		MarginalTax:     0.37,
		InterestRate:    0.0505,
		Deposit:         5000,
		LVR:             0.5,
		SavingsPerMonth: 300,
		LoanTermYears:   10,
		Method:          MethodStraightLine,
	}
}

type Result struct {
	Portfolio     float64
	LoanBalance   float64
	MonthlyEquity []float64
}

func (r Result) Equity() float64 {
	return r.Portfolio - r.LoanBalance
}

type Simulation struct {
	params       Params
	portfolio    float64
	loanBalance  float64
	originalLoan float64
	fixedPayment float64
}

func NewSimulation(p Params) (*Simulation, error) {
	if p.LVR < 0 || p.LVR >= 1 {
		return nil, gains_errors.ErrInvalidArgument{
			Message: fmt.Sprintf("lvr must be in [0, 1), received %.2f", p.LVR),
		}
	}
	if p.LoanTermYears <= 0 {
		return nil, gains_errors.ErrInvalidArgument{
			Message: fmt.Sprintf("loan term must be positive, received %d years", p.LoanTermYears),
		}
	}
	if _, err := ParseMethod(string(p.Method)); err != nil {
		return nil, gains_errors.ErrInvalidArgument{Message: err.Error()}
	}

	s := &Simulation{params: p}
	s.portfolio = p.Deposit / (1 - p.LVR)
	s.loanBalance = s.portfolio - p.Deposit
	s.originalLoan = s.loanBalance
	s.fixedPayment = annuityPayment(
		s.originalLoan,
		p.InterestRate/monthsPerYear,
		p.LoanTermYears*monthsPerYear,
	)
	return s, nil
}

// annuityPayment is the fixed monthly payment that amortizes pv over n
// periods at per-period rate r.
func annuityPayment(pv, r float64, n int) float64 {
	if pv == 0 {
		return 0
	}
	if r == 0 {
		return pv / float64(n)
	}
	return pv * r / (1 - math.Pow(1+r, -float64(n)))
}

// Run simulates the given number of years month by month. If the horizon
// outlasts the loan term the portfolio keeps compounding debt free.
func (s *Simulation) Run(years int) (*Result, error) {
	if years <= 0 {
		return nil, gains_errors.ErrInvalidArgument{
			Message: fmt.Sprintf("years must be positive, received %d", years),
		}
	}

	periods := years * monthsPerYear
	result := &Result{MonthlyEquity: make([]float64, 0, periods)}

	for period := 1; period <= periods; period++ {
		s.iterate()
		result.MonthlyEquity = append(result.MonthlyEquity, s.portfolio-s.loanBalance)
	}

	result.Portfolio = s.portfolio
	result.LoanBalance = s.loanBalance
	return result, nil
}

func (s *Simulation) repayment() (principal, interest float64) {
	monthlyRate := s.params.InterestRate / monthsPerYear

	switch s.params.Method {
	case MethodStraightLine:
		principal = s.loanBalance / float64(s.params.LoanTermYears) / monthsPerYear
		interest = s.loanBalance * monthlyRate
	case MethodHomeLoan:
		interest = s.loanBalance * monthlyRate
		principal = s.fixedPayment - interest
	case MethodInterestOnly:
		principal = 0
		interest = s.loanBalance * monthlyRate
	}
	return principal, interest
}

func (s *Simulation) iterate() {
	principal, interest := s.repayment()

	dividends := s.portfolio * s.params.AnnualYield / monthsPerYear

	if s.loanBalance <= 0 {
		principal = 0
		interest = 0
	}
	if principal > s.loanBalance {
		principal = math.Max(s.loanBalance, 0)
	}

	s.portfolio *= 1 + s.params.AnnualGrowth/monthsPerYear
	s.loanBalance -= principal

	// negative gearing: an interest shortfall offsets taxable income
	taxableCashflow := dividends - interest
	netCashflow := taxableCashflow * (1 - s.params.MarginalTax)

	excessCashflow := s.params.SavingsPerMonth + netCashflow - principal
	s.portfolio += excessCashflow
}
