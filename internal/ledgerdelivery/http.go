// Package ledgerdelivery manages the HTTP delivery layer of the ledger.
package ledgerdelivery

import (
	"errors"
	"io"
	"iter"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/sim-ledger/internal/domain"
	"github.com/go-petr/sim-ledger/pkg/errorspkg"
	"github.com/go-petr/sim-ledger/pkg/web"
)

// Service provides service layer interface needed by ledger delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ledgerdelivery
type Service interface {
	ListAccounts() []domain.Account
	GetAccount(id int64) (domain.Account, error)
	CreateAccount(name string) domain.Account
	DeleteAccount(id int64) error
	Deposit(id int64, amount string) (domain.EntryResult, error)
	Withdraw(id int64, amount string) (domain.EntryResult, error)
	Transfer(arg domain.CreateTransferParams) (domain.TransferResult, error)
	AccrueInterest(id int64, rate string) (domain.EntryResult, error)
	History(id int64) iter.Seq[domain.Transaction]
	ScheduleDirectDebit(id int64, amount, recurrence string) (domain.DirectDebitInstruction, error)
	ExecuteDirectDebit(id uuid.UUID) (domain.DirectDebitResult, error)
	RunDueDirectDebits(now time.Time) []domain.DirectDebitOutcome
	CancelDirectDebit(id uuid.UUID) error
	ListDirectDebits(accountID int64) ([]domain.DirectDebitInstruction, error)
	ApplyForLoan(id int64, principal string) (domain.LoanResult, error)
	ListLoans(accountID int64) ([]domain.LoanRecord, error)
}

// Handler facilitates ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns ledger handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Register mounts the ledger routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/accounts", h.ListAccounts)
	r.POST("/accounts", h.CreateAccount)
	r.GET("/accounts/:id", h.GetAccount)
	r.DELETE("/accounts/:id", h.DeleteAccount)
	r.POST("/accounts/:id/deposits", h.Deposit)
	r.POST("/accounts/:id/withdrawals", h.Withdraw)
	r.POST("/accounts/:id/interest", h.AccrueInterest)
	r.GET("/accounts/:id/history", h.History)
	r.POST("/accounts/:id/direct-debits", h.ScheduleDirectDebit)
	r.GET("/accounts/:id/direct-debits", h.ListDirectDebits)
	r.POST("/accounts/:id/loans", h.ApplyForLoan)
	r.GET("/accounts/:id/loans", h.ListLoans)

	r.POST("/transfers", h.Transfer)

	r.POST("/direct-debits/run", h.RunDueDirectDebits)
	r.POST("/direct-debits/:id/execute", h.ExecuteDirectDebit)
	r.DELETE("/direct-debits/:id", h.CancelDirectDebit)
}

type accountURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type directDebitURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type accountData struct {
	Account domain.Account `json:"account"`
}

type accountsData struct {
	Accounts []domain.Account `json:"accounts"`
}

type entryData struct {
	Entry domain.EntryResult `json:"entry"`
}

type transferData struct {
	Transfer domain.TransferResult `json:"transfer"`
}

type historyData struct {
	Transactions []domain.Transaction `json:"transactions"`
}

type directDebitData struct {
	DirectDebit domain.DirectDebitInstruction `json:"direct_debit"`
}

type directDebitsData struct {
	DirectDebits []domain.DirectDebitInstruction `json:"direct_debits"`
}

type executionData struct {
	Execution domain.DirectDebitResult `json:"execution"`
}

type outcome struct {
	InstructionID uuid.UUID                 `json:"instruction_id"`
	Result        *domain.DirectDebitResult `json:"result,omitempty"`
	Error         string                    `json:"error,omitempty"`
}

type outcomesData struct {
	Outcomes []outcome `json:"outcomes"`
}

type loanData struct {
	Loan domain.LoanResult `json:"loan"`
}

type loansData struct {
	Loans []domain.LoanRecord `json:"loans"`
}

// ListAccounts handles http request to list active accounts.
func (h *Handler) ListAccounts(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, web.Response{Data: accountsData{h.service.ListAccounts()}})
}

type createAccountRequest struct {
	Name string `json:"name" binding:"max=64"`
}

// CreateAccount handles http request to open an account.
func (h *Handler) CreateAccount(gctx *gin.Context) {
	// The body is optional; an unnamed account gets a generated name.
	var req createAccountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(gctx, err)
		return
	}

	acc := h.service.CreateAccount(req.Name)

	zerolog.Ctx(gctx.Request.Context()).Info().Int64("account_id", acc.ID).Msg("account created")
	gctx.JSON(http.StatusCreated, web.Response{Data: accountData{acc}})
}

// GetAccount handles http request to get an account.
func (h *Handler) GetAccount(gctx *gin.Context) {
	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	acc, err := h.service.GetAccount(uri.ID)
	if err != nil {
		fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountData{acc}})
}

// DeleteAccount handles http request to delete an account. Its history stays available.
func (h *Handler) DeleteAccount(gctx *gin.Context) {
	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	if err := h.service.DeleteAccount(uri.ID); err != nil {
		fail(gctx, err)
		return
	}

	zerolog.Ctx(gctx.Request.Context()).Info().Int64("account_id", uri.ID).Msg("account deleted")
	gctx.Status(http.StatusNoContent)
}

type amountRequest struct {
	Amount string `json:"amount" binding:"required,amount"`
}

// Deposit handles http request to deposit money into an account.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.entry(gctx, h.service.Deposit)
}

// Withdraw handles http request to withdraw money from an account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.entry(gctx, h.service.Withdraw)
}

func (h *Handler) entry(gctx *gin.Context, apply func(id int64, amount string) (domain.EntryResult, error)) {
	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	res, err := apply(uri.ID, req.Amount)
	if err != nil {
		fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: entryData{res}})
}

type transferRequest struct {
	FromAccountID int64  `json:"from_account_id" binding:"required,min=1"`
	ToAccountID   int64  `json:"to_account_id" binding:"required,min=1"`
	Amount        string `json:"amount" binding:"required,amount"`
}

// Transfer handles http request to move money between two accounts.
func (h *Handler) Transfer(gctx *gin.Context) {
	var req transferRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	arg := domain.CreateTransferParams{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
	}

	res, err := h.service.Transfer(arg)
	if err != nil {
		fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: transferData{res}})
}

type interestRequest struct {
	Rate string `json:"rate" binding:"required,rate"`
}

// AccrueInterest handles http request to credit interest at a percentage rate.
func (h *Handler) AccrueInterest(gctx *gin.Context) {
	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	var req interestRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	res, err := h.service.AccrueInterest(uri.ID, req.Rate)
	if err != nil {
		fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: entryData{res}})
}

// History handles http request to list the transactions of an account, deleted or not.
func (h *Handler) History(gctx *gin.Context) {
	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	txs := slices.Collect(h.service.History(uri.ID))
	if txs == nil {
		txs = []domain.Transaction{}
	}

	gctx.JSON(http.StatusOK, web.Response{Data: historyData{txs}})
}

type directDebitRequest struct {
	Amount     string `json:"amount" binding:"required,amount"`
	Recurrence string `json:"recurrence" binding:"required,recurrence"`
}

// ScheduleDirectDebit handles http request to record a standing withdrawal instruction.
func (h *Handler) ScheduleDirectDebit(gctx *gin.Context) {
	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	var req directDebitRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	dd, err := h.service.ScheduleDirectDebit(uri.ID, req.Amount, req.Recurrence)
	if err != nil {
		fail(gctx, err)
		return
	}

	zerolog.Ctx(gctx.Request.Context()).Info().
		Str("direct_debit_id", dd.ID.String()).
		Int64("account_id", dd.AccountID).
		Msg("direct debit scheduled")
	gctx.JSON(http.StatusCreated, web.Response{Data: directDebitData{dd}})
}

// ListDirectDebits handles http request to list the instructions of an account.
func (h *Handler) ListDirectDebits(gctx *gin.Context) {
	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	dds, err := h.service.ListDirectDebits(uri.ID)
	if err != nil {
		fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: directDebitsData{dds}})
}

// ExecuteDirectDebit handles http request to run an instruction once.
func (h *Handler) ExecuteDirectDebit(gctx *gin.Context) {
	id, ok := bindDirectDebitID(gctx)
	if !ok {
		return
	}

	res, err := h.service.ExecuteDirectDebit(id)
	if err != nil {
		fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: executionData{res}})
}

type runRequest struct {
	At time.Time `form:"at" time_format:"2006-01-02T15:04:05Z07:00" time_utc:"1"`
}

// RunDueDirectDebits handles http request to execute every due instruction. The optional
// "at" query parameter replaces the current time.
func (h *Handler) RunDueDirectDebits(gctx *gin.Context) {
	var req runRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	if req.At.IsZero() {
		req.At = time.Now()
	}

	l := zerolog.Ctx(gctx.Request.Context())

	outcomes := h.service.RunDueDirectDebits(req.At)
	views := make([]outcome, 0, len(outcomes))

	for _, o := range outcomes {
		v := outcome{InstructionID: o.InstructionID, Result: o.Result}
		if o.Err != nil {
			v.Error = o.Err.Error()
			l.Info().Err(o.Err).Str("direct_debit_id", o.InstructionID.String()).Msg("direct debit failed")
		}

		views = append(views, v)
	}

	gctx.JSON(http.StatusOK, web.Response{Data: outcomesData{views}})
}

// CancelDirectDebit handles http request to remove an instruction.
func (h *Handler) CancelDirectDebit(gctx *gin.Context) {
	id, ok := bindDirectDebitID(gctx)
	if !ok {
		return
	}

	if err := h.service.CancelDirectDebit(id); err != nil {
		fail(gctx, err)
		return
	}

	gctx.Status(http.StatusNoContent)
}

type loanRequest struct {
	Principal string `json:"principal" binding:"required,amount"`
}

// ApplyForLoan handles http request to grant a loan and credit its principal.
func (h *Handler) ApplyForLoan(gctx *gin.Context) {
	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	var req loanRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	res, err := h.service.ApplyForLoan(uri.ID, req.Principal)
	if err != nil {
		fail(gctx, err)
		return
	}

	zerolog.Ctx(gctx.Request.Context()).Info().
		Str("loan_id", res.Loan.ID.String()).
		Int64("account_id", res.Loan.AccountID).
		Msg("loan issued")
	gctx.JSON(http.StatusCreated, web.Response{Data: loanData{res}})
}

// ListLoans handles http request to list the loans of an account.
func (h *Handler) ListLoans(gctx *gin.Context) {
	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	loans, err := h.service.ListLoans(uri.ID)
	if err != nil {
		fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: loansData{loans}})
}

func bindDirectDebitID(gctx *gin.Context) (uuid.UUID, bool) {
	var uri directDebitURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(uri.ID)
	if err != nil {
		badRequest(gctx, err)
		return uuid.Nil, false
	}

	return id, true
}

// badRequest renders a binding or validation failure.
func badRequest(gctx *gin.Context, err error) {
	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})
		return
	}

	gctx.JSON(http.StatusBadRequest, web.Error(err))
}

// fail renders a service error with the status matching its kind.
func fail(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())

	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrDirectDebitNotFound):
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidRate),
		errors.Is(err, domain.ErrSameAccount),
		errors.Is(err, domain.ErrCurrencyMismatch),
		errors.Is(err, domain.ErrInvalidRecurrence),
		errors.Is(err, domain.ErrInsufficientFunds):
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
