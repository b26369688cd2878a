package ledgerdelivery

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"slices"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/sim-ledger/internal/domain"
	"github.com/go-petr/sim-ledger/pkg/currencypkg"
	"github.com/go-petr/sim-ledger/pkg/errorspkg"
	"github.com/go-petr/sim-ledger/pkg/moneypkg"
	"github.com/go-petr/sim-ledger/pkg/randompkg"
	"github.com/go-petr/sim-ledger/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := RegisterValidators(v); err != nil {
			fmt.Fprintf(os.Stderr, "RegisterValidators returned error: %v\n", err)
			os.Exit(1)
		}
	}

	os.Exit(m.Run())
}

func randomAccount(id int64) domain.Account {
	return domain.Account{
		ID:        id,
		Name:      randompkg.AccountName(),
		Balance:   moneypkg.MustParse(randompkg.MoneyAmountBetween(100, 1000), currencypkg.USD),
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

func newServer(service Service) *gin.Engine {
	engine := gin.New()
	NewHandler(service).Register(engine)

	return engine
}

func newRequest(t *testing.T, method, url string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer

	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Encoding request body error: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}

	return req
}

func TestDeposit(t *testing.T) {
	account := randomAccount(1)
	amount := "100.50"

	result := domain.EntryResult{
		Account: account,
		Transaction: domain.Transaction{
			ID:          uuid.New(),
			Sequence:    1,
			Kind:        domain.KindDeposit,
			Origin:      domain.OriginCustomer,
			ToAccountID: &account.ID,
			Amount:      moneypkg.MustParse(amount, currencypkg.USD),
			CreatedAt:   account.CreatedAt,
		},
	}

	type requestBody struct {
		Amount string `json:"amount"`
	}

	testCases := []struct {
		name           string
		accountID      string
		requestBody    requestBody
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "OK",
			accountID:   "1",
			requestBody: requestBody{Amount: amount},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Deposit(gomock.Eq(account.ID), gomock.Eq(amount)).
					Times(1).
					Return(result, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "RequiredAmount",
			accountID:   "1",
			requestBody: requestBody{},
			buildStubs: func(service *MockService) {
				service.EXPECT().Deposit(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Amount field is required",
		},
		{
			name:        "NotANumber",
			accountID:   "1",
			requestBody: requestBody{Amount: "abc"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Deposit(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Amount must be a positive decimal number",
		},
		{
			name:        "ZeroAmount",
			accountID:   "1",
			requestBody: requestBody{Amount: "0"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Deposit(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Amount must be a positive decimal number",
		},
		{
			name:        "InvalidID",
			accountID:   "0",
			requestBody: requestBody{Amount: amount},
			buildStubs: func(service *MockService) {
				service.EXPECT().Deposit(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "ID field is required",
		},
		{
			name:        "FractionalCent",
			accountID:   "1",
			requestBody: requestBody{Amount: "1.001"},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Deposit(gomock.Eq(account.ID), gomock.Eq("1.001")).
					Times(1).
					Return(domain.EntryResult{}, domain.ErrInvalidAmount)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInvalidAmount.Error(),
		},
		{
			name:        "AccountNotFound",
			accountID:   "2",
			requestBody: requestBody{Amount: amount},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Deposit(gomock.Eq(int64(2)), gomock.Eq(amount)).
					Times(1).
					Return(domain.EntryResult{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
		{
			name:        "InternalError",
			accountID:   "1",
			requestBody: requestBody{Amount: amount},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Deposit(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.EntryResult{}, errors.New("unexpected"))
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			req := newRequest(t, http.MethodPost, "/accounts/"+tc.accountID+"/deposits", tc.requestBody)
			w := httptest.NewRecorder()
			newServer(service).ServeHTTP(w, req)

			if got := w.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Entry domain.EntryResult `json:"entry"`
				}{},
			}

			if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			got, ok := res.Data.(*struct {
				Entry domain.EntryResult `json:"entry"`
			})
			if !ok {
				t.Fatalf(`res.Data=%v, failed type conversion`, res.Data)
			}

			compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
			if diff := cmp.Diff(result, got.Entry, compareCreatedAt); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().
		Withdraw(gomock.Eq(int64(1)), gomock.Eq("1500.00")).
		Times(1).
		Return(domain.EntryResult{}, domain.ErrInsufficientFunds)

	w := httptest.NewRecorder()
	newServer(service).ServeHTTP(w, newRequest(t, http.MethodPost, "/accounts/1/withdrawals", map[string]string{"amount": "1500.00"}))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"insufficient funds"}`, w.Body.String())
}

func TestTransfer(t *testing.T) {
	account1 := randomAccount(1)
	account2 := randomAccount(2)
	amount := "25.00"

	type requestBody struct {
		FromAccountID int64  `json:"from_account_id"`
		ToAccountID   int64  `json:"to_account_id"`
		Amount        string `json:"amount"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "OK",
			requestBody: requestBody{FromAccountID: account1.ID, ToAccountID: account2.ID, Amount: amount},
			buildStubs: func(service *MockService) {
				arg := domain.CreateTransferParams{FromAccountID: account1.ID, ToAccountID: account2.ID, Amount: amount}
				service.EXPECT().
					Transfer(gomock.Eq(arg)).
					Times(1).
					Return(domain.TransferResult{FromAccount: account1, ToAccount: account2}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "RequiredFromAccountID",
			requestBody: requestBody{ToAccountID: account2.ID, Amount: amount},
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "FromAccountID field is required",
		},
		{
			name:        "NegativeToAccountID",
			requestBody: requestBody{FromAccountID: account1.ID, ToAccountID: -2, Amount: amount},
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "ToAccountID must be at least 1",
		},
		{
			name:        "NegativeAmount",
			requestBody: requestBody{FromAccountID: account1.ID, ToAccountID: account2.ID, Amount: "-25"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Amount must be a positive decimal number",
		},
		{
			name:        "SameAccount",
			requestBody: requestBody{FromAccountID: account1.ID, ToAccountID: account1.ID, Amount: amount},
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any()).Times(1).Return(domain.TransferResult{}, domain.ErrSameAccount)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrSameAccount.Error(),
		},
		{
			name:        "InsufficientFunds",
			requestBody: requestBody{FromAccountID: account1.ID, ToAccountID: account2.ID, Amount: amount},
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any()).Times(1).Return(domain.TransferResult{}, domain.ErrInsufficientFunds)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInsufficientFunds.Error(),
		},
		{
			name:        "AccountNotFound",
			requestBody: requestBody{FromAccountID: account1.ID, ToAccountID: 99, Amount: amount},
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any()).Times(1).Return(domain.TransferResult{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			w := httptest.NewRecorder()
			newServer(service).ServeHTTP(w, newRequest(t, http.MethodPost, "/transfers", tc.requestBody))

			if got := w.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Transfer domain.TransferResult `json:"transfer"`
				}{},
			}

			if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			got := res.Data.(*struct {
				Transfer domain.TransferResult `json:"transfer"`
			})

			compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
			if diff := cmp.Diff(account1, got.Transfer.FromAccount, compareCreatedAt); diff != "" {
				t.Errorf("from account mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(account2, got.Transfer.ToAccount, compareCreatedAt); diff != "" {
				t.Errorf("to account mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCreateAccount(t *testing.T) {
	testCases := []struct {
		name     string
		body     any
		wantName string
	}{
		{name: "Named", body: map[string]string{"name": "Savings"}, wantName: "Savings"},
		{name: "NoBody", wantName: ""},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			account := randomAccount(3)

			service := NewMockService(ctrl)
			service.EXPECT().CreateAccount(gomock.Eq(tc.wantName)).Times(1).Return(account)

			w := httptest.NewRecorder()
			newServer(service).ServeHTTP(w, newRequest(t, http.MethodPost, "/accounts", tc.body))

			require.Equal(t, http.StatusCreated, w.Code)

			res := web.Response{
				Data: &struct {
					Account domain.Account `json:"account"`
				}{},
			}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&res))

			got := res.Data.(*struct {
				Account domain.Account `json:"account"`
			})
			if diff := cmp.Diff(account, got.Account, cmpopts.EquateApproxTime(time.Second)); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	gomock.InOrder(
		service.EXPECT().DeleteAccount(gomock.Eq(int64(4))).Times(1).Return(nil),
		service.EXPECT().DeleteAccount(gomock.Eq(int64(4))).Times(1).Return(domain.ErrAccountNotFound),
	)

	server := newServer(service)

	w := httptest.NewRecorder()
	server.ServeHTTP(w, newRequest(t, http.MethodDelete, "/accounts/4", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())

	w = httptest.NewRecorder()
	server.ServeHTTP(w, newRequest(t, http.MethodDelete, "/accounts/4", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txs := []domain.Transaction{
		{ID: uuid.New(), Sequence: 1, Kind: domain.KindDeposit, Origin: domain.OriginCustomer, ToAccountID: ptr(5), Amount: moneypkg.MustParse("10", currencypkg.USD)},
		{ID: uuid.New(), Sequence: 2, Kind: domain.KindWithdrawal, Origin: domain.OriginDirectDebit, FromAccountID: ptr(5), Amount: moneypkg.MustParse("3", currencypkg.USD)},
	}

	service := NewMockService(ctrl)
	service.EXPECT().History(gomock.Eq(int64(5))).Times(1).Return(slices.Values(txs))
	service.EXPECT().History(gomock.Eq(int64(6))).Times(1).Return(slices.Values([]domain.Transaction(nil)))

	server := newServer(service)

	w := httptest.NewRecorder()
	server.ServeHTTP(w, newRequest(t, http.MethodGet, "/accounts/5/history", nil))
	require.Equal(t, http.StatusOK, w.Code)

	res := web.Response{
		Data: &struct {
			Transactions []domain.Transaction `json:"transactions"`
		}{},
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))

	got := res.Data.(*struct {
		Transactions []domain.Transaction `json:"transactions"`
	})
	if diff := cmp.Diff(txs, got.Transactions); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}

	w = httptest.NewRecorder()
	server.ServeHTTP(w, newRequest(t, http.MethodGet, "/accounts/6/history", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"data":{"transactions":[]}}`, w.Body.String())
}

func ptr(v int64) *int64 { return &v }

func TestScheduleDirectDebit(t *testing.T) {
	testCases := []struct {
		name           string
		body           map[string]string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			body: map[string]string{"amount": "15", "recurrence": "monthly"},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					ScheduleDirectDebit(gomock.Eq(int64(1)), gomock.Eq("15"), gomock.Eq("monthly")).
					Times(1).
					Return(domain.DirectDebitInstruction{ID: uuid.New(), AccountID: 1}, nil)
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "InvalidRecurrence",
			body: map[string]string{"amount": "15", "recurrence": "yearly"},
			buildStubs: func(service *MockService) {
				service.EXPECT().ScheduleDirectDebit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Recurrence must be one of once, daily, weekly, monthly",
		},
		{
			name: "AccountNotFound",
			body: map[string]string{"amount": "15", "recurrence": "once"},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					ScheduleDirectDebit(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.DirectDebitInstruction{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			w := httptest.NewRecorder()
			newServer(service).ServeHTTP(w, newRequest(t, http.MethodPost, "/accounts/1/direct-debits", tc.body))

			require.Equal(t, tc.wantStatusCode, w.Code)

			var res web.Response
			require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
			require.Equal(t, tc.wantError, res.Error)
		})
	}
}

func TestExecuteDirectDebit(t *testing.T) {
	id := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().
		ExecuteDirectDebit(gomock.Eq(id)).
		Times(1).
		Return(domain.DirectDebitResult{Instruction: domain.DirectDebitInstruction{ID: id}, Retired: true}, nil)
	service.EXPECT().
		CancelDirectDebit(gomock.Eq(id)).
		Times(1).
		Return(domain.ErrDirectDebitNotFound)

	server := newServer(service)

	w := httptest.NewRecorder()
	server.ServeHTTP(w, newRequest(t, http.MethodPost, "/direct-debits/"+id.String()+"/execute", nil))
	require.Equal(t, http.StatusOK, w.Code)

	res := web.Response{
		Data: &struct {
			Execution domain.DirectDebitResult `json:"execution"`
		}{},
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	require.True(t, res.Data.(*struct {
		Execution domain.DirectDebitResult `json:"execution"`
	}).Execution.Retired)

	w = httptest.NewRecorder()
	server.ServeHTTP(w, newRequest(t, http.MethodDelete, "/direct-debits/"+id.String(), nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	server.ServeHTTP(w, newRequest(t, http.MethodPost, "/direct-debits/not-a-uuid/execute", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"ID must be a valid UUID"}`, w.Body.String())
}

func TestRunDueDirectDebits(t *testing.T) {
	at := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	ok := uuid.New()
	failed := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().
		RunDueDirectDebits(gomock.Eq(at)).
		Times(1).
		Return([]domain.DirectDebitOutcome{
			{InstructionID: ok, Result: &domain.DirectDebitResult{Instruction: domain.DirectDebitInstruction{ID: ok}}},
			{InstructionID: failed, Err: domain.ErrInsufficientFunds},
		})

	w := httptest.NewRecorder()
	newServer(service).ServeHTTP(w, newRequest(t, http.MethodPost, "/direct-debits/run?at="+at.Format(time.RFC3339), nil))
	require.Equal(t, http.StatusOK, w.Code)

	res := web.Response{Data: &outcomesData{}}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))

	got := res.Data.(*outcomesData).Outcomes
	require.Len(t, got, 2)
	require.Equal(t, ok, got[0].InstructionID)
	require.NotNil(t, got[0].Result)
	require.Empty(t, got[0].Error)
	require.Equal(t, failed, got[1].InstructionID)
	require.Nil(t, got[1].Result)
	require.Equal(t, domain.ErrInsufficientFunds.Error(), got[1].Error)
}

func TestApplyForLoan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	account := randomAccount(2)
	loan := domain.LoanRecord{ID: uuid.New(), AccountID: account.ID, Principal: moneypkg.MustParse("5000", currencypkg.USD)}

	service := NewMockService(ctrl)
	service.EXPECT().
		ApplyForLoan(gomock.Eq(account.ID), gomock.Eq("5000")).
		Times(1).
		Return(domain.LoanResult{Loan: loan, Account: account}, nil)
	service.EXPECT().
		ListLoans(gomock.Eq(account.ID)).
		Times(1).
		Return([]domain.LoanRecord{loan}, nil)

	server := newServer(service)

	w := httptest.NewRecorder()
	server.ServeHTTP(w, newRequest(t, http.MethodPost, "/accounts/2/loans", map[string]string{"principal": "5000"}))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	server.ServeHTTP(w, newRequest(t, http.MethodGet, "/accounts/2/loans", nil))
	require.Equal(t, http.StatusOK, w.Code)

	res := web.Response{Data: &loansData{}}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))

	if diff := cmp.Diff([]domain.LoanRecord{loan}, res.Data.(*loansData).Loans, cmpopts.EquateApproxTime(time.Second)); diff != "" {
		t.Errorf("loans mismatch (-want +got):\n%s", diff)
	}

	w = httptest.NewRecorder()
	server.ServeHTTP(w, newRequest(t, http.MethodPost, "/accounts/2/loans", map[string]string{"principal": "-1"}))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"Principal must be a positive decimal number"}`, w.Body.String())
}

func TestAccrueInterestValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().AccrueInterest(gomock.Eq(int64(1)), gomock.Eq("0")).Times(1).Return(domain.EntryResult{}, nil)

	server := newServer(service)

	w := httptest.NewRecorder()
	server.ServeHTTP(w, newRequest(t, http.MethodPost, "/accounts/1/interest", map[string]string{"rate": "-5"}))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"Rate must be a non-negative decimal number"}`, w.Body.String())

	for _, rate := range []string{"1e5000000", "1e-5000000"} {
		w = httptest.NewRecorder()
		server.ServeHTTP(w, newRequest(t, http.MethodPost, "/accounts/1/interest", map[string]string{"rate": rate}))
		require.Equal(t, http.StatusBadRequest, w.Code, rate)
		require.JSONEq(t, `{"error":"Rate must be a non-negative decimal number"}`, w.Body.String())

		w = httptest.NewRecorder()
		server.ServeHTTP(w, newRequest(t, http.MethodPost, "/accounts/1/deposits", map[string]string{"amount": rate}))
		require.Equal(t, http.StatusBadRequest, w.Code, rate)
		require.JSONEq(t, `{"error":"Amount must be a positive decimal number"}`, w.Body.String())
	}

	w = httptest.NewRecorder()
	server.ServeHTTP(w, newRequest(t, http.MethodPost, "/accounts/1/interest", map[string]string{"rate": "0"}))
	require.Equal(t, http.StatusOK, w.Code)
}
