package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/customs_clearance_ledger/cmd/docs"
	"github.com/SscSPs/customs_clearance_ledger/internal/apperrors"
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/services"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
	"github.com/SscSPs/customs_clearance_ledger/internal/handlers"
	"github.com/SscSPs/customs_clearance_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock VoucherService ---
type MockVoucherService struct {
	mock.Mock
}

func (m *MockVoucherService) GetVoucher(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}
func (m *MockVoucherService) ListVouchers(ctx context.Context, params dto.ListVouchersParams) ([]domain.Voucher, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}
func (m *MockVoucherService) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}
func (m *MockVoucherService) UpdateVoucher(ctx context.Context, voucherID string, req dto.UpdateVoucherRequest, userID string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}
func (m *MockVoucherService) RemoveVoucher(ctx context.Context, voucherID string, userID string) error {
	args := m.Called(ctx, voucherID, userID)
	return args.Error(0)
}

var _ portssvc.VoucherSvcFacade = (*MockVoucherService)(nil)

// --- Mock PayrollService ---
type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) GetRun(ctx context.Context, runID string) (*domain.PayrollRun, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRun), args.Error(1)
}
func (m *MockPayrollService) ListRuns(ctx context.Context, params dto.ListPayrollRunsParams) ([]domain.PayrollRun, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollRun), args.Error(1)
}
func (m *MockPayrollService) CreateRun(ctx context.Context, req dto.CreatePayrollRunRequest, userID string) (*domain.PayrollRun, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRun), args.Error(1)
}
func (m *MockPayrollService) ReplaceItems(ctx context.Context, runID string, req dto.ReplacePayrollItemsRequest, userID string) (*domain.PayrollRun, error) {
	args := m.Called(ctx, runID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRun), args.Error(1)
}
func (m *MockPayrollService) Approve(ctx context.Context, runID string, req dto.ApprovePayrollRequest, userID string) (*domain.PayrollRun, error) {
	args := m.Called(ctx, runID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRun), args.Error(1)
}
func (m *MockPayrollService) Unapprove(ctx context.Context, runID string, userID string) (*domain.PayrollRun, error) {
	args := m.Called(ctx, runID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRun), args.Error(1)
}

var _ portssvc.PayrollSvcFacade = (*MockPayrollService)(nil)

// --- Mock TreasuryService ---
type MockTreasuryService struct {
	mock.Mock
}

func (m *MockTreasuryService) GetTreasury(ctx context.Context) (*domain.Treasury, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Treasury), args.Error(1)
}
func (m *MockTreasuryService) SetOpeningBalance(ctx context.Context, amount decimal.Decimal, userID string) (*domain.Treasury, error) {
	args := m.Called(ctx, amount, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Treasury), args.Error(1)
}
func (m *MockTreasuryService) ListTreasuryTransactions(ctx context.Context, params dto.DateRangeParams) ([]domain.TreasuryTransaction, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TreasuryTransaction), args.Error(1)
}
func (m *MockTreasuryService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}
func (m *MockTreasuryService) GetBankAccount(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}
func (m *MockTreasuryService) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

var _ portssvc.TreasurySvcFacade = (*MockTreasuryService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) AccountBalance(ctx context.Context, accountCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockLedgerService) AccountEntries(ctx context.Context, accountCode string, params dto.ListEntriesParams) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, accountCode, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Get(1).(*string), args.Error(2)
}
func (m *MockLedgerService) Post(ctx context.Context, req dto.PostEntryRequest, userID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) PostInvoice(ctx context.Context, req dto.PostInvoiceRequest, userID string) (string, *domain.LedgerEntry, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.LedgerEntry), args.Error(2)
}
func (m *MockPostingService) PostTrip(ctx context.Context, req dto.PostTripRequest, userID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockPostingService) PostAdditionalFee(ctx context.Context, req dto.PostAdditionalFeeRequest, userID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context, asOf time.Time, lang string) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, asOf, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}
func (m *MockReportingService) GeneralJournal(ctx context.Context, params dto.ListEntriesParams) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Get(1).(*string), args.Error(2)
}
func (m *MockReportingService) IncomeStatement(ctx context.Context, from, to time.Time, lang string) (*domain.IncomeStatement, error) {
	args := m.Called(ctx, from, to, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}
func (m *MockReportingService) TreasuryReport(ctx context.Context, from, to time.Time) (*domain.TreasuryReport, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TreasuryReport), args.Error(1)
}
func (m *MockReportingService) BankReport(ctx context.Context, bankAccountID string, from, to time.Time) (*domain.BankReport, error) {
	args := m.Called(ctx, bankAccountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankReport), args.Error(1)
}
func (m *MockReportingService) AccountStatement(ctx context.Context, accountCode string, from, to time.Time, lang string) (*domain.AccountStatement, error) {
	args := m.Called(ctx, accountCode, from, to, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountStatement), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSettings(ctx context.Context) (domain.AppSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.AppSettings), args.Error(1)
}
func (m *MockSettingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (domain.AppSettings, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(domain.AppSettings), args.Error(1)
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router    *gin.Engine
	cfg       *config.Config
	token     string
	vouchers  *MockVoucherService
	payroll   *MockPayrollService
	treasury  *MockTreasuryService
	ledger    *MockLedgerService
	postings  *MockPostingService
	reporting *MockReportingService
	settings  *MockSettingsService
}

const testUserID = "user-42"

func (s *HandlersTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    s.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	s.Require().NoError(err)
	return token
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.cfg = &config.Config{
		JWTSecret:    "test-secret-key-that-is-long-enough",
		JWTIssuer:    "ccl-test",
		IsProduction: true,
	}

	s.vouchers = new(MockVoucherService)
	s.payroll = new(MockPayrollService)
	s.treasury = new(MockTreasuryService)
	s.ledger = new(MockLedgerService)
	s.postings = new(MockPostingService)
	s.reporting = new(MockReportingService)
	s.settings = new(MockSettingsService)

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, s.cfg, &portssvc.ServiceContainer{
		Settings:  s.settings,
		Ledger:    s.ledger,
		Treasury:  s.treasury,
		Voucher:   s.vouchers,
		Payroll:   s.payroll,
		Posting:   s.postings,
		Reporting: s.reporting,
	})
	s.token = s.generateTestToken(testUserID)
}

func (s *HandlersTestSuite) TearDownTest() {
	s.vouchers.AssertExpectations(s.T())
	s.payroll.AssertExpectations(s.T())
	s.treasury.AssertExpectations(s.T())
	s.ledger.AssertExpectations(s.T())
	s.postings.AssertExpectations(s.T())
	s.reporting.AssertExpectations(s.T())
	s.settings.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (s *HandlersTestSuite) errorMessage(w *httptest.ResponseRecorder) string {
	var body map[string]any
	s.decode(w, &body)
	msg, _ := body["error"].(string)
	return msg
}

func (s *HandlersTestSuite) TestHealth_IsPublic() {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlersTestSuite) TestMissingToken_Unauthorized() {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/treasury", nil))
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlersTestSuite) TestSwaggerDisabledInProduction() {
	w := s.do(http.MethodGet, "/swagger/index.html", "")
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestSwaggerDocument_CoversEveryRoute() {
	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	s.Require().NoError(json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))
	s.Equal("/api/v1", doc.BasePath)

	pathParam := regexp.MustCompile(`:(\w+)`)
	covered := 0
	for _, route := range s.router.Routes() {
		if !strings.HasPrefix(route.Path, doc.BasePath+"/") {
			continue
		}
		path := pathParam.ReplaceAllString(strings.TrimPrefix(route.Path, doc.BasePath), "{$1}")
		_, ok := doc.Paths[path][strings.ToLower(route.Method)]
		s.True(ok, "%s %s is not documented", route.Method, path)
		covered++
	}
	s.Equal(31, covered)
}

func (s *HandlersTestSuite) TestCreateVoucher_Created() {
	voucher := &domain.Voucher{
		VoucherID: "v-1",
		Code:      "PY-26-0001",
		Type:      domain.Payment,
		PartyType: domain.PartyCustomer,
		PartyName: "Gulf Traders",
		Method:    domain.MethodCash,
		Amount:    decimal.NewFromInt(250),
	}
	s.vouchers.On("CreateVoucher", mock.Anything, mock.MatchedBy(func(req dto.CreateVoucherRequest) bool {
		return req.Type == domain.Payment && req.Amount.Equal(decimal.NewFromInt(250)) && *req.PartyID == "c1"
	}), testUserID).Return(voucher, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/vouchers",
		`{"type":"PAYMENT","partyType":"CUSTOMER","partyID":"c1","method":"CASH","amount":"250"}`)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.VoucherResponse
	s.decode(w, &resp)
	s.Equal("PY-26-0001", resp.Code)
	s.True(resp.Amount.Equal(decimal.NewFromInt(250)))
}

func (s *HandlersTestSuite) TestCreateVoucher_BindingRejectsBadInput() {
	tests := []struct {
		name string
		body string
	}{
		{"zero amount", `{"type":"PAYMENT","partyType":"OTHER","partyName":"x","method":"CASH","amount":"0"}`},
		{"negative amount", `{"type":"PAYMENT","partyType":"OTHER","partyName":"x","method":"CASH","amount":"-5"}`},
		{"missing amount", `{"type":"PAYMENT","partyType":"OTHER","partyName":"x","method":"CASH"}`},
		{"unknown type", `{"type":"REFUND","partyType":"OTHER","partyName":"x","method":"CASH","amount":"5"}`},
		{"unknown method", `{"type":"RECEIPT","partyType":"OTHER","partyName":"x","method":"CHEQUE","amount":"5"}`},
		{"malformed json", `{"type":`},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(http.MethodPost, "/api/v1/vouchers", tt.body)
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
	s.vouchers.AssertNotCalled(s.T(), "CreateVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestCreateVoucher_ErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", fmt.Errorf("%w: bank account is required for BANK_TRANSFER", apperrors.ErrValidation), http.StatusBadRequest},
		{"unknown party", fmt.Errorf("%w: customer c9", apperrors.ErrNotFound), http.StatusNotFound},
		{"insufficient balance", fmt.Errorf("%w: treasury balance 10 < 250", apperrors.ErrInsufficientBalance), http.StatusUnprocessableEntity},
		{"app error passthrough", apperrors.NewAppError(http.StatusForbidden, "Forbidden", nil), http.StatusForbidden},
		{"unexpected", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.vouchers.On("CreateVoucher", mock.Anything, mock.Anything, testUserID).Return(nil, tt.err).Once()
			w := s.do(http.MethodPost, "/api/v1/vouchers",
				`{"type":"PAYMENT","partyType":"CUSTOMER","partyID":"c1","method":"CASH","amount":"250"}`)
			s.Equal(tt.status, w.Code)
			s.NotEmpty(s.errorMessage(w))
		})
	}
}

func (s *HandlersTestSuite) TestGetVoucher_NotFoundLocalized() {
	s.vouchers.On("GetVoucher", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Twice()

	w := s.do(http.MethodGet, "/api/v1/vouchers/missing", "", "Accept-Language", "ar-SA,ar;q=0.9")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("العنصر المطلوب غير موجود", s.errorMessage(w))

	w = s.do(http.MethodGet, "/api/v1/vouchers/missing", "")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("The requested resource was not found", s.errorMessage(w))
}

func (s *HandlersTestSuite) TestRemoveVoucher_NoContent() {
	s.vouchers.On("RemoveVoucher", mock.Anything, "v-1", testUserID).Return(nil).Once()

	w := s.do(http.MethodDelete, "/api/v1/vouchers/v-1", "")
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *HandlersTestSuite) TestApprovePayroll_EmptyBodyDefaultsToCash() {
	run := &domain.PayrollRun{RunID: "r-1", Month: "2026-03", Status: domain.PayrollApproved, TotalNet: decimal.NewFromInt(7500)}
	s.payroll.On("Approve", mock.Anything, "r-1", dto.ApprovePayrollRequest{}, testUserID).Return(run, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/payroll-runs/r-1/approve", "")
	s.Equal(http.StatusOK, w.Code)
	var resp domain.PayrollRun
	s.decode(w, &resp)
	s.Equal(domain.PayrollApproved, resp.Status)
}

func (s *HandlersTestSuite) TestApprovePayroll_Conflict() {
	s.payroll.On("Approve", mock.Anything, "r-1", mock.Anything, testUserID).
		Return(nil, fmt.Errorf("%w: payroll run r-1 is APPROVED", apperrors.ErrConflict)).Once()

	w := s.do(http.MethodPost, "/api/v1/payroll-runs/r-1/approve", `{"paymentMethod":"CASH"}`)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlersTestSuite) TestCreatePayrollRun_RejectsBadMonth() {
	w := s.do(http.MethodPost, "/api/v1/payroll-runs", `{"month":"March 2026"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestSetOpeningBalance_SecondCallConflicts() {
	s.treasury.On("SetOpeningBalance", mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(1000))
	}), testUserID).Return(nil, fmt.Errorf("%w: opening balance already set", apperrors.ErrConflict)).Once()

	w := s.do(http.MethodPost, "/api/v1/treasury/opening-balance", `{"amount":"1000"}`)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlersTestSuite) TestSetOpeningBalance_RejectsNegative() {
	w := s.do(http.MethodPost, "/api/v1/treasury/opening-balance", `{"amount":"-1"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestCreateBankAccount_Created() {
	account := &domain.BankAccount{BankAccountID: "ba-1", BankID: "b1", AccountNo: "SA01", Name: "SA01", CurrentBalance: decimal.NewFromInt(500)}
	s.treasury.On("CreateBankAccount", mock.Anything, mock.Anything, testUserID).Return(account, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/bank-accounts", `{"bankID":"b1","accountNo":"SA01","openingBalance":"500"}`)
	s.Equal(http.StatusCreated, w.Code)
}

func (s *HandlersTestSuite) TestAccountBalance_LabelsAccount() {
	s.ledger.On("AccountBalance", mock.Anything, "treasury").Return(decimal.NewFromInt(1250), nil).Twice()

	w := s.do(http.MethodGet, "/api/v1/ledger/accounts/treasury/balance", "")
	s.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	s.decode(w, &resp)
	s.Equal("treasury", resp.Account)
	s.Equal("Treasury", resp.Name)
	s.True(resp.Balance.Equal(decimal.NewFromInt(1250)))

	w = s.do(http.MethodGet, "/api/v1/ledger/accounts/treasury/balance", "", "Accept-Language", "ar")
	s.decode(w, &resp)
	s.Equal("الخزينة", resp.Name)
}

func (s *HandlersTestSuite) TestPostEntry_Created() {
	entry := &domain.LedgerEntry{
		EntryID:       "e-1",
		SourceType:    domain.SourceInvoice,
		SourceID:      "inv-1",
		DebitAccount:  domain.CustomerAccount("c1"),
		CreditAccount: domain.RevenueAccount("import"),
		Amount:        decimal.NewFromInt(900),
	}
	s.ledger.On("Post", mock.Anything, mock.Anything, testUserID).Return(entry, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/ledger/entries",
		`{"sourceType":"INVOICE","sourceID":"inv-1","debitAccount":"customer:c1","creditAccount":"revenue:import","amount":"900"}`)
	s.Equal(http.StatusCreated, w.Code)
	var resp dto.LedgerEntryResponse
	s.decode(w, &resp)
	s.Equal("customer:c1", resp.DebitAccount)
	s.Equal("revenue:import", resp.CreditAccount)
}

func (s *HandlersTestSuite) TestPostEntry_RejectsOpeningBalanceSource() {
	w := s.do(http.MethodPost, "/api/v1/ledger/entries",
		`{"sourceType":"OPENING_BALANCE","sourceID":"x","debitAccount":"treasury","creditAccount":"equity:opening_balance","amount":"1"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestPostInvoice_ReturnsCode() {
	entry := &domain.LedgerEntry{
		EntryID:       "e-2",
		SourceType:    domain.SourceInvoice,
		DebitAccount:  domain.CustomerAccount("c1"),
		CreditAccount: domain.RevenueAccount("export"),
		Amount:        decimal.NewFromInt(300),
	}
	s.postings.On("PostInvoice", mock.Anything, mock.Anything, testUserID).Return("EX-26-0007", entry, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/postings/invoices",
		`{"invoiceID":"inv-7","invoiceType":"EXPORT","customerID":"c1","amount":"300"}`)
	s.Equal(http.StatusCreated, w.Code)
	var resp dto.InvoicePostingResponse
	s.decode(w, &resp)
	s.Equal("EX-26-0007", resp.InvoiceCode)
}

func (s *HandlersTestSuite) TestTrialBalance_SumsColumns() {
	rows := []domain.TrialBalanceRow{
		{Account: "treasury", Debit: decimal.NewFromInt(1000), Credit: decimal.NewFromInt(250), Balance: decimal.NewFromInt(750)},
		{Account: "customer:c1", Debit: decimal.NewFromInt(250), Credit: decimal.Zero, Balance: decimal.NewFromInt(250)},
		{Account: "equity:opening_balance", Debit: decimal.Zero, Credit: decimal.NewFromInt(1000), Balance: decimal.NewFromInt(-1000)},
	}
	asOf := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	s.reporting.On("TrialBalance", mock.Anything, mock.MatchedBy(asOf.Equal), "").Return(rows, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/reports/trial-balance?asOf=2026-03-31", "")
	s.Equal(http.StatusOK, w.Code)
	var resp dto.TrialBalanceResponse
	s.decode(w, &resp)
	s.Len(resp.Rows, 3)
	s.True(resp.Totals.Debit.Equal(decimal.NewFromInt(1250)))
	s.True(resp.Totals.Debit.Equal(resp.Totals.Credit))
}

func (s *HandlersTestSuite) TestIncomeStatement_PassesPeriodAndLanguage() {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	s.reporting.On("IncomeStatement", mock.Anything, mock.MatchedBy(from.Equal), mock.MatchedBy(to.Equal), "ar").
		Return(&domain.IncomeStatement{From: from, To: to, NetIncome: decimal.NewFromInt(40)}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/reports/income-statement?from=2026-01-01&to=2026-03-31", "", "Accept-Language", "ar")
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlersTestSuite) TestIncomeStatement_DefaultsToMonthToDate() {
	s.reporting.On("IncomeStatement", mock.Anything, mock.MatchedBy(func(from time.Time) bool {
		return from.Day() == 1
	}), mock.Anything, "").Return(&domain.IncomeStatement{}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/reports/income-statement", "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlersTestSuite) TestAccountStatement_MalformedCode() {
	s.reporting.On("AccountStatement", mock.Anything, "nonsense", mock.Anything, mock.Anything, "").
		Return(nil, fmt.Errorf("%w: unknown account kind", apperrors.ErrValidation)).Once()

	w := s.do(http.MethodGet, "/api/v1/reports/statement/nonsense", "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestUpdateSettings() {
	off := false
	updated := domain.AppSettings{PreventNegativeTreasury: false, PreventNegativeBank: true, UpdatedBy: testUserID}
	s.settings.On("UpdateSettings", mock.Anything, dto.UpdateSettingsRequest{PreventNegativeTreasury: &off}, testUserID).
		Return(updated, nil).Once()

	w := s.do(http.MethodPut, "/api/v1/settings", `{"preventNegativeTreasury":false}`)
	s.Equal(http.StatusOK, w.Code)
	var resp domain.AppSettings
	s.decode(w, &resp)
	s.False(resp.PreventNegativeTreasury)
	s.True(resp.PreventNegativeBank)
}

// --- Run Test Suite ---
func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
