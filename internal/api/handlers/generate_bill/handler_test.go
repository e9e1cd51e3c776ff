package generate_bill

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/billstatus"
	generateBill "github.com/m04kA/SMC-SalonDashboard/internal/usecase/generate_bill"
)

type fakeUseCase struct {
	resp *generateBill.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *generateBill.Request) (*generateBill.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func do(uc *fakeUseCase, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/"+id+"/bill", nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_FailedBillIsNotAnHTTPError(t *testing.T) {
	uc := &fakeUseCase{resp: &generateBill.Response{
		AppointmentID: "a1",
		Result:        domain.BillResult{Success: false, Message: "Customer has no email"},
		Status:        billstatus.Entry{State: billstatus.StateFailed, Message: "Customer has no email"},
	}}

	rec := do(uc, "a1")

	require.Equal(t, http.StatusOK, rec.Code)
	var body GenerateBillResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "Customer has no email", body.Message)
	assert.Equal(t, "failed", body.Status.State)
	assert.Equal(t, "a1", body.Status.AppointmentID)
}

func TestHandle_InProgress(t *testing.T) {
	rec := do(&fakeUseCase{err: generateBill.ErrBillInProgress}, "a1")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_Unauthenticated(t *testing.T) {
	rec := do(&fakeUseCase{err: generateBill.ErrUnauthenticated}, "a1")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
