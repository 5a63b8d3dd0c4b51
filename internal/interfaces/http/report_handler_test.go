package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-ventas/internal/application/dto"
	"github.com/jhoicas/reportes-ventas/internal/domain"
	apphttp "github.com/jhoicas/reportes-ventas/internal/interfaces/http"
)

const (
	testRequestID = "7f0c1e9a-1b2c-4d5e-8f90-123456789abc"
	testFilename  = "rapport_commandes_livraisons_20240401_120000.xlsx"
)

type mockWizard struct {
	mock.Mock
}

func (m *mockWizard) Create(ctx context.Context, userID string, in dto.ReportRequestInput) (*dto.ReportRequestResponse, error) {
	args := m.Called(ctx, userID, in)
	out, _ := args.Get(0).(*dto.ReportRequestResponse)
	return out, args.Error(1)
}

func (m *mockWizard) Get(ctx context.Context, userID, id string) (*dto.ReportRequestResponse, error) {
	args := m.Called(ctx, userID, id)
	out, _ := args.Get(0).(*dto.ReportRequestResponse)
	return out, args.Error(1)
}

func (m *mockWizard) UpdateDates(ctx context.Context, userID, id string, in dto.ReportRequestInput) (*dto.ReportRequestResponse, error) {
	args := m.Called(ctx, userID, id, in)
	out, _ := args.Get(0).(*dto.ReportRequestResponse)
	return out, args.Error(1)
}

func (m *mockWizard) Generate(ctx context.Context, userID, id string) (*dto.DownloadAction, error) {
	args := m.Called(ctx, userID, id)
	out, _ := args.Get(0).(*dto.DownloadAction)
	return out, args.Error(1)
}

func (m *mockWizard) Content(ctx context.Context, userID, id, filename string) ([]byte, string, error) {
	args := m.Called(ctx, userID, id, filename)
	data, _ := args.Get(0).([]byte)
	return data, args.String(1), args.Error(2)
}

func (m *mockWizard) PreviewPDF(ctx context.Context, userID, id string) ([]byte, string, error) {
	args := m.Called(ctx, userID, id)
	data, _ := args.Get(0).([]byte)
	return data, args.String(1), args.Error(2)
}

func newReportApp(w *mockWizard) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{ReportUC: w, JWTSecret: testJWTSecret})
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body string, auth string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ─── Alta y consulta ──────────────────────────────────────────────────────────

func TestReportHandler_Create(t *testing.T) {
	w := new(mockWizard)
	in := dto.ReportRequestInput{DateStart: "2024-03-01", DateEnd: "2024-03-31"}
	w.On("Create", mock.Anything, testUserID, in).Return(&dto.ReportRequestResponse{
		ID: testRequestID, DateStart: in.DateStart, DateEnd: in.DateEnd, CreatedAt: time.Now(),
	}, nil)

	resp := send(t, newReportApp(w), http.MethodPost, "/api/reports/sale-deliveries",
		`{"date_start":"2024-03-01","date_end":"2024-03-31"}`, bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.ReportRequestResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, testRequestID, out.ID)
	w.AssertExpectations(t)
}

func TestReportHandler_Create_RangoInvertido(t *testing.T) {
	w := new(mockWizard)
	w.On("Create", mock.Anything, testUserID, mock.Anything).Return(nil, domain.ErrInvalidDateRange)

	resp := send(t, newReportApp(w), http.MethodPost, "/api/reports/sale-deliveries",
		`{"date_start":"2024-03-31","date_end":"2024-03-01"}`, bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_DATE_RANGE", decodeError(t, resp).Code)
}

func TestReportHandler_Create_FechaMalFormada(t *testing.T) {
	w := new(mockWizard)
	w.On("Create", mock.Anything, testUserID, mock.Anything).
		Return(nil, fmt.Errorf("%w: date_start debe tener formato YYYY-MM-DD", domain.ErrInvalidInput))

	resp := send(t, newReportApp(w), http.MethodPost, "/api/reports/sale-deliveries",
		`{"date_start":"01/03/2024","date_end":"2024-03-31"}`, bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}

func TestReportHandler_Create_CuerpoInvalido(t *testing.T) {
	resp := send(t, newReportApp(new(mockWizard)), http.MethodPost, "/api/reports/sale-deliveries",
		`{no-json`, bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}

func TestReportHandler_SinToken(t *testing.T) {
	resp := send(t, newReportApp(new(mockWizard)), http.MethodGet, "/api/reports/sale-deliveries/"+testRequestID, "", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestReportHandler_Get_MapeoDeErrores(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"no existe", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"de otro usuario", domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"envuelto", fmt.Errorf("report: obtener solicitud: %w", domain.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"interno", errors.New("conexión cerrada"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := new(mockWizard)
			w.On("Get", mock.Anything, testUserID, testRequestID).Return(nil, tc.err)

			resp := send(t, newReportApp(w), http.MethodGet, "/api/reports/sale-deliveries/"+testRequestID, "", bearer(t))
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decodeError(t, resp).Code)
		})
	}
}

func TestReportHandler_Update(t *testing.T) {
	w := new(mockWizard)
	in := dto.ReportRequestInput{DateStart: "2024-04-01", DateEnd: "2024-04-30"}
	w.On("UpdateDates", mock.Anything, testUserID, testRequestID, in).
		Return(&dto.ReportRequestResponse{ID: testRequestID, DateStart: in.DateStart, DateEnd: in.DateEnd}, nil)

	resp := send(t, newReportApp(w), http.MethodPut, "/api/reports/sale-deliveries/"+testRequestID,
		`{"date_start":"2024-04-01","date_end":"2024-04-30"}`, bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	w.AssertExpectations(t)
}

// ─── Generación y descarga ────────────────────────────────────────────────────

func TestReportHandler_Generate_DevuelveDirectivaDeDescarga(t *testing.T) {
	w := new(mockWizard)
	url := "/web/content/sale.order.report.wizard/" + testRequestID + "/excel_file/" + testFilename + "?download=true"
	w.On("Generate", mock.Anything, testUserID, testRequestID).Return(&dto.DownloadAction{
		Type: "ir.actions.act_url", URL: url, Target: "self", Filename: testFilename,
	}, nil)

	resp := send(t, newReportApp(w), http.MethodPost, "/api/reports/sale-deliveries/"+testRequestID+"/generate", "", bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.DownloadAction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ir.actions.act_url", out.Type)
	assert.Equal(t, "self", out.Target)
	assert.Equal(t, url, out.URL)
}

func TestReportHandler_Content_Adjunto(t *testing.T) {
	w := new(mockWizard)
	payload := []byte("PK\x03\x04xlsx")
	w.On("Content", mock.Anything, testUserID, testRequestID, testFilename).Return(payload, testFilename, nil)

	path := "/web/content/sale.order.report.wizard/" + testRequestID + "/excel_file/" + testFilename + "?download=true"
	resp := send(t, newReportApp(w), http.MethodGet, path, "", bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("attachment; filename=%q", testFilename), resp.Header.Get("Content-Disposition"))
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, payload, body)
}

func TestReportHandler_Content_ModeloDesconocido(t *testing.T) {
	w := new(mockWizard)

	path := "/web/content/res.partner/" + testRequestID + "/image/foto.png"
	resp := send(t, newReportApp(w), http.MethodGet, path, "", bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	w.AssertNotCalled(t, "Content", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportHandler_Content_SinGenerar(t *testing.T) {
	w := new(mockWizard)
	w.On("Content", mock.Anything, testUserID, testRequestID, testFilename).Return(nil, "", domain.ErrNotFound)

	path := "/web/content/sale.order.report.wizard/" + testRequestID + "/excel_file/" + testFilename
	resp := send(t, newReportApp(w), http.MethodGet, path, "", bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReportHandler_PDF(t *testing.T) {
	w := new(mockWizard)
	w.On("PreviewPDF", mock.Anything, testUserID, testRequestID).
		Return([]byte("%PDF-1.7"), "rapport_commandes_livraisons_20240401_120000.pdf", nil)

	resp := send(t, newReportApp(w), http.MethodGet, "/api/reports/sale-deliveries/"+testRequestID+"/pdf", "", bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".pdf")
}

func TestRouter_Health(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{ReportUC: new(mockWizard), JWTSecret: testJWTSecret})

	resp := send(t, app, http.MethodGet, "/health", "", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	app = fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ReportUC: new(mockWizard), JWTSecret: testJWTSecret,
		Health: func() error { return errors.New("db caída") },
	})
	resp = send(t, app, http.MethodGet, "/health", "", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
