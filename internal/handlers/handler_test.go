package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartcare-admin/internal/config"
	"smartcare-admin/internal/events"
	"smartcare-admin/internal/handlers"
	"smartcare-admin/internal/repository/repotest"
	"smartcare-admin/internal/routes"
	"smartcare-admin/internal/services"
	"smartcare-admin/internal/store"
	"smartcare-admin/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testAccessCode = "011090"

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	router *gin.Engine
	db     *repotest.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := repotest.New()
	st := store.NewMemoryStore()
	pub := events.NopPublisher{}

	auth, err := services.NewAuthService(testAccessCode, "test-secret", time.Hour, st)
	require.NoError(t, err)
	mitra := services.NewMitraService(db.Mitras, pub)

	h := &handlers.Handler{
		Auth:       auth,
		Mitra:      mitra,
		TopUp:      services.NewTopUpService(db.TopUps, utils.NewMidtransGateway("", ""), pub),
		Saldo:      services.NewSaldoService(db.Users, db.Mitras, pub),
		Chat:       services.NewChatService(db.Chats),
		Tagihan:    services.NewTagihanService(db.Tagihans, pub),
		Layanan:    services.NewLayananService(db.Layanans, pub),
		Transaksi:  services.NewTransaksiService(db.TopUps, db.Tagihans),
		Pengguna:   services.NewPenggunaService(db.Users, db.Mitras, db.Admins, mitra),
		Statistik:  services.NewStatistikService(db.Statistik),
		Notifikasi: services.NewNotifikasiService(db.Users, db.Mitras, st, &utils.FCMBroadcaster{}, pub),
		Pengaturan: services.NewPengaturanService(st),
	}

	r := gin.New()
	routes.SetupRoutes(r, &config.Config{RateLimitRPS: 1000, RateLimitBurst: 1000}, h)
	return &testServer{router: r, db: db}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp apiResponse
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	w, resp := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"access_code": testAccessCode})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func decode(t *testing.T, resp apiResponse, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, out))
}
