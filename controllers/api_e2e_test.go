package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	sqle "github.com/dolthub/go-mysql-server"
	"github.com/dolthub/go-mysql-server/memory"
	"github.com/dolthub/go-mysql-server/server"
	dsql "github.com/dolthub/go-mysql-server/sql"
	"github.com/dolthub/go-mysql-server/sql/mysql_db"
	vitessmysql "github.com/dolthub/vitess/go/mysql"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"nextparkapi/bootstrap"
	"nextparkapi/config"
	"nextparkapi/models"
	"nextparkapi/services"
	"nextparkapi/services/keygen"
	keygenmysql "nextparkapi/services/keygen/mysql"
	"nextparkapi/utils"
)

// The end-to-end tests run the full HTTP stack against a temporary in-memory
// MySQL server, so every request exercises routing, validation, services,
// repositories, and the scan-fallback key generation path.

var (
	setupOnce  sync.Once
	setupErr   error
	testRouter *gin.Engine
)

func apiRouter(t *testing.T) *gin.Engine {
	t.Helper()
	setupOnce.Do(func() { setupErr = startTestAPI() })
	require.NoError(t, setupErr)
	return testRouter
}

func startTestAPI() error {
	gin.SetMode(gin.TestMode)

	port, err := freePort()
	if err != nil {
		return fmt.Errorf("failed to get free port: %w", err)
	}

	memDB := memory.NewDatabase("nextpark")
	provider := memory.NewDBProvider(memDB)
	engine := sqle.NewDefault(provider)

	srvConfig := server.Config{
		Protocol: "tcp",
		Address:  fmt.Sprintf("localhost:%d", port),
	}
	srv, err := server.NewServer(srvConfig, engine, memorySessionBuilder(provider), nil)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	go srv.Start()

	if err := waitForPort(port, 5*time.Second); err != nil {
		return err
	}

	dsn := fmt.Sprintf("root:@tcp(localhost:%d)/nextpark?charset=utf8mb4&parseTime=True&loc=Local", port)
	gormDB, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return fmt.Errorf("failed to open gorm connection: %w", err)
	}

	config.DB = gormDB
	config.Cfg.DBProvider = "mysql"

	if err := bootstrap.Migrate(); err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	registry := keygen.NewRegistry(
		keygen.NewIdentityStrategy(),
		keygen.NewSequenceStrategy(keygenmysql.NewStore(sqlDB)),
	)

	SetMotoService(services.NewMotoService(registry))
	SetVagaService(services.NewVagaService(registry))
	SetManutencaoService(services.NewManutencaoService(registry))
	SetAuthService(services.NewAuthService(registry))

	router := gin.New()
	router.Use(utils.LoggerMiddleware())
	api := router.Group("/api")
	{
		RegisterMotoRoutes(api)
		RegisterVagaRoutes(api)
		RegisterManutencaoRoutes(api)
		RegisterAuthRoutes(api)
	}
	RegisterHealthRoutes(router)

	testRouter = router
	return nil
}

func memorySessionBuilder(pro *memory.DbProvider) server.SessionBuilder {
	return func(ctx context.Context, conn *vitessmysql.Conn, addr string) (dsql.Session, error) {
		host := ""
		user := ""
		mysqlConnectionUser, ok := conn.UserData.(mysql_db.MysqlConnectionUser)
		if ok {
			host = mysqlConnectionUser.Host
			user = mysqlConnectionUser.User
		}

		client := dsql.Client{Address: host, User: user, Capabilities: conn.Capabilities}
		baseSession := dsql.NewBaseSessionWithClientServer(addr, client, conn.ConnectionID)
		return memory.NewSession(baseSession, pro), nil
	}
}

func freePort() (int, error) {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}

func waitForPort(port int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", fmt.Sprintf("localhost:%d", port), 100*time.Millisecond)
		if err == nil {
			conn.Close()
			return nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	return fmt.Errorf("server on port %d failed to start within %s", port, timeout)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createTestVaga(t *testing.T, router *gin.Engine) uint {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/Vaga", models.Vaga{
		AreaVaga: "A",
		StVaga:   "L",
		IdPatio:  1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data models.Vaga `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotZero(t, resp.Data.IdVaga)
	return resp.Data.IdVaga
}

func createTestMoto(t *testing.T, router *gin.Engine, idVaga uint, placa string) uint {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/Moto", models.Moto{
		NrPlaca:  placa,
		NmModelo: "CG 160",
		StMoto:   "P",
		IdVaga:   idVaga,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data models.Moto `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotZero(t, resp.Data.IdMoto)
	return resp.Data.IdMoto
}

// TestHealthEndpoint verifies the liveness probe against the running database
func TestHealthEndpoint(t *testing.T) {
	router := apiRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "up", body["database"])
}

// TestMotoCRUD walks a motorcycle through its full lifecycle
func TestMotoCRUD(t *testing.T) {
	router := apiRouter(t)
	idVaga := createTestVaga(t, router)

	// Create
	w := doJSON(t, router, http.MethodPost, "/api/Moto", models.Moto{
		NrPlaca:  "ABC1D23",
		NmModelo: "CB 300",
		StMoto:   "P",
		IdVaga:   idVaga,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data  models.Moto   `json:"data"`
		Links []models.Link `json:"links"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.Data.IdMoto)
	assert.Equal(t, fmt.Sprintf("/api/Moto/%d", created.Data.IdMoto), w.Header().Get("Location"))

	// Read
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/Moto/%d", created.Data.IdMoto), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched struct {
		Data  models.Moto   `json:"data"`
		Links []models.Link `json:"links"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "ABC1D23", fetched.Data.NrPlaca)
	rels := make([]string, 0, len(fetched.Links))
	for _, link := range fetched.Links {
		rels = append(rels, link.Rel)
	}
	assert.ElementsMatch(t, []string{"self", "update", "delete"}, rels)

	// Update with mismatched route/body identifiers must fail
	mismatch := fetched.Data
	mismatch.IdMoto = created.Data.IdMoto + 1000
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/Moto/%d", created.Data.IdMoto), mismatch)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Update
	updated := fetched.Data
	updated.StMoto = "S"
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/Moto/%d", created.Data.IdMoto), updated)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/Moto/%d", created.Data.IdMoto), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "S", fetched.Data.StMoto)

	// Delete, then the record is gone
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/Moto/%d", created.Data.IdMoto), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/Moto/%d", created.Data.IdMoto), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/Moto/%d", created.Data.IdMoto), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestMotoCreate_UnknownVaga verifies the referenced parking spot must exist
func TestMotoCreate_UnknownVaga(t *testing.T) {
	router := apiRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/Moto", models.Moto{
		NrPlaca:  "XYZ9Z99",
		NmModelo: "Biz 125",
		StMoto:   "P",
		IdVaga:   99999,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestMotoCreate_InvalidPayload verifies validation rejects incomplete bodies
func TestMotoCreate_InvalidPayload(t *testing.T) {
	router := apiRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/Moto", map[string]interface{}{
		"nrPlaca": "ABC1D23",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestPaginationValidation verifies non-positive page parameters get a 400
func TestPaginationValidation(t *testing.T) {
	router := apiRouter(t)

	for _, path := range []string{
		"/api/Moto?pageNumber=0",
		"/api/Moto?pageSize=0",
		"/api/Vaga?pageNumber=-1",
		"/api/Manutencao?pageSize=abc",
	} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

// TestVagaList_Links verifies paged envelopes carry navigation links
func TestVagaList_Links(t *testing.T) {
	router := apiRouter(t)
	for i := 0; i < 3; i++ {
		createTestVaga(t, router)
	}

	w := doJSON(t, router, http.MethodGet, "/api/Vaga?pageNumber=1&pageSize=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Items      []models.Vaga `json:"items"`
		TotalCount int64         `json:"totalCount"`
		TotalPages int           `json:"totalPages"`
		Links      []models.Link `json:"links"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.LessOrEqual(t, len(page.Items), 2)
	assert.GreaterOrEqual(t, page.TotalCount, int64(3))

	rels := map[string]string{}
	for _, link := range page.Links {
		rels[link.Rel] = link.Href
	}
	assert.Equal(t, "/api/Vaga?pageNumber=1&pageSize=2", rels["self"])
	assert.Equal(t, "/api/Vaga", rels["create"])
	if page.TotalPages > 1 {
		assert.Equal(t, "/api/Vaga?pageNumber=2&pageSize=2", rels["next"])
	}
}

// TestManutencaoLifecycle verifies maintenance records ride on an existing moto
func TestManutencaoLifecycle(t *testing.T) {
	router := apiRouter(t)

	// Unknown moto is a client error, not a server error
	w := doJSON(t, router, http.MethodPost, "/api/Manutencao", models.Manutencao{
		IdMoto: 99999,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	idVaga := createTestVaga(t, router)
	idMoto := createTestMoto(t, router, idVaga, "MNT0A01")

	descricao := "troca de oleo"
	w = doJSON(t, router, http.MethodPost, "/api/Manutencao", models.Manutencao{
		DsManutencao: &descricao,
		IdMoto:       idMoto,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data models.Manutencao `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.Data.IdManutencao)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/Manutencao/%d", created.Data.IdManutencao), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched struct {
		Data models.Manutencao `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	require.NotNil(t, fetched.Data.DsManutencao)
	assert.Equal(t, descricao, *fetched.Data.DsManutencao)
	assert.Equal(t, idMoto, fetched.Data.IdMoto)
}

// TestAuthRegisterAndLogin verifies the registration transaction and credential checks
func TestAuthRegisterAndLogin(t *testing.T) {
	router := apiRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", RegisterRequest{
		Email:    "rider@nextpark.com",
		Password: "sup3r-secret",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var registered struct {
		UsuarioID uint   `json:"usuarioId"`
		Email     string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	require.NotZero(t, registered.UsuarioID)
	assert.Equal(t, "rider@nextpark.com", registered.Email)

	// Second registration with the same e-mail conflicts
	w = doJSON(t, router, http.MethodPost, "/api/auth/register", RegisterRequest{
		Email:    "rider@nextpark.com",
		Password: "another-secret",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Correct credentials succeed and point back at the same user
	w = doJSON(t, router, http.MethodPost, "/api/auth/login", LoginRequest{
		Email:    "rider@nextpark.com",
		Password: "sup3r-secret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var logged struct {
		UsuarioID uint `json:"usuarioId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logged))
	assert.Equal(t, registered.UsuarioID, logged.UsuarioID)

	// Wrong password and unknown e-mail both fail the same way
	w = doJSON(t, router, http.MethodPost, "/api/auth/login", LoginRequest{
		Email:    "rider@nextpark.com",
		Password: "wrong-secret",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", LoginRequest{
		Email:    "ghost@nextpark.com",
		Password: "sup3r-secret",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestAuthRegister_InvalidPayload verifies e-mail and password validation
func TestAuthRegister_InvalidPayload(t *testing.T) {
	router := apiRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", RegisterRequest{
		Email:    "not-an-email",
		Password: "sup3r-secret",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/register", RegisterRequest{
		Email:    "short@nextpark.com",
		Password: "123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
