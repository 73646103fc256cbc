package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"partnerdesk/internal/model/entity"
	"partnerdesk/internal/repository"
)

const testSchema = "test_partnerdesk"

// projectRoot returns the project root directory by looking for go.mod
func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

func loadEnv() {
	root := projectRoot()
	if root != "" {
		godotenv.Load(filepath.Join(root, ".env"))
	}
}

// SetupTestDB creates a test database connection using a dedicated test
// schema. Each test gets an isolated schema that is dropped afterwards.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	loadEnv()

	host := getEnv("DATABASE_HOST", "127.0.0.1")
	port := getEnv("DATABASE_PORT", "5432")
	user := getEnv("DATABASE_USER", "partnerdesk")
	password := getEnv("DATABASE_PASSWORD", "partnerdesk")
	dbname := getEnv("DATABASE_DBNAME", "partnerdesk")

	baseDSN := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	schemaName := fmt.Sprintf("%s_%d", testSchema, time.Now().UnixNano()%1000000)

	setupDB, err := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to database for schema setup: %v", err)
	}
	setupDB.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schemaName))
	sqlSetup, _ := setupDB.DB()
	sqlSetup.Close()

	// search_path in the DSN so all pooled connections use the test schema.
	testDSN := fmt.Sprintf("%s search_path=%s", baseDSN, schemaName)
	db, err := gorm.Open(postgres.Open(testDSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// The cascade-delete behavior under test depends on the real FK
	// constraints, so migrate with constraints enabled.
	if err := repository.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test tables: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		cleanDB, cleanErr := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if cleanErr == nil {
			cleanDB.Exec(fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName))
			sqlClean, _ := cleanDB.DB()
			if sqlClean != nil {
				sqlClean.Close()
			}
		}
	})

	return db
}

// SetupRouter creates a gin test router.
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// DoRequest executes an HTTP request against the test router.
func DoRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse parses a JSON response body into a map.
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// SeedServiceType inserts a service type.
func SeedServiceType(t *testing.T, db *gorm.DB, name, coefficient string) *entity.ServiceType {
	t.Helper()
	st := &entity.ServiceType{
		TypeName:              name,
		ComplexityCoefficient: decimal.RequireFromString(coefficient),
	}
	if err := db.Create(st).Error; err != nil {
		t.Fatalf("Failed to seed service type: %v", err)
	}
	return st
}

// SeedService inserts a service under an existing type.
func SeedService(t *testing.T, db *gorm.DB, code, typeName, name, minCost, hours, rate string) *entity.Service {
	t.Helper()
	svc := &entity.Service{
		ServiceCode:   code,
		TypeName:      typeName,
		ServiceName:   name,
		MinCost:       decimal.RequireFromString(minCost),
		TimeNormHours: decimal.RequireFromString(hours),
		HourlyRate:    decimal.RequireFromString(rate),
	}
	if err := db.Create(svc).Error; err != nil {
		t.Fatalf("Failed to seed service: %v", err)
	}
	return svc
}

// SeedMaterialType inserts a material type.
func SeedMaterialType(t *testing.T, db *gorm.DB, name, overconsumption string) *entity.MaterialType {
	t.Helper()
	mt := &entity.MaterialType{
		TypeName:               name,
		OverconsumptionPercent: decimal.RequireFromString(overconsumption),
	}
	if err := db.Create(mt).Error; err != nil {
		t.Fatalf("Failed to seed material type: %v", err)
	}
	return mt
}

// SeedMaterial inserts a material under an existing type.
func SeedMaterial(t *testing.T, db *gorm.DB, typeName, name, price string) *entity.Material {
	t.Helper()
	m := &entity.Material{
		TypeName:     typeName,
		MaterialName: name,
		CurrentPrice: decimal.RequireFromString(price),
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("Failed to seed material: %v", err)
	}
	return m
}

// SeedPartner inserts a partner.
func SeedPartner(t *testing.T, db *gorm.DB, name, inn string) *entity.Partner {
	t.Helper()
	p := &entity.Partner{
		PartnerType: "LLC",
		PartnerName: name,
		Manager:     "Test Manager",
		Email:       "manager@example.com",
		Phone:       "+7-900-000-00-00",
		Address:     "1 Test St",
		INN:         inn,
		Rating:      5,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("Failed to seed partner: %v", err)
	}
	return p
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
