package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"partnerdesk/internal/handler"
	"partnerdesk/internal/repository"
	"partnerdesk/internal/service"
	"partnerdesk/internal/testutil"
)

func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)
	handlers := handler.NewHandlers(services)

	r := testutil.SetupRouter()
	handler.RegisterRoutes(r, handlers)
	return r, db
}

func partnerBody(name, inn string, rating int) map[string]interface{} {
	return map[string]interface{}{
		"partner_type": "LLC",
		"partner_name": name,
		"manager":      "J. Smith",
		"email":        "sales@acme.example",
		"phone":        "+7-900-000-00-00",
		"address":      "1 Main St",
		"inn":          inn,
		"rating":       rating,
	}
}

func TestPartnerLifecycle(t *testing.T) {
	r, _ := setupAPI(t)

	w := testutil.DoRequest(r, "POST", "/api/v1/partners", partnerBody("Acme", "7701234567", 5))
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d, body %s", w.Code, w.Body.String())
	}
	created := testutil.ParseResponse(w)
	data := created["data"].(map[string]interface{})
	id := int(data["partner_id"].(float64))

	// Round trip.
	w = testutil.DoRequest(r, "GET", fmt.Sprintf("/api/v1/partners/%d", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: status %d", w.Code)
	}
	got := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if got["partner_name"] != "Acme" || got["inn"] != "7701234567" {
		t.Errorf("round trip mismatch: %v", got)
	}

	// Duplicate INN conflicts.
	w = testutil.DoRequest(r, "POST", "/api/v1/partners", partnerBody("Globex", "7701234567", 1))
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate inn: status %d, want 409", w.Code)
	}
	resp := testutil.ParseResponse(w)
	if int(resp["code"].(float64)) != 40902 {
		t.Errorf("duplicate inn: code %v, want 40902", resp["code"])
	}

	// Negative rating is a validation failure.
	w = testutil.DoRequest(r, "POST", "/api/v1/partners", partnerBody("Initech", "7709999999", -1))
	if w.Code != http.StatusBadRequest {
		t.Errorf("negative rating: status %d, want 400", w.Code)
	}

	// Delete, then 404.
	w = testutil.DoRequest(r, "DELETE", fmt.Sprintf("/api/v1/partners/%d", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status %d", w.Code)
	}
	w = testutil.DoRequest(r, "GET", fmt.Sprintf("/api/v1/partners/%d", id), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete: status %d, want 404", w.Code)
	}
}

func TestPartnerUpdate(t *testing.T) {
	r, db := setupAPI(t)

	partner := testutil.SeedPartner(t, db, "Acme", "7701234567")
	testutil.SeedPartner(t, db, "Globex", "7707654321")

	// Re-saving the partner with its own inn must not conflict with itself.
	body := partnerBody("Acme Retail", "7701234567", 4)
	w := testutil.DoRequest(r, "PUT", fmt.Sprintf("/api/v1/partners/%d", partner.PartnerID), body)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status %d, body %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, "GET", fmt.Sprintf("/api/v1/partners/%d", partner.PartnerID), nil)
	got := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if got["partner_name"] != "Acme Retail" || int(got["rating"].(float64)) != 4 {
		t.Errorf("update not persisted: %v", got)
	}

	// Taking another partner's inn conflicts.
	w = testutil.DoRequest(r, "PUT", fmt.Sprintf("/api/v1/partners/%d", partner.PartnerID),
		partnerBody("Acme Retail", "7707654321", 4))
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate inn: status %d, want 409", w.Code)
	}
	resp := testutil.ParseResponse(w)
	if int(resp["code"].(float64)) != 40902 {
		t.Errorf("duplicate inn: code %v, want 40902", resp["code"])
	}

	// Update still validates like create.
	w = testutil.DoRequest(r, "PUT", fmt.Sprintf("/api/v1/partners/%d", partner.PartnerID),
		partnerBody("Acme Retail", "7701234567", -1))
	if w.Code != http.StatusBadRequest {
		t.Errorf("negative rating: status %d, want 400", w.Code)
	}

	// Updating an absent partner is a 404.
	w = testutil.DoRequest(r, "PUT", "/api/v1/partners/9999", partnerBody("Ghost", "7700000000", 1))
	if w.Code != http.StatusNotFound {
		t.Errorf("absent partner: status %d, want 404", w.Code)
	}
}

func TestServiceCostEndpoint(t *testing.T) {
	r, db := setupAPI(t)

	testutil.SeedServiceType(t, db, "installation", "1.5")
	testutil.SeedService(t, db, "SVC-001", "installation", "Window installation", "100", "2", "30")
	testutil.SeedMaterialType(t, db, "sealant", "0.10")
	material := testutil.SeedMaterial(t, db, "sealant", "Acrylic sealant", "4.00")

	w := testutil.DoRequest(r, "POST", "/api/v1/services/SVC-001/materials", map[string]interface{}{
		"material_id":      material.MaterialID,
		"consumption_norm": "5",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("link: status %d, body %s", w.Code, w.Body.String())
	}

	// 22 material + 60 labor = 82 < min cost 100.
	w = testutil.DoRequest(r, "GET", "/api/v1/services/SVC-001/cost", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cost: status %d, body %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["total_cost"] != "100" {
		t.Errorf("total_cost = %v, want 100", data["total_cost"])
	}

	// Unknown service is a 404.
	w = testutil.DoRequest(r, "GET", "/api/v1/services/no-such/cost", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown service: status %d, want 404", w.Code)
	}
}

func TestOrderForeignKeyConflict(t *testing.T) {
	r, db := setupAPI(t)

	partner := testutil.SeedPartner(t, db, "Acme", "7701234567")

	w := testutil.DoRequest(r, "POST", "/api/v1/orders", map[string]interface{}{
		"service_code":   "no-such-svc",
		"partner_id":     partner.PartnerID,
		"quantity":       1,
		"execution_date": "2026-09-01T10:00:00Z",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("status %d, want 409", w.Code)
	}
	resp := testutil.ParseResponse(w)
	if int(resp["code"].(float64)) != 40901 {
		t.Errorf("code %v, want 40901", resp["code"])
	}
}

func TestPartnerOrderHistory(t *testing.T) {
	r, db := setupAPI(t)

	testutil.SeedServiceType(t, db, "installation", "1.5")
	testutil.SeedService(t, db, "SVC-001", "installation", "Window installation", "100", "2", "30")
	partner := testutil.SeedPartner(t, db, "Acme", "7701234567")

	for _, date := range []string{"2026-09-01T10:00:00Z", "2026-09-02T10:00:00Z"} {
		w := testutil.DoRequest(r, "POST", "/api/v1/orders", map[string]interface{}{
			"service_code":   "SVC-001",
			"partner_id":     partner.PartnerID,
			"quantity":       1,
			"execution_date": date,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("order: status %d, body %s", w.Code, w.Body.String())
		}
	}

	w := testutil.DoRequest(r, "GET", fmt.Sprintf("/api/v1/partners/%d/orders", partner.PartnerID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("history: status %d", w.Code)
	}
	orders := testutil.ParseResponse(w)["data"].([]interface{})
	if len(orders) != 2 {
		t.Errorf("history length = %d, want 2", len(orders))
	}

	// History of an absent partner is a 404.
	w = testutil.DoRequest(r, "GET", "/api/v1/partners/9999/orders", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("absent partner: status %d, want 404", w.Code)
	}
}

func TestPlanMaterialQuantityEndpoint(t *testing.T) {
	r, db := setupAPI(t)

	testutil.SeedServiceType(t, db, "installation", "1.5")
	testutil.SeedMaterialType(t, db, "sealant", "0.10")

	// 2.5 × 1.5 × 3 × 1.10 = 12.375 → 13 units.
	w := testutil.DoRequest(r, "POST", "/api/v1/planning/material-quantity", map[string]interface{}{
		"service_type":   "installation",
		"material_type":  "sealant",
		"quantity":       3,
		"service_params": "2.5",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if int(data["units"].(float64)) != 13 {
		t.Errorf("units = %v, want 13", data["units"])
	}

	// Unknown material type is a 404.
	w = testutil.DoRequest(r, "POST", "/api/v1/planning/material-quantity", map[string]interface{}{
		"service_type":   "installation",
		"material_type":  "no-such",
		"quantity":       3,
		"service_params": "2.5",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown type: status %d, want 404", w.Code)
	}
}
