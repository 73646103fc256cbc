package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"partnerdesk/internal/model/entity"
	"partnerdesk/internal/repository"
	"partnerdesk/internal/testutil"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestServiceTypeRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	ctx := context.Background()

	st := &entity.ServiceType{TypeName: "installation", ComplexityCoefficient: dec("1.5")}
	if err := repos.ServiceType.Create(ctx, st); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repos.ServiceType.FindByName(ctx, "installation")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.TypeName != "installation" || !got.ComplexityCoefficient.Equal(dec("1.5")) {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestServiceTypeDuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	ctx := context.Background()

	testutil.SeedServiceType(t, db, "installation", "1.5")

	err := repos.ServiceType.Create(ctx, &entity.ServiceType{
		TypeName:              "installation",
		ComplexityCoefficient: dec("2.0"),
	})
	if !errors.Is(err, repository.ErrDuplicateKey) {
		t.Errorf("got %v, want ErrDuplicateKey", err)
	}
}

func TestServiceRoundTripAndUniqueness(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	ctx := context.Background()

	testutil.SeedServiceType(t, db, "installation", "1.5")

	svc := &entity.Service{
		ServiceCode:   "SVC-001",
		TypeName:      "installation",
		ServiceName:   "Window installation",
		MinCost:       dec("100.00"),
		TimeNormHours: dec("2.00"),
		HourlyRate:    dec("30.00"),
	}
	if err := repos.Service.Create(ctx, svc); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repos.Service.FindByCode(ctx, "SVC-001")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ServiceName != "Window installation" || !got.MinCost.Equal(dec("100.00")) {
		t.Errorf("round trip mismatch: %+v", got)
	}

	// Same code collides.
	err = repos.Service.Create(ctx, &entity.Service{
		ServiceCode: "SVC-001",
		TypeName:    "installation",
		ServiceName: "Other name",
		MinCost:     dec("0"), TimeNormHours: dec("0"), HourlyRate: dec("0"),
	})
	if !errors.Is(err, repository.ErrDuplicateKey) {
		t.Errorf("duplicate code: got %v, want ErrDuplicateKey", err)
	}

	// Same name collides too.
	err = repos.Service.Create(ctx, &entity.Service{
		ServiceCode: "SVC-002",
		TypeName:    "installation",
		ServiceName: "Window installation",
		MinCost:     dec("0"), TimeNormHours: dec("0"), HourlyRate: dec("0"),
	})
	if !errors.Is(err, repository.ErrDuplicateKey) {
		t.Errorf("duplicate name: got %v, want ErrDuplicateKey", err)
	}
}

func TestServiceForeignKeyToType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	ctx := context.Background()

	err := repos.Service.Create(ctx, &entity.Service{
		ServiceCode: "SVC-001",
		TypeName:    "no-such-type",
		ServiceName: "Orphan",
		MinCost:     dec("0"), TimeNormHours: dec("0"), HourlyRate: dec("0"),
	})
	if !errors.Is(err, repository.ErrForeignKey) {
		t.Errorf("got %v, want ErrForeignKey", err)
	}
}

func TestMaterialForeignKeyToType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	ctx := context.Background()

	err := repos.Material.Create(ctx, &entity.Material{
		TypeName:     "no-such-type",
		MaterialName: "Orphan",
		CurrentPrice: dec("1.00"),
	})
	if !errors.Is(err, repository.ErrForeignKey) {
		t.Errorf("got %v, want ErrForeignKey", err)
	}
}

func TestLinkMaterialForeignKeys(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	ctx := context.Background()

	testutil.SeedServiceType(t, db, "installation", "1.5")
	testutil.SeedService(t, db, "SVC-001", "installation", "Window installation", "100", "2", "30")
	testutil.SeedMaterialType(t, db, "sealant", "0.10")
	material := testutil.SeedMaterial(t, db, "sealant", "Acrylic sealant", "4.00")

	err := repos.Service.LinkMaterial(ctx, &entity.ServiceMaterial{
		ServiceCode:     "no-such-svc",
		MaterialID:      material.MaterialID,
		ConsumptionNorm: dec("1"),
	})
	if !errors.Is(err, repository.ErrForeignKey) {
		t.Errorf("absent service: got %v, want ErrForeignKey", err)
	}

	err = repos.Service.LinkMaterial(ctx, &entity.ServiceMaterial{
		ServiceCode:     "SVC-001",
		MaterialID:      9999,
		ConsumptionNorm: dec("1"),
	})
	if !errors.Is(err, repository.ErrForeignKey) {
		t.Errorf("absent material: got %v, want ErrForeignKey", err)
	}
}

func TestPartnerDuplicateINN(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	ctx := context.Background()

	testutil.SeedPartner(t, db, "Acme", "7701234567")

	err := repos.Partner.Create(ctx, &entity.Partner{
		PartnerType: "LLC",
		PartnerName: "Globex",
		Manager:     "M", Email: "e@example.com", Phone: "1", Address: "a",
		INN:    "7701234567",
		Rating: 1,
	})
	if !errors.Is(err, repository.ErrDuplicateKey) {
		t.Errorf("got %v, want ErrDuplicateKey", err)
	}
}

func TestPartnerNegativeRatingRejectedByTable(t *testing.T) {
	db := testutil.SetupTestDB(t)

	// Even a write that skips the domain layer cannot store a negative
	// rating; the table carries its own check constraint.
	err := db.Create(&entity.Partner{
		PartnerType: "LLC",
		PartnerName: "Acme",
		Manager:     "M", Email: "e@example.com", Phone: "1", Address: "a",
		INN:    "7701234567",
		Rating: -1,
	}).Error
	if err == nil {
		t.Fatal("negative rating accepted by the partners table")
	}
}

func TestOrderForeignKeys(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	ctx := context.Background()

	testutil.SeedServiceType(t, db, "installation", "1.5")
	testutil.SeedService(t, db, "SVC-001", "installation", "Window installation", "100", "2", "30")
	partner := testutil.SeedPartner(t, db, "Acme", "7701234567")

	err := repos.Order.Create(ctx, &entity.Order{
		ServiceCode:   "no-such-svc",
		PartnerID:     partner.PartnerID,
		Quantity:      1,
		ExecutionDate: time.Now(),
	})
	if !errors.Is(err, repository.ErrForeignKey) {
		t.Errorf("absent service: got %v, want ErrForeignKey", err)
	}

	err = repos.Order.Create(ctx, &entity.Order{
		ServiceCode:   "SVC-001",
		PartnerID:     9999,
		Quantity:      1,
		ExecutionDate: time.Now(),
	})
	if !errors.Is(err, repository.ErrForeignKey) {
		t.Errorf("absent partner: got %v, want ErrForeignKey", err)
	}
}

func TestLinkMaterialDuplicatePair(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	ctx := context.Background()

	testutil.SeedServiceType(t, db, "installation", "1.5")
	testutil.SeedService(t, db, "SVC-001", "installation", "Window installation", "100", "2", "30")
	testutil.SeedMaterialType(t, db, "sealant", "0.10")
	material := testutil.SeedMaterial(t, db, "sealant", "Acrylic sealant", "4.00")

	first := &entity.ServiceMaterial{
		ServiceCode:     "SVC-001",
		MaterialID:      material.MaterialID,
		ConsumptionNorm: dec("5.00"),
	}
	if err := repos.Service.LinkMaterial(ctx, first); err != nil {
		t.Fatalf("link: %v", err)
	}

	err := repos.Service.LinkMaterial(ctx, &entity.ServiceMaterial{
		ServiceCode:     "SVC-001",
		MaterialID:      material.MaterialID,
		ConsumptionNorm: dec("1.00"),
	})
	if !errors.Is(err, repository.ErrDuplicateKey) {
		t.Errorf("got %v, want ErrDuplicateKey", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	ctx := context.Background()

	if err := repos.ServiceType.Delete(ctx, "ghost"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("service type: got %v, want ErrNotFound", err)
	}
	if err := repos.Partner.Delete(ctx, 42); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("partner: got %v, want ErrNotFound", err)
	}
	if err := repos.Material.Delete(ctx, 42); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("material: got %v, want ErrNotFound", err)
	}
}
