package mysql

import (
	"context"
	"errors"
	"sort"
	"testing"

	"gorm.io/gorm"
)

func TestCustomerDuplicateCode(t *testing.T) {
	db := openTestDB(t)
	a := seedArea(t, db, "Pune", "PNE")
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	first := seedCustomer(t, db, "CUST-PNE-1000", a.ID)
	dup := *first
	dup.ID = 0
	if err := repo.Create(ctx, &dup); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate code err = %v, want ErrDuplicatedKey", err)
	}
}

func TestCustomerListCodesByPrefixIncludesDeleted(t *testing.T) {
	db := openTestDB(t)
	pne := seedArea(t, db, "Pune", "PNE")
	nsk := seedArea(t, db, "Nashik", "NSK")
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	seedCustomer(t, db, "CUST-PNE-1000", pne.ID)
	gone := seedCustomer(t, db, "CUST-PNE-1001", pne.ID)
	seedCustomer(t, db, "CUST-NSK-1000", nsk.ID)

	if err := repo.Delete(ctx, gone); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	codes, err := repo.ListCodesByPrefix(ctx, "CUST-PNE-")
	if err != nil {
		t.Fatalf("ListCodesByPrefix: %v", err)
	}
	sort.Strings(codes)
	if len(codes) != 2 || codes[0] != "CUST-PNE-1000" || codes[1] != "CUST-PNE-1001" {
		t.Fatalf("codes = %v, deleted code must stay reserved", codes)
	}
}

func TestCustomerListScopedByArea(t *testing.T) {
	db := openTestDB(t)
	pne := seedArea(t, db, "Pune", "PNE")
	nsk := seedArea(t, db, "Nashik", "NSK")
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	seedCustomer(t, db, "CUST-PNE-1000", pne.ID)
	seedCustomer(t, db, "CUST-PNE-1001", pne.ID)
	seedCustomer(t, db, "CUST-NSK-1000", nsk.ID)

	all, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all = %d", len(all))
	}

	scoped, err := repo.List(ctx, nsk.ID)
	if err != nil {
		t.Fatalf("List scoped: %v", err)
	}
	if len(scoped) != 1 || scoped[0].CustomerCode != "CUST-NSK-1000" {
		t.Fatalf("scoped = %+v", scoped)
	}
}

func TestCustomerGetByCode(t *testing.T) {
	db := openTestDB(t)
	a := seedArea(t, db, "Pune", "PNE")
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	seedCustomer(t, db, "CUST-PNE-1000", a.ID)

	got, err := repo.GetByCode(ctx, "CUST-PNE-1000")
	if err != nil {
		t.Fatalf("GetByCode: %v", err)
	}
	if got.AreaID != a.ID {
		t.Fatalf("area = %d", got.AreaID)
	}
	if _, err := repo.GetByCode(ctx, "CUST-PNE-9999"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing customer err = %v", err)
	}
}
