package repository

import (
	"errors"
	"testing"

	"linha-viva/internal/model"
	"linha-viva/pkg/database"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite("", nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestInventoryRepo_OrderAndPrepend(t *testing.T) {
	repo := NewInventoryRepo(newTestDB(t))

	if pos, err := repo.NextHeadPosition(); err != nil || pos != 0 {
		t.Fatalf("empty table: expected head position 0, got %d (%v)", pos, err)
	}

	err := repo.ReplaceAll([]model.InventoryItem{
		{ID: "2", Name: "B", BalanceItabaiana: 1},
		{ID: "1", Name: "A", BalanceDores: 9},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}

	pos, err := repo.NextHeadPosition()
	if err != nil {
		t.Fatalf("head position: %v", err)
	}
	if err := repo.Create(nil, &model.InventoryItem{ID: "3", Name: "C", Position: pos}); err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := repo.FindAll()
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	var ids []string
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	if len(ids) != 3 || ids[0] != "3" || ids[1] != "2" || ids[2] != "1" {
		t.Fatalf("unexpected order %v", ids)
	}
}

func TestInventoryRepo_ReplaceAllDropsStaleRows(t *testing.T) {
	repo := NewInventoryRepo(newTestDB(t))

	if err := repo.ReplaceAll([]model.InventoryItem{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := repo.ReplaceAll([]model.InventoryItem{{ID: "2", Name: "B", BalanceDores: 4}}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	if _, err := repo.FindByID("1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	item, err := repo.FindByID("2")
	if err != nil || item.BalanceDores != 4 {
		t.Fatalf("unexpected item %+v (%v)", item, err)
	}
}

func TestInventoryRepo_BalancesAndCritical(t *testing.T) {
	db := newTestDB(t)
	repo := NewInventoryRepo(db)

	if err := repo.ReplaceAll([]model.InventoryItem{
		{ID: "1", Name: "A", BalanceItabaiana: 6, BalanceDores: 20},
		{ID: "2", Name: "B", BalanceItabaiana: 7, BalanceDores: 0},
		{ID: "3", Name: "C", BalanceItabaiana: 50, BalanceDores: 50},
	}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return repo.UpdateBalances(tx, &model.InventoryItem{ID: "3", BalanceItabaiana: 1, BalanceDores: 2})
	})
	if err != nil {
		t.Fatalf("update balances: %v", err)
	}

	n, err := repo.CountCritical(model.RegionItabaiana, model.CriticalThreshold)
	if err != nil || n != 2 {
		t.Fatalf("expected 2 critical in Itabaiana, got %d (%v)", n, err)
	}
	n, err = repo.CountCritical(model.RegionDores, model.CriticalThreshold)
	if err != nil || n != 2 {
		t.Fatalf("expected 2 critical in Dores, got %d (%v)", n, err)
	}
}

func TestRequestRepo_CreateFindUpdate(t *testing.T) {
	repo := NewRequestRepo(newTestDB(t))

	older := &model.MaterialRequest{
		ID: "AAA111BBB", Vtr: "37989", Region: model.RegionDores, RequesterName: "ANA",
		Status: model.StatusPending, Timestamp: 1000,
		Items: []model.RequestedItem{
			{ItemID: "1", ItemName: "LUVA", Quantity: 2},
			{ItemID: "2", ItemName: "CINTA", Quantity: 1},
		},
	}
	newer := &model.MaterialRequest{
		ID: "CCC222DDD", Vtr: "38001", Region: model.RegionItabaiana, RequesterName: "BIA",
		Status: model.StatusPending, Timestamp: 2000,
		Items: []model.RequestedItem{{ItemID: "1", ItemName: "LUVA", Quantity: 1}},
	}
	for _, r := range []*model.MaterialRequest{older, newer} {
		if err := repo.Create(nil, r); err != nil {
			t.Fatalf("create %s: %v", r.ID, err)
		}
	}

	all, err := repo.FindAll("")
	if err != nil || len(all) != 2 || all[0].ID != newer.ID {
		t.Fatalf("expected newest first, got %+v (%v)", all, err)
	}

	got, err := repo.FindByID(older.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got.Items) != 2 || got.Items[0].ItemName != "LUVA" || got.Items[1].ItemName != "CINTA" {
		t.Fatalf("unexpected items %+v", got.Items)
	}

	if err := repo.UpdateStatus(nil, older.ID, model.StatusServed, "admin"); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if err := repo.UpdateStatus(nil, "NOPE", model.StatusServed, "admin"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	served, err := repo.FindAll(model.StatusServed)
	if err != nil || len(served) != 1 || served[0].ID != older.ID {
		t.Fatalf("unexpected served list %+v (%v)", served, err)
	}

	counts, err := repo.CountByStatus()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts[model.StatusPending] != 1 || counts[model.StatusServed] != 1 {
		t.Fatalf("unexpected counts %v", counts)
	}

	if ok, _ := repo.Exists(newer.ID); !ok {
		t.Fatalf("expected %s to exist", newer.ID)
	}
	if ok, _ := repo.Exists("ZZZ"); ok {
		t.Fatalf("unexpected request ZZZ")
	}
}

func TestTransactionRepo(t *testing.T) {
	repo := NewTransactionRepo(newTestDB(t))

	for i, ts := range []int64{100, 300, 200} {
		tx := &model.Transaction{
			Reference: "TX", ItemID: "1", Region: model.RegionItabaiana,
			Type: model.TxIn, Quantity: i + 1, Timestamp: ts,
		}
		if err := repo.Create(nil, tx); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := repo.FindAll(2)
	if err != nil || len(all) != 2 || all[0].Timestamp != 300 || all[1].Timestamp != 200 {
		t.Fatalf("unexpected page %+v (%v)", all, err)
	}

	since, err := repo.FindSince(200)
	if err != nil || len(since) != 2 || since[0].Timestamp != 200 {
		t.Fatalf("unexpected since %+v (%v)", since, err)
	}
}

func TestSettingRepo_Upsert(t *testing.T) {
	repo := NewSettingRepo(newTestDB(t))

	if _, ok, err := repo.Get(model.SettingSheetsURL); err != nil || ok {
		t.Fatalf("expected missing setting, got ok=%v err=%v", ok, err)
	}
	if err := repo.Set(model.SettingSheetsURL, "https://a"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(model.SettingSheetsURL, "https://b"); err != nil {
		t.Fatalf("set again: %v", err)
	}
	v, ok, err := repo.Get(model.SettingSheetsURL)
	if err != nil || !ok || v != "https://b" {
		t.Fatalf("expected https://b, got %q ok=%v err=%v", v, ok, err)
	}
}
