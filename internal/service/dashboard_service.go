package service

import (
	"sort"
	"time"

	"linha-viva/internal/model"
	"linha-viva/internal/repository"
)

type DashboardService interface {
	GetStockMovement(days int, region model.Region) ([]StockMovementData, error)
	GetDashboardStats() (*DashboardStats, error)
	GetCriticalItems(region model.Region) ([]model.InventoryItem, error)
}

// StockMovementData untuk chart data
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

// DashboardStats untuk overview stats
type DashboardStats struct {
	TotalItems        int64            `json:"totalItems"`
	CriticalItabaiana int64            `json:"criticalItabaiana"`
	CriticalDores     int64            `json:"criticalDores"`
	PendingRequests   int64            `json:"pendingRequests"`
	ServedRequests    int64            `json:"servedRequests"`
	Sync              model.SyncStatus `json:"sync"`
}

// SyncReporter exposes the sync flag to the dashboard.
type SyncReporter interface {
	SyncStatus() model.SyncStatus
}

type dashboardService struct {
	itemRepo    repository.InventoryRepository
	requestRepo repository.RequestRepository
	txRepo      repository.TransactionRepository
	sync        SyncReporter
	loc         *time.Location
	now         func() time.Time
}

func NewDashboardService(itemRepo repository.InventoryRepository, requestRepo repository.RequestRepository, txRepo repository.TransactionRepository, sync SyncReporter, loc *time.Location) DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	return &dashboardService{
		itemRepo:    itemRepo,
		requestRepo: requestRepo,
		txRepo:      txRepo,
		sync:        sync,
		loc:         loc,
		now:         time.Now,
	}
}

// GetStockMovement sums in/out quantities per local day over the last days,
// today included, for one warehouse or both when region is empty. Days
// without movement are reported as zero.
func (s *dashboardService) GetStockMovement(days int, region model.Region) ([]StockMovementData, error) {
	if days <= 0 {
		days = 7
	}
	today := s.now().In(s.loc)
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, -(days - 1))

	txs, err := s.txRepo.FindSince(start.UnixMilli())
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*StockMovementData, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i).Format("2006-01-02")
		buckets[d] = &StockMovementData{Date: d}
	}
	for _, t := range txs {
		if region != "" && t.Region != region {
			continue
		}
		d := time.UnixMilli(t.Timestamp).In(s.loc).Format("2006-01-02")
		b, ok := buckets[d]
		if !ok {
			continue
		}
		if t.Type == model.TxIn {
			b.Inbound += t.Quantity
		} else {
			b.Outbound += t.Quantity
		}
	}

	out := make([]StockMovementData, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *dashboardService) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.TotalItems, err = s.itemRepo.Count(); err != nil {
		return nil, err
	}
	if stats.CriticalItabaiana, err = s.itemRepo.CountCritical(model.RegionItabaiana, model.CriticalThreshold); err != nil {
		return nil, err
	}
	if stats.CriticalDores, err = s.itemRepo.CountCritical(model.RegionDores, model.CriticalThreshold); err != nil {
		return nil, err
	}

	counts, err := s.requestRepo.CountByStatus()
	if err != nil {
		return nil, err
	}
	stats.PendingRequests = counts[model.StatusPending]
	stats.ServedRequests = counts[model.StatusServed]

	if s.sync != nil {
		stats.Sync = s.sync.SyncStatus()
	}
	return &stats, nil
}

// GetCriticalItems lists materials at or below the critical threshold in
// region, or in either warehouse when region is empty.
func (s *dashboardService) GetCriticalItems(region model.Region) ([]model.InventoryItem, error) {
	items, err := s.itemRepo.FindAll()
	if err != nil {
		return nil, err
	}

	out := make([]model.InventoryItem, 0)
	for _, it := range items {
		switch {
		case region != "" && it.IsCritical(region):
			out = append(out, it)
		case region == "" && (it.IsCritical(model.RegionItabaiana) || it.IsCritical(model.RegionDores)):
			out = append(out, it)
		}
	}
	return out, nil
}
