package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"linha-viva/internal/metrics"
	"linha-viva/internal/model"
	"linha-viva/internal/reconcile"
	"linha-viva/internal/repository"
	"linha-viva/internal/sheets"
	"linha-viva/pkg/validator"

	"gorm.io/gorm"
)

const (
	refreshTimeout    = 30 * time.Second
	requestIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	requestIDLength   = 9
	maxIDAttempts     = 50
)

type InventoryService interface {
	AddItem(ctx context.Context, in NewItemInput, actor string) (*model.InventoryItem, error)
	AddTransaction(ctx context.Context, in TransactionInput, actor string) (*model.Transaction, error)
	AddRequest(ctx context.Context, in RequestInput) (*model.MaterialRequest, error)
	UpdateRequestStatus(ctx context.Context, id string, status model.RequestStatus, actor string) (*model.MaterialRequest, error)
	Refresh(ctx context.Context) error
	StartPolling(ctx context.Context, interval time.Duration)
	SetEndpoint(ctx context.Context, url string) error
	Endpoint(ctx context.Context) string
	ListInventory(filter InventoryFilter) ([]InventoryView, error)
	ListRequests(status model.RequestStatus) ([]model.MaterialRequest, error)
	ListTransactions(limit int) ([]model.Transaction, error)
	SyncStatus() model.SyncStatus
	Close()
}

type NewItemInput struct {
	ID               string `json:"id" validate:"omitempty,max=20,excludes=:"`
	Name             string `json:"name" validate:"required,max=255"`
	BalanceItabaiana int    `json:"balanceItabaiana" validate:"gte=0,lte=1000000000"`
	BalanceDores     int    `json:"balanceDores" validate:"gte=0,lte=1000000000"`
}

type TransactionInput struct {
	ItemID      string                `json:"itemId" validate:"required"`
	Region      model.Region          `json:"region" validate:"required,region"`
	Type        model.TransactionType `json:"type" validate:"required,oneof=in out"`
	Quantity    int                   `json:"quantity" validate:"gt=0,lte=1000000000"`
	Description string                `json:"description" validate:"max=500"`
}

type RequestLineInput struct {
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0,lte=1000000000"`
}

type RequestInput struct {
	Vtr           string             `json:"vtr" validate:"required,vehicle"`
	Region        model.Region       `json:"region" validate:"required,region"`
	RequesterName string             `json:"requesterName" validate:"required,max=255"`
	Items         []RequestLineInput `json:"items" validate:"required,min=1,dive"`
}

// InventoryFilter narrows ListInventory. Available keeps items with stock
// in Region, or in any region when Region is empty.
type InventoryFilter struct {
	Search    string
	Region    model.Region
	Available bool
}

type InventoryView struct {
	model.InventoryItem
	CriticalItabaiana bool `json:"criticalItabaiana"`
	CriticalDores     bool `json:"criticalDores"`
}

// InventoryDeps wires the service. Notifier, Logger, Now, Rand and Location
// fall back to defaults when nil.
type InventoryDeps struct {
	DB           *gorm.DB
	Items        repository.InventoryRepository
	Requests     repository.RequestRepository
	Transactions repository.TransactionRepository
	Endpoint     *EndpointStore
	Remote       RemoteStore
	Notifier     Notifier
	Logger       *slog.Logger
	Now          func() time.Time
	Rand         *rand.Rand
	Location     *time.Location
	MergePolicy  reconcile.MergePolicy
	RefreshDelay time.Duration
}

type inventoryService struct {
	// mu serializes every mutation of the local cache
	mu sync.Mutex

	db           *gorm.DB
	itemRepo     repository.InventoryRepository
	requestRepo  repository.RequestRepository
	txRepo       repository.TransactionRepository
	endpoint     *EndpointStore
	remote       RemoteStore
	notifier     Notifier
	log          *slog.Logger
	now          func() time.Time
	rng          *rand.Rand
	loc          *time.Location
	policy       reconcile.MergePolicy
	refreshDelay time.Duration

	refreshing atomic.Bool
	inflight   atomic.Int32

	stateMu  sync.Mutex
	syncErr  error
	lastSync *time.Time
	timer    *time.Timer
	closed   bool
	baseCtx  context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewInventoryService(d InventoryDeps) InventoryService {
	s := &inventoryService{
		db:           d.DB,
		itemRepo:     d.Items,
		requestRepo:  d.Requests,
		txRepo:       d.Transactions,
		endpoint:     d.Endpoint,
		remote:       d.Remote,
		notifier:     d.Notifier,
		log:          d.Logger,
		now:          d.Now,
		rng:          d.Rand,
		loc:          d.Location,
		policy:       d.MergePolicy,
		refreshDelay: d.RefreshDelay,
	}
	if s.notifier == nil {
		s.notifier = nopNotifier{}
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.policy == "" {
		s.policy = reconcile.MergeMax
	}
	s.baseCtx, s.cancel = context.WithCancel(context.Background())
	return s
}

func (s *inventoryService) AddItem(ctx context.Context, in NewItemInput, actor string) (*model.InventoryItem, error) {
	// 1. Validasi input
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, invalid("%s", validator.FirstError(errs))
	}
	name := strings.ToUpper(strings.TrimSpace(in.Name))
	if name == "" {
		return nil, invalid("name is required")
	}
	for _, kw := range reconcile.SystemKeywords {
		if strings.Contains(name, kw) {
			return nil, invalid("name must not contain %q", kw)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// 2. Resolve the id: given, or a fresh 5-digit code
	id := strings.TrimSpace(in.ID)
	if id == "" {
		generated, err := s.freshItemID()
		if err != nil {
			return nil, err
		}
		id = generated
	} else if _, err := s.itemRepo.FindByID(id); err == nil {
		return nil, ErrDuplicateItem
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	// 3. Prepend to the local snapshot
	pos, err := s.itemRepo.NextHeadPosition()
	if err != nil {
		return nil, err
	}
	item := &model.InventoryItem{
		ID:               id,
		Name:             name,
		BalanceItabaiana: in.BalanceItabaiana,
		BalanceDores:     in.BalanceDores,
		Position:         pos,
	}
	item.CreatedBy = actor
	item.UpdatedBy = actor
	if err := s.itemRepo.Create(nil, item); err != nil {
		return nil, err
	}

	s.notifier.Publish("stock_update", "item_created", item, fmt.Sprintf("%s cadastrou '%s'", actor, item.Name))

	// 4. Mirror the full table
	var b writeBatch
	s.pushFullTable(ctx, &b)
	return item, s.finish(&b)
}

func (s *inventoryService) AddTransaction(ctx context.Context, in TransactionInput, actor string) (*model.Transaction, error) {
	// 1. Validasi input
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, invalid("%s", validator.FirstError(errs))
	}
	region, err := model.ParseRegion(string(in.Region))
	if err != nil {
		return nil, invalid("%v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// 2. Unknown material: nothing changes, nothing is written
	item, err := s.itemRepo.FindByID(strings.TrimSpace(in.ItemID))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	// 3. Apply the movement, clamped at zero
	now := s.now()
	t := &model.Transaction{
		Reference:   fmt.Sprintf("TX-%d", now.UnixMilli()),
		ItemID:      item.ID,
		ItemName:    item.Name,
		Region:      region,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Description: strings.TrimSpace(in.Description),
		Timestamp:   now.UnixMilli(),
	}
	t.BalanceAfter = item.ApplyDelta(region, t.Delta())
	item.UpdatedBy = actor
	t.CreatedBy = actor
	t.UpdatedBy = actor

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.itemRepo.UpdateBalances(tx, item); err != nil {
			return err
		}
		return s.txRepo.Create(tx, t)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish("stock_update", "transaction_created", t,
		fmt.Sprintf("%s %s %d de '%s' (%s)", actor, movementVerb(t.Type), t.Quantity, item.Name, region))

	// 4. Log entry first, then the full table
	var b writeBatch
	s.push(ctx, &b, sheets.TypeStockMovement, t.Reference, sheets.NewMovementRow(*t, now, s.loc))
	s.pushFullTable(ctx, &b)
	return t, s.finish(&b)
}

func (s *inventoryService) AddRequest(ctx context.Context, in RequestInput) (*model.MaterialRequest, error) {
	// 1. Validasi input
	in.Vtr = strings.TrimSpace(in.Vtr)
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, invalid("%s", validator.FirstError(errs))
	}
	region, err := model.ParseRegion(string(in.Region))
	if err != nil {
		return nil, invalid("%v", err)
	}
	requester := strings.TrimSpace(in.RequesterName)
	if requester == "" {
		return nil, invalid("requesterName is required")
	}
	lines := mergeLines(in.Items)

	s.mu.Lock()
	defer s.mu.Unlock()

	// 2. Every line must fit the region's balance
	req := &model.MaterialRequest{
		Vtr:           in.Vtr,
		Region:        region,
		RequesterName: requester,
		Status:        model.StatusPending,
	}
	for _, line := range lines {
		item, err := s.itemRepo.FindByID(line.ItemID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, invalid("unknown material %q", line.ItemID)
		}
		if err != nil {
			return nil, err
		}
		if line.Quantity > item.Balance(region) {
			return nil, fmt.Errorf("%w: %s has %d in %s, requested %d",
				ErrInsufficientBalance, item.Name, item.Balance(region), region, line.Quantity)
		}
		req.Items = append(req.Items, model.RequestedItem{
			ItemID:   item.ID,
			ItemName: item.Name,
			Quantity: line.Quantity,
		})
	}

	// 3. Id, regenerated on local collision
	id, err := s.freshRequestID()
	if err != nil {
		return nil, err
	}
	req.ID = id
	req.Timestamp = s.now().UnixMilli()
	req.CreatedBy = requester
	req.UpdatedBy = requester

	if err := s.requestRepo.Create(nil, req); err != nil {
		return nil, err
	}

	s.notifier.Publish("request_update", "request_created", req,
		fmt.Sprintf("nova solicitação da VTR %s (%s)", req.Vtr, req.RequesterName))

	// 4. Append to the remote request log
	var b writeBatch
	s.push(ctx, &b, sheets.TypeNewRequest, req.ID, sheets.NewRequestRow(*req, s.loc))
	return req, s.finish(&b)
}

func (s *inventoryService) UpdateRequestStatus(ctx context.Context, id string, status model.RequestStatus, actor string) (*model.MaterialRequest, error) {
	if status != model.StatusPending && status != model.StatusServed {
		return nil, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.requestRepo.FindByID(strings.TrimSpace(id))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	// Nothing to do
	if req.Status == status {
		return req, nil
	}

	if status == model.StatusPending {
		if err := s.requestRepo.UpdateStatus(nil, req.ID, status, actor); err != nil {
			return nil, err
		}
		req.Status = status
		s.notifier.Publish("request_update", "request_reopened", req, fmt.Sprintf("solicitação %s reaberta", req.ID))

		var b writeBatch
		s.push(ctx, &b, sheets.TypeRequestStatus, req.ID, sheets.NewStatusRow(req.ID, status))
		return req, s.finish(&b)
	}

	// 1. Decrement each line from the request's region
	region := req.FulfillmentRegion()
	now := s.now()
	touched := map[string]*model.InventoryItem{}
	var order []string
	logs := make([]*model.Transaction, 0, len(req.Items))

	for _, line := range req.Items {
		item, ok := touched[line.ItemID]
		if !ok {
			found, err := s.itemRepo.FindByID(line.ItemID)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return nil, err
			}
			if found != nil {
				item = found
				touched[line.ItemID] = item
				order = append(order, line.ItemID)
			}
		}

		t := &model.Transaction{
			Reference:   fmt.Sprintf("PED-%s-%d", req.Vtr, now.UnixMilli()),
			ItemID:      line.ItemID,
			ItemName:    line.ItemName,
			Region:      region,
			Type:        model.TxOut,
			Quantity:    line.Quantity,
			Description: fmt.Sprintf("ATENDIMENTO VTR %s - %s", req.Vtr, strings.ToUpper(req.RequesterName)),
			Timestamp:   now.UnixMilli(),
		}
		if item != nil {
			t.BalanceAfter = item.ApplyDelta(region, t.Delta())
			item.UpdatedBy = actor
		}
		t.CreatedBy = actor
		t.UpdatedBy = actor
		logs = append(logs, t)
	}

	// 2. Persist balances, log rows and status together
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, itemID := range order {
			if err := s.itemRepo.UpdateBalances(tx, touched[itemID]); err != nil {
				return err
			}
		}
		for _, t := range logs {
			if err := s.txRepo.Create(tx, t); err != nil {
				return err
			}
		}
		return s.requestRepo.UpdateStatus(tx, req.ID, status, actor)
	})
	if err != nil {
		return nil, err
	}
	req.Status = status

	s.notifier.Publish("request_update", "request_served", req,
		fmt.Sprintf("%s atendeu a solicitação %s (VTR %s)", actor, req.ID, req.Vtr))

	// 3. Remote: one movement per line, the full table, then the status.
	// Failures do not stop the sequence.
	var b writeBatch
	for _, t := range logs {
		s.push(ctx, &b, sheets.TypeStockMovement, t.Reference+" "+t.ItemID, sheets.NewFulfillmentRow(*t, now, s.loc))
	}
	s.pushFullTable(ctx, &b)
	s.push(ctx, &b, sheets.TypeRequestStatus, req.ID, sheets.NewStatusRow(req.ID, status))
	return req, s.finish(&b)
}

// Refresh pulls the sheet into the local cache. An empty or unusable remote
// inventory leaves the cache as it is.
func (s *inventoryService) Refresh(ctx context.Context) error {
	if !s.refreshing.CompareAndSwap(false, true) {
		metrics.ObserveRefresh("skipped")
		return ErrRefreshInProgress
	}
	defer s.refreshing.Store(false)
	s.publishSync()

	s.inflight.Add(1)
	raw, err := s.remote.ReadInventory(ctx)
	s.inflight.Add(-1)
	if err != nil {
		metrics.ObserveRefresh("failed")
		s.log.Warn("inventory refresh failed", "error", err)
		s.setSyncResult(err)
		return err
	}

	items := reconcile.Reconcile(raw, s.policy)
	if len(items) == 0 {
		metrics.ObserveRefresh("empty")
		s.log.Info("remote inventory empty, keeping local cache", "rows", len(raw))
		s.setSyncResult(nil)
		return nil
	}

	s.inflight.Add(1)
	rawRequests, reqErr := s.remote.ReadRequests(ctx)
	s.inflight.Add(-1)

	s.mu.Lock()
	merged := 0
	err = s.itemRepo.ReplaceAll(items)
	if err == nil {
		// the inventory snapshot is committed even if the request merge fails
		s.markSynced()
		if reqErr == nil {
			merged, err = s.mergeRequests(reconcile.Requests(rawRequests, s.loc), items)
		}
	}
	s.mu.Unlock()
	if err != nil {
		metrics.ObserveRefresh("failed")
		s.log.Error("applying refresh failed", "error", err)
		err = fmt.Errorf("apply refresh: %w", err)
		s.setSyncResult(err)
		return err
	}

	if reqErr != nil {
		s.log.Warn("request refresh failed", "error", reqErr)
	}
	s.setSyncResult(reqErr)
	metrics.ObserveRefresh("applied")
	s.log.Info("inventory refreshed", "rows", len(raw), "items", len(items), "requests_merged", merged)
	s.notifier.Publish("stock_update", "inventory_refreshed",
		map[string]int{"items": len(items), "requestsMerged": merged}, "estoque sincronizado")
	return nil
}

// mergeRequests adds requests only the sheet knows and applies
// pending->served upgrades. It never downgrades.
func (s *inventoryService) mergeRequests(remote []model.MaterialRequest, inventory []model.InventoryItem) (int, error) {
	byName := make(map[string]string, len(inventory))
	for _, it := range inventory {
		byName[it.Name] = it.ID
	}

	merged := 0
	for i := range remote {
		r := remote[i]
		existing, err := s.requestRepo.FindByID(r.ID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			// a bare status row for a request this cache never held
			if r.Vtr == "" && len(r.Items) == 0 {
				continue
			}
			for j := range r.Items {
				if r.Items[j].ItemID == "" {
					r.Items[j].ItemID = byName[r.Items[j].ItemName]
				}
			}
			if r.Timestamp == 0 {
				r.Timestamp = s.now().UnixMilli()
			}
			r.CreatedBy = "sync"
			r.UpdatedBy = "sync"
			if err := s.requestRepo.Create(nil, &r); err != nil {
				return merged, err
			}
			merged++
		case err != nil:
			return merged, err
		case existing.Status == model.StatusPending && r.Status == model.StatusServed:
			if err := s.requestRepo.UpdateStatus(nil, r.ID, model.StatusServed, "sync"); err != nil {
				return merged, err
			}
			merged++
		}
	}
	return merged, nil
}

// StartPolling refreshes every interval until ctx ends or Close is called.
// Ticks that find a refresh running are skipped.
func (s *inventoryService) StartPolling(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.baseCtx.Done():
				return
			case <-ticker.C:
				rctx, cancel := context.WithTimeout(ctx, refreshTimeout)
				if err := s.Refresh(rctx); err != nil && !errors.Is(err, ErrRefreshInProgress) {
					s.log.Debug("scheduled refresh failed", "error", err)
				}
				cancel()
			}
		}
	}()
}

func (s *inventoryService) SetEndpoint(ctx context.Context, url string) error {
	if err := s.endpoint.Set(ctx, url); err != nil {
		return err
	}
	s.log.Info("sheets endpoint updated", "url", s.endpoint.URL(ctx))
	s.scheduleRefresh()
	return nil
}

func (s *inventoryService) Endpoint(ctx context.Context) string {
	return s.endpoint.URL(ctx)
}

func (s *inventoryService) ListInventory(filter InventoryFilter) ([]InventoryView, error) {
	items, err := s.itemRepo.FindAll()
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]InventoryView, 0, len(items))
	for _, it := range items {
		if search != "" && !strings.Contains(strings.ToLower(it.Name), search) && !strings.Contains(it.ID, search) {
			continue
		}
		if filter.Available {
			if filter.Region != "" && it.Balance(filter.Region) <= 0 {
				continue
			}
			if filter.Region == "" && it.BalanceItabaiana <= 0 && it.BalanceDores <= 0 {
				continue
			}
		}
		out = append(out, InventoryView{
			InventoryItem:     it,
			CriticalItabaiana: it.IsCritical(model.RegionItabaiana),
			CriticalDores:     it.IsCritical(model.RegionDores),
		})
	}
	return out, nil
}

func (s *inventoryService) ListRequests(status model.RequestStatus) ([]model.MaterialRequest, error) {
	return s.requestRepo.FindAll(status)
}

func (s *inventoryService) ListTransactions(limit int) ([]model.Transaction, error) {
	return s.txRepo.FindAll(limit)
}

func (s *inventoryService) SyncStatus() model.SyncStatus {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	st := model.SyncStatus{
		Syncing:        s.inflight.Load() > 0 || s.refreshing.Load(),
		Error:          s.syncErr != nil,
		PendingRefresh: s.timer != nil,
	}
	if s.syncErr != nil {
		st.LastError = s.syncErr.Error()
	}
	if s.lastSync != nil {
		t := *s.lastSync
		st.LastSync = &t
	}
	return st
}

// Close stops the poller and any deferred refresh, waiting for running ones.
func (s *inventoryService) Close() {
	s.stateMu.Lock()
	s.closed = true
	if s.timer != nil && s.timer.Stop() {
		s.wg.Done()
	}
	s.timer = nil
	s.stateMu.Unlock()

	s.cancel()
	s.wg.Wait()
}

type writeBatch struct {
	failed []FailedWrite
	opaque bool
}

func (s *inventoryService) push(ctx context.Context, b *writeBatch, typ sheets.WriteType, ref string, payload any) {
	s.inflight.Add(1)
	ack, err := s.remote.Write(ctx, typ, payload)
	s.inflight.Add(-1)
	if err != nil {
		s.log.Warn("remote write failed", "type", typ, "ref", ref, "error", err)
		b.failed = append(b.failed, FailedWrite{Type: typ, Ref: ref, Err: err})
		return
	}
	if !ack.Confirmed {
		b.opaque = true
	}
}

func (s *inventoryService) pushFullTable(ctx context.Context, b *writeBatch) {
	items, err := s.itemRepo.FindAll()
	if err != nil {
		b.failed = append(b.failed, FailedWrite{Type: sheets.TypeFullTable, Err: err})
		return
	}
	s.push(ctx, b, sheets.TypeFullTable, "", sheets.InventoryTable(items))
}

// finish settles the sync flag for a batch. Opaque acknowledgements get one
// deferred re-read to pick up what the sheet actually holds.
func (s *inventoryService) finish(b *writeBatch) error {
	if b.opaque {
		s.scheduleRefresh()
	}
	if len(b.failed) > 0 {
		pe := &PartialSyncError{Writes: b.failed}
		s.setSyncResult(pe)
		return pe
	}
	s.setSyncResult(nil)
	return nil
}

func (s *inventoryService) scheduleRefresh() {
	if s.refreshDelay <= 0 {
		return
	}

	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	if s.closed || s.timer != nil {
		return
	}

	s.wg.Add(1)
	s.timer = time.AfterFunc(s.refreshDelay, func() {
		defer s.wg.Done()

		s.stateMu.Lock()
		s.timer = nil
		closed := s.closed
		s.stateMu.Unlock()
		if closed {
			return
		}

		ctx, cancel := context.WithTimeout(s.baseCtx, refreshTimeout)
		defer cancel()
		if err := s.Refresh(ctx); err != nil && !errors.Is(err, ErrRefreshInProgress) {
			s.log.Debug("deferred refresh failed", "error", err)
		}
	})
}

func (s *inventoryService) setSyncResult(err error) {
	s.stateMu.Lock()
	s.syncErr = err
	s.stateMu.Unlock()
	metrics.SetSyncError(err != nil)
	s.publishSync()
}

func (s *inventoryService) markSynced() {
	now := s.now()
	s.stateMu.Lock()
	s.lastSync = &now
	s.stateMu.Unlock()
}

func (s *inventoryService) publishSync() {
	s.notifier.Publish("sync", "status", s.SyncStatus(), "")
}

func (s *inventoryService) freshItemID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := strconv.Itoa(10000 + s.rng.IntN(90000))
		_, err := s.itemRepo.FindByID(id)
		if errors.Is(err, repository.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.New("could not allocate a material id")
}

func (s *inventoryService) freshRequestID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		b := make([]byte, requestIDLength)
		for j := range b {
			b[j] = requestIDAlphabet[s.rng.IntN(len(requestIDAlphabet))]
		}
		id := string(b)
		exists, err := s.requestRepo.Exists(id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", errors.New("could not allocate a request id")
}

// mergeLines folds repeated materials into one line, keeping first-seen order.
func mergeLines(lines []RequestLineInput) []RequestLineInput {
	out := make([]RequestLineInput, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, l := range lines {
		l.ItemID = strings.TrimSpace(l.ItemID)
		if i, ok := index[l.ItemID]; ok {
			out[i].Quantity += l.Quantity
			continue
		}
		index[l.ItemID] = len(out)
		out = append(out, l)
	}
	return out
}

func movementVerb(t model.TransactionType) string {
	if t == model.TxIn {
		return "registrou entrada de"
	}
	return "registrou saída de"
}
