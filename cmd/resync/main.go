// Command resync pulls the spreadsheet into the local cache once and exits.
//
// Usage: go run ./cmd/resync [-url <script-url>] [-timeout 30s]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"linha-viva/internal/config"
	"linha-viva/internal/repository"
	"linha-viva/internal/service"
	"linha-viva/internal/sheets"
	"linha-viva/pkg/database"
	"linha-viva/pkg/logger"
)

func main() {
	url := flag.String("url", "", "script endpoint (default: saved setting, then SHEETS_URL)")
	timeout := flag.Duration("timeout", 30*time.Second, "overall timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	appLog := logger.New(cfg.App.Env)

	db, err := database.Connect(database.Options{
		Driver:     cfg.DB.Driver,
		URL:        cfg.DB.URL,
		Host:       cfg.DB.Host,
		User:       cfg.DB.User,
		Password:   cfg.DB.Password,
		Name:       cfg.DB.Name,
		Port:       cfg.DB.Port,
		SQLitePath: cfg.DB.SQLitePath,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "database:", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}

	itemRepo := repository.NewInventoryRepo(db)
	endpoint := service.NewEndpointStore(repository.NewSettingRepo(db), cfg.Sheets.URL)
	provider := sheets.URLProvider(endpoint.URL)
	if *url != "" {
		provider = sheets.StaticURL(*url)
	}

	svc := service.NewInventoryService(service.InventoryDeps{
		DB:           db,
		Items:        itemRepo,
		Requests:     repository.NewRequestRepo(db),
		Transactions: repository.NewTransactionRepo(db),
		Endpoint:     endpoint,
		Remote:       sheets.NewClient(provider, cfg.Sheets.Timeout),
		Logger:       appLog,
		Location:     cfg.Location(),
		MergePolicy:  cfg.MergePolicy(),
	})
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := svc.Refresh(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "refresh failed:", err)
		os.Exit(1)
	}

	n, _ := itemRepo.Count()
	st := svc.SyncStatus()
	if st.LastSync == nil {
		fmt.Printf("remote inventory empty; kept %d local items\n", n)
		return
	}
	fmt.Printf("synced %d items at %s\n", n, st.LastSync.In(cfg.Location()).Format(time.RFC3339))
}
