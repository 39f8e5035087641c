package mpc

import (
	"context"
	"net/http"
	"testing"
)

func TestGetAutoCollectWallets(t *testing.T) {
	var gotPath string
	var gotArgs map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotArgs = requestArgs(t, r)
		respondData(t, w, `{"fueling_sub_wallet_id":11,"collect_sub_wallet_id":22}`)
	})

	if _, err := c.GetAutoCollectWallets(context.Background(), ""); err == nil {
		t.Error("GetAutoCollectWallets() accepted an empty symbol")
	}

	wallets, err := c.GetAutoCollectWallets(context.Background(), "USDTERC20")
	if err != nil {
		t.Fatalf("GetAutoCollectWallets() error = %v", err)
	}
	if gotPath != "/api/mpc/auto_collect/sub_wallets" {
		t.Errorf("path = %s, want /api/mpc/auto_collect/sub_wallets", gotPath)
	}
	if gotArgs["symbol"] != "USDTERC20" {
		t.Errorf("symbol = %v, want USDTERC20", gotArgs["symbol"])
	}
	if wallets.FuelingSubWalletID != 11 || wallets.CollectSubWalletID != 22 {
		t.Errorf("wallets = %+v, want fueling 11 collect 22", wallets)
	}
}

func TestSetAutoCollectSymbol(t *testing.T) {
	var gotPath string
	var gotArgs map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotArgs = requestArgs(t, r)
		respondData(t, w, "")
	})

	tests := []struct {
		name                             string
		symbol, collectMin, fuelingLimit string
	}{
		{"empty symbol", "", "100", "0.01"},
		{"empty collect_min", "USDTERC20", "", "0.01"},
		{"empty fueling_limit", "USDTERC20", "100", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.SetAutoCollectSymbol(context.Background(), tt.symbol, tt.collectMin, tt.fuelingLimit); err == nil {
				t.Error("SetAutoCollectSymbol() accepted incomplete parameters")
			}
		})
	}

	if err := c.SetAutoCollectSymbol(context.Background(), "USDTERC20", "100", "0.01"); err != nil {
		t.Fatalf("SetAutoCollectSymbol() error = %v", err)
	}
	if gotPath != "/api/mpc/auto_collect/symbol/set" {
		t.Errorf("path = %s, want /api/mpc/auto_collect/symbol/set", gotPath)
	}
	if gotArgs["collect_min"] != "100" || gotArgs["fueling_limit"] != "0.01" {
		t.Errorf("args = %v, want collect_min 100 fueling_limit 0.01", gotArgs)
	}
}

func TestSyncAutoCollectRecords(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		respondData(t, w, `[{"id":5,"sub_wallet_id":42,"symbol":"ETH","amount":"3.5","trans_type":10}]`)
	})

	list, err := c.SyncAutoCollectRecords(context.Background(), 0)
	if err != nil {
		t.Fatalf("SyncAutoCollectRecords() error = %v", err)
	}
	if gotPath != "/api/mpc/billing/sync_auto_collect_list" {
		t.Errorf("path = %s, want /api/mpc/billing/sync_auto_collect_list", gotPath)
	}
	if len(list) != 1 {
		t.Fatalf("records = %d, want 1", len(list))
	}
	if list[0].Amount.String() != "3.5" || list[0].TransType != 10 {
		t.Errorf("record = %+v, want amount 3.5 trans_type 10", list[0])
	}
}
