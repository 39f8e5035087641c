package mpc

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestGetCoinDetails(t *testing.T) {
	var gotPath string
	var gotArgs map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotArgs = requestArgs(t, r)
		respondData(t, w, `[{"symbol":"USDTERC20","base_symbol":"ETH","decimals":"18","coin_type":1,"support_memo":"0","contract_address":"0xdac1"}]`)
	})

	if _, err := c.GetCoinDetails(context.Background(), "", ""); err == nil {
		t.Error("GetCoinDetails() accepted an empty symbol")
	}

	list, err := c.GetCoinDetails(context.Background(), "USDTERC20", "")
	if err != nil {
		t.Fatalf("GetCoinDetails() error = %v", err)
	}
	if gotPath != "/api/mpc/coin_list" {
		t.Errorf("path = %s, want /api/mpc/coin_list", gotPath)
	}
	if _, present := gotArgs["main_chain_symbol"]; present {
		t.Error("main_chain_symbol sent although empty")
	}
	if len(list) != 1 {
		t.Fatalf("coins = %d, want 1", len(list))
	}
	coin := list[0]
	// decimals arrives as a numeric string.
	if coin.Decimals.Int32Value() != 18 {
		t.Errorf("Decimals = %d, want 18", coin.Decimals.Int32Value())
	}
	if coin.CoinType != 1 || coin.ContractAddress != "0xdac1" {
		t.Errorf("coin = %+v, want coin_type 1 contract 0xdac1", coin)
	}

	_, err = c.GetCoinDetails(context.Background(), "USDTERC20", "ETH")
	if err != nil {
		t.Fatalf("GetCoinDetails() with main chain error = %v", err)
	}
	if gotArgs["main_chain_symbol"] != "ETH" {
		t.Errorf("main_chain_symbol = %v, want ETH", gotArgs["main_chain_symbol"])
	}
}

func TestBlockHeightInfo_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int64
	}{
		{"canonical field", `{"block_height":19000000}`, 19000000},
		{"legacy height field", `{"height":18500000}`, 18500000},
		{"canonical wins", `{"block_height":1,"height":2}`, 1},
		{"neither", `{}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var info BlockHeightInfo
			if err := json.Unmarshal([]byte(tt.in), &info); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.in, err)
			}
			if info.BlockHeight != tt.want {
				t.Errorf("BlockHeight = %d, want %d", info.BlockHeight, tt.want)
			}
		})
	}
}

func TestGetLastBlockHeight(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		respondData(t, w, `{"height":19000001}`)
	})

	if _, err := c.GetLastBlockHeight(context.Background(), ""); err == nil {
		t.Error("GetLastBlockHeight() accepted an empty base symbol")
	}

	info, err := c.GetLastBlockHeight(context.Background(), "ETH")
	if err != nil {
		t.Fatalf("GetLastBlockHeight() error = %v", err)
	}
	if gotPath != "/api/mpc/chain_height" {
		t.Errorf("path = %s, want /api/mpc/chain_height", gotPath)
	}
	if info.BlockHeight != 19000001 {
		t.Errorf("BlockHeight = %d, want 19000001", info.BlockHeight)
	}
}

func TestGetSupportedCoins(t *testing.T) {
	var gotPath string
	var gotArgs map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotArgs = requestArgs(t, r)
		respondData(t, w, `{"open_main_chain":[{"symbol":"ETH","chain_id":"1","enable_deposit":true}],"support_main_chain":[{"symbol":"ETH"},{"symbol":"BTC"}]}`)
	})

	coins, err := c.GetSupportedCoins(context.Background())
	if err != nil {
		t.Fatalf("GetSupportedCoins() error = %v", err)
	}
	if gotPath != "/api/mpc/wallet/open_coin" {
		t.Errorf("path = %s, want /api/mpc/wallet/open_coin", gotPath)
	}
	// Only the common fields ride along when the call has no parameters.
	for key := range gotArgs {
		if key != "time" && key != "charset" {
			t.Errorf("unexpected request arg %q", key)
		}
	}
	if len(coins.OpenMainChain) != 1 || len(coins.SupportMainChain) != 2 {
		t.Fatalf("coins = %+v, want 1 open and 2 supported", coins)
	}
	if !coins.OpenMainChain[0].EnableDeposit || coins.OpenMainChain[0].ChainID != "1" {
		t.Errorf("open chain = %+v, want deposits enabled on chain 1", coins.OpenMainChain[0])
	}
}
