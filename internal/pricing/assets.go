package pricing

import "strings"

// nativeSymbols maps a chain id to the ticker of its native currency.
var nativeSymbols = map[int64]string{
	1:     "ETH", // Ethereum mainnet
	10:    "ETH", // Optimism
	56:    "BNB", // BNB Smart Chain
	137:   "POL", // Polygon PoS
	8453:  "ETH", // Base
	42161: "ETH", // Arbitrum One
	43114: "AVAX",
}

// tokenSymbols maps well-known token contract addresses (lowercase) to their
// tickers. Mainnet deployments unless noted.
var tokenSymbols = map[string]string{
	"0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48": "USDC",
	"0xdac17f958d2ee523a2206206994597c13d831ec7": "USDT",
	"0x6b175474e89094c44da98b954eedeac495271d0f": "DAI",
	"0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2": "WETH",
	"0x2260fac5e5542a773aa44fbcfedf7c193bc2c599": "WBTC",
	"0x833589fcd6edb6e08f4c7c32d4f71b54bda02913": "USDC", // Base
	"0x3c499c542cef5e3811e1192ce70d8cc03d5c3359": "USDC", // Polygon PoS
	"0xaf88d065e77c8cc2239327c5edb3a432268e5831": "USDC", // Arbitrum One
}

// stableSymbols are assets recognized as USD-pegged, eligible for the
// peg-shortcut source.
var stableSymbols = map[string]bool{
	"USDC": true,
	"USDT": true,
	"DAI":  true,
	"TUSD": true,
	"USDP": true,
}

// symbolFor resolves an asset id to a ticker the upstream sources understand.
func symbolFor(chainID int64, assetID string) (string, bool) {
	if assetID == NativeAsset {
		symbol, ok := nativeSymbols[chainID]
		return symbol, ok
	}
	symbol, ok := tokenSymbols[strings.ToLower(assetID)]
	return symbol, ok
}
