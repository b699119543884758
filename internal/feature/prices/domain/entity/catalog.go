// Package entity defines the assets the price endpoints support.
package entity

// Coin is a CoinGecko-listed cryptocurrency.
type Coin struct {
	ID     string `json:"id"` // CoinGecko id
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Stock is a US-listed equity quoted via Finnhub.
type Stock struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	Market string `json:"market"`
}

var Coins = []Coin{
	{ID: "bitcoin", Symbol: "BTC", Name: "비트코인"},
	{ID: "ethereum", Symbol: "ETH", Name: "이더리움"},
	{ID: "ripple", Symbol: "XRP", Name: "리플"},
	{ID: "cardano", Symbol: "ADA", Name: "에이다"},
	{ID: "solana", Symbol: "SOL", Name: "솔라나"},
	{ID: "dogecoin", Symbol: "DOGE", Name: "도지코인"},
	{ID: "polkadot", Symbol: "DOT", Name: "폴카닷"},
	{ID: "avalanche-2", Symbol: "AVAX", Name: "아발란체"},
}

var Stocks = []Stock{
	{Ticker: "AAPL", Name: "애플", Market: "US"},
	{Ticker: "MSFT", Name: "마이크로소프트", Market: "US"},
	{Ticker: "GOOGL", Name: "구글", Market: "US"},
	{Ticker: "AMZN", Name: "아마존", Market: "US"},
	{Ticker: "TSLA", Name: "테슬라", Market: "US"},
	{Ticker: "NVDA", Name: "엔비디아", Market: "US"},
	{Ticker: "META", Name: "메타", Market: "US"},
	{Ticker: "NFLX", Name: "넷플릭스", Market: "US"},
	{Ticker: "V", Name: "비자", Market: "US"},
	{Ticker: "JPM", Name: "JP모건", Market: "US"},
	{Ticker: "DIS", Name: "디즈니", Market: "US"},
	{Ticker: "BA", Name: "보잉", Market: "US"},
}
