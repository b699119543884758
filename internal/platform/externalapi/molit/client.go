package molit

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"moajim/internal/feature/realestate/domain/entity"
	"moajim/internal/feature/realestate/usecase"
	"moajim/internal/platform/externalapi/molit/dto"
)

// TradeClient fetches apartment trades for one district and month.
type TradeClient struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that TradeClient satisfies usecase.TradeSource.
var _ usecase.TradeSource = (*TradeClient)(nil)

// NewTradeClient returns a TradeClient using cfg and client.
func NewTradeClient(cfg Config, client *http.Client) *TradeClient {
	return &TradeClient{cfg: cfg, client: client}
}

// FetchTrades calls getRTMSDataSvcAptTradeDev for lawdCd (5 digits) and dealYmd (YYYYMM).
func (c *TradeClient) FetchTrades(ctx context.Context, lawdCd, dealYmd string) ([]entity.Trade, error) {
	u := fmt.Sprintf("%s/getRTMSDataSvcAptTradeDev?%s", strings.TrimRight(c.cfg.BaseURL, "/"), c.query(lawdCd, dealYmd))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("molit http %d", res.StatusCode)
	}

	var body dto.TradeResponse
	if err := xml.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode molit response: %w", err)
	}
	if msg := body.CmmMsgHeader.ReturnAuthMsg; msg != "" {
		return nil, fmt.Errorf("molit gateway: %s (%s)", msg, body.CmmMsgHeader.ReturnReasonCode)
	}
	if code := body.Header.ResultCode; code != "" && code != "00" && code != "000" {
		return nil, fmt.Errorf("molit: %s %s", code, body.Header.ResultMsg)
	}

	trades := make([]entity.Trade, 0, len(body.Body.Items))
	for _, it := range body.Body.Items {
		trades = append(trades, toEntity(it))
	}
	return trades, nil
}

func (c *TradeClient) query(lawdCd, dealYmd string) string {
	q := url.Values{}
	q.Set("LAWD_CD", lawdCd)
	q.Set("DEAL_YMD", dealYmd)
	q.Set("pageNo", "1")
	q.Set("numOfRows", strconv.Itoa(c.numOfRows()))
	q.Set("serviceKey", decodedKey(c.cfg.ServiceKey))
	return q.Encode()
}

func (c *TradeClient) numOfRows() int {
	if c.cfg.NumOfRows <= 0 {
		return 999
	}
	return c.cfg.NumOfRows
}

// decodedKey accepts both the "Encoding" and "Decoding" keys data.go.kr issues;
// url.Values re-encodes, so an already-encoded key must be unescaped first.
func decodedKey(key string) string {
	if !strings.Contains(key, "%") {
		return key
	}
	if k, err := url.QueryUnescape(key); err == nil {
		return k
	}
	return key
}

func toEntity(it dto.TradeItem) entity.Trade {
	return entity.Trade{
		AptName:       strings.TrimSpace(it.AptNm),
		AptDong:       strings.TrimSpace(it.AptDong),
		Floor:         strings.TrimSpace(it.Floor),
		DealAmount:    strings.TrimSpace(it.DealAmount),
		ExclusiveArea: strings.TrimSpace(it.ExcluUseAr),
		DealYear:      strings.TrimSpace(it.DealYear),
		DealMonth:     strings.TrimSpace(it.DealMonth),
		DealDay:       strings.TrimSpace(it.DealDay),
		BuildYear:     strings.TrimSpace(it.BuildYear),
		Jibun:         strings.TrimSpace(it.Jibun),
		UmdName:       strings.TrimSpace(it.UmdNm),
	}
}
