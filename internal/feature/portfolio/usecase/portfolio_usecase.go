// Package usecase compares user holdings with reference investor allocations.
package usecase

import (
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"moajim/internal/feature/portfolio/domain"
	"moajim/internal/feature/portfolio/domain/entity"
)

// InvestorRepository provides the reference profiles.
type InvestorRepository interface {
	List() []entity.Investor
	FindByID(id string) (entity.Investor, bool)
}

// BalancedSummary is the single summary line when no bucket needs action.
const BalancedSummary = "현재 포트폴리오가 적절합니다"

type PortfolioUsecase struct {
	investors InvestorRepository
	now       func() time.Time
	newID     func() string
}

func NewPortfolioUsecase(investors InvestorRepository) *PortfolioUsecase {
	return &PortfolioUsecase{
		investors: investors,
		now:       time.Now,
		newID:     func() string { return "analysis_" + uuid.NewString() },
	}
}

func (uc *PortfolioUsecase) ListInvestors() []entity.Investor {
	return uc.investors.List()
}

// Analyze computes the current mix, the investor's target amounts and the
// difference per bucket.
func (uc *PortfolioUsecase) Analyze(assets entity.Buckets, investorID string) (*entity.Analysis, error) {
	inv, ok := uc.investors.FindByID(investorID)
	if !ok {
		return nil, domain.ErrInvestorNotFound
	}
	if assets.Stocks < 0 || assets.Bonds < 0 || assets.Cash < 0 || assets.RealEstate < 0 || assets.Crypto < 0 {
		return nil, domain.ErrNegativeAsset
	}

	total := assets.Total()
	a := inv.Allocation

	rec := entity.Buckets{
		Stocks:     math.Round(total * a.Stocks / 100),
		Bonds:      math.Round(total * a.Bonds / 100),
		Cash:       math.Round(total * a.Cash / 100),
		RealEstate: math.Round(total * a.RealEstate / 100),
		Crypto:     math.Round(total * a.Crypto / 100),
	}
	adj := entity.Buckets{
		Stocks:     rec.Stocks - assets.Stocks,
		Bonds:      rec.Bonds - assets.Bonds,
		Cash:       rec.Cash - assets.Cash,
		RealEstate: rec.RealEstate - assets.RealEstate,
		Crypto:     rec.Crypto - assets.Crypto,
	}

	return &entity.Analysis{
		ID:                uc.newID(),
		Investor:          inv,
		TotalAssets:       total,
		CurrentAllocation: CurrentAllocation(assets),
		Recommendations:   rec,
		Adjustments:       adj,
		Summary:           Summary(adj),
		CreatedAt:         uc.now().UTC(),
	}, nil
}

// CurrentAllocation returns each bucket's share of the total in percent.
// An empty portfolio has all shares at 0.
func CurrentAllocation(assets entity.Buckets) entity.Buckets {
	total := assets.Total()
	if total <= 0 {
		return entity.Buckets{}
	}
	return entity.Buckets{
		Stocks:     assets.Stocks / total * 100,
		Bonds:      assets.Bonds / total * 100,
		Cash:       assets.Cash / total * 100,
		RealEstate: assets.RealEstate / total * 100,
		Crypto:     assets.Crypto / total * 100,
	}
}

// Summary turns adjustments into action sentences. Real estate only ever gets
// a buy suggestion; crypto gets none.
func Summary(adj entity.Buckets) []string {
	var out []string

	switch {
	case adj.Stocks > 0:
		out = append(out, "주식을 "+FormatManwon(adj.Stocks)+" 추가 매수하세요")
	case adj.Stocks < 0:
		out = append(out, "주식을 "+FormatManwon(-adj.Stocks)+" 매도하세요")
	}
	switch {
	case adj.Bonds > 0:
		out = append(out, "채권을 "+FormatManwon(adj.Bonds)+" 추가 매수하세요")
	case adj.Bonds < 0:
		out = append(out, "채권을 "+FormatManwon(-adj.Bonds)+" 매도하세요")
	}
	switch {
	case adj.Cash > 0:
		out = append(out, "현금을 "+FormatManwon(adj.Cash)+" 추가 확보하세요")
	case adj.Cash < 0:
		out = append(out, "현금 "+FormatManwon(-adj.Cash)+"를 투자에 활용하세요")
	}
	if adj.RealEstate > 0 {
		out = append(out, "부동산을 "+FormatManwon(adj.RealEstate)+" 추가 투자하세요")
	}

	if len(out) == 0 {
		return []string{BalancedSummary}
	}
	return out
}

// FormatManwon renders a won amount in whole 만원 without separators,
// e.g. 15,000,000 → "1500만원".
func FormatManwon(won float64) string {
	return strconv.FormatFloat(math.Round(won/10000), 'f', 0, 64) + "만원"
}
