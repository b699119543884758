package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	realestate "moajim/internal/feature/realestate/domain/entity"
	"moajim/internal/feature/regions/domain"
	"moajim/internal/feature/regions/domain/entity"
)

// fakeRegionRepository is an in-memory RegionRepository.
type fakeRegionRepository struct {
	mu        sync.Mutex
	districts []entity.District
	listings  map[string][]entity.Listing
	saveCalls int
	saveErr   error
}

func newFakeRepo() *fakeRegionRepository {
	return &fakeRegionRepository{listings: map[string][]entity.Listing{}}
}

func (f *fakeRegionRepository) SeedRegions(ctx context.Context, ds []entity.District) error {
	f.districts = append(f.districts, ds...)
	return nil
}

func (f *fakeRegionRepository) Cities(ctx context.Context) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	for _, d := range f.districts {
		if !seen[d.City] {
			seen[d.City] = true
			out = append(out, d.City)
		}
	}
	return out, nil
}

func (f *fakeRegionRepository) Districts(ctx context.Context, city string) ([]entity.District, error) {
	var out []entity.District
	for _, d := range f.districts {
		if d.City == city {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeRegionRepository) collect(lawdCd string, pick func(entity.Listing) (string, bool)) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, l := range f.listings[lawdCd] {
		if v, ok := pick(l); ok && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func (f *fakeRegionRepository) Dongs(ctx context.Context, lawdCd string) ([]string, error) {
	return f.collect(lawdCd, func(l entity.Listing) (string, bool) { return l.Dong, true }), nil
}

func (f *fakeRegionRepository) Apartments(ctx context.Context, lawdCd, dong string) ([]string, error) {
	return f.collect(lawdCd, func(l entity.Listing) (string, bool) { return l.AptName, l.Dong == dong && l.AptName != "" }), nil
}

func (f *fakeRegionRepository) Areas(ctx context.Context, lawdCd, dong, apt string) ([]string, error) {
	return f.collect(lawdCd, func(l entity.Listing) (string, bool) {
		return l.Area, l.Dong == dong && l.AptName == apt && l.Area != ""
	}), nil
}

func (f *fakeRegionRepository) SaveListings(ctx context.Context, lawdCd string, ls []entity.Listing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.listings[lawdCd] = append(f.listings[lawdCd], ls...)
	return nil
}

func (f *fakeRegionRepository) CountDongs(ctx context.Context) (int64, error) {
	var n int64
	for code := range f.listings {
		d, _ := f.Dongs(ctx, code)
		n += int64(len(d))
	}
	return n, nil
}

// mockTradeSource records requested months.
type mockTradeSource struct {
	mu      sync.Mutex
	fetchFn func(ctx context.Context, lawdCd, dealYmd string) ([]realestate.Trade, error)
	months  []string
}

func (m *mockTradeSource) FetchTrades(ctx context.Context, lawdCd, dealYmd string) ([]realestate.Trade, error) {
	m.mu.Lock()
	m.months = append(m.months, dealYmd)
	m.mu.Unlock()
	if m.fetchFn != nil {
		return m.fetchFn(ctx, lawdCd, dealYmd)
	}
	return nil, nil
}

func (m *mockTradeSource) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.months)
}

func fakeMonths(now time.Time, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = now.AddDate(0, -i, 0).Format("200601")
	}
	return out
}

func eunmaTrades(ctx context.Context, lawdCd, dealYmd string) ([]realestate.Trade, error) {
	return []realestate.Trade{
		{AptName: "은마", UmdName: "대치동", ExclusiveArea: "76.79"},
		{AptName: "은마", UmdName: "대치동", ExclusiveArea: "84.43"},
		{AptName: "개포자이", UmdName: "개포동", ExclusiveArea: "59.9"},
		{AptName: "무명", UmdName: " "},
	}, nil
}

func newTestUsecase(repo RegionRepository, src TradeSource) *RegionsUsecase {
	uc := NewRegionsUsecase(repo, src, nil, fakeMonths)
	uc.now = func() time.Time { return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) }
	return uc
}

func TestRegionsUsecase_CitiesAndDistricts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newFakeRepo()
	uc := newTestUsecase(repo, &mockTradeSource{})

	cities, err := uc.Cities(ctx)
	require.NoError(t, err)
	assert.NotNil(t, cities)
	assert.Empty(t, cities)

	require.NoError(t, uc.Seed(ctx, []entity.District{
		{City: "서울특별시", Name: "강남구", LawdCd: "11680"},
		{City: "부산광역시", Name: "해운대구", LawdCd: "26350"},
	}))

	cities, err = uc.Cities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"서울특별시", "부산광역시"}, cities)

	ds, err := uc.Districts(ctx, "부산광역시")
	require.NoError(t, err)
	assert.Equal(t, "26350", ds[0].LawdCd)

	ds, err = uc.Districts(ctx, "없는도시")
	require.NoError(t, err)
	assert.NotNil(t, ds)

	_, err = uc.Districts(ctx, " ")
	assert.ErrorIs(t, err, domain.ErrCityRequired)
}

func TestRegionsUsecase_Validation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	uc := newTestUsecase(newFakeRepo(), &mockTradeSource{})

	_, err := uc.Dongs(ctx, "")
	assert.ErrorIs(t, err, domain.ErrLawdCdRequired)
	_, err = uc.Dongs(ctx, "1168")
	assert.ErrorIs(t, err, domain.ErrInvalidLawdCd)
	_, err = uc.Dongs(ctx, "1168a")
	assert.ErrorIs(t, err, domain.ErrInvalidLawdCd)
	_, err = uc.Apartments(ctx, "11680", "")
	assert.ErrorIs(t, err, domain.ErrDongRequired)
	_, err = uc.Areas(ctx, "11680", "대치동", "")
	assert.ErrorIs(t, err, domain.ErrAptRequired)
	_, err = uc.Refresh(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrInvalidLawdCd)
}

func TestRegionsUsecase_Dongs_PopulatesOnEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newFakeRepo()
	src := &mockTradeSource{fetchFn: eunmaTrades}
	uc := newTestUsecase(repo, src)

	dongs, err := uc.Dongs(ctx, "11680")
	require.NoError(t, err)
	assert.Equal(t, []string{"개포동", "대치동"}, dongs)
	assert.Equal(t, ListingMonths, src.calls())
	assert.Equal(t, "202506", src.months[0])

	// second read is served from the table
	_, err = uc.Dongs(ctx, "11680")
	require.NoError(t, err)
	assert.Equal(t, ListingMonths, src.calls())
}

func TestRegionsUsecase_Apartments_And_Areas(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := &mockTradeSource{fetchFn: eunmaTrades}
	uc := newTestUsecase(newFakeRepo(), src)

	apts, err := uc.Apartments(ctx, "11680", "대치동")
	require.NoError(t, err)
	assert.Equal(t, []string{"은마"}, apts)
	assert.Equal(t, ListingMonths, src.calls())

	areas, err := uc.Areas(ctx, "11680", "대치동", "은마")
	require.NoError(t, err)
	assert.Equal(t, []string{"76.79", "84.43"}, areas)
	assert.Equal(t, ListingMonths, src.calls(), "areas already recorded by the apartment populate")

	areas, err = uc.Areas(ctx, "11680", "대치동", "래미안")
	require.NoError(t, err)
	assert.Empty(t, areas)
	assert.Equal(t, ListingMonths+AreaMonths, src.calls())
}

func TestRegionsUsecase_PopulateFailureReturnsEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := &mockTradeSource{fetchFn: func(ctx context.Context, lawdCd, dealYmd string) ([]realestate.Trade, error) {
		return nil, errors.New("quota exceeded")
	}}
	repo := newFakeRepo()
	uc := newTestUsecase(repo, src)

	dongs, err := uc.Dongs(ctx, "11680")
	require.NoError(t, err)
	assert.NotNil(t, dongs)
	assert.Empty(t, dongs)
	assert.Equal(t, 0, repo.saveCalls)

	_, err = uc.Refresh(ctx, "11680")
	assert.Error(t, err)
}

func TestRegionsUsecase_Refresh(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := &mockTradeSource{fetchFn: eunmaTrades}
	uc := newTestUsecase(newFakeRepo(), src)

	dongs, err := uc.Refresh(ctx, "11680")
	require.NoError(t, err)
	assert.Equal(t, []string{"개포동", "대치동"}, dongs)

	_, err = uc.Refresh(ctx, "11680")
	require.NoError(t, err)
	assert.Equal(t, 2*ListingMonths, src.calls())

	n, err := uc.DongCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestRegionsUsecase_RecordTrades(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newFakeRepo()
	uc := newTestUsecase(repo, &mockTradeSource{})

	require.NoError(t, uc.RecordTrades(ctx, "11680", nil))
	assert.Equal(t, 0, repo.saveCalls)

	trades, _ := eunmaTrades(ctx, "11680", "202506")
	require.NoError(t, uc.RecordTrades(ctx, "11680", trades))
	assert.Equal(t, 1, repo.saveCalls)
	assert.Len(t, repo.listings["11680"], 3)

	repo.saveErr = errors.New("disk full")
	assert.Error(t, uc.RecordTrades(ctx, "11680", trades))
}
