// Package adapters persists the region lookup tables with gorm.
package adapters

import (
	"context"
	"sort"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"moajim/internal/feature/regions/domain/entity"
	"moajim/internal/feature/regions/usecase"
)

type regionGorm struct {
	db *gorm.DB
}

var _ usecase.RegionRepository = (*regionGorm)(nil)

// NewRegionRepository returns a gorm-backed RegionRepository.
func NewRegionRepository(db *gorm.DB) *regionGorm {
	return &regionGorm{db: db}
}

// RegionModel is one row of the seeded city/district table. ID preserves seed order.
type RegionModel struct {
	ID       uint   `gorm:"primaryKey"`
	City     string `gorm:"size:32;not null;index"`
	District string `gorm:"size:32;not null"`
	LawdCd   string `gorm:"size:5;not null;uniqueIndex"`
}

func (RegionModel) TableName() string { return "regions" }

type LegalDongModel struct {
	ID     uint   `gorm:"primaryKey"`
	LawdCd string `gorm:"size:5;not null;uniqueIndex:legal_dong_lawd_name,priority:1"`
	Name   string `gorm:"size:64;not null;uniqueIndex:legal_dong_lawd_name,priority:2"`
}

func (LegalDongModel) TableName() string { return "legal_dongs" }

type ApartmentModel struct {
	ID     uint   `gorm:"primaryKey"`
	LawdCd string `gorm:"size:5;not null;uniqueIndex:apartment_lawd_dong_name,priority:1"`
	Dong   string `gorm:"size:64;not null;uniqueIndex:apartment_lawd_dong_name,priority:2"`
	Name   string `gorm:"size:128;not null;uniqueIndex:apartment_lawd_dong_name,priority:3"`
}

func (ApartmentModel) TableName() string { return "apartments" }

type ApartmentAreaModel struct {
	ID      uint   `gorm:"primaryKey"`
	LawdCd  string `gorm:"size:5;not null;uniqueIndex:apartment_area_key,priority:1"`
	Dong    string `gorm:"size:64;not null;uniqueIndex:apartment_area_key,priority:2"`
	AptName string `gorm:"size:128;not null;uniqueIndex:apartment_area_key,priority:3"`
	Area    string `gorm:"size:16;not null;uniqueIndex:apartment_area_key,priority:4"`
}

func (ApartmentAreaModel) TableName() string { return "apartment_areas" }

// Models lists the tables to migrate.
func Models() []any {
	return []any{&RegionModel{}, &LegalDongModel{}, &ApartmentModel{}, &ApartmentAreaModel{}}
}

// SeedRegions inserts districts that are not present yet.
func (r *regionGorm) SeedRegions(ctx context.Context, districts []entity.District) error {
	if len(districts) == 0 {
		return nil
	}
	ms := make([]RegionModel, 0, len(districts))
	for _, d := range districts {
		ms = append(ms, RegionModel{City: d.City, District: d.Name, LawdCd: d.LawdCd})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&ms, 200).Error
}

func (r *regionGorm) Cities(ctx context.Context) ([]string, error) {
	var rows []struct {
		City    string
		FirstID uint
	}
	err := r.db.WithContext(ctx).Model(&RegionModel{}).
		Select("city, MIN(id) AS first_id").
		Group("city").
		Order("first_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.City)
	}
	return out, nil
}

func (r *regionGorm) Districts(ctx context.Context, city string) ([]entity.District, error) {
	var rows []RegionModel
	if err := r.db.WithContext(ctx).Where("city = ?", city).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.District, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.District{City: m.City, Name: m.District, LawdCd: m.LawdCd})
	}
	return out, nil
}

func (r *regionGorm) Dongs(ctx context.Context, lawdCd string) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).Model(&LegalDongModel{}).
		Where("lawd_cd = ?", lawdCd).
		Order("name").
		Pluck("name", &out).Error
	return out, err
}

func (r *regionGorm) Apartments(ctx context.Context, lawdCd, dong string) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).Model(&ApartmentModel{}).
		Where("lawd_cd = ? AND dong = ?", lawdCd, dong).
		Order("name").
		Pluck("name", &out).Error
	return out, err
}

// Areas returns the distinct areas ordered numerically.
func (r *regionGorm) Areas(ctx context.Context, lawdCd, dong, aptName string) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).Model(&ApartmentAreaModel{}).
		Where("lawd_cd = ? AND dong = ? AND apt_name = ?", lawdCd, dong, aptName).
		Pluck("area", &out).Error
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, errA := strconv.ParseFloat(out[i], 64)
		b, errB := strconv.ParseFloat(out[j], 64)
		if errA != nil || errB != nil {
			return out[i] < out[j]
		}
		return a < b
	})
	return out, nil
}

// SaveListings records dongs, apartments and areas; existing rows are left alone.
func (r *regionGorm) SaveListings(ctx context.Context, lawdCd string, listings []entity.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	dongs := map[string]struct{}{}
	apts := map[[2]string]struct{}{}
	areas := map[[3]string]struct{}{}
	for _, l := range listings {
		if l.Dong == "" {
			continue
		}
		dongs[l.Dong] = struct{}{}
		if l.AptName == "" {
			continue
		}
		apts[[2]string{l.Dong, l.AptName}] = struct{}{}
		if l.Area != "" {
			areas[[3]string{l.Dong, l.AptName, l.Area}] = struct{}{}
		}
	}

	dongRows := make([]LegalDongModel, 0, len(dongs))
	for d := range dongs {
		dongRows = append(dongRows, LegalDongModel{LawdCd: lawdCd, Name: d})
	}
	aptRows := make([]ApartmentModel, 0, len(apts))
	for k := range apts {
		aptRows = append(aptRows, ApartmentModel{LawdCd: lawdCd, Dong: k[0], Name: k[1]})
	}
	areaRows := make([]ApartmentAreaModel, 0, len(areas))
	for k := range areas {
		areaRows = append(areaRows, ApartmentAreaModel{LawdCd: lawdCd, Dong: k[0], AptName: k[1], Area: k[2]})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := insertIgnore(tx, &dongRows, len(dongRows)); err != nil {
			return err
		}
		if err := insertIgnore(tx, &aptRows, len(aptRows)); err != nil {
			return err
		}
		return insertIgnore(tx, &areaRows, len(areaRows))
	})
}

func insertIgnore(tx *gorm.DB, rows any, n int) error {
	if n == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(rows, 200).Error
}

func (r *regionGorm) CountDongs(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&LegalDongModel{}).Count(&n).Error
	return n, err
}
