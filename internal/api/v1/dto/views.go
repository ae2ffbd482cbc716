package dto

import (
	"speechbench/internal/app/catalog"
	"speechbench/internal/app/compare"
	"speechbench/internal/app/estimator"
	"speechbench/internal/app/leaderboard"
)

// LeaderboardQuery limits the leaderboard length
type LeaderboardQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=10"`
}

// LeaderboardResponse is the ranked composite score list
type LeaderboardResponse struct {
	CatalogVersion string              `json:"catalog_version"`
	Entries        []leaderboard.Entry `json:"entries"`
}

// CompareQuery selects the comparison matrix rows
type CompareQuery struct {
	Modality        string `form:"modality"`
	DifferencesOnly bool   `form:"differences_only"`
}

// Validate checks the modality filter
func (q CompareQuery) Validate() error {
	_, err := compare.ParseFilter(q.Modality)
	return err
}

// Filter converts the query into a matrix filter; call Validate first
func (q CompareQuery) Filter() compare.Filter {
	f, _ := compare.ParseFilter(q.Modality)
	return compare.Filter{Modality: f, DifferencesOnly: q.DifferencesOnly}
}

// CompareResponse is the comparison matrix
type CompareResponse struct {
	CatalogVersion string `json:"catalog_version"`
	compare.Matrix
}

// EstimateQuery is the cost calculator input
type EstimateQuery struct {
	Hours    float64 `form:"hours" binding:"required,gte=1,lte=1000"`
	Modality string  `form:"modality" binding:"required"`
}

// Validate rejects modality values that are not TTS, STT or BOTH.
// BOTH parses here and is refused by the estimator.
func (q EstimateQuery) Validate() error {
	_, err := catalog.ParseModality(q.Modality)
	return err
}

// EstimateResponse is the cost calculator output
type EstimateResponse struct {
	CatalogVersion    string               `json:"catalog_version"`
	Hours             float64              `json:"hours"`
	Modality          string               `json:"modality"`
	CharsPerAudioHour int                  `json:"chars_per_audio_hour"`
	Standard          []estimator.Estimate `json:"standard"`
	Outliers          []estimator.Estimate `json:"outliers"`
}
