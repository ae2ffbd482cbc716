// Package handlers serves the HTML pages of the benchmark site.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"speechbench/internal/app/catalog"
	"speechbench/internal/app/compare"
	"speechbench/internal/app/estimator"
	"speechbench/internal/app/leaderboard"
	"speechbench/internal/app/recommend"
)

const (
	defaultCalculatorHours = 10.0
	maxCompositeScore      = 20.0
)

// PageHandler renders the site pages from the shared catalog
type PageHandler struct {
	catalog          *catalog.Catalog
	estimator        *estimator.Estimator
	topN             int
	leaderboardLimit int
	logger           *zap.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(c *catalog.Catalog, e *estimator.Estimator, topN, leaderboardLimit int, logger *zap.Logger) *PageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{
		catalog:          c,
		estimator:        e,
		topN:             topN,
		leaderboardLimit: leaderboardLimit,
		logger:           logger,
	}
}

func (h *PageHandler) page(c *gin.Context, status int, name string, data gin.H) {
	data["CatalogVersion"] = h.catalog.Version()
	c.HTML(status, name, data)
}

func (h *PageHandler) badInput(c *gin.Context, err error) int {
	h.logger.Warn("Rejected page input",
		zap.String("path", c.Request.URL.Path),
		zap.String("query", c.Request.URL.RawQuery),
		zap.Error(err),
	)
	return http.StatusUnprocessableEntity
}

// Home handles GET / with an optional ?modality= narrowing of the provider cards
func (h *PageHandler) Home(c *gin.Context) {
	status := http.StatusOK
	var errMsg string
	providers := h.catalog.All()

	if raw := c.Query("modality"); raw != "" {
		m, err := catalog.ParseModality(raw)
		if err != nil {
			status, errMsg = h.badInput(c, err), err.Error()
		} else {
			providers = h.catalog.ByModality(m, true)
		}
	}

	h.page(c, status, "home.html", gin.H{
		"Title":     "Speech AI Benchmarks",
		"Active":    "home",
		"Providers": providers,
		"Modality":  c.Query("modality"),
		"Error":     errMsg,
	})
}

// Leaderboard handles GET /leaderboard
func (h *PageHandler) Leaderboard(c *gin.Context) {
	h.page(c, http.StatusOK, "leaderboard.html", gin.H{
		"Title":    "Leaderboard",
		"Active":   "leaderboard",
		"Entries":  leaderboard.Rank(h.catalog, h.leaderboardLimit),
		"MaxScore": maxCompositeScore,
	})
}

// Compare handles GET /compare?modality=ALL|TTS|STT&differences_only=on
func (h *PageHandler) Compare(c *gin.Context) {
	status := http.StatusOK
	var errMsg string

	f, err := compare.ParseFilter(c.Query("modality"))
	if err != nil {
		status, errMsg = h.badInput(c, err), err.Error()
		f = compare.FilterAll
	}
	diffOnly := c.Query("differences_only") != ""

	h.page(c, status, "compare.html", gin.H{
		"Title":   "Compare Providers",
		"Active":  "compare",
		"Matrix":  compare.Build(h.catalog, compare.Filter{Modality: f, DifferencesOnly: diffOnly}),
		"Filters": []compare.ModalityFilter{compare.FilterAll, compare.FilterTTS, compare.FilterSTT},
		"Error":   errMsg,
	})
}

// Calculator handles GET /calculator?hours=H&modality=TTS|STT
func (h *PageHandler) Calculator(c *gin.Context) {
	status := http.StatusOK
	var errMsg string

	hours := defaultCalculatorHours
	if raw := c.Query("hours"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			status, errMsg = h.badInput(c, err), "hours must be a number"
		} else {
			hours = v
		}
	}

	modality := catalog.ModalityTTS
	if raw := c.Query("modality"); raw != "" && errMsg == "" {
		m, err := catalog.ParseModality(raw)
		if err != nil {
			status, errMsg = h.badInput(c, err), err.Error()
		} else {
			modality = m
		}
	}

	data := gin.H{
		"Title":             "Cost Calculator",
		"Active":            "calculator",
		"Hours":             hours,
		"Modality":          string(modality),
		"MinHours":          estimator.MinHours,
		"MaxHours":          estimator.MaxHours,
		"CharsPerAudioHour": estimator.CharsPerAudioHour,
	}

	if errMsg == "" {
		result, err := h.estimator.Estimate(hours, modality)
		if err != nil {
			status, errMsg = h.badInput(c, err), err.Error()
		} else {
			data["Result"] = result
			data["StandardPeak"] = peakCost(result.Standard)
			data["OutlierPeak"] = peakCost(result.Outliers)
		}
	}
	data["Error"] = errMsg

	h.page(c, status, "calculator.html", data)
}

// Quiz handles GET /quiz?a=tag&a=tag... replaying the answers given so far
func (h *PageHandler) Quiz(c *gin.Context) {
	status := http.StatusOK
	var errMsg string

	answers := c.QueryArray("a")
	quiz, err := recommend.Replay(h.catalog, h.topN, answers...)
	if err != nil {
		status, errMsg = h.badInput(c, err), err.Error()
		quiz = recommend.NewQuiz(h.catalog, h.topN)
		answers = nil
	}

	data := gin.H{
		"Title":   "Find Your Provider",
		"Active":  "quiz",
		"Answers": answers,
		"Done":    quiz.Done(),
		"Error":   errMsg,
	}
	if q, ok := quiz.Current(); ok {
		data["Question"] = q
		data["Total"] = len(recommend.Questions())
	} else {
		data["Results"] = quiz.Results()
	}

	h.page(c, status, "quiz.html", data)
}

func peakCost(estimates []estimator.Estimate) float64 {
	peak := 0.0
	for _, e := range estimates {
		if e.Cost > peak {
			peak = e.Cost
		}
	}
	return peak
}
