package recommend

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speechbench/internal/app/catalog"
)

func recommendedIDs(recs []Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Provider.ID)
	}
	return out
}

func TestScore(t *testing.T) {
	c := catalog.Default()
	kokoro, _ := c.Get("kokoro")
	deepgram, _ := c.Get("deepgram")
	elevenlabs, _ := c.Get("elevenlabs")

	tests := []struct {
		name     string
		provider catalog.Provider
		answers  Answers
		expected float64
	}{
		{
			name:     "budget tag, budget bonus and price priority",
			provider: kokoro,
			answers:  Answers{UseCase: UseCaseBudget, Priority: PriorityPrice, Volume: VolumeLow},
			expected: 30,
		},
		{
			name:     "voice agent speed bonus without quality bonus",
			provider: deepgram,
			answers:  Answers{UseCase: UseCaseVoiceAgent, Priority: PriorityQuality, Volume: VolumeHigh},
			expected: 10 + 5 + 9,
		},
		{
			name:     "content creation quality bonus",
			provider: elevenlabs,
			answers:  Answers{UseCase: UseCaseContentCreation, Priority: PrioritySpeed, Volume: VolumeMedium},
			expected: 10 + 5 + 8,
		},
		{
			name:     "no tag match, priority only",
			provider: elevenlabs,
			answers:  Answers{UseCase: UseCaseTranscription, Priority: PriorityPrice, Volume: VolumeLow},
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.provider, tt.answers))
		})
	}
}

func TestScore_VolumeIsIgnored(t *testing.T) {
	c := catalog.Default()
	for _, p := range c.All() {
		low := Score(p, Answers{UseCase: UseCaseVoiceAgent, Priority: PrioritySpeed, Volume: VolumeLow})
		high := Score(p, Answers{UseCase: UseCaseVoiceAgent, Priority: PrioritySpeed, Volume: VolumeHigh})
		assert.Equal(t, low, high, p.ID)
	}
}

func TestRecommend(t *testing.T) {
	c := catalog.Default()

	tests := []struct {
		name     string
		answers  Answers
		expected []string
	}{
		{
			name:     "budget",
			answers:  Answers{UseCase: UseCaseBudget, Priority: PriorityPrice, Volume: VolumeLow},
			expected: []string{"kokoro", "deepgram", "azure"},
		},
		{
			name:     "voice agent with speed",
			answers:  Answers{UseCase: UseCaseVoiceAgent, Priority: PrioritySpeed, Volume: VolumeMedium},
			expected: []string{"deepgram", "cartesia", "elevenlabs"},
		},
		{
			name:     "content creation with quality",
			answers:  Answers{UseCase: UseCaseContentCreation, Priority: PriorityQuality, Volume: VolumeHigh},
			expected: []string{"elevenlabs", "playht", "deepgram"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := Recommend(c, tt.answers, DefaultTopN)
			assert.Equal(t, tt.expected, recommendedIDs(recs))

			// same inputs, same ranking
			assert.Equal(t, recs, Recommend(c, tt.answers, DefaultTopN))
		})
	}
}

func TestRecommend_TopNBound(t *testing.T) {
	small, err := catalog.New("small", []catalog.Provider{
		{
			ID: "only", Name: "Only", Modality: catalog.ModalityTTS, LanguageCount: 1,
			PricingTiers: []catalog.PricingTier{{Name: "t", UnitPrice: 1, UnitSize: 1, UnitType: catalog.UnitMinutes}},
		},
	})
	require.NoError(t, err)

	recs := Recommend(small, Answers{UseCase: UseCaseBudget, Priority: PriorityPrice, Volume: VolumeLow}, 0)
	assert.Len(t, recs, 1)

	recs = Recommend(catalog.Default(), Answers{UseCase: UseCaseBudget, Priority: PriorityPrice, Volume: VolumeLow}, 0)
	assert.Len(t, recs, DefaultTopN)

	for _, n := range []int{4, 9, 100} {
		recs = Recommend(catalog.Default(), Answers{UseCase: UseCaseBudget, Priority: PriorityPrice, Volume: VolumeLow}, n)
		assert.Len(t, recs, DefaultTopN, "n=%d", n)
	}

	recs = Recommend(catalog.Default(), Answers{UseCase: UseCaseBudget, Priority: PriorityPrice, Volume: VolumeLow}, 2)
	assert.Equal(t, []string{"kokoro", "deepgram"}, recommendedIDs(recs))
}

func TestRecommend_TiesKeepCatalogOrder(t *testing.T) {
	c := catalog.Default()
	// accessibility with speed: azure and kokoro both score 10 + 8
	recs := Recommend(c, Answers{UseCase: UseCaseAccessibility, Priority: PrioritySpeed, Volume: VolumeLow}, DefaultTopN)
	require.Len(t, recs, 3)
	assert.Equal(t, "azure", recs[0].Provider.ID)
	assert.Equal(t, "kokoro", recs[1].Provider.ID)
	assert.Equal(t, recs[0].Score, recs[1].Score)
}

func TestAnswers_Validate(t *testing.T) {
	assert.NoError(t, Answers{UseCase: UseCaseBudget, Priority: PriorityPrice, Volume: VolumeLow}.Validate())

	err := Answers{UseCase: "podcast", Priority: PriorityPrice, Volume: VolumeLow}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOption))

	err = Answers{UseCase: UseCaseBudget, Priority: PriorityPrice}.Validate()
	assert.True(t, errors.Is(err, ErrInvalidOption))
}

func TestQuestions(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, 3)
	assert.Len(t, qs[0].Options, 5)
	assert.Len(t, qs[1].Options, 3)
	assert.Len(t, qs[2].Options, 3)

	qs[0].Options[0].Tag = "mutated"
	assert.Equal(t, string(UseCaseVoiceAgent), Questions()[0].Options[0].Tag)
}
