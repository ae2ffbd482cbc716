package catalog

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "speechbench/internal/app/errors"
)

func testProvider(id string, m Modality) Provider {
	return Provider{
		ID:       id,
		Name:     strings.ToUpper(id),
		Modality: m,
		PricingTiers: []PricingTier{
			{Name: "Base", UnitPrice: 1, UnitSize: 1, UnitType: UnitMinutes},
		},
		Benchmarks:    Benchmarks{Quality: 3, Speed: 3, PriceScore: 3, Features: 3},
		LanguageCount: 1,
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	require.Equal(t, 9, c.Len())
	assert.Equal(t, DefaultVersion, c.Version())

	ids := make([]string, 0, c.Len())
	for _, p := range c.All() {
		ids = append(ids, p.ID)
		assert.NotEmpty(t, p.PricingTiers, "provider %s", p.ID)
	}
	assert.Equal(t, []string{
		"elevenlabs", "deepgram", "openai", "cartesia", "azure",
		"google", "assemblyai", "kokoro", "playht",
	}, ids)

	playht, ok := c.Get("playht")
	require.True(t, ok)
	assert.True(t, playht.PrimaryTier().IsSubscription())
}

func TestCatalog_ByModality(t *testing.T) {
	c := Default()

	tests := []struct {
		name        string
		modality    Modality
		includeBoth bool
		expected    []string
	}{
		{
			name:        "TTS with BOTH",
			modality:    ModalityTTS,
			includeBoth: true,
			expected:    []string{"elevenlabs", "openai", "cartesia", "azure", "google", "kokoro", "playht"},
		},
		{
			name:     "TTS exact",
			modality: ModalityTTS,
			expected: []string{"elevenlabs", "cartesia", "kokoro", "playht"},
		},
		{
			name:        "STT with BOTH",
			modality:    ModalitySTT,
			includeBoth: true,
			expected:    []string{"deepgram", "openai", "azure", "google", "assemblyai"},
		},
		{
			name:     "STT exact",
			modality: ModalitySTT,
			expected: []string{"deepgram", "assemblyai"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, p := range c.ByModality(tt.modality, tt.includeBoth) {
				got = append(got, p.ID)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCatalog_IsImmutable(t *testing.T) {
	c := Default()

	p, ok := c.Get("deepgram")
	require.True(t, ok)
	p.PricingTiers[0].UnitPrice = 999
	p.BestFor[0] = "mutated"

	all := c.All()
	all[1].Name = "changed"

	again, _ := c.Get("deepgram")
	assert.Equal(t, 0.0043, again.PricingTiers[0].UnitPrice)
	assert.Equal(t, "voice-agent", again.BestFor[0])
	assert.Equal(t, "Deepgram", again.Name)
}

func TestNew_BenchmarksOutsideUsualRange(t *testing.T) {
	low := testProvider("low", ModalityTTS)
	low.Benchmarks = Benchmarks{Quality: -1, Speed: 0, PriceScore: 0, Features: 0}
	high := testProvider("high", ModalitySTT)
	high.Benchmarks = Benchmarks{Quality: 7.5, Speed: 6, PriceScore: 5, Features: 5}

	c, err := New("test", []Provider{low, high})
	require.NoError(t, err)

	p, ok := c.Get("low")
	require.True(t, ok)
	assert.Equal(t, -1.0, p.Benchmarks.Total())
	p, ok = c.Get("high")
	require.True(t, ok)
	assert.Equal(t, 23.5, p.Benchmarks.Total())
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name      string
		providers []Provider
		target    error
	}{
		{
			name: "duplicate ids",
			providers: []Provider{
				testProvider("a", ModalityTTS),
				testProvider("a", ModalitySTT),
			},
			target: apperrors.ErrDuplicateID,
		},
		{
			name: "no pricing tiers",
			providers: []Provider{func() Provider {
				p := testProvider("a", ModalityTTS)
				p.PricingTiers = nil
				return p
			}()},
			target: apperrors.ErrInvalidCatalog,
		},
		{
			name: "zero unit size",
			providers: []Provider{func() Provider {
				p := testProvider("a", ModalityTTS)
				p.PricingTiers[0].UnitSize = 0
				return p
			}()},
			target: apperrors.ErrInvalidCatalog,
		},
		{
			name: "unknown modality",
			providers: []Provider{func() Provider {
				p := testProvider("a", ModalityTTS)
				p.Modality = "VIDEO"
				return p
			}()},
			target: apperrors.ErrInvalidCatalog,
		},
		{
			name: "unknown unit type",
			providers: []Provider{func() Provider {
				p := testProvider("a", ModalityTTS)
				p.PricingTiers[0].UnitType = "words"
				return p
			}()},
			target: apperrors.ErrInvalidCatalog,
		},
		{
			name: "missing language count",
			providers: []Provider{func() Provider {
				p := testProvider("a", ModalityTTS)
				p.LanguageCount = 0
				return p
			}()},
			target: apperrors.ErrInvalidCatalog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("test", tt.providers)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestDecode(t *testing.T) {
	doc := `
version: "test-1"
providers:
  - id: alpha
    name: Alpha
    modality: STT
    pricing_tiers:
      - name: Base
        unit_price: 0.01
        unit_size: 1
        unit_type: minutes
        description: "$0.01/min"
    benchmarks:
      quality: 4
      speed: 4
      price_score: 4
      features: 3
    features: [Streaming]
    language_count: 12
    best_for: [transcription]
`
	c, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "test-1", c.Version())
	p, ok := c.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, ModalitySTT, p.Modality)
	assert.Equal(t, UnitMinutes, p.PrimaryTier().UnitType)
	assert.Equal(t, 4.0, p.Benchmarks.PriceScore)
	assert.True(t, p.HasTag("transcription"))
}

func TestDecode_Errors(t *testing.T) {
	t.Run("unknown field", func(t *testing.T) {
		_, err := Decode(strings.NewReader("version: x\nbogus: 1\n"))
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Decode(strings.NewReader("version: x\nproviders: []\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCatalog))
	})
}

func TestEncode_DefaultCatalogDecodes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Default()))

	c, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default().All(), c.All())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir() + "/missing.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrFileNotFound))
}

func TestParseModality(t *testing.T) {
	m, err := ParseModality(" tts ")
	require.NoError(t, err)
	assert.Equal(t, ModalityTTS, m)

	_, err = ParseModality("video")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "modality")
}
