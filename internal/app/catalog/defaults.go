package catalog

// DefaultVersion tags the built-in dataset
const DefaultVersion = "2025.1"

// Default returns the built-in provider catalog
func Default() *Catalog {
	c, err := New(DefaultVersion, defaultProviders())
	if err != nil {
		panic("built-in catalog is invalid: " + err.Error())
	}
	return c
}

func defaultProviders() []Provider {
	return []Provider{
		{
			ID:          "elevenlabs",
			Name:        "ElevenLabs",
			Modality:    ModalityTTS,
			Description: "Industry leader in AI voice quality and realistic cloning.",
			Website:     "https://elevenlabs.io",
			PricingTiers: []PricingTier{
				{Name: "Starter", UnitPrice: 5, UnitSize: 30000, UnitType: UnitCharacters, Description: "$5/mo for 30k chars"},
				{Name: "Creator", UnitPrice: 22, UnitSize: 100000, UnitType: UnitCharacters, Description: "$22/mo for 100k chars"},
				{Name: "Pro", UnitPrice: 99, UnitSize: 500000, UnitType: UnitCharacters, Description: "$99/mo for 500k chars"},
			},
			Benchmarks:    Benchmarks{Quality: 5, Speed: 4, PriceScore: 2, Features: 5},
			Features:      []string{"Voice Cloning", "Dubbing", "Turbo Model", "Projects", "Mobile App"},
			LanguageCount: 32,
			BestFor:       []string{"content-creation", "narration", "voice-agent"},
		},
		{
			ID:          "deepgram",
			Name:        "Deepgram",
			Modality:    ModalitySTT,
			Description: "Fastest speech-to-text API with high accuracy and low latency.",
			Website:     "https://deepgram.com",
			PricingTiers: []PricingTier{
				{Name: "Pay-as-you-go", UnitPrice: 0.0043, UnitSize: 1, UnitType: UnitMinutes, Description: "$0.0043/min"},
				{Name: "Nova-3", UnitPrice: 0.0043, UnitSize: 1, UnitType: UnitMinutes, Description: "Batch & Streaming"},
			},
			Benchmarks:    Benchmarks{Quality: 4.5, Speed: 5, PriceScore: 4, Features: 4},
			Features:      []string{"Real-time Streaming", "Diarization", "Smart Formatting", "Audio Intelligence"},
			LanguageCount: 30,
			BestFor:       []string{"voice-agent", "transcription", "analytics", "real-time"},
		},
		{
			ID:          "openai",
			Name:        "OpenAI",
			Modality:    ModalityBoth,
			Description: "Standard-setting models for both TTS (HD) and STT (Whisper).",
			Website:     "https://openai.com",
			PricingTiers: []PricingTier{
				{Name: "TTS Standard", UnitPrice: 0.015, UnitSize: 1000, UnitType: UnitCharacters, Description: "$0.015/1k chars"},
				{Name: "Whisper", UnitPrice: 0.006, UnitSize: 1, UnitType: UnitMinutes, Description: "$0.006/min"},
			},
			Benchmarks:    Benchmarks{Quality: 4.5, Speed: 3, PriceScore: 3, Features: 3},
			Features:      []string{"HD Model", "Simple API", "Whisper v3"},
			LanguageCount: 50,
			BestFor:       []string{"simple-app", "prototyping", "translation"},
		},
		{
			ID:          "cartesia",
			Name:        "Cartesia",
			Modality:    ModalityTTS,
			Description: "Ultra-low latency TTS built specifically for conversational AI agents.",
			Website:     "https://cartesia.ai",
			PricingTiers: []PricingTier{
				{Name: "Usage", UnitPrice: 0.001, UnitSize: 1, UnitType: UnitSeconds, Description: "Approx $0.06/min"},
			},
			Benchmarks:    Benchmarks{Quality: 4.5, Speed: 5, PriceScore: 3, Features: 4},
			Features:      []string{"Sonic-1", "Low Latency", "Voice Cloning", "Emotion Control"},
			LanguageCount: 15,
			BestFor:       []string{"voice-agent", "real-time"},
		},
		{
			ID:          "azure",
			Name:        "Azure AI Speech",
			Modality:    ModalityBoth,
			Description: "Comprehensive enterprise-grade speech services with massive language support.",
			Website:     "https://azure.microsoft.com/en-us/products/ai-services/ai-speech",
			PricingTiers: []PricingTier{
				{Name: "Neural TTS", UnitPrice: 16, UnitSize: 1000000, UnitType: UnitCharacters, Description: "$16/1M chars"},
				{Name: "STT", UnitPrice: 1, UnitSize: 60, UnitType: UnitMinutes, Description: "$1/hour approx"},
			},
			Benchmarks:    Benchmarks{Quality: 4.0, Speed: 4, PriceScore: 4, Features: 5},
			Features:      []string{"140+ Languages", "Custom Neural Voice", "Speech Translation", "SOC2/HIPAA"},
			LanguageCount: 140,
			BestFor:       []string{"enterprise", "accessibility", "global"},
		},
		{
			ID:          "google",
			Name:        "Google Cloud Speech",
			Modality:    ModalityBoth,
			Description: "Robust speech models integrated with the Gemini ecosystem.",
			Website:     "https://cloud.google.com/text-to-speech",
			PricingTiers: []PricingTier{
				{Name: "Neural2", UnitPrice: 16, UnitSize: 1000000, UnitType: UnitCharacters, Description: "$16/1M chars"},
				{Name: "Chirp", UnitPrice: 0.016, UnitSize: 1, UnitType: UnitMinutes, Description: "$0.016/min (STT)"},
			},
			Benchmarks:    Benchmarks{Quality: 4.0, Speed: 3, PriceScore: 3, Features: 4},
			Features:      []string{"Gemini Integration", "Studio Voices", "Chirp Model"},
			LanguageCount: 80,
			BestFor:       []string{"enterprise", "analytics"},
		},
		{
			ID:          "assemblyai",
			Name:        "AssemblyAI",
			Modality:    ModalitySTT,
			Description: "Speech AI models for understanding, not just transcription.",
			Website:     "https://www.assemblyai.com",
			PricingTiers: []PricingTier{
				{Name: "Universal-1", UnitPrice: 0.0025, UnitSize: 1, UnitType: UnitMinutes, Description: "$0.15/hour (Base)"},
			},
			Benchmarks:    Benchmarks{Quality: 4.2, Speed: 3, PriceScore: 4, Features: 5},
			Features:      []string{"Listen & Understand", "LLM Integration", "Sentiment Analysis", "PII Redaction"},
			LanguageCount: 99,
			BestFor:       []string{"analytics", "transcription", "understanding"},
		},
		{
			ID:          "kokoro",
			Name:        "Kokoro (Open Source)",
			Modality:    ModalityTTS,
			Description: "High-quality open-source TTS model, extremely efficient and lightweight.",
			Website:     "https://huggingface.co/hexgrad/Kokoro-82M",
			PricingTiers: []PricingTier{
				{Name: "Self-hosted", UnitPrice: 0, UnitSize: 1, UnitType: UnitMinutes, Description: "Free (Compute only)"},
			},
			Benchmarks:    Benchmarks{Quality: 4.0, Speed: 4, PriceScore: 5, Features: 2},
			Features:      []string{"Offline Capable", "Lightweight", "82M Params"},
			LanguageCount: 10,
			BestFor:       []string{"budget", "accessibility", "offline"},
		},
		{
			ID:          "playht",
			Name:        "PlayHT",
			Modality:    ModalityTTS,
			Description: "Generative voice AI with a massive library of voices.",
			Website:     "https://play.ht",
			PricingTiers: []PricingTier{
				{Name: "Creator", UnitPrice: 39, UnitSize: 1, UnitType: UnitMinutes, Description: "$39/mo (Subscription)"},
			},
			Benchmarks:    Benchmarks{Quality: 4.0, Speed: 3, PriceScore: 2, Features: 4},
			Features:      []string{"Voice Cloning", "Voice Generation", "API"},
			LanguageCount: 140,
			BestFor:       []string{"content-creation", "narration"},
		},
	}
}
