package recommend

// UseCase is what the visitor is building
type UseCase string

const (
	UseCaseVoiceAgent      UseCase = "voice-agent"
	UseCaseContentCreation UseCase = "content-creation"
	UseCaseTranscription   UseCase = "transcription"
	UseCaseAccessibility   UseCase = "accessibility"
	UseCaseBudget          UseCase = "budget"
)

// Priority is the benchmark dimension the visitor cares most about
type Priority string

const (
	PriorityQuality Priority = "quality"
	PrioritySpeed   Priority = "speed"
	PriorityPrice   Priority = "price"
)

// Volume is the expected monthly usage bucket
type Volume string

const (
	VolumeLow    Volume = "low"
	VolumeMedium Volume = "medium"
	VolumeHigh   Volume = "high"
)

// Option is one selectable answer of a quiz step
type Option struct {
	Tag         string `json:"tag"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Question is one step of the quiz
type Question struct {
	Step     int      `json:"step"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// HasOption reports whether tag is a valid answer to q
func (q Question) HasOption(tag string) bool {
	for _, o := range q.Options {
		if o.Tag == tag {
			return true
		}
	}
	return false
}

var questions = []Question{
	{
		Step:     1,
		Question: "What are you building?",
		Options: []Option{
			{Tag: string(UseCaseVoiceAgent), Label: "Voice Agent / Assistant", Description: "Real-time, conversational, low latency"},
			{Tag: string(UseCaseContentCreation), Label: "Content Creation", Description: "Podcasts, Audiobooks, Videos"},
			{Tag: string(UseCaseTranscription), Label: "Transcription & Analytics", Description: "Meeting notes, call recording analysis"},
			{Tag: string(UseCaseAccessibility), Label: "Accessibility Tool", Description: "Screen readers, reading assistants"},
			{Tag: string(UseCaseBudget), Label: "Hobby / Budget Project", Description: "Free or very low cost highly prioritized"},
		},
	},
	{
		Step:     2,
		Question: "What is your top priority?",
		Options: []Option{
			{Tag: string(PriorityQuality), Label: "Max Quality", Description: "Only the best sounding/most accurate matters"},
			{Tag: string(PrioritySpeed), Label: "Max Speed", Description: "Lowest possible latency is critical"},
			{Tag: string(PriorityPrice), Label: "Lowest Price", Description: "Budget is the main constraint"},
		},
	},
	{
		Step:     3,
		Question: "Expected Monthly Volume?",
		Options: []Option{
			{Tag: string(VolumeLow), Label: "Low (< 10 hours)", Description: "Just starting out or prototyping"},
			{Tag: string(VolumeMedium), Label: "Medium (10 - 100 hours)", Description: "Growing production app"},
			{Tag: string(VolumeHigh), Label: "High (100+ hours)", Description: "Enterprise scale"},
		},
	},
}

// Questions returns the quiz configuration table
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = q
		out[i].Options = append([]Option(nil), q.Options...)
	}
	return out
}
