package domain

// Input and output shapes for each generator tool. Field names follow the
// wire format used by the generation backend prompts, so the structs
// round-trip through the persisted journey payload unchanged.

// AudienceInsightsInput feeds the audience analysis generator.
type AudienceInsightsInput struct {
	BrandDetails      string `json:"brandDetails"`
	TargetDemographic string `json:"targetDemographic"`
}

// AudienceInsightsOutput is the generated audience analysis report.
type AudienceInsightsOutput struct {
	AudienceAnalysisReport string `json:"audienceAnalysisReport"`
}

// StrategyInput feeds the platform strategy generator.
type StrategyInput struct {
	BrandName        string `json:"brandName"`
	BrandDescription string `json:"brandDescription"`
	TargetAudience   string `json:"targetAudience"`
	Goals            string `json:"goals"`
}

// PlatformTactics holds the concrete tactics for one platform.
type PlatformTactics struct {
	PostingTimes    string `json:"postingTimes"`
	HashtagStrategy string `json:"hashtagStrategy"`
	GrowthHacks     string `json:"growthHacks"`
}

// PlatformStrategy is the strategy plus tactics for one platform.
type PlatformStrategy struct {
	Strategy string          `json:"strategy"`
	Tactics  PlatformTactics `json:"tactics"`
}

// StrategyOutput covers the four strategy platforms.
type StrategyOutput struct {
	Instagram PlatformStrategy `json:"instagram"`
	TikTok    PlatformStrategy `json:"tiktok"`
	LinkedIn  PlatformStrategy `json:"linkedin"`
	X         PlatformStrategy `json:"x"`
}

// TrendsInput feeds the trend tracker. Only Industry is required.
type TrendsInput struct {
	Industry      string `json:"industry"`
	Products      string `json:"products,omitempty"`
	Services      string `json:"services,omitempty"`
	BuyingHabits  string `json:"buyingHabits,omitempty"`
	Entertainment string `json:"entertainment,omitempty"`
}

// Trend is a single trending topic with a content idea.
type Trend struct {
	Topic       string `json:"topic"`
	Description string `json:"description"`
	ContentIdea string `json:"contentIdea"`
}

// TrendsOutput lists trends per platform.
type TrendsOutput struct {
	X         []Trend `json:"x"`
	Facebook  []Trend `json:"facebook"`
	Instagram []Trend `json:"instagram"`
	LinkedIn  []Trend `json:"linkedin"`
	TikTok    []Trend `json:"tiktok"`
}

// HooksInput feeds the viral hook generator.
type HooksInput struct {
	Niche              string `json:"niche"`
	AudiencePsychology string `json:"audiencePsychology"`
}

// HooksOutput is a list of hook ideas.
type HooksOutput struct {
	ViralHooks []string `json:"viralHooks"`
}

// CaptionsInput feeds the caption generator. Strategy, when present, is the
// platform strategy the captions must align with; it is referenced at
// generation time only and never kept in sync afterwards.
type CaptionsInput struct {
	BrandDescription string            `json:"brandDescription"`
	Platform         string            `json:"platform"`
	ContentFormat    string            `json:"contentFormat"`
	Topic            string            `json:"topic"`
	Keywords         string            `json:"keywords"`
	NumberOfCaptions int               `json:"numberOfCaptions"`
	Strategy         *PlatformStrategy `json:"strategy,omitempty"`
}

// CaptionsOutput is a list of generated captions or scripts.
type CaptionsOutput struct {
	Captions []string `json:"captions"`
}

// CalendarInput feeds the 30-day calendar generator.
type CalendarInput struct {
	BrandDescription string `json:"brandDescription"`
	TargetAudience   string `json:"targetAudience"`
	Goals            string `json:"goals"`
}

// CalendarEntry is one planned post. PostType is one of Value, Authority,
// Engagement or Call to Action.
type CalendarEntry struct {
	Day      int    `json:"day"`
	PostType string `json:"postType"`
	Topic    string `json:"topic"`
	Caption  string `json:"caption"`
}

// CalendarOutput is the full 30-day plan.
type CalendarOutput struct {
	Calendar []CalendarEntry `json:"calendar"`
}

// TranslateInput feeds the translation tool.
type TranslateInput struct {
	TextToTranslate string `json:"textToTranslate"`
	TargetLanguage  string `json:"targetLanguage"`
}

// TranslateOutput is the translated text.
type TranslateOutput struct {
	TranslatedText string `json:"translatedText"`
}

// SourceKind tags an autofill source.
type SourceKind string

const (
	SourcePDF SourceKind = "pdf"
	SourceURL SourceKind = "url"
	// SourceText is the post-extraction form handed to the generation
	// backend in place of a URL.
	SourceText SourceKind = "text"
)

// AutofillSource is the tagged source for the autofill operation: either a
// PDF payload as a base64 data URI, a website URL, or already-extracted text.
type AutofillSource struct {
	Kind SourceKind `json:"kind"`
	Data string     `json:"data"`
}

// AutofillInput is the generation request for autofill.
type AutofillInput struct {
	Source AutofillSource `json:"source"`
}

// AutofillOutput holds the brand facts derived from the analyzed content.
type AutofillOutput struct {
	BrandDetails      string `json:"brandDetails"`
	TargetDemographic string `json:"targetDemographic"`
}
