package llm

import (
	"fmt"

	"github.com/brandloom/brandloom/internal/domain"
)

// Per-tool instructions. Each exchange sends the instruction followed by the
// structured input as JSON and requests an application/json response, so
// every prompt spells out the exact output shape.

var prompts = map[domain.Tool]string{
	domain.ToolAudienceInsights: `You are an expert marketing analyst specializing in understanding social media audiences.

Based on the provided brand details and target demographic, generate a detailed audience analysis report.
The report should cover the audience's:
- Key pain points
- Desires and aspirations
- Online behaviors and platform preferences
- Demographic characteristics

Respond with a JSON object: {"audienceAnalysisReport": "<the full report>"}`,

	domain.ToolStrategy: `You are an expert social media strategist. Develop a comprehensive social media strategy and specific tactics for Instagram, TikTok, LinkedIn, and X (formerly Twitter) based on the brand specifics provided.

For each platform, provide:
1. Strategy: a high-level plan outlining the approach to content, tone, and audience engagement.
2. Tactics:
   - Optimal posting times: the best days and times to post to maximize reach.
   - Hashtag strategy: a mix of relevant niche, broad, and community-specific hashtags.
   - Growth hacks: actionable, platform-specific tips to accelerate audience growth.

Respond with a JSON object keyed "instagram", "tiktok", "linkedin", "x"; each value is
{"strategy": "...", "tactics": {"postingTimes": "...", "hashtagStrategy": "...", "growthHacks": "..."}}.
Generate a complete response for all four platforms.`,

	domain.ToolTrends: `You are a social media trend analyst. Based on the provided industry and keywords, generate the top 3-5 trending topics for each major social media platform: X (formerly Twitter), Facebook, Instagram, LinkedIn, and TikTok.

For each topic include a short catchy title, a brief description of the trend and why it's popular, and a specific content idea a brand in this industry could use.

Respond with a JSON object keyed "x", "facebook", "instagram", "linkedin", "tiktok"; each value is an array of
{"topic": "...", "description": "...", "contentIdea": "..."}.`,

	domain.ToolHooks: `You are a viral marketing expert. Generate several viral hook ideas based on the provided niche and audience psychology.

Provide at least 5 viral hook ideas that are likely to capture attention and drive engagement in the specified niche, considering the audience's psychological traits. Each idea should be concise and actionable.

Respond with a JSON object: {"viralHooks": ["...", "..."]}`,

	domain.ToolCaptions: `You are a social media expert specializing in creating engaging content.

Based on the brand description, platform, content format, topic and keywords provided, generate multiple high-performing post captions or scripts. If a strategy is included in the input, the content MUST align with it.

Generate the requested number of captions/scripts tailored to the brand and optimized for the specified platform and content format.

Respond with a JSON object: {"captions": ["...", "..."]}`,

	domain.ToolCalendar: `You are an expert social media manager. Based on the provided brand information, create a detailed 30-day content calendar.

The calendar should include a mix of posts designed to provide value, establish authority, drive engagement, and include clear calls to action.

Respond with a JSON object: {"calendar": [{"day": 1, "postType": "Value"|"Authority"|"Engagement"|"Call to Action", "topic": "...", "caption": "..."}, ...]} covering days 1 through 30.`,

	domain.ToolTranslate: `Translate the provided text into the target language. Ensure the translation is natural and culturally appropriate for the specified audience.

Respond with a JSON object: {"translatedText": "..."}`,

	domain.ToolAutofill: `You are an expert marketing analyst. Analyze the provided content and extract the brand details and target audience information.

Based on the content, provide a concise summary for:
1. Brand Details: what the brand is, its values, and its mission.
2. Target Demographic: the ideal customer, including their age, location, interests, and pain points.

Respond with a JSON object: {"brandDetails": "...", "targetDemographic": "..."}`,
}

// promptFor returns the instruction text for a tool.
func promptFor(tool domain.Tool) (string, error) {
	p, ok := prompts[tool]
	if !ok {
		return "", fmt.Errorf("no prompt registered for tool %q", tool)
	}
	return p, nil
}
