// Package taxonomy holds the fixed assessment taxonomy: five categories
// containing twenty-one rated parameters. It is pure data consulted by every
// computation in the engine; category membership is never re-listed inline
// anywhere else.
//
// The schema is closed and versioned. Historical assessments are keyed to
// parameter ids, so changing this table requires a migration of stored
// records, not just a code edit.
package taxonomy

// ParameterCount is the total number of rated parameters across all categories.
const ParameterCount = 21

// Parameter is a single rated assessment dimension.
type Parameter struct {
	ID    string
	Label string
}

// Category groups an ordered set of parameters under a display name.
type Category struct {
	ID         string
	Name       string
	Icon       string
	Parameters []Parameter
}

// categories is the single declarative source of truth for the taxonomy.
var categories = []Category{
	{
		ID:   "readiness",
		Name: "Trainer Initial Readiness",
		Icon: "⏰",
		Parameters: []Parameter{
			{ID: "logs_in_early", Label: "Logs in early"},
			{ID: "video_always_on", Label: "Video always on"},
			{ID: "minimal_disturbance", Label: "Minimal background disturbance"},
			{ID: "presentable_prompt", Label: "Presentable and prompt"},
			{ID: "ready_with_tools", Label: "Ready with tools"},
		},
	},
	{
		ID:   "expertise",
		Name: "Trainer Expertise & Delivery",
		Icon: "🎓",
		Parameters: []Parameter{
			{ID: "adequate_knowledge", Label: "Adequate subject knowledge"},
			{ID: "simplifies_topics", Label: "Simplifies complex topics"},
			{ID: "encourages_participation", Label: "Encourages participation"},
			{ID: "handles_questions", Label: "Handles questions well"},
			{ID: "provides_context", Label: "Provides real-world context"},
		},
	},
	{
		ID:   "engagement",
		Name: "Participant Engagement & Interaction",
		Icon: "🙋",
		Parameters: []Parameter{
			{ID: "maintains_attention", Label: "Maintains participant attention"},
			{ID: "uses_interactive_tools", Label: "Uses interactive tools"},
			{ID: "assesses_learning", Label: "Assesses learning during session"},
			{ID: "clear_speech", Label: "Clear and audible speech"},
		},
	},
	{
		ID:   "communication",
		Name: "Communication Skills",
		Icon: "💬",
		Parameters: []Parameter{
			{ID: "minimal_grammar_errors", Label: "Minimal grammar errors"},
			{ID: "professional_tone", Label: "Professional tone"},
			{ID: "manages_teams_well", Label: "Manages Teams sessions well"},
		},
	},
	{
		ID:   "technical",
		Name: "Technical Acumen",
		Icon: "🖥️",
		Parameters: []Parameter{
			{ID: "efficient_tool_switching", Label: "Efficient tool switching"},
			{ID: "audio_video_clarity", Label: "Audio and video clarity"},
			{ID: "session_recording", Label: "Session recording discipline"},
			{ID: "survey_assignment", Label: "Survey and assignment handling"},
		},
	},
}

// index maps parameter id -> owning category, built once at init.
var index = func() map[string]*Category {
	m := make(map[string]*Category, ParameterCount)
	for i := range categories {
		for _, p := range categories[i].Parameters {
			m[p.ID] = &categories[i]
		}
	}
	return m
}()

// Categories returns the ordered category table. Callers must treat the
// returned slice as read-only.
func Categories() []Category {
	return categories
}

// ParameterIDs returns every parameter id in taxonomy order.
func ParameterIDs() []string {
	ids := make([]string, 0, ParameterCount)
	for _, c := range categories {
		for _, p := range c.Parameters {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// CategoryOf returns the category owning the given parameter id.
func CategoryOf(paramID string) (Category, bool) {
	c, ok := index[paramID]
	if !ok {
		return Category{}, false
	}
	return *c, true
}

// Known reports whether paramID is part of the taxonomy.
func Known(paramID string) bool {
	_, ok := index[paramID]
	return ok
}

// CommentField returns the comment field key paired with a parameter id.
func CommentField(paramID string) string {
	return paramID + "_comments"
}
