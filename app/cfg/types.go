package cfg

const (
	ModeRanked = "ranked"
	ModeRandom = "random"
)

type Cfg struct {
	// Generative API
	GeminiAPIKey    string
	GeminiModel     string
	GeminiBaseURL   string
	GenerateTimeout int

	// Topic sources
	HNBaseURL    string
	HNLimit      int
	ArxivURL     string
	SkipArxiv    bool
	FetchTimeout int
	WithContext  bool
	Candidates   int // 0 keeps the profile value
	ContextChars int

	// Output
	Mode        string
	PostsDir    string
	ProfilePath string
	DryRun      bool

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	LogFormat string
	Version   string
}
