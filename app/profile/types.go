package profile

// Profile describes the publication a post is written for and how the model is sampled.
type Profile struct {
	Publication string   `yaml:"publication"`
	Categories  []string `yaml:"categories"`
	Tags        []string `yaml:"tags"`
	MinWords    int      `yaml:"min_words"`
	MaxWords    int      `yaml:"max_words"`
	Candidates  int      `yaml:"candidates"`  // ranked mode only
	FileSuffix  string   `yaml:"file_suffix"` // random mode only
	Sampling    Sampling `yaml:"sampling"`
}

type Sampling struct {
	Temperature float64 `yaml:"temperature"`
	TopP        float64 `yaml:"top_p"`
}

// Document is the on-disk layout: shared values plus per-mode overrides.
type Document struct {
	Profile `yaml:",inline"`
	Ranked  *Profile `yaml:"ranked"`
	Random  *Profile `yaml:"random"`
}
