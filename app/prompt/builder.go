package prompt

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/lysyi3m/trend-scribe/app/profile"
	"github.com/lysyi3m/trend-scribe/app/source"
)

var rankedTemplate = template.Must(template.New("ranked").Parse(`
You are the editorial intelligence behind a serious technical publication called {{.Publication}}.

Here are the most trending global technology topics right now:

{{range .Candidates}}{{.Title}} (score: {{.Score}}, comments: {{.Comments}})
{{if .Context}}  Context: {{.Context}}
{{end}}{{end}}
Your task:

1. Analyze which topic is the most globally impactful and technically important.
2. Choose ONE topic.
3. Write a deeply analytical, highly engaging, production-level technical article about it.

Rules:
- Title must be compelling and specific.
- Explain why this topic matters globally.
- Break down architecture or technical reasoning.
- Include system-level insights.
- Include code examples if relevant.
- Avoid hype or fluff.
- {{.MinWords}}–{{.MaxWords}} words.
- End with a strong thought-provoking question.

Return format:

TITLE: <title here>

CONTENT:
<full article>
`))

var randomTemplate = template.Must(template.New("random").Parse(`
You are a senior technology writer for {{.Publication}}.

Write an insightful, well-structured blog post about the following trending topic:

"{{.Topic}}"

Guidelines:
- Open with why this topic is getting attention right now.
- Explain the underlying technology in clear, accurate terms.
- Discuss practical implications for engineers and the wider industry.
- Use markdown headings and short paragraphs.
- Keep a professional, engaging tone without hype.
- {{.MinWords}}–{{.MaxWords}} words.

Return only the article body in markdown. Do not repeat the title.
`))

type Builder struct {
	profile profile.Profile
}

func NewBuilder(p profile.Profile) *Builder {
	return &Builder{profile: p}
}

// Ranked asks the model to choose among candidates and reply in TITLE/CONTENT form.
func (b *Builder) Ranked(candidates []source.Story) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("no candidates to build prompt from")
	}

	return render(rankedTemplate, struct {
		Publication        string
		Candidates         []source.Story
		MinWords, MaxWords int
	}{
		Publication: b.profile.Publication,
		Candidates:  candidates,
		MinWords:    b.profile.MinWords,
		MaxWords:    b.profile.MaxWords,
	})
}

// Random asks for a post on a single topic; the reply is used verbatim as the body.
func (b *Builder) Random(topic string) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", fmt.Errorf("topic is empty")
	}

	return render(randomTemplate, struct {
		Publication        string
		Topic              string
		MinWords, MaxWords int
	}{
		Publication: b.profile.Publication,
		Topic:       topic,
		MinWords:    b.profile.MinWords,
		MaxWords:    b.profile.MaxWords,
	})
}

func render(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}
