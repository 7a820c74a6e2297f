package post

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lysyi3m/trend-scribe/app/profile"
)

const dateLayout = "2006-01-02 15:04:05 -0700"

// Render builds the markdown document: a front matter block, a blank line, then the content.
func Render(p GeneratedPost, prof profile.Profile) ([]byte, error) {
	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			keyNode("title"), {Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Title, Style: yaml.DoubleQuotedStyle},
			keyNode("date"), {Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Date.Format(dateLayout)},
			keyNode("categories"), flowSequence(prof.Categories),
			keyNode("tags"), flowSequence(prof.Tags),
		},
	}

	frontMatter, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(frontMatter)
	buf.WriteString("---\n\n")
	buf.WriteString(p.Content)
	buf.WriteString("\n")

	return buf.Bytes(), nil
}

func keyNode(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
}

func flowSequence(values []string) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, v := range values {
		seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v})
	}
	return seq
}
