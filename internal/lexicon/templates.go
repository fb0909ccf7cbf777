package lexicon

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"immo-assistant/internal/model"
)

//go:embed responses.yaml
var defaultResponses []byte

// TemplateData is what reply templates can interpolate
type TemplateData struct {
	Name         string
	Budget       string
	Location     string
	PropertyType string
	Greeting     string // "Karim, " when the name is known
	DayGreeting  string
}

var sampleData = TemplateData{
	Name:         "Karim",
	Budget:       "300k",
	Location:     "nice",
	PropertyType: "appartement",
	Greeting:     "Karim, ",
	DayGreeting:  "Bon après-midi",
}

var funcs = template.FuncMap{
	"title": Title,
}

type topicSpec struct {
	Variants   []variantSpec         `yaml:"variants"`
	Attachment *model.PropertyTeaser `yaml:"attachment"`
}

type variantSpec struct {
	Text            string   `yaml:"text"`
	Suggestions     []string `yaml:"suggestions"`
	PageSuggestions bool     `yaml:"page_suggestions"`
}

// TemplateSet is the compiled, validated set of reply templates
type TemplateSet struct {
	topics map[model.Topic]*TopicTemplates
}

// TopicTemplates holds the candidate replies for one topic
type TopicTemplates struct {
	Variants   []Variant
	Attachment *model.PropertyTeaser
}

// Variant is one candidate reply
type Variant struct {
	text        *template.Template
	suggestions []*template.Template
	// PageSuggestions lets the page's own suggestions replace this variant's chips
	PageSuggestions bool
}

// Render executes the text and suggestion templates.
// Suggestions that render blank are dropped.
func (v Variant) Render(data TemplateData) (string, []string, error) {
	text, err := execute(v.text, data)
	if err != nil {
		return "", nil, err
	}
	suggestions := make([]string, 0, len(v.suggestions))
	for _, tmpl := range v.suggestions {
		s, err := execute(tmpl, data)
		if err != nil {
			return "", nil, err
		}
		if s != "" {
			suggestions = append(suggestions, s)
		}
	}
	return text, suggestions, nil
}

func execute(tmpl *template.Template, data TemplateData) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(b.String()), nil
}

// DefaultTemplates loads the embedded reply templates
func DefaultTemplates() (*TemplateSet, error) {
	return LoadTemplates(defaultResponses)
}

// LoadTemplatesFile loads reply templates from a YAML file
func LoadTemplatesFile(path string) (*TemplateSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates %s: %w", path, err)
	}
	return LoadTemplates(data)
}

// LoadTemplates parses and validates reply templates. Every template is
// compiled and trial-rendered so malformed data fails here, not mid-conversation.
func LoadTemplates(data []byte) (*TemplateSet, error) {
	var raw map[string]topicSpec
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("parse templates: no topics defined")
	}

	set := &TemplateSet{topics: make(map[model.Topic]*TopicTemplates, len(raw))}
	for name, spec := range raw {
		topic := model.Topic(name)
		if len(spec.Variants) == 0 {
			return nil, fmt.Errorf("topic %q: no candidate texts", name)
		}
		compiled := &TopicTemplates{Attachment: spec.Attachment}
		for i, vs := range spec.Variants {
			v, err := compileVariant(fmt.Sprintf("%s[%d]", name, i), vs)
			if err != nil {
				return nil, fmt.Errorf("topic %q: %w", name, err)
			}
			compiled.Variants = append(compiled.Variants, v)
		}
		set.topics[topic] = compiled
	}
	return set, nil
}

func compileVariant(name string, spec variantSpec) (Variant, error) {
	if strings.TrimSpace(spec.Text) == "" {
		return Variant{}, fmt.Errorf("variant %s: empty text", name)
	}
	text, err := template.New(name).Funcs(funcs).Parse(spec.Text)
	if err != nil {
		return Variant{}, fmt.Errorf("variant %s: %w", name, err)
	}
	v := Variant{text: text, PageSuggestions: spec.PageSuggestions}
	for j, s := range spec.Suggestions {
		tmpl, err := template.New(fmt.Sprintf("%s.suggestions[%d]", name, j)).Funcs(funcs).Parse(s)
		if err != nil {
			return Variant{}, fmt.Errorf("variant %s: %w", name, err)
		}
		v.suggestions = append(v.suggestions, tmpl)
	}

	for _, data := range []TemplateData{{}, sampleData} {
		out, _, err := v.Render(data)
		if err != nil {
			return Variant{}, fmt.Errorf("variant %s: %w", name, err)
		}
		if out == "" {
			return Variant{}, fmt.Errorf("variant %s: renders empty", name)
		}
	}
	return v, nil
}

// Topic returns the templates for a topic
func (s *TemplateSet) Topic(topic model.Topic) (*TopicTemplates, bool) {
	t, ok := s.topics[topic]
	return t, ok
}

// Missing returns the topics from required that have no templates, sorted
func (s *TemplateSet) Missing(required []model.Topic) []model.Topic {
	var missing []model.Topic
	for _, topic := range required {
		if _, ok := s.topics[topic]; !ok {
			missing = append(missing, topic)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}
