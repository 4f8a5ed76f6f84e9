package i18n

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed translations.yaml
var translationsYAML []byte

type table map[Language]map[string]map[string]string

type Translator struct {
	t table
}

func NewTranslator() (*Translator, error) {
	var t table
	if err := yaml.Unmarshal(translationsYAML, &t); err != nil {
		return nil, fmt.Errorf("decode translations: %w", err)
	}
	if _, ok := t[Default]; !ok {
		return nil, fmt.Errorf("translations miss default language %q", Default)
	}
	return &Translator{t: t}, nil
}

// T looks up section.key for lang, then for Default, then returns the key.
func (tr *Translator) T(lang Language, section, key string) string {
	if v, ok := tr.t[lang][section][key]; ok {
		return v
	}
	if v, ok := tr.t[Default][section][key]; ok {
		return v
	}
	return key
}

// Section returns a copy of one section with Default entries filling gaps.
func (tr *Translator) Section(lang Language, section string) map[string]string {
	out := make(map[string]string, len(tr.t[Default][section]))
	for k, v := range tr.t[Default][section] {
		out[k] = v
	}
	for k, v := range tr.t[lang][section] {
		out[k] = v
	}
	return out
}
