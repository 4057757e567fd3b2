package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultLang, cfg.I18n.Lang)
	assert.Equal(t, []string{"html"}, cfg.Output.Formats)
}

func TestApplyOverridesScalarFields(t *testing.T) {
	base := Default()
	overlay := Config{
		Output:   OutputConfig{File: "out.html", Overwrite: true},
		I18n:     I18nConfig{Lang: "de-AT"},
		Metadata: MetadataConfig{Title: "My Document"},
		Cite:     CiteConfig{Style: "apa"},
	}

	base.Apply(overlay)

	assert.Equal(t, "out.html", base.Output.File)
	assert.True(t, base.Output.Overwrite)
	assert.Equal(t, "de-AT", base.I18n.Lang)
	assert.Equal(t, "My Document", base.Metadata.Title)
	assert.Equal(t, "apa", base.Cite.Style)
}

func TestApplyMergesSlicesAndMaps(t *testing.T) {
	base := Default()
	base.Render.Parameter = map[string]string{"theme": "light"}
	base.Metadata.Authors = []string{"Ada"}

	overlay := Config{
		Render:   RenderConfig{Parameter: map[string]string{"width": "80"}},
		Metadata: MetadataConfig{Authors: []string{"Grace"}},
	}
	base.Apply(overlay)

	assert.Equal(t, "light", base.Render.Parameter["theme"])
	assert.Equal(t, "80", base.Render.Parameter["width"])
	assert.ElementsMatch(t, []string{"Ada", "Grace"}, base.Metadata.Authors)
}

func TestApplyLeavesBaseUntouchedWhenOverlayEmpty(t *testing.T) {
	base := Default()
	base.Apply(Config{})
	assert.Equal(t, Default(), base)
}
