// Package config holds the Unimarkup configuration tree: CLI/file-provided
// output, i18n, metadata, render, and citation settings, plus the "+++"
// preamble parser that overlays per-document YAML onto it (spec.md §6,
// "Configuration file").
package config

// Config is the full configuration for a parse/render run, grounded on
// original_source/commons/src/config/preamble.rs's Preamble struct.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	I18n     I18nConfig     `yaml:"i18n"`
	Metadata MetadataConfig `yaml:"metadata"`
	Render   RenderConfig   `yaml:"render"`
	Cite     CiteConfig     `yaml:"cite"`
}

// OutputConfig controls where and in which formats a document is rendered.
type OutputConfig struct {
	File      string   `yaml:"file"`
	Formats   []string `yaml:"formats"`
	Overwrite bool     `yaml:"overwrite"`
}

// I18nConfig controls the document's declared locale(s).
type I18nConfig struct {
	Lang  string   `yaml:"lang"`
	Langs []string `yaml:"langs"`
}

// MetadataConfig carries document-level metadata surfaced by renderers.
type MetadataConfig struct {
	Title       string   `yaml:"title"`
	Authors     []string `yaml:"authors"`
	Description string   `yaml:"description"`
	Base        string   `yaml:"base"`
}

// RenderConfig controls renderer behavior.
type RenderConfig struct {
	Ignore       []string          `yaml:"ignore"`
	Parameter    map[string]string `yaml:"parameter"`
	KeepComments bool              `yaml:"keep_comments"`
	NonStrict    bool              `yaml:"non_strict"`
}

// CiteConfig controls the citation subsystem.
type CiteConfig struct {
	Style      string   `yaml:"style"`
	References []string `yaml:"references"`
}

// DefaultLang is used when neither the CLI nor a preamble sets i18n.lang.
const DefaultLang = "en-US"

// Default constructs a configuration with baseline values (spec.md §6).
func Default() Config {
	return Config{
		I18n:   I18nConfig{Lang: DefaultLang},
		Output: OutputConfig{Formats: []string{"html"}},
	}
}

// Apply overlays non-zero fields of overlay onto c, following the same
// "later value wins, missing value keeps the base" rule as the editor
// config this is adapted from (config/config.go's Apply), generalized
// recursively via MergeRecursive for the slice/map-valued fields. A
// non-empty output.formats list replaces the base list rather than
// extending it.
func (c *Config) Apply(overlay Config) {
	if overlay.Output.File != "" {
		c.Output.File = overlay.Output.File
	}
	if len(overlay.Output.Formats) > 0 {
		c.Output.Formats = overlay.Output.Formats
	}
	if overlay.Output.Overwrite {
		c.Output.Overwrite = true
	}

	if overlay.I18n.Lang != "" {
		c.I18n.Lang = overlay.I18n.Lang
	}
	c.I18n.Langs = mergeStringSlice(c.I18n.Langs, overlay.I18n.Langs)

	if overlay.Metadata.Title != "" {
		c.Metadata.Title = overlay.Metadata.Title
	}
	if overlay.Metadata.Description != "" {
		c.Metadata.Description = overlay.Metadata.Description
	}
	if overlay.Metadata.Base != "" {
		c.Metadata.Base = overlay.Metadata.Base
	}
	c.Metadata.Authors = mergeStringSlice(c.Metadata.Authors, overlay.Metadata.Authors)

	c.Render.Ignore = mergeStringSlice(c.Render.Ignore, overlay.Render.Ignore)
	if len(overlay.Render.Parameter) > 0 {
		merged, _ := MergeRecursive(c.Render.Parameter, overlay.Render.Parameter).(map[string]string)
		c.Render.Parameter = merged
	}
	if overlay.Render.KeepComments {
		c.Render.KeepComments = true
	}
	if overlay.Render.NonStrict {
		c.Render.NonStrict = true
	}

	if overlay.Cite.Style != "" {
		c.Cite.Style = overlay.Cite.Style
	}
	c.Cite.References = mergeStringSlice(c.Cite.References, overlay.Cite.References)
}

func mergeStringSlice(base, overlay []string) []string {
	if len(overlay) == 0 {
		return base
	}
	if len(base) == 0 {
		return overlay
	}
	merged, _ := MergeRecursive(base, overlay).([]string)
	return merged
}
