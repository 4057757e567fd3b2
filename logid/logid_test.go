package logid

import (
	"testing"

	"github.com/unimarkup/unimarkup-go/lexer"

	"github.com/stretchr/testify/assert"
)

func TestSinkEmitAndHasErrors(t *testing.T) {
	sink := NewSink()
	sink.Emit(Diagnostic{Id: IdUnmatchedDelimiter, Message: "dangling '**'"})
	assert.False(t, sink.HasErrors())

	sink.Emit(Diagnostic{Id: IdInvalidPreambleYaml, Message: "bad yaml"})
	assert.True(t, sink.HasErrors())
	assert.Len(t, sink.Diagnostics(), 2)
}

func TestDiagnosticRenderPointsAtColumn(t *testing.T) {
	span := lexer.Span{Start: lexer.Position{Line: 1, ColGrapheme: 3}}
	d := Diagnostic{Id: IdInvalidBlockStart, Message: "unexpected token", Span: &span}

	out := d.Render("ab*cd")
	assert.Contains(t, out, "ab*cd")
	assert.Contains(t, out, "unexpected token")
}

func TestDiagnosticStringWithoutSpan(t *testing.T) {
	d := Diagnostic{Id: IdUnknownSubstitution, Message: "no such name"}
	assert.Equal(t, "[inline:unknown-substitution] info: no such name", d.String())
}
