package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Course", "Grade"},
		Rows: []map[string]string{
			{"Course": "CST1234", "Grade": "A"},
			{"Course": "CST4321, Java", "Grade": "B+"},
			{"Course": "CST9999"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Course,Grade", lines[0])
	assert.Equal(t, `"CST4321, Java",B+`, lines[2])
	assert.Equal(t, "CST9999,", lines[3])
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	doc := Document{
		Title:   "Report Card",
		Summary: []string{"Name: Zoë", "Terms: 1"},
		Sections: []Section{
			{Heading: "Fall 2022", Data: sampleDataset()},
		},
	}
	out, err := NewPDFExporter().Render(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))

	_, err = NewPDFExporter().Render(Document{Sections: []Section{{Heading: "empty"}}})
	assert.Error(t, err)
}

func TestYAMLExporterRender(t *testing.T) {
	type course struct {
		Code  string `yaml:"code"`
		Grade string `yaml:"grade"`
	}
	out, err := NewYAMLExporter().Render(map[string][]course{"courses": {{"CST1234", "A-"}}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "courses:\n"))
	assert.Contains(t, string(out), "- code: CST1234")

	var back map[string][]course
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, "A-", back["courses"][0].Grade)
}
