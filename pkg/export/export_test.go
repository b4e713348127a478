package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func commentDataset() Dataset {
	return Dataset{
		Title:   "Grades",
		Headers: []string{"assignmentName", "comments"},
		Rows: []map[string]string{
			{"assignmentName": "Quiz 1", "comments": `He said, "great job"`},
			{"assignmentName": "Essay", "comments": "line one\nline two"},
			{"assignmentName": "Lab"},
		},
	}
}

func TestCSVExporterQuotesSpecialFields(t *testing.T) {
	out, err := NewCSVExporter().Render(commentDataset())
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(text, "assignmentName,comments\n"))
	assert.Contains(t, text, `Quiz 1,"He said, ""great job"""`+"\n")
	assert.Contains(t, text, "Essay,\"line one\nline two\"\n")
	assert.Contains(t, text, "Lab,\n")
}

func TestCSVExporterLeavesOtherFieldsUnquoted(t *testing.T) {
	out, err := NewCSVExporter().Render(Dataset{
		Headers: []string{"name", "notes"},
		Rows: []map[string]string{
			{"name": " Jane", "notes": "\tindented"},
			{"name": `\.`, "notes": "it's fine"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "name,notes\n Jane,\tindented\n\\.,it's fine\n", string(out))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRendersDocument(t *testing.T) {
	out, err := NewPDFExporter().Render(commentDataset())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestXLSXExporterRoundTrip(t *testing.T) {
	out, err := NewXLSXExporter().Render(commentDataset())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Grades")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"assignmentName", "comments"}, rows[0])
	assert.Equal(t, `He said, "great job"`, rows[1][1])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 40))
	assert.Equal(t, "abcdefghi...", truncate(strings.Repeat("abcdefghijkl", 3), 19.2))
}
