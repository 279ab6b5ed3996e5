package reporting

import (
	"bytes"
	"encoding/json"
	"testing"

	apperrors "myjobs/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var testColumns = []Column{
	{Field: "name", Type: TypeString},
	{Field: "date_time", Type: TypeDate, Label: "Date"},
	{Field: "job_hires", Type: TypeInt},
}

var testRows = []Row{
	{"name": "Acme", "date_time": "2024-03-05T14:30:00Z", "job_hires": float64(3)},
	{"name": "Globex, Inc", "date_time": nil, "job_hires": float64(0)},
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, PresentationCSV, testColumns, testRows))
	assert.Equal(t, "Name,Date,Job Hires\nAcme,2024-03-05 14:30,3\n\"Globex, Inc\",,0\n", buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, PresentationJSON, testColumns, testRows))

	var out []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Acme", out[0]["Name"])
	assert.Equal(t, "3", out[0]["Job Hires"])
}

func TestRenderXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, PresentationXLSX, testColumns, testRows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Date", "Job Hires"}, rows[0])
	assert.Equal(t, "Acme", rows[1][0])
	assert.Equal(t, "3", rows[1][2])
}

func TestParsePresentation(t *testing.T) {
	p, err := ParsePresentation("")
	require.NoError(t, err)
	assert.Equal(t, PresentationCSV, p)

	_, err = ParsePresentation("pdf")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPresentation)
	assert.Equal(t, "application/json", PresentationJSON.ContentType())
}
