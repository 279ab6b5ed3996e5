package reporting

import (
	"testing"

	apperrors "myjobs/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry()
	require.NoError(t, err)

	rt, err := reg.ReportType("prm")
	require.NoError(t, err)
	assert.Equal(t, []string{"partners", "contacts", "communication_records"}, rt.DataTypes)

	dts, err := reg.DataTypesFor("prm")
	require.NoError(t, err)
	assert.Len(t, dts, 3)

	_, err = reg.DataType("invoices")
	assert.ErrorIs(t, err, apperrors.ErrDataTypeNotFound)
	_, err = reg.ReportType("sales")
	assert.ErrorIs(t, err, apperrors.ErrReportTypeNotFound)
}

func TestParseRegistryRejectsDanglingDataType(t *testing.T) {
	_, err := ParseRegistry([]byte(`
report_types:
  - name: prm
    data_types: [ghosts]
`))
	assert.Error(t, err)
}

func TestResolveColumns(t *testing.T) {
	reg, err := LoadRegistry()
	require.NoError(t, err)
	dt, err := reg.DataType("contacts")
	require.NoError(t, err)

	cols, err := dt.ResolveColumns(nil)
	require.NoError(t, err)
	assert.Equal(t, "name", cols[0].Field)

	cols, err = dt.ResolveColumns([]string{"partner", "email"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Partner", "Email"}, headers(cols))

	_, err = dt.ResolveColumns([]string{"salary"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidColumn)
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Job Applications", Humanize("job_applications"))
	assert.Equal(t, "Name", Humanize("name"))
}
