package export

import (
	"bytes"
	"testing"
	"time"

	"sigma/internal/cycle"
	"sigma/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() StatsReport {
	return StatsReport{
		Semester: cycle.First,
		Year:     2024,
		Stats: models.SemesterStats{
			models.InstallationMotors:   {Total: 4, Completed: 1},
			models.InstallationCircuits: {Total: 6, Completed: 2},
		},
		GeneratedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestBuildStatsXLSX(t *testing.T) {
	b, err := BuildStatsXLSX(sampleReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Semester 1 / 2024 compliance", title)

	rows, err := f.GetRows("types")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Installation", "Total", "Completed", "Compliance %"}, rows[0])
	assert.Equal(t, "CIRCUITOS", rows[1][0])
	assert.Equal(t, "6", rows[1][1])
	assert.Equal(t, "2", rows[1][2])
	assert.Equal(t, "MOTORES", rows[2][0])
}

func TestBuildStatsPDF(t *testing.T) {
	b, err := BuildStatsPDF(sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
}

func TestBuild(t *testing.T) {
	empty := StatsReport{Semester: cycle.Second, Year: 2023, Stats: models.SemesterStats{}}

	b, ct, err := Build("PDF", empty)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", ct)
	assert.NotEmpty(t, b)

	_, ct, err = Build("", empty)
	require.NoError(t, err)
	assert.Contains(t, ct, "spreadsheetml")

	_, _, err = Build("csv", empty)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRowPercent(t *testing.T) {
	assert.Equal(t, float64(0), row{}.percent())
	assert.InDelta(t, 33.33, row{total: 6, completed: 2}.percent(), 0.01)
}
