package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocog/internal/body"
	"github.com/alexiusacademia/gocog/internal/cavity"
)

func sampleData(t *testing.T) ProfileDiagramData {
	t.Helper()
	b := body.Default()
	cavs := []cavity.Cavity{
		cavity.Analyze(&b, cavity.NewThrough(2.0, 5.75, b.Width)),
		cavity.Analyze(&b, cavity.NewPocket(6.25, 6.9, b.Width, 0.3)),
	}
	return NewProfileData(&b, cavs, []float64{0.5, 1}, 4.9)
}

func TestNewProfileData(t *testing.T) {
	data := sampleData(t)

	assert.Equal(t, 7.0, data.Length)
	assert.Len(t, data.Profile, profileSamples+1)
	assert.Equal(t, []float64{1.75, 6.0}, data.Axles)
	require.Len(t, data.Cavities, 2)

	through := data.Cavities[0]
	assert.Equal(t, "C1", through.Label)
	assert.Equal(t, 0.5, through.Fraction)
	assert.InDelta(t, 2.0, through.Top[0].X, 1e-12)
	assert.InDelta(t, 5.75, through.Top[len(through.Top)-1].X, 1e-12)

	for _, p := range data.Cavities[1].Top {
		assert.LessOrEqual(t, p.Y, 0.3)
	}
}

func TestHeightAt(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}, {2, 1}}
	assert.InDelta(t, 0.5, heightAt(pts, 0.5), 1e-12)
	assert.InDelta(t, 1.0, heightAt(pts, 1.5), 1e-12)
	assert.Zero(t, heightAt(pts, -1))
	assert.Zero(t, heightAt(pts, 3))
	assert.Zero(t, heightAt(nil, 1))
}

func TestDrawASCIIProfile(t *testing.T) {
	out := DrawASCIIProfile(sampleData(t))

	assert.Contains(t, out, "SIDE PROFILE")
	assert.Contains(t, out, "▒")
	assert.Contains(t, out, "░")
	assert.Contains(t, out, "█")
	// two axles plus the legend entry
	assert.Equal(t, 3, strings.Count(out, "▲"))
	assert.Contains(t, out, "G")
	assert.Contains(t, out, "C1 filled to 50.0%")
	assert.Contains(t, out, "C2 filled to 100.0%")
}

func TestDrawASCIIProfileEmpty(t *testing.T) {
	assert.Contains(t, DrawASCIIProfile(ProfileDiagramData{}), "empty profile")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RESULT", []string{"fill = 42.0%", "CoG = 5.000"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
}

func TestExportProfile(t *testing.T) {
	dir := t.TempDir()
	data := sampleData(t)

	for _, name := range []string{"car.svg", "nested/car.png"} {
		path := filepath.Join(dir, name)
		require.NoError(t, ExportProfile(data, path))
		_, err := os.Stat(path)
		assert.NoError(t, err)
	}

	require.NoError(t, ExportProfile(data, filepath.Join(dir, "car")))
	_, err := os.Stat(filepath.Join(dir, "car.png"))
	assert.NoError(t, err)

	assert.Error(t, ExportProfile(ProfileDiagramData{}, filepath.Join(dir, "bad.png")))
}
