package ebl

import (
	"io/fs"
	"math"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-ebl/internal/testutil"
	"github.com/cwbudde/algo-ebl/interp"
)

func TestBundledFranceschini2008(t *testing.T) {
	tab, err := LoadTable(nil, Franceschini2008)
	require.NoError(t, err)
	require.Len(t, tab.Energy, 50)
	require.Len(t, tab.Redshift, 10)
	assert.Equal(t, 0.02, tab.Energy[0])
	assert.Equal(t, 166.0, tab.Energy[49])

	i, ok := interp.StrictlyIncreasing(tab.Energy)
	assert.True(t, ok, "energy grid not increasing at %d", i)
	assert.Equal(t, 7.039e-3, tab.Tau[10][2])
	for j := range tab.Energy {
		assert.Zero(t, tab.Tau[j][0], "z=0 row %d", j)
	}
}

func TestBundledTauNonDecreasingInEnergy(t *testing.T) {
	tab, err := LoadTable(nil, Franceschini2008)
	require.NoError(t, err)
	for k := range tab.Redshift {
		testutil.RequireNonDecreasing(t, tab.Column(k))
	}
}

func TestParseTableHeaderAndComments(t *testing.T) {
	src := `# comment
energy z0 z1

1.0 0.1 0.2
# another comment
2.0 0.3 inf
`
	tab, err := ParseTable(strings.NewReader(src), []float64{0, 1}, TeV)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, tab.Energy, []float64{1, 2}, 0)
	assert.Equal(t, 0.2, tab.Tau[0][1])
	assert.True(t, math.IsInf(tab.Tau[1][1], 1))
}

func TestParseTableGeVScaling(t *testing.T) {
	src := "10 0 1\n1000 0 2\n"
	tab, err := ParseTable(strings.NewReader(src), []float64{0, 1}, GeV)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, tab.Energy, []float64{0.01, 1}, 0)
}

func TestParseTableErrors(t *testing.T) {
	z := []float64{0, 1}
	for name, src := range map[string]string{
		"ragged":         "1 0 1\n2 0\n",
		"too wide":       "1 0 1 2\n2 0 1 3\n",
		"not a number":   "1 0 1\n2 0 x\n",
		"second header":  "a b c\nd e f\n",
		"one row":        "1 0 1\n",
		"empty":          "# only comments\n",
		"not increasing": "2 0 1\n1 0 1\n",
		"duplicate":      "1 0 1\n1 0 1\n",
		"negative tau":   "1 0 -1\n2 0 1\n",
		"nan tau":        "1 0 nan\n2 0 1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTable(strings.NewReader(src), z, TeV)
			assert.ErrorIs(t, err, ErrDataFormat)
		})
	}
}

func TestLoadTableLegacyGeVModels(t *testing.T) {
	energiesGeV := []float64{10, 100, 1000, 10000}
	for _, id := range []ModelID{KneiskeDole2010, Inoue2013} {
		t.Run(id.String(), func(t *testing.T) {
			tab, err := LoadTable(synthFS(id, energiesGeV, linearTau), id)
			require.NoError(t, err)
			testutil.RequireSliceNearlyEqual(t, tab.Energy, []float64{0.01, 0.1, 1, 10}, 0)
			meta, err := Lookup(id)
			require.NoError(t, err)
			assert.Len(t, tab.Tau[0], len(meta.Redshift))
		})
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable(fstest.MapFS{}, Dominguez2011)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadTableFallsBackToBundled(t *testing.T) {
	tab, err := LoadTable(fstest.MapFS{}, Franceschini2008)
	require.NoError(t, err)
	assert.Len(t, tab.Energy, 50)
}

func TestLoadTableWrongColumnCount(t *testing.T) {
	fsys := fstest.MapFS{
		"Gilmore2012.dat": &fstest.MapFile{Data: []byte("1 0 1\n2 0 2\n")},
	}
	_, err := LoadTable(fsys, Gilmore2012)
	assert.ErrorIs(t, err, ErrDataFormat)
}

func TestLoadTableUnknownModel(t *testing.T) {
	_, err := LoadTable(nil, 0)
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestTableValidateShape(t *testing.T) {
	tab := Table{
		Energy:   []float64{1, 2},
		Redshift: []float64{0, 1},
		Tau:      [][]float64{{0, 1}},
	}
	assert.ErrorIs(t, tab.Validate(), ErrDataFormat)
}
