package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyakarana-tools/rupavali/pkg/catalog"
)

var dhatupathaTSV = strings.Join([]string{
	"code\tdhatu\tartha",
	"01.0001\tBU\tsattAyAm",
	"01.0002\teDa~\\\tvfdDO",
	"",
	"01.1137\tgamx~\tgatO",
	"08.0010\tqukf\\Y\tkaraRe",
	"10.0001\tcura~\tsteye",
}, "\n")

func loadTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load(strings.NewReader(dhatupathaTSV))
	require.NoError(t, err)
	return c
}

func TestLoad(t *testing.T) {
	c := loadTestCatalog(t)
	assert.Equal(t, 5, c.Len())

	all := c.All()
	require.Len(t, all, 5)
	assert.Equal(t, "01.0001", all[0].Code)
	assert.Equal(t, "10.0001", all[4].Code)
}

func TestLoad_StripsSvaraMarks(t *testing.T) {
	c := loadTestCatalog(t)

	kf, err := c.Get("08.0010")
	require.NoError(t, err)
	assert.Equal(t, `qukf\Y`, kf.Aupadeshika)
	assert.Equal(t, "qukfY", kf.Clean)

	edh, err := c.Get("01.0002")
	require.NoError(t, err)
	assert.Equal(t, "eDa~", edh.Clean)
}

func TestGet_Miss(t *testing.T) {
	c := loadTestCatalog(t)
	_, err := c.Get("99.9999")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestLoad_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		tsv  string
	}{
		{"empty", ""},
		{"header only", "code\tdhatu\tartha\n"},
		{"one column", "01.0001\n"},
		{"duplicate code", "01.0001\tBU\tsattAyAm\n01.0001\tBU\tsattAyAm\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Load(strings.NewReader(tt.tsv))
			assert.Error(t, err)
		})
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := loadTestCatalog(t)
	all := c.All()
	all[0].Code = "mutated"

	again, err := c.Get("01.0001")
	require.NoError(t, err)
	assert.Equal(t, "01.0001", again.Code)
}
