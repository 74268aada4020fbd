package ingest

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/aviodata/traffic-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildArchive(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const csvHeader = "ANMOIS;CIE;CIE_NOM;CIE_NAT;CIE_PAYS;CIE_PAX;CIE_FRP;CIE_PEQ;CIE_PKT;CIE_TKT;CIE_PEQKT;CIE_VOL\n"

func TestParseArchive(t *testing.T) {
	csv := csvHeader +
		"201901;AFR;AIR FRANCE;F;FRANCE;4 500 000;12,5;4600000;8,2;0,9;8,5;35000\n" +
		"201902;BAW;BRITISH AIRWAYS;E;ROYAUME-UNI;1200000;3,1;1250000;2,4;0,2;2,5;9000\n"
	archive := buildArchive(t, map[string][]byte{"asp_cie_2019.csv": []byte(csv)})

	result, err := ParseArchive(archive)
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesParsed)
	assert.Equal(t, int64(0), result.RowsSkipped)
	require.Len(t, result.Records, 2)

	var afr domain.TrafficRecord
	for _, r := range result.Records {
		if r.CarrierCode == "AFR" {
			afr = r
		}
	}
	assert.Equal(t, 201901, afr.Period)
	assert.Equal(t, 2019, afr.Year)
	assert.Equal(t, 1, afr.Month)
	assert.Equal(t, "AIR FRANCE", afr.CarrierName)
	assert.Equal(t, domain.NationalityFrench, afr.Nationality)
	assert.Equal(t, "FRANCE", afr.Country)
	assert.Equal(t, int64(4500000), afr.Passengers)
	assert.InDelta(t, 12.5, afr.FreightTons, 1e-9)
	assert.Equal(t, int64(35000), afr.Flights)
}

func TestParseArchive_MultipleFiles(t *testing.T) {
	csv1 := csvHeader + "202001;AFR;AIR FRANCE;F;FRANCE;100;0;100;0;0;0;10\n"
	csv2 := csvHeader + "202002;AFR;AIR FRANCE;F;FRANCE;200;0;200;0;0;0;20\n"
	archive := buildArchive(t, map[string][]byte{
		"part1.csv":  []byte(csv1),
		"part2.CSV":  []byte(csv2),
		"readme.txt": []byte("not a csv"),
	})

	result, err := ParseArchive(archive)
	require.NoError(t, err)
	assert.Equal(t, 2, result.FilesParsed)
	assert.Len(t, result.Records, 2)
}

func TestParseArchive_SkipsBadRows(t *testing.T) {
	csv := csvHeader +
		"201901;AFR;AIR FRANCE;F;FRANCE;100;0;100;0;0;0;10\n" +
		"not-a-period;XXX;BROKEN;F;FRANCE;1;0;1;0;0;0;1\n" +
		"201913;XXX;BAD MONTH;F;FRANCE;1;0;1;0;0;0;1\n"
	archive := buildArchive(t, map[string][]byte{"data.csv": []byte(csv)})

	result, err := ParseArchive(archive)
	require.NoError(t, err)
	assert.Len(t, result.Records, 1)
	assert.Equal(t, int64(2), result.RowsSkipped)
}

func TestParseArchive_Latin1Encoding(t *testing.T) {
	// "RÉUNION" with É encoded as Latin-1 0xC9
	row := append([]byte("201901;REU;R"), 0xC9)
	row = append(row, []byte("UNION AIR;F;FRANCE;100;0;100;0;0;0;10\n")...)
	content := append([]byte(csvHeader), row...)
	archive := buildArchive(t, map[string][]byte{"data.csv": content})

	result, err := ParseArchive(archive)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "RÉUNION AIR", result.Records[0].CarrierName)
}

func TestParseArchive_NoCSVFiles(t *testing.T) {
	archive := buildArchive(t, map[string][]byte{"readme.txt": []byte("hello")})
	_, err := ParseArchive(archive)
	assert.Error(t, err)
}

func TestParseArchive_NotAZip(t *testing.T) {
	_, err := ParseArchive([]byte("not a zip archive"))
	assert.Error(t, err)
}

func TestParseArchive_MissingPeriodColumn(t *testing.T) {
	csv := "CIE;CIE_PAX\nAFR;100\n"
	archive := buildArchive(t, map[string][]byte{"data.csv": []byte(csv)})
	_, err := ParseArchive(archive)
	assert.Error(t, err)
}

func TestParsePeriod(t *testing.T) {
	v, ok := parsePeriod("202012")
	assert.True(t, ok)
	assert.Equal(t, 202012, v)

	_, ok = parsePeriod("202013")
	assert.False(t, ok)

	_, ok = parsePeriod("189901")
	assert.False(t, ok)

	_, ok = parsePeriod("")
	assert.False(t, ok)

	_, ok = parsePeriod("abc")
	assert.False(t, ok)
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, float64(1234567), parseNumber("1 234 567"))
	assert.Equal(t, float64(1234567), parseNumber("1 234 567"))
	assert.InDelta(t, 12.5, parseNumber("12,5"), 1e-9)
	assert.Equal(t, float64(42), parseNumber("42"))
	assert.Equal(t, float64(0), parseNumber(""))
	assert.Equal(t, float64(0), parseNumber("n/a"))
}
