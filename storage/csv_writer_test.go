package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crstnhllg/realtor-scraper/models"
)

func sampleListings() []models.Listing {
	return []models.Listing{
		{
			Status:  "House for sale",
			Price:   "$525,000",
			Beds:    "3",
			Baths:   "2",
			Sqft:    "1,850",
			LotSize: "0.25",
			Address: "123 Main St, Frisco, TX 75034",
			URL:     "https://www.realtor.com/realestateandhomes-detail/123-Main-St",
		},
		{
			Status:  "Condo for sale",
			Price:   "$310,000",
			Beds:    "2",
			Baths:   models.Placeholder,
			Sqft:    models.Placeholder,
			LotSize: models.Placeholder,
			Address: "9 Elm Ct Unit 4, Frisco, TX 75034",
			URL:     "https://www.realtor.com/realestateandhomes-detail/9-Elm-Ct",
		},
	}
}

func TestWriteEmptyCreatesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")

	err := NewCSVWriter(path).Write(nil)
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file should be written for an empty run")
}

func TestWriteHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	listings := sampleListings()

	require.NoError(t, NewCSVWriter(path).Write(listings))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, len(listings)+1)
	assert.Equal(t, models.FieldNames(), rows[0])
	assert.Equal(t, listings[0].Row(), rows[1])
	assert.Equal(t, listings[1].Row(), rows[2])
}

func TestWriteOverwritesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	writer := NewCSVWriter(path)

	require.NoError(t, writer.Write(sampleListings()))
	require.NoError(t, writer.Write(sampleListings()[:1]))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 2, "second run should fully replace the first")
}

func TestWriteCreatesOutputDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "output.csv")

	require.NoError(t, NewCSVWriter(path).Write(sampleListings()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
