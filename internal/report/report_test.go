package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eugenenazirov/wagon-calculator/internal/calculator"
)

func sampleDocument(t *testing.T, in calculator.LoadInput) Document {
	t.Helper()

	spec := calculator.VehicleSpec{
		Name:                   "Standard wagon",
		FloorCapacityStillages: 10,
		CubeCapacity:           100,
		WeightCapacity:         20000,
		CubePerStillage:        10,
		WeightPerStillage:      1000,
	}
	rep, err := calculator.New().Calculate(spec, in)
	require.NoError(t, err)

	return Document{
		GeneratedAt: time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC),
		Vehicle:     spec,
		Input:       in,
		Result:      rep,
	}
}

func TestMetricsOrder(t *testing.T) {
	doc := sampleDocument(t, calculator.LoadInput{Doors: 14})

	metrics := Metrics(doc.Result)
	require.Len(t, metrics, 3)
	assert.Equal(t, "Floor space", metrics[0].Label)
	assert.Equal(t, "Cube", metrics[1].Label)
	assert.Equal(t, "Weight", metrics[2].Label)
	assert.InDelta(t, 10, metrics[0].Pct, 1e-9)
}

func TestBreakdown(t *testing.T) {
	doc := sampleDocument(t, calculator.LoadInput{Doors: 15, Pallets: 2.25})

	lines := Breakdown(doc.Vehicle, doc.Input, doc.Result)
	require.NotEmpty(t, lines)
	assert.Equal(t, "Stillages needed = ceil(15 / 14) = 2", lines[0])
	assert.Contains(t, lines[3], "22.50 large pallets")
}

func TestStatus(t *testing.T) {
	within := sampleDocument(t, calculator.LoadInput{Doors: 14})
	assert.True(t, strings.HasPrefix(Status(within.Result), "Within capacity"))

	over := sampleDocument(t, calculator.LoadInput{Doors: 14 * 11})
	assert.True(t, strings.HasPrefix(Status(over.Result), "Over capacity"))
}

func TestWritePDF(t *testing.T) {
	doc := sampleDocument(t, calculator.LoadInput{Doors: 28, Pallets: 4.5})

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, doc))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "expected PDF header")
}
