package items

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/thaidoc/internal/model"
)

func TestRoundTrip(t *testing.T) {
	lineItems := []model.LineItem{
		{Description: "Website design", Quantity: 1, Unit: "job", UnitPrice: 25000},
		{Description: "ค่าบริการรายเดือน, ปี 2567", Quantity: 12, Unit: "เดือน", UnitPrice: 350.5},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteItems(&buf, lineItems))

	got, err := ReadItems(&buf)
	require.NoError(t, err)
	assert.Equal(t, lineItems, got)
}

func TestReadTestdata(t *testing.T) {
	f, err := os.Open("../../testdata/items.csv")
	require.NoError(t, err)
	defer f.Close()

	got, err := ReadItems(f)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Hosting", got[1].Description)
	assert.InDelta(t, 12, got[1].Quantity, 1e-9)
	assert.Equal(t, "month", got[1].Unit)
	assert.InDelta(t, 350.5, got[1].UnitPrice, 1e-9)
	assert.Equal(t, "Domain renewal, .co.th", got[2].Description)
}

func TestMarshalItem(t *testing.T) {
	row := MarshalItem(model.LineItem{Description: "x", Quantity: 2.5, Unit: "kg", UnitPrice: 0.1})
	assert.Equal(t, []string{"x", "2.5", "kg", "0.1"}, row)
}

func TestHeaderOnly(t *testing.T) {
	got, err := ReadItems(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBadNumbers(t *testing.T) {
	_, err := ReadItems(strings.NewReader(Header + "\nDesign,one,job,100\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing quantity")
	assert.Contains(t, err.Error(), "row 2")

	_, err = ReadItems(strings.NewReader(Header + "\nDesign,1,job,\"1,000\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing unit_price")
}

func TestWrongFieldCount(t *testing.T) {
	_, err := ReadItems(strings.NewReader(Header + "\nDesign,1,job\n"))
	assert.Error(t, err)
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriteItems_FlushError(t *testing.T) {
	closed := errors.New("pipe closed")
	err := WriteItems(failingWriter{err: closed}, []model.LineItem{
		{Description: "Design", Quantity: 1, Unit: "job", UnitPrice: 1000},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, closed)
}
