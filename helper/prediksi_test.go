package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrediksiTanpaKeteranganDataKurang(t *testing.T) {
	_, err := PrediksiTanpaKeterangan(nil, 4)
	assert.Error(t, err)

	_, err = PrediksiTanpaKeterangan([][2]int{{1, 2}}, 2)
	assert.Error(t, err)
}

func TestPrediksiTanpaKeteranganTrenNaik(t *testing.T) {
	riwayat := [][2]int{{1, 1}, {2, 2}, {3, 3}}
	hasil, err := PrediksiTanpaKeterangan(riwayat, 4)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, hasil, 1.0)
}

func TestPrediksiTanpaKeteranganTidakNegatif(t *testing.T) {
	riwayat := [][2]int{{1, 6}, {2, 4}, {3, 2}, {4, 0}}
	hasil, err := PrediksiTanpaKeterangan(riwayat, 6)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, hasil, 0.0)
}
