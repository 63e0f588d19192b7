package rekapcontrollers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRentangBulan(t *testing.T) {
	awal, akhir := RentangBulan(2025, 10)
	assert.Equal(t, "2025-10-01", awal)
	assert.Equal(t, "2025-10-31", akhir)

	awal, akhir = RentangBulan(2025, 2)
	assert.Equal(t, "2025-02-01", awal)
	assert.Equal(t, "2025-02-28", akhir)

	// Tahun kabisat.
	awal, akhir = RentangBulan(2024, 2)
	assert.Equal(t, "2024-02-01", awal)
	assert.Equal(t, "2024-02-29", akhir)

	awal, akhir = RentangBulan(2024, 12)
	assert.Equal(t, "2024-12-01", awal)
	assert.Equal(t, "2024-12-31", akhir)
}

func TestPeriodeValid(t *testing.T) {
	sekarang := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, PeriodeValid(2025, 9, sekarang))
	assert.NoError(t, PeriodeValid(2024, 12, sekarang))
	// Bulan berjalan masih boleh dihitung.
	assert.NoError(t, PeriodeValid(2025, 10, sekarang))

	assert.Error(t, PeriodeValid(2025, 11, sekarang))
	assert.Error(t, PeriodeValid(2026, 1, sekarang))
	assert.Error(t, PeriodeValid(2025, 0, sekarang))
	assert.Error(t, PeriodeValid(2025, 13, sekarang))
}
