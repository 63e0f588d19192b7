package presensi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLaporanDasar(t *testing.T) {
	pegawai := []Pegawai{{Id: 1, Nip: "123", Nama: "Alice", InstansiId: 100}}
	jadwal := []JadwalKerja{{
		KaryawanId:   1,
		InstansiId:   100,
		TanggalKerja: waktu(t, "2025-10-01 00:00:00"),
		JadwalMasuk:  pWaktu(t, "2025-10-01 08:00:00"),
		JadwalPulang: pWaktu(t, "2025-10-01 17:00:00"),
	}}
	kehadiran := []Presensi{
		{KaryawanId: 1, Jenis: JenisMasuk, TanggalMasuk: pWaktu(t, "2025-10-01 08:10:00"), TanggalKirim: pWaktu(t, "2025-10-01 08:10:00")},
		{KaryawanId: 1, Jenis: JenisPulang, TanggalMasuk: pWaktu(t, "2025-10-01 17:05:00"), TanggalKirim: pWaktu(t, "2025-10-01 17:05:00")},
	}

	hasil := GenerateLaporan(pegawai, jadwal, kehadiran, nil)
	require.Len(t, hasil, 1)

	row := hasil[0]
	assert.Equal(t, int64(1), row.KaryawanId)
	assert.Equal(t, int64(100), row.InstansiId)
	require.NotNil(t, row.JamMasuk)
	require.NotNil(t, row.JamPulang)
	assert.Equal(t, waktu(t, "2025-10-01 08:10:00"), *row.JamMasuk)
	assert.Equal(t, waktu(t, "2025-10-01 17:05:00"), *row.JamPulang)
	assert.Nil(t, row.KeteranganAbsen)
}

func TestGenerateLaporanJadwalTanpaPegawai(t *testing.T) {
	jadwal := []JadwalKerja{{KaryawanId: 99, TanggalKerja: waktu(t, "2025-10-01 00:00:00")}}
	hasil := GenerateLaporan(nil, jadwal, nil, nil)
	assert.Empty(t, hasil)
}

func TestGenerateLaporanJadwalKosong(t *testing.T) {
	pegawai := []Pegawai{{Id: 1}}
	hasil := GenerateLaporan(pegawai, nil, nil, nil)
	assert.Empty(t, hasil)
}

func TestGenerateLaporanMasukTerawalPulangTerakhir(t *testing.T) {
	pegawai := []Pegawai{{Id: 1, InstansiId: 100}}
	jadwal := []JadwalKerja{{KaryawanId: 1, InstansiId: 100, TanggalKerja: waktu(t, "2025-10-01 00:00:00")}}
	kehadiran := []Presensi{
		{KaryawanId: 1, Jenis: JenisMasuk, TanggalMasuk: pWaktu(t, "2025-10-01 08:30:00")},
		{KaryawanId: 1, Jenis: JenisMasuk, TanggalMasuk: pWaktu(t, "2025-10-01 07:55:00")},
		{KaryawanId: 1, Jenis: JenisPulang, TanggalMasuk: pWaktu(t, "2025-10-01 16:00:00")},
		{KaryawanId: 1, Jenis: JenisPulang, TanggalMasuk: pWaktu(t, "2025-10-01 17:10:00")},
	}

	hasil := GenerateLaporan(pegawai, jadwal, kehadiran, nil)
	require.Len(t, hasil, 1)
	assert.Equal(t, waktu(t, "2025-10-01 07:55:00"), *hasil[0].JamMasuk)
	assert.Equal(t, waktu(t, "2025-10-01 17:10:00"), *hasil[0].JamPulang)
}

func TestGenerateLaporanPresensiDitolakDanLuarHari(t *testing.T) {
	pegawai := []Pegawai{{Id: 1, InstansiId: 100}}
	jadwal := []JadwalKerja{{KaryawanId: 1, InstansiId: 100, TanggalKerja: waktu(t, "2025-10-01 00:00:00")}}
	kehadiran := []Presensi{
		// Ditolak approver: tidak dihitung.
		{KaryawanId: 1, Jenis: JenisMasuk, TanggalMasuk: pWaktu(t, "2025-10-01 07:00:00"), ApproverStatus: pString(StatusTolak)},
		// Status lain tetap dihitung.
		{KaryawanId: 1, Jenis: JenisMasuk, TanggalMasuk: pWaktu(t, "2025-10-01 08:05:00"), ApproverStatus: pString("TERIMA")},
		// Hari sebelumnya: di luar jendela.
		{KaryawanId: 1, Jenis: JenisPulang, TanggalMasuk: pWaktu(t, "2025-09-30 17:00:00")},
		// Tepat tengah malam hari berikutnya: di luar jendela (setengah terbuka).
		{KaryawanId: 1, Jenis: JenisPulang, TanggalMasuk: pWaktu(t, "2025-10-02 00:00:00")},
	}

	hasil := GenerateLaporan(pegawai, jadwal, kehadiran, nil)
	require.Len(t, hasil, 1)
	require.NotNil(t, hasil[0].JamMasuk)
	assert.Equal(t, waktu(t, "2025-10-01 08:05:00"), *hasil[0].JamMasuk)
	assert.Nil(t, hasil[0].JamPulang)
}

func TestGenerateLaporanIzinMenangAtasPresensi(t *testing.T) {
	pegawai := []Pegawai{{Id: 1, InstansiId: 100}}
	jadwal := []JadwalKerja{{
		KaryawanId:   1,
		InstansiId:   100,
		TanggalKerja: waktu(t, "2025-10-02 00:00:00"),
		JadwalMasuk:  pWaktu(t, "2025-10-02 08:00:00"),
	}}
	// Presensi nyasar di hari yang sama tidak boleh berpengaruh.
	kehadiran := []Presensi{
		{KaryawanId: 1, Jenis: JenisMasuk, TanggalMasuk: pWaktu(t, "2025-10-02 08:00:00")},
	}
	absen := []Izin{{
		KaryawanId:     1,
		TanggalMulai:   pWaktu(t, "2025-10-01 00:00:00"),
		TanggalSelesai: pWaktu(t, "2025-10-03 00:00:00"),
		Type:           "S",
	}}

	hasil := GenerateLaporan(pegawai, jadwal, kehadiran, absen)
	require.Len(t, hasil, 1)

	row := hasil[0]
	assert.Nil(t, row.JamMasuk)
	assert.Nil(t, row.JamPulang)
	require.NotNil(t, row.KeteranganAbsen)
	assert.Equal(t, "S", *row.KeteranganAbsen)
	assert.Equal(t, StatusIzinSakit, StatusHadir(row))
}

func TestGenerateLaporanIzinTumpangTindihAmbilPertama(t *testing.T) {
	pegawai := []Pegawai{{Id: 1, InstansiId: 100}}
	jadwal := []JadwalKerja{{KaryawanId: 1, InstansiId: 100, TanggalKerja: waktu(t, "2025-10-02 00:00:00")}}
	absen := []Izin{
		{KaryawanId: 1, TanggalMulai: pWaktu(t, "2025-10-02 00:00:00"), TanggalSelesai: pWaktu(t, "2025-10-02 00:00:00"), Type: "C"},
		{KaryawanId: 1, TanggalMulai: pWaktu(t, "2025-10-01 00:00:00"), TanggalSelesai: pWaktu(t, "2025-10-03 00:00:00"), Type: "TB"},
	}

	hasil := GenerateLaporan(pegawai, jadwal, nil, absen)
	require.Len(t, hasil, 1)
	require.NotNil(t, hasil[0].KeteranganAbsen)
	assert.Equal(t, "C", *hasil[0].KeteranganAbsen)
}

func TestGenerateLaporanCatatan(t *testing.T) {
	pegawai := []Pegawai{{Id: 1, InstansiId: 100}}
	jadwal := []JadwalKerja{{KaryawanId: 1, InstansiId: 100, TanggalKerja: waktu(t, "2025-10-01 00:00:00")}}

	t.Run("catatan masuk diutamakan", func(t *testing.T) {
		kehadiran := []Presensi{
			{KaryawanId: 1, Jenis: JenisMasuk, TanggalMasuk: pWaktu(t, "2025-10-01 08:00:00"), Catatan: pString("dinas pagi")},
			{KaryawanId: 1, Jenis: JenisPulang, TanggalMasuk: pWaktu(t, "2025-10-01 17:00:00"), Catatan: pString("pulang cepat")},
		}
		hasil := GenerateLaporan(pegawai, jadwal, kehadiran, nil)
		require.Len(t, hasil, 1)
		require.NotNil(t, hasil[0].KeteranganHadir)
		assert.Equal(t, "dinas pagi", *hasil[0].KeteranganHadir)
	})

	t.Run("catatan masuk kosong jatuh ke pulang", func(t *testing.T) {
		kehadiran := []Presensi{
			{KaryawanId: 1, Jenis: JenisMasuk, TanggalMasuk: pWaktu(t, "2025-10-01 08:00:00"), Catatan: pString("")},
			{KaryawanId: 1, Jenis: JenisPulang, TanggalMasuk: pWaktu(t, "2025-10-01 17:00:00"), Catatan: pString("pulang cepat")},
		}
		hasil := GenerateLaporan(pegawai, jadwal, kehadiran, nil)
		require.Len(t, hasil, 1)
		require.NotNil(t, hasil[0].KeteranganHadir)
		assert.Equal(t, "pulang cepat", *hasil[0].KeteranganHadir)
	})

	t.Run("tanpa catatan", func(t *testing.T) {
		kehadiran := []Presensi{
			{KaryawanId: 1, Jenis: JenisMasuk, TanggalMasuk: pWaktu(t, "2025-10-01 08:00:00")},
		}
		hasil := GenerateLaporan(pegawai, jadwal, kehadiran, nil)
		require.Len(t, hasil, 1)
		assert.Nil(t, hasil[0].KeteranganHadir)
	})
}

func TestGenerateLaporanInstansiDariPegawai(t *testing.T) {
	// Jadwal tanpa instansi_id memakai instansi pegawai.
	pegawai := []Pegawai{{Id: 7, InstansiId: 300}}
	jadwal := []JadwalKerja{{KaryawanId: 7, TanggalKerja: waktu(t, "2025-10-01 00:00:00")}}

	hasil := GenerateLaporan(pegawai, jadwal, nil, nil)
	require.Len(t, hasil, 1)
	assert.Equal(t, int64(300), hasil[0].InstansiId)
}

func TestGenerateLaporanTanpaPresensiTanpaIzin(t *testing.T) {
	pegawai := []Pegawai{{Id: 1, InstansiId: 100}}
	jadwal := []JadwalKerja{{
		KaryawanId:   1,
		InstansiId:   100,
		TanggalKerja: waktu(t, "2025-10-01 00:00:00"),
		JadwalMasuk:  pWaktu(t, "2025-10-01 08:00:00"),
		JadwalPulang: pWaktu(t, "2025-10-01 17:00:00"),
	}}

	hasil := GenerateLaporan(pegawai, jadwal, nil, nil)
	require.Len(t, hasil, 1)

	row := hasil[0]
	assert.Equal(t, StatusTidakHadir, StatusHadir(row))
	assert.Equal(t, "", KategoriMasuk(row))
	assert.Equal(t, "", KategoriPulang(row))
}

func TestGenerateLaporanStabilUntukWaktuKembar(t *testing.T) {
	pegawai := []Pegawai{{Id: 1, InstansiId: 100}}
	jadwal := []JadwalKerja{{KaryawanId: 1, InstansiId: 100, TanggalKerja: waktu(t, "2025-10-01 00:00:00")}}
	sama := pWaktu(t, "2025-10-01 08:00:00")
	kehadiran := []Presensi{
		{KaryawanId: 1, Jenis: JenisMasuk, TanggalMasuk: sama, Catatan: pString("pertama")},
		{KaryawanId: 1, Jenis: JenisMasuk, TanggalMasuk: sama, Catatan: pString("kedua")},
	}

	hasil := GenerateLaporan(pegawai, jadwal, kehadiran, nil)
	require.Len(t, hasil, 1)
	require.NotNil(t, hasil[0].KeteranganHadir)
	assert.Equal(t, "pertama", *hasil[0].KeteranganHadir)
}
