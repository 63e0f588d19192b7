package scheduler

import (
	"os"
	"strconv"
	"time"

	"SIREKAP/controllers/rekap"
	"SIREKAP/models"

	"github.com/rs/zerolog/log"
)

// JadwalBerikutnya menghitung kapan rekap terjadwal berikutnya jalan: tanggal
// 1 pukul 01:00 terdekat. Proses yang start di tanggal 1 sebelum pukul 01:00
// tetap kebagian jadwal bulan itu.
func JadwalBerikutnya(sekarang time.Time) time.Time {
	berikut := time.Date(sekarang.Year(), sekarang.Month(), 1, 1, 0, 0, 0, sekarang.Location())
	if !berikut.After(sekarang) {
		berikut = berikut.AddDate(0, 1, 0)
	}
	return berikut
}

// RekapBulanLalu adalah fungsi yang akan dijalankan oleh cron tiap awal bulan.
// Ia menghitung ulang rekap bulan sebelumnya untuk instansi yang dikonfigurasi
// lewat SCHEDULER_INSTANSI_ID dan REMOTE_DATABASE_URL.
func RekapBulanLalu() {
	log.Info().Msg("Menjalankan rekap terjadwal bulan lalu...")

	instansiId, err := strconv.ParseInt(os.Getenv("SCHEDULER_INSTANSI_ID"), 10, 64)
	if err != nil {
		log.Error().Err(err).Msg("SCHEDULER_INSTANSI_ID tidak valid, rekap terjadwal dilewati")
		return
	}

	remoteURL := os.Getenv("REMOTE_DATABASE_URL")
	if remoteURL == "" {
		log.Error().Msg("REMOTE_DATABASE_URL kosong, rekap terjadwal dilewati")
		return
	}

	remote, err := models.ConnectRemote(models.RemoteConfig{RemoteURL: remoteURL})
	if err != nil {
		log.Error().Err(err).Msg("Gagal menyambung basis data sumber")
		return
	}
	defer remote.Close()

	sekarang := time.Now()
	bulanLalu := time.Date(sekarang.Year(), sekarang.Month(), 1, 0, 0, 0, 0, sekarang.Location()).AddDate(0, 0, -1)

	hasil, err := rekapcontrollers.RunRekap(models.DB, remote.DB, instansiId, int(bulanLalu.Month()), bulanLalu.Year())
	if err != nil {
		log.Error().Err(err).Msg("Rekap terjadwal gagal")
		return
	}

	log.Info().
		Int("tahun", bulanLalu.Year()).
		Int("bulan", int(bulanLalu.Month())).
		Int("pegawai", len(hasil)).
		Msg("Rekap terjadwal selesai")
}
