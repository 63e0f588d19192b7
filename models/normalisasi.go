package models

import (
	"time"

	"SIREKAP/presensi"
)

const (
	layoutTanggal  = "2006-01-02"
	layoutJam      = "15:04:05"
	layoutDatetime = "2006-01-02 15:04:05"
)

// parseWaktu mengubah string kolom tanggal/datetime menjadi *time.Time.
// Nilai yang gagal diparse diperlakukan sebagai hilang (nil), bukan error.
func parseWaktu(nilai string) *time.Time {
	if nilai == "" {
		return nil
	}
	for _, layout := range []string{layoutDatetime, time.RFC3339, layoutTanggal} {
		if t, err := time.Parse(layout, nilai); err == nil {
			return &t
		}
	}
	return nil
}

// gabungJam menempelkan kolom time shift (mis. "08:00:00") ke tanggal kerja.
// Beberapa baris shift lama berisi datetime penuh; itu dipakai apa adanya.
func gabungJam(tanggal time.Time, jam string) *time.Time {
	if jam == "" {
		return nil
	}
	if t, err := time.Parse(layoutJam, jam); err == nil {
		gabungan := time.Date(tanggal.Year(), tanggal.Month(), tanggal.Day(),
			t.Hour(), t.Minute(), t.Second(), 0, tanggal.Location())
		return &gabungan
	}
	return parseWaktu(jam)
}

// KeMasukanLaporan menormalkan snapshot sumber menjadi masukan resolver:
// rencana digabung dengan shift-nya (jadwal masuk = tanggal + masuk_post_time,
// jadwal pulang = tanggal + pulang_pre_time) dan semua timestamp diparse
// dengan koersi ke nil.
func (s *SumberData) KeMasukanLaporan() ([]presensi.Pegawai, []presensi.JadwalKerja, []presensi.Presensi, []presensi.Izin) {
	shiftById := make(map[int64]Shift, len(s.Shift))
	for _, sh := range s.Shift {
		shiftById[sh.Id] = sh
	}

	pegawai := make([]presensi.Pegawai, 0, len(s.Pegawai))
	for _, p := range s.Pegawai {
		pegawai = append(pegawai, presensi.Pegawai{
			Id:         p.Id,
			Nip:        p.Nip,
			Nama:       p.Name,
			InstansiId: p.InstansiId,
		})
	}

	jadwal := make([]presensi.JadwalKerja, 0, len(s.Rencana))
	for _, r := range s.Rencana {
		tanggal := parseWaktu(r.TanggalMasuk)
		if tanggal == nil {
			// Rencana tanpa tanggal valid bukan hari kerja yang bisa dievaluasi.
			continue
		}
		j := presensi.JadwalKerja{
			KaryawanId:   r.KaryawanId,
			InstansiId:   r.InstansiId,
			TanggalKerja: *tanggal,
		}
		if sh, ok := shiftById[r.ShiftId]; ok {
			j.JadwalMasuk = gabungJam(*tanggal, sh.MasukPostTime)
			j.JadwalPulang = gabungJam(*tanggal, sh.PulangPreTime)
		}
		jadwal = append(jadwal, j)
	}

	kehadiran := make([]presensi.Presensi, 0, len(s.Kehadiran))
	for _, k := range s.Kehadiran {
		kehadiran = append(kehadiran, presensi.Presensi{
			KaryawanId:     k.KaryawanId,
			Jenis:          k.Jenis,
			TanggalMasuk:   parseWaktu(k.TanggalMasuk),
			TanggalKirim:   parseWaktu(k.TanggalKirim),
			ApproverStatus: k.ApproverStatus,
			Catatan:        k.Catatan,
		})
	}

	absen := make([]presensi.Izin, 0, len(s.Absen))
	for _, a := range s.Absen {
		absen = append(absen, presensi.Izin{
			KaryawanId:     a.KaryawanId,
			TanggalMulai:   parseWaktu(a.TanggalMulai),
			TanggalSelesai: parseWaktu(a.TanggalSelesai),
			Type:           a.Type,
		})
	}

	return pegawai, jadwal, kehadiran, absen
}
