package presensi

import "time"

// Kategori keterlambatan masuk dan kepulangan awal, berjenjang 30 menit.
// String kosong berarti hari itu tidak dapat dikategorikan (tidak ada data).
const (
	KategoriTepatWaktu = "tw"
	KategoriTelat1     = "t1"
	KategoriTelat2     = "t2"
	KategoriTelat3     = "t3"
	KategoriTelat4     = "t4"
	KategoriPulang1    = "p1"
	KategoriPulang2    = "p2"
	KategoriPulang3    = "p3"
	KategoriPulang4    = "p4"
)

// Status kehadiran harian, saling eksklusif.
const (
	StatusHadirYa    = "hadir"
	StatusIzinSakit  = "izin/sakit"
	StatusTugasBk    = "tugas/bk"
	StatusTidakHadir = "tidak hadir"
)

// Kode keterangan absen yang membenarkan ketidakhadiran.
var (
	kodeIzinSakit = map[string]bool{"C": true, "S": true}
	kodeTugasBk   = map[string]bool{"TB": true, "BK": true}
)

func geser(t time.Time, menit int) time.Time {
	return t.Add(time.Duration(menit) * time.Minute)
}

// KategoriMasuk mengkategorikan jam masuk terhadap jadwal masuk.
// Batas interval setengah-terbuka: tepat di jadwal = tw, tepat di +30 = t1.
// Tanpa jam masuk tapi ada jam pulang dihitung t4 (pegawai jelas bekerja).
func KategoriMasuk(l Laporan) string {
	if l.JadwalMasuk == nil {
		return ""
	}
	jadwal := *l.JadwalMasuk
	if l.JamMasuk == nil {
		if l.JamPulang != nil {
			return KategoriTelat4
		}
		return ""
	}
	jm := *l.JamMasuk
	switch {
	case !jm.After(jadwal):
		return KategoriTepatWaktu
	case !jm.After(geser(jadwal, 30)):
		return KategoriTelat1
	case !jm.After(geser(jadwal, 60)):
		return KategoriTelat2
	case !jm.After(geser(jadwal, 90)):
		return KategoriTelat3
	default:
		return KategoriTelat4
	}
}

// KategoriPulang mengkategorikan jam pulang terhadap jadwal pulang, simetris
// dengan KategoriMasuk: tepat di jadwal atau sesudahnya = tw, pulang lebih
// awal berjenjang p1..p4. Tanpa jam pulang tapi ada jam masuk dihitung p4.
func KategoriPulang(l Laporan) string {
	if l.JadwalPulang == nil {
		return ""
	}
	jadwal := *l.JadwalPulang
	if l.JamPulang == nil {
		if l.JamMasuk != nil {
			return KategoriPulang4
		}
		return ""
	}
	jp := *l.JamPulang
	switch {
	case !jp.Before(jadwal):
		return KategoriTepatWaktu
	case !jp.Before(geser(jadwal, -30)):
		return KategoriPulang1
	case !jp.Before(geser(jadwal, -60)):
		return KategoriPulang2
	case !jp.Before(geser(jadwal, -90)):
		return KategoriPulang3
	default:
		return KategoriPulang4
	}
}

// StatusHadir menentukan status kehadiran harian dengan urutan prioritas:
// ada jam masuk/pulang -> hadir, keterangan absen C/S -> izin/sakit,
// TB/BK -> tugas/bk, selain itu tidak hadir.
func StatusHadir(l Laporan) string {
	if l.JamMasuk != nil || l.JamPulang != nil {
		return StatusHadirYa
	}
	if l.KeteranganAbsen != nil {
		if kodeIzinSakit[*l.KeteranganAbsen] {
			return StatusIzinSakit
		}
		if kodeTugasBk[*l.KeteranganAbsen] {
			return StatusTugasBk
		}
	}
	return StatusTidakHadir
}
