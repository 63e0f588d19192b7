package presensi

import "sort"

// RekapPegawai adalah rekap bulanan satu pegawai: jumlah hari terjadwal,
// kehadiran, dan penghitung kategori masuk/pulang per jenjang.
type RekapPegawai struct {
	KaryawanId      int64
	InstansiId      int64
	Tahun           int
	Bulan           int
	JumlahHari      int
	Hadir           int
	TidakHadir      int
	Twm             int
	T1              int
	T2              int
	T3              int
	T4              int
	Twp             int
	P1              int
	P2              int
	P3              int
	P4              int
	IzinSakit       int
	TugasBk         int
	TanpaKeterangan int
}

// GenerateRekapBulanan melipat laporan harian menjadi satu baris rekap per
// pegawai. Laporan kosong menghasilkan slice kosong. Hasil terurut naik
// berdasarkan karyawan_id supaya perhitungan ulang selalu identik.
func GenerateRekapBulanan(laporan []Laporan, bulan, tahun int) []RekapPegawai {
	rekapByKaryawan := make(map[int64]*RekapPegawai)
	for _, l := range laporan {
		r, ok := rekapByKaryawan[l.KaryawanId]
		if !ok {
			r = &RekapPegawai{
				KaryawanId: l.KaryawanId,
				InstansiId: l.InstansiId,
				Tahun:      tahun,
				Bulan:      bulan,
			}
			rekapByKaryawan[l.KaryawanId] = r
		}
		r.JumlahHari++

		switch KategoriMasuk(l) {
		case KategoriTepatWaktu:
			r.Twm++
		case KategoriTelat1:
			r.T1++
		case KategoriTelat2:
			r.T2++
		case KategoriTelat3:
			r.T3++
		case KategoriTelat4:
			r.T4++
		}

		switch KategoriPulang(l) {
		case KategoriTepatWaktu:
			r.Twp++
		case KategoriPulang1:
			r.P1++
		case KategoriPulang2:
			r.P2++
		case KategoriPulang3:
			r.P3++
		case KategoriPulang4:
			r.P4++
		}

		switch StatusHadir(l) {
		case StatusHadirYa:
			r.Hadir++
		case StatusIzinSakit:
			r.IzinSakit++
		case StatusTugasBk:
			r.TugasBk++
		case StatusTidakHadir:
			r.TanpaKeterangan++
		}
	}

	hasil := make([]RekapPegawai, 0, len(rekapByKaryawan))
	for _, r := range rekapByKaryawan {
		r.TidakHadir = r.JumlahHari - r.Hadir
		hasil = append(hasil, *r)
	}
	sort.Slice(hasil, func(i, j int) bool {
		return hasil[i].KaryawanId < hasil[j].KaryawanId
	})
	return hasil
}
