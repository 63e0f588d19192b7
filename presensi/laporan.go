package presensi

import "time"

// Jenis presensi yang dikirim pegawai.
const (
	JenisMasuk  = "M"
	JenisPulang = "P"
)

// StatusTolak adalah satu-satunya status approval yang membuat presensi tidak dihitung.
const StatusTolak = "TOLAK"

type Pegawai struct {
	Id         int64
	Nip        string
	Nama       string
	InstansiId int64
}

// JadwalKerja adalah satu hari kerja terencana milik satu pegawai.
// JadwalMasuk/JadwalPulang nil berarti sisi tersebut tidak dievaluasi.
type JadwalKerja struct {
	KaryawanId   int64
	InstansiId   int64
	TanggalKerja time.Time
	JadwalMasuk  *time.Time
	JadwalPulang *time.Time
}

// Presensi adalah satu event masuk/pulang yang dikirim pegawai.
// TanggalMasuk adalah waktu presensi itu sendiri, TanggalKirim waktu pengiriman.
type Presensi struct {
	KaryawanId     int64
	Jenis          string
	TanggalMasuk   *time.Time
	TanggalKirim   *time.Time
	ApproverStatus *string
	Catatan        *string
}

// Izin adalah satu catatan izin/cuti dengan rentang tanggal inklusif.
type Izin struct {
	KaryawanId     int64
	TanggalMulai   *time.Time
	TanggalSelesai *time.Time
	Type           string
}

// Laporan adalah hasil rekonsiliasi satu (pegawai, hari kerja terjadwal).
// Jika hari tertutup izin maka KeteranganAbsen terisi dan jam masuk/pulang nil.
type Laporan struct {
	KaryawanId      int64
	InstansiId      int64
	TanggalKerja    time.Time
	JadwalMasuk     *time.Time
	JadwalPulang    *time.Time
	JamMasuk        *time.Time
	JamPulang       *time.Time
	KeteranganHadir *string
	KeteranganAbsen *string
}

func awalHari(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func diterima(status *string) bool {
	return status == nil || *status != StatusTolak
}

// GenerateLaporan menghasilkan satu Laporan per (pegawai, hari terjadwal).
// Jadwal di-join ke daftar pegawai lewat karyawan_id; jadwal milik pegawai
// yang tidak ada di daftar diabaikan. Jadwal kosong menghasilkan hasil kosong.
func GenerateLaporan(pegawai []Pegawai, jadwal []JadwalKerja, kehadiran []Presensi, absen []Izin) []Laporan {
	pegawaiById := make(map[int64]Pegawai, len(pegawai))
	for _, p := range pegawai {
		pegawaiById[p.Id] = p
	}

	kehadiranByKaryawan := make(map[int64][]Presensi, len(pegawai))
	for _, k := range kehadiran {
		kehadiranByKaryawan[k.KaryawanId] = append(kehadiranByKaryawan[k.KaryawanId], k)
	}
	absenByKaryawan := make(map[int64][]Izin)
	for _, a := range absen {
		absenByKaryawan[a.KaryawanId] = append(absenByKaryawan[a.KaryawanId], a)
	}

	laporan := make([]Laporan, 0, len(jadwal))
	for _, j := range jadwal {
		peg, ok := pegawaiById[j.KaryawanId]
		if !ok {
			continue
		}
		instansiId := j.InstansiId
		if instansiId == 0 {
			instansiId = peg.InstansiId
		}

		mulaiHari := awalHari(j.TanggalKerja)
		akhirHari := mulaiHari.Add(24 * time.Hour)

		row := Laporan{
			KaryawanId:   j.KaryawanId,
			InstansiId:   instansiId,
			TanggalKerja: j.TanggalKerja,
			JadwalMasuk:  j.JadwalMasuk,
			JadwalPulang: j.JadwalPulang,
		}

		// Izin menang atas presensi apa pun di hari yang sama.
		if izin := cariIzin(absenByKaryawan[j.KaryawanId], mulaiHari); izin != nil {
			ket := izin.Type
			row.KeteranganAbsen = &ket
			laporan = append(laporan, row)
			continue
		}

		masuk := pilihMasuk(kehadiranByKaryawan[j.KaryawanId], mulaiHari, akhirHari)
		pulang := pilihPulang(kehadiranByKaryawan[j.KaryawanId], mulaiHari, akhirHari)
		if masuk != nil {
			row.JamMasuk = masuk.TanggalMasuk
		}
		if pulang != nil {
			row.JamPulang = pulang.TanggalMasuk
		}
		row.KeteranganHadir = pilihCatatan(masuk, pulang)
		laporan = append(laporan, row)
	}
	return laporan
}

// cariIzin mengembalikan izin pertama yang mencakup hari tersebut
// (tanggal_mulai <= hari <= tanggal_selesai). Urutan slice menentukan pemenang
// jika ada izin yang tumpang tindih.
func cariIzin(daftar []Izin, hari time.Time) *Izin {
	for i := range daftar {
		a := &daftar[i]
		if a.TanggalMulai == nil || a.TanggalSelesai == nil {
			continue
		}
		mulai := awalHari(*a.TanggalMulai)
		selesai := awalHari(*a.TanggalSelesai)
		if !hari.Before(mulai) && !hari.After(selesai) {
			return a
		}
	}
	return nil
}

// pilihMasuk memilih presensi masuk diterima paling awal dalam [mulai, akhir).
// Perbandingan strict menjaga urutan kemunculan saat waktunya sama.
func pilihMasuk(daftar []Presensi, mulai, akhir time.Time) *Presensi {
	var pilihan *Presensi
	for i := range daftar {
		p := &daftar[i]
		if p.Jenis != JenisMasuk || p.TanggalMasuk == nil || !diterima(p.ApproverStatus) {
			continue
		}
		t := *p.TanggalMasuk
		if t.Before(mulai) || !t.Before(akhir) {
			continue
		}
		if pilihan == nil || t.Before(*pilihan.TanggalMasuk) {
			pilihan = p
		}
	}
	return pilihan
}

// pilihPulang memilih presensi pulang diterima paling akhir dalam [mulai, akhir).
func pilihPulang(daftar []Presensi, mulai, akhir time.Time) *Presensi {
	var pilihan *Presensi
	for i := range daftar {
		p := &daftar[i]
		if p.Jenis != JenisPulang || p.TanggalMasuk == nil || !diterima(p.ApproverStatus) {
			continue
		}
		t := *p.TanggalMasuk
		if t.Before(mulai) || !t.Before(akhir) {
			continue
		}
		if pilihan == nil || t.After(*pilihan.TanggalMasuk) {
			pilihan = p
		}
	}
	return pilihan
}

// pilihCatatan mengutamakan catatan presensi masuk yang tidak kosong,
// lalu catatan presensi pulang.
func pilihCatatan(masuk, pulang *Presensi) *string {
	if masuk != nil && masuk.Catatan != nil && *masuk.Catatan != "" {
		return masuk.Catatan
	}
	if pulang != nil {
		return pulang.Catatan
	}
	return nil
}
