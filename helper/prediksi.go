package helper

import (
	"bytes"
	"fmt"
	"strings"

	"SIREKAP/models"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/linear_models"
	"gorm.io/gorm"
)

// AmbilRiwayatRekap mengambil deret (bulan, tanpa_keterangan) satu pegawai
// dalam satu tahun, terurut naik per bulan, sebagai data latih.
func AmbilRiwayatRekap(db *gorm.DB, karyawanId int64, tahun int) ([][2]int, error) {
	var riwayat []models.RekapBulanan
	err := db.Where("karyawan_id = ? AND tahun = ?", karyawanId, tahun).
		Order("bulan asc").Limit(12).Find(&riwayat).Error
	if err != nil {
		return nil, err
	}

	data := make([][2]int, 0, len(riwayat))
	for _, r := range riwayat {
		data = append(data, [2]int{r.Bulan, r.TanpaKeterangan})
	}
	return data, nil
}

// PrediksiTanpaKeterangan melatih regresi linear bulan -> tanpa_keterangan
// lalu memproyeksikan nilai bulan berikutnya. Hasil negatif dipotong ke nol.
func PrediksiTanpaKeterangan(riwayat [][2]int, bulanBerikut int) (float64, error) {
	if len(riwayat) < 2 {
		return 0, fmt.Errorf("data latih kurang dari dua bulan")
	}

	var csvBuffer bytes.Buffer
	csvBuffer.WriteString("bulan,tanpa_keterangan\n")
	for _, r := range riwayat {
		csvBuffer.WriteString(fmt.Sprintf("%.2f,%.2f\n", float64(r[0]), float64(r[1])))
	}

	instances, err := base.ParseCSVToInstancesFromReader(bytes.NewReader(csvBuffer.Bytes()), true)
	if err != nil {
		return 0, fmt.Errorf("gagal menyusun data latih: %w", err)
	}

	model := linear_models.NewLinearRegression()
	if err := model.Fit(instances); err != nil {
		return 0, fmt.Errorf("gagal melatih model: %w", err)
	}

	predCSV := fmt.Sprintf("bulan,tanpa_keterangan\n%.2f,0.0\n", float64(bulanBerikut))
	predInstances, err := base.ParseCSVToInstancesFromReader(strings.NewReader(predCSV), true)
	if err != nil {
		return 0, fmt.Errorf("gagal menyusun data prediksi: %w", err)
	}

	predictions, err := model.Predict(predInstances)
	if err != nil {
		return 0, fmt.Errorf("prediksi gagal: %w", err)
	}

	classAttrs := predictions.AllClassAttributes()
	if len(classAttrs) == 0 {
		return 0, fmt.Errorf("hasil prediksi tanpa atribut kelas")
	}

	classSpec := base.ResolveAttributes(predictions, classAttrs)[0]
	hasil := base.UnpackBytesToFloat(predictions.Get(classSpec, 0))
	if hasil < 0 {
		hasil = 0
	}
	return hasil, nil
}
