package asset

// CanonicalField names one attribute of the normalized asset schema. The set
// is closed: source columns that do not resolve to one of these are dropped,
// never invented.
type CanonicalField string

const (
	FieldNoKib         CanonicalField = "no_kib"
	FieldNoUrut        CanonicalField = "no_urut"
	FieldKodeLokasi    CanonicalField = "kode_lokasi"
	FieldKodeAset      CanonicalField = "kode_aset"
	FieldSatuanKerja   CanonicalField = "satuan_kerja"
	FieldNamaAsset     CanonicalField = "nama_asset"
	FieldJenisBarang   CanonicalField = "jenis_barang_nama_barang"
	FieldNomor         CanonicalField = "nomor"
	FieldLuas          CanonicalField = "luas"
	FieldTahun         CanonicalField = "tahun"
	FieldKecamatan     CanonicalField = "kecamatan"
	FieldAlamat        CanonicalField = "alamat"
	FieldStatusTanah   CanonicalField = "status_tanah"
	FieldCatatan       CanonicalField = "catatan"
	FieldK3            CanonicalField = "k3"
	FieldPemetaan      CanonicalField = "pemetaan"
	FieldTanahBangunan CanonicalField = "tanah_bangunan"
	FieldNilaiHarga    CanonicalField = "nilai_harga"
	FieldAsalUsul      CanonicalField = "asal_usul"
	FieldJumlahBidang  CanonicalField = "jumlah_bidang"
	FieldKeterangan    CanonicalField = "keterangan"
	FieldLainLain      CanonicalField = "lain_lain"
)

// LabelMapping pairs a header label seen in source workbooks with the
// canonical field it feeds.
type LabelMapping struct {
	Label string
	Field CanonicalField
}

// LabelMappings is the recognized header vocabulary in matching order.
// Substring resolution walks this table top to bottom, so order is part of
// the contract. The "Penggunaan" entry feeds nama_asset: the usage column
// carries the asset name in the source forms, while the literal goods-type
// column keeps its own field.
var LabelMappings = []LabelMapping{
	{"NO. KIB 2023", FieldNoKib},
	{"No.", FieldNoUrut},
	{"Kode Lokasi", FieldKodeLokasi},
	{"Satuan Kerja", FieldSatuanKerja},
	{"Jenis Barang / Nama Barang", FieldJenisBarang},
	{"Nomor", FieldNomor},
	{"Luas (m2)", FieldLuas},
	{"Tahun", FieldTahun},
	{"Status Tanah", FieldStatusTanah},
	{"Penggunaan", FieldNamaAsset},
	{"Asal Usul", FieldAsalUsul},
	{"Nilai / Harga", FieldNilaiHarga},
	{"Keterangan", FieldKeterangan},
	{"Kode Aset", FieldKodeAset},
	{"JUMLAH BIDANG", FieldJumlahBidang},
	{"KECAMATAN", FieldKecamatan},
	{"PEMETAAN ASET TANAH", FieldPemetaan},
	{"CATATAN (TERMANFAATKAN/TERLANTAR)", FieldCatatan},
	{"K3 (MILIK WARGA/ADA KLAIM, TKD, DLL)", FieldK3},
	{"TANAH (BANGUNAN/TANAH KOSONG)", FieldTanahBangunan},
	{"LAIN-LAIN", FieldLainLain},
	{"Letak/Alamat", FieldAlamat},
	{"Letak / Alamat", FieldAlamat},
	{"Location/Address", FieldAlamat},
}

// StatusFields lists the five status-bearing fields in the order their
// values are merged into the composite status.
var StatusFields = []CanonicalField{
	FieldStatusTanah,
	FieldCatatan,
	FieldK3,
	FieldPemetaan,
	FieldTanahBangunan,
}

// StatusKeywords is the canonical status vocabulary. It seeds the status
// filter choices while the asset table is still empty.
var StatusKeywords = []string{
	"TERMANFAATKAN", "TERLANTAR", "BERSERTIFIKAT", "TKD",
	"BELUM TERPETAKAN", "SUDAH TERPETAKAN", "HAK PAKAI",
	"MILIK WARGA", "ADA KLAIM", "BANGUNAN", "TANAH KOSONG",
	"BELUM DISURVEY", "SUDAH PEMAPARAN",
}
