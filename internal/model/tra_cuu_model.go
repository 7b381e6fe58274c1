package model

// Huong is one of the eight compass directions with its element.
type Huong struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Tenhuong    string `gorm:"column:tenhuong;uniqueIndex" json:"tenhuong"`
	Hanhnguhanh string `gorm:"column:hanhnguhanh" json:"hanhnguhanh"`
}

func (Huong) TableName() string {
	return "huong"
}

// VatPhamPhongThuy is a feng-shui item with its uses and taboos.
type VatPhamPhongThuy struct {
	ID                     uint   `gorm:"primaryKey" json:"id"`
	Tenvatpham             string `gorm:"column:tenvatpham;uniqueIndex" json:"tenvatpham"`
	CongdungchinhSo1       string `gorm:"column:congdungchinh_so1" json:"congdungchinh_so1"`
	CongdungphuSo2         string `gorm:"column:congdungphu_so2" json:"congdungphu_so2"`
	LuyCamkyQuantrong      string `gorm:"column:luy_camky_quantrong" json:"luy_camky_quantrong"`
	DiengiaiCongdungTailoc string `gorm:"column:diengiai_congdung_tailoc" json:"diengiai_congdung_tailoc"`
}

func (VatPhamPhongThuy) TableName() string {
	return "vat_pham_phong_thuy"
}

// PhiTinhLuuNien holds the yearly flying-star auspicious and hostile sectors.
type PhiTinhLuuNien struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	NamDuonglich       int    `gorm:"column:nam_duonglich;uniqueIndex" json:"nam_duonglich"`
	NamAmlichCanchi    string `gorm:"column:nam_amlich_canchi" json:"nam_amlich_canchi"`
	PhuongviDaicatSo1  string `gorm:"column:phuongvi_daicat_so1" json:"phuongvi_daicat_so1"`
	PhuongviDaihungSo1 string `gorm:"column:phuongvi_daihung_so1" json:"phuongvi_daihung_so1"`
}

func (PhiTinhLuuNien) TableName() string {
	return "phi_tinh_luu_nien"
}
