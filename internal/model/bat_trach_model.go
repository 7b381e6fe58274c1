package model

// CungMenhHuongRule is the Bát Trạch verdict for a cung mệnh facing a direction.
type CungMenhHuongRule struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	CungmenhGiachu    string `gorm:"column:cungmenh_giachu;index:idx_cung_menh_huong,unique" json:"cungmenh_giachu"`
	Huongnha          string `gorm:"column:huongnha;index:idx_cung_menh_huong,unique" json:"huongnha"`
	TencungviTaothanh string `gorm:"column:tencungvi_taothanh" json:"tencungvi_taothanh"`
	KetluanNgangon    string `gorm:"column:ketluan_ngangon" json:"ketluan_ngangon"`
}

func (CungMenhHuongRule) TableName() string {
	return "cung_menh_huong_rules"
}

// BatTrachCungVi describes one of the eight Bát Trạch palaces.
type BatTrachCungVi struct {
	ID                      uint   `gorm:"primaryKey" json:"id"`
	Tencung                 string `gorm:"column:tencung;uniqueIndex" json:"tencung"`
	Loaicung                string `gorm:"column:loaicung" json:"loaicung"`
	LinhvucAnhhuongManhnhat string `gorm:"column:linhvuc_anhhuong_manhnhat" json:"linhvuc_anhhuong_manhnhat"`
	TacdongTichcuc          string `gorm:"column:tacdong_tichcuc" json:"tacdong_tichcuc"`
}

func (BatTrachCungVi) TableName() string {
	return "bat_trach_cung_vi"
}
