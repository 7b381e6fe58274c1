package model

// MenhHuongRule pairs an occupant's destiny element with a house direction.
type MenhHuongRule struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Menhgiachu       string `gorm:"column:menhgiachu;index:idx_menh_huong,unique" json:"menhgiachu"`
	Huongnha         string `gorm:"column:huongnha;index:idx_menh_huong,unique" json:"huongnha"`
	MoiquanheNguhanh string `gorm:"column:moiquanhe_nguhanh" json:"moiquanhe_nguhanh"`
	DiengiaiNguhanh  string `gorm:"column:diengiai_nguhanh" json:"diengiai_nguhanh"`
	Ketluanchinh     string `gorm:"column:ketluanchinh" json:"ketluanchinh"`
}

func (MenhHuongRule) TableName() string {
	return "menh_huong_rules"
}

// MenhMenhRule describes the compatibility between two nạp âm destinies.
// Rows are stored in one order only; lookups must try both orders.
type MenhMenhRule struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Napam1           string `gorm:"column:napam1;index:idx_menh_menh,unique" json:"napam1"`
	Napam2           string `gorm:"column:napam2;index:idx_menh_menh,unique" json:"napam2"`
	MoiquanheNguhanh string `gorm:"column:moiquanhe_nguhanh" json:"moiquanhe_nguhanh"`
	DiengiaiNguhanh  string `gorm:"column:diengiai_nguhanh" json:"diengiai_nguhanh"`
	Ketluanchinh     string `gorm:"column:ketluanchinh" json:"ketluanchinh"`
}

func (MenhMenhRule) TableName() string {
	return "menh_menh_rules"
}
