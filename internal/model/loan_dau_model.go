package model

import "gorm.io/datatypes"

// NgoaiCanhSatKhi is a hostile external landform (sát khí) around the house.
type NgoaiCanhSatKhi struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Tensatkhi        string         `gorm:"column:tensatkhi;uniqueIndex" json:"tensatkhi"`
	KeywordsNhandien datatypes.JSON `gorm:"column:keywords_nhandien" json:"keywords_nhandien"`
	MucdoNguyhiem    string         `gorm:"column:mucdo_nguyhiem" json:"mucdo_nguyhiem"`
	GiaiphapUutien1  string         `gorm:"column:giaiphap_uutien_1" json:"giaiphap_uutien_1"`
	MotaNhandien     string         `gorm:"column:mota_nhandien" json:"mota_nhandien"`
}

func (NgoaiCanhSatKhi) TableName() string {
	return "ngoai_canh_sat_khi"
}

// LoanDauCatTuong is an auspicious external landform (thế đất).
type LoanDauCatTuong struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Tenthedat         string         `gorm:"column:tenthedat;uniqueIndex" json:"tenthedat"`
	KeywordsNhandien  datatypes.JSON `gorm:"column:keywords_nhandien" json:"keywords_nhandien"`
	MucdoCattuong     string         `gorm:"column:mucdo_cattuong" json:"mucdo_cattuong"`
	DiengiaiTacdong   string         `gorm:"column:diengiai_tacdong" json:"diengiai_tacdong"`
	GiaiphapKichhoat1 string         `gorm:"column:giaiphap_kichhoat_1" json:"giaiphap_kichhoat_1"`
	MotaNhandien      string         `gorm:"column:mota_nhandien" json:"mota_nhandien"`
}

func (LoanDauCatTuong) TableName() string {
	return "loan_dau_cat_tuong"
}
