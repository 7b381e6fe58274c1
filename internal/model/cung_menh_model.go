package model

// CungMenhLookup maps a lunar birth year and gender to the occupant's cung mệnh.
type CungMenhLookup struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	NamsinhAmlich int    `gorm:"column:namsinh_amlich;index:idx_cung_menh_lookup,unique" json:"namsinh_amlich"`
	Gioitinh      string `gorm:"column:gioitinh;index:idx_cung_menh_lookup,unique" json:"gioitinh"`
	Cungmenh      string `gorm:"column:cungmenh" json:"cungmenh"`
	Hanhcungmenh  string `gorm:"column:hanhcungmenh" json:"hanhcungmenh"`
	Nhombattrach  string `gorm:"column:nhombattrach" json:"nhombattrach"`
}

func (CungMenhLookup) TableName() string {
	return "cung_menh_lookup"
}

// Menh holds the detail of one of the five destiny elements, keyed by
// the element name. A birth year reaches it via its nạp âm element.
type Menh struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Tenmenh          string `gorm:"column:tenmenh;uniqueIndex" json:"tenmenh"`
	TinhchatNguhanh  string `gorm:"column:tinhchat_nguhanh" json:"tinhchat_nguhanh"`
	DiengiaiTongquat string `gorm:"column:diengiai_tongquat" json:"diengiai_tongquat"`
}

func (Menh) TableName() string {
	return "menh"
}

// NapAm describes a 60-year cycle sound element with its imagery.
type NapAm struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Tennapam          string `gorm:"column:tennapam" json:"tennapam"`
	Hanhnguhanh       string `gorm:"column:hanhnguhanh" json:"hanhnguhanh"`
	DiengiaiHinhtuong string `gorm:"column:diengiai_hinhtuong" json:"diengiai_hinhtuong"`
	CacnamsinhVidu    string `gorm:"column:cacnamsinh_vidu" json:"cacnamsinh_vidu"`
}

func (NapAm) TableName() string {
	return "nap_am"
}
