package state

// ExtractedEntities holds everything the classifier pulled out of a message.
// All fields are pointers so a merge can tell "absent" from "empty".
// The json tags are the contract with the classification prompt.
type ExtractedEntities struct {
	NamSinh1       *int    `json:"nam_sinh_1,omitempty"`
	GioiTinh1      *string `json:"gioi_tinh_1,omitempty"`
	NamSinhAlias1  *string `json:"nam_sinh_alias_1,omitempty"`
	NamSinh2       *int    `json:"nam_sinh_2,omitempty"`
	GioiTinh2      *string `json:"gioi_tinh_2,omitempty"`
	NamSinhAlias2  *string `json:"nam_sinh_alias_2,omitempty"`
	HuongNha       *string `json:"huong_nha,omitempty"`
	VatPham        *string `json:"vat_pham,omitempty"`
	KeywordLoanDau *string `json:"keyword_loandau,omitempty"`
	NamSinhAlias   *string `json:"nam_sinh_alias,omitempty"`
}

// Entity keys as they appear in prompts and missing-info tracking.
const (
	KeyNamSinh1       = "nam_sinh_1"
	KeyGioiTinh1      = "gioi_tinh_1"
	KeyNamSinh2       = "nam_sinh_2"
	KeyGioiTinh2      = "gioi_tinh_2"
	KeyHuongNha       = "huong_nha"
	KeyVatPham        = "vat_pham"
	KeyKeywordLoanDau = "keyword_loandau"
)

// Merge overlays non-nil fields of other onto a copy of e.
// Merging the same overlay twice yields the same result.
func (e ExtractedEntities) Merge(other ExtractedEntities) ExtractedEntities {
	out := e
	if other.NamSinh1 != nil {
		out.NamSinh1 = other.NamSinh1
	}
	if other.GioiTinh1 != nil {
		out.GioiTinh1 = other.GioiTinh1
	}
	if other.NamSinhAlias1 != nil {
		out.NamSinhAlias1 = other.NamSinhAlias1
	}
	if other.NamSinh2 != nil {
		out.NamSinh2 = other.NamSinh2
	}
	if other.GioiTinh2 != nil {
		out.GioiTinh2 = other.GioiTinh2
	}
	if other.NamSinhAlias2 != nil {
		out.NamSinhAlias2 = other.NamSinhAlias2
	}
	if other.HuongNha != nil {
		out.HuongNha = other.HuongNha
	}
	if other.VatPham != nil {
		out.VatPham = other.VatPham
	}
	if other.KeywordLoanDau != nil {
		out.KeywordLoanDau = other.KeywordLoanDau
	}
	if other.NamSinhAlias != nil {
		out.NamSinhAlias = other.NamSinhAlias
	}
	return out
}

// Has reports whether the entity behind the given key is present.
func (e ExtractedEntities) Has(key string) bool {
	switch key {
	case KeyNamSinh1:
		return e.NamSinh1 != nil
	case KeyGioiTinh1:
		return e.GioiTinh1 != nil
	case KeyNamSinh2:
		return e.NamSinh2 != nil
	case KeyGioiTinh2:
		return e.GioiTinh2 != nil
	case KeyHuongNha:
		return e.HuongNha != nil
	case KeyVatPham:
		return e.VatPham != nil
	case KeyKeywordLoanDau:
		return e.KeywordLoanDau != nil
	}
	return false
}
