package response

import (
	"fmt"
	"strings"

	"phongthuy-chatbot-be/internal/model"
	"phongthuy-chatbot-be/pkg/chat/search"
	"phongthuy-chatbot-be/pkg/chat/state"
)

// digestOrder fixes the order facts appear in the synthesis prompt.
var digestOrder = []state.ResultKey{
	state.ResultCungMenh1,
	state.ResultMenh1,
	state.ResultNapAm1,
	state.ResultCungMenh2,
	state.ResultMenh2,
	state.ResultNapAm2,
	state.ResultBatTrachRule,
	state.ResultCungViDetail,
	state.ResultMenhHuongRule,
	state.ResultMenhMenhRule,
	state.ResultHuong,
	state.ResultVatPham,
	state.ResultPhiTinh,
	state.ResultSatKhi,
	state.ResultCatTuong,
	state.ResultSearchMatch,
}

// BuildDigest renders workflow results as labeled Vietnamese facts for the
// synthesis prompt. Internal ids and empty fields never appear here; the
// model should only ever see domain facts.
func BuildDigest(cc *state.ChatContext) string {
	var lines []string

	for _, key := range digestOrder {
		value, ok := cc.Result(key)
		if !ok {
			continue
		}
		if line := renderResult(key, value); line != "" {
			lines = append(lines, line)
		}
	}

	if cc.Intent == state.IntentLookupNamSinh && cc.Entities.GioiTinh1 == nil {
		lines = append(lines, "Lưu ý: chưa rõ giới tính nên chưa xác định được cung mệnh bát trạch.")
	}

	return strings.Join(lines, "\n")
}

func renderResult(key state.ResultKey, value any) string {
	switch v := value.(type) {
	case *model.CungMenhLookup:
		label := "Gia chủ"
		if key == state.ResultCungMenh2 {
			label = "Người thứ hai"
		}
		return fmt.Sprintf("%s sinh năm %d (%s): cung %s, hành %s, nhóm %s.",
			label, v.NamsinhAmlich, v.Gioitinh, v.Cungmenh, v.Hanhcungmenh, v.Nhombattrach)
	case *model.Menh:
		line := fmt.Sprintf("Mệnh %s: %s.", v.Tenmenh, v.TinhchatNguhanh)
		if v.DiengiaiTongquat != "" {
			line += " " + v.DiengiaiTongquat
		}
		return line
	case *model.NapAm:
		label := "Nạp âm"
		if key == state.ResultNapAm2 {
			label = "Nạp âm người thứ hai"
		}
		line := fmt.Sprintf("%s: %s, hành %s.", label, v.Tennapam, v.Hanhnguhanh)
		if v.DiengiaiHinhtuong != "" {
			line += " Hình tượng: " + v.DiengiaiHinhtuong
		}
		return line
	case *model.CungMenhHuongRule:
		return fmt.Sprintf("Bát trạch: cung %s gặp hướng %s tạo thành cung %s. Kết luận: %s",
			v.CungmenhGiachu, v.Huongnha, v.TencungviTaothanh, v.KetluanNgangon)
	case *model.BatTrachCungVi:
		return fmt.Sprintf("Cung %s thuộc loại %s, ảnh hưởng mạnh nhất đến %s. Tác động: %s",
			v.Tencung, v.Loaicung, v.LinhvucAnhhuongManhnhat, v.TacdongTichcuc)
	case *model.MenhHuongRule:
		return fmt.Sprintf("Ngũ hành mệnh %s với hướng %s: %s. %s Kết luận: %s",
			v.Menhgiachu, v.Huongnha, v.MoiquanheNguhanh, v.DiengiaiNguhanh, v.Ketluanchinh)
	case *model.MenhMenhRule:
		return fmt.Sprintf("Quan hệ hai nạp âm %s và %s: %s. %s Kết luận: %s",
			v.Napam1, v.Napam2, v.MoiquanheNguhanh, v.DiengiaiNguhanh, v.Ketluanchinh)
	case *model.Huong:
		return fmt.Sprintf("Hướng %s thuộc hành %s.", v.Tenhuong, v.Hanhnguhanh)
	case *model.VatPhamPhongThuy:
		var b strings.Builder
		fmt.Fprintf(&b, "Vật phẩm %s. Công dụng chính: %s.", v.Tenvatpham, v.CongdungchinhSo1)
		if v.CongdungphuSo2 != "" {
			fmt.Fprintf(&b, " Công dụng phụ: %s.", v.CongdungphuSo2)
		}
		if v.LuyCamkyQuantrong != "" {
			fmt.Fprintf(&b, " Cấm kỵ quan trọng: %s.", v.LuyCamkyQuantrong)
		}
		if v.DiengiaiCongdungTailoc != "" {
			fmt.Fprintf(&b, " Về tài lộc: %s", v.DiengiaiCongdungTailoc)
		}
		return b.String()
	case *model.PhiTinhLuuNien:
		return fmt.Sprintf("Phi tinh năm %d (%s): phương vị đại cát là %s, phương vị đại hung là %s.",
			v.NamDuonglich, v.NamAmlichCanchi, v.PhuongviDaicatSo1, v.PhuongviDaihungSo1)
	case *model.NgoaiCanhSatKhi:
		return fmt.Sprintf("Sát khí %s, mức độ nguy hiểm: %s. Nhận diện: %s Giải pháp ưu tiên: %s",
			v.Tensatkhi, v.MucdoNguyhiem, v.MotaNhandien, v.GiaiphapUutien1)
	case *model.LoanDauCatTuong:
		return fmt.Sprintf("Thế đất %s, mức độ cát tường: %s. Tác động: %s Cách kích hoạt: %s",
			v.Tenthedat, v.MucdoCattuong, v.DiengiaiTacdong, v.GiaiphapKichhoat1)
	case *search.Candidate:
		method := "tìm kiếm ngữ nghĩa"
		if v.Method == search.MethodLLMRerank {
			method = "xếp hạng lại bằng mô hình"
		}
		return fmt.Sprintf("(Khớp với %q qua %s, độ tương đồng %.2f.)", v.Name, method, v.Score)
	}
	return ""
}
