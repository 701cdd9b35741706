package service

import (
	"testing"

	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/model"
)

// ── 编码测试 ──

func TestEncodeReason_TemporaryAbsence(t *testing.T) {
	got := EncodeReason(model.RequestTemporaryAbsence, ReasonFields{
		Destination:   "TP.HCM",
		Justification: "công tác",
	})
	want := "Nơi đến: TP.HCM - Lý do: công tác"
	if got != want {
		t.Errorf("期望 %q，实际 %q", want, got)
	}
}

func TestEncodeReason_TemporaryAbsenceWithMember(t *testing.T) {
	got := EncodeReason(model.RequestTemporaryAbsence, ReasonFields{
		Member:        "Nguyễn Văn An",
		Destination:   "Đà Nẵng",
		Justification: "học tập",
	})
	want := "Tạm vắng thành viên: Nguyễn Văn An. Nơi đến: Đà Nẵng - Lý do: học tập"
	if got != want {
		t.Errorf("期望 %q，实际 %q", want, got)
	}
}

func TestEncodeReason_TemporaryResidence(t *testing.T) {
	got := EncodeReason(model.RequestTemporaryResidence, ReasonFields{
		Origin:        "Hải Phòng",
		Justification: "làm việc tại thành phố",
	})
	want := "Nơi ở hiện tại: Hải Phòng - Lý do: làm việc tại thành phố"
	if got != want {
		t.Errorf("期望 %q，实际 %q", want, got)
	}
}

func TestEncodeReason_HouseholdChangeVerbatim(t *testing.T) {
	got := EncodeReason(model.RequestHouseholdChange, ReasonFields{
		Justification: "Khai sinh con trai đầu lòng",
	})
	if got != "Khai sinh con trai đầu lòng" {
		t.Errorf("户籍变动应原样存储事由，实际 %q", got)
	}
}

// ── 往返性质测试 ──

func TestReasonRoundTrip_Absence(t *testing.T) {
	in := ReasonFields{
		Destination:   "Hà Nội",
		Justification: "Thăm người nhà",
	}
	out := DecodeReason(model.RequestTemporaryAbsence, EncodeReason(model.RequestTemporaryAbsence, in))
	if out != in {
		t.Errorf("往返失真: 期望 %+v，实际 %+v", in, out)
	}
}

func TestReasonRoundTrip_AbsenceWithMember(t *testing.T) {
	in := ReasonFields{
		Member:        "Trần Thị Bình",
		Destination:   "Cần Thơ",
		Justification: "chăm sóc cha mẹ",
	}
	out := DecodeReason(model.RequestTemporaryAbsence, EncodeReason(model.RequestTemporaryAbsence, in))
	if out != in {
		t.Errorf("往返失真: 期望 %+v，实际 %+v", in, out)
	}
}

func TestReasonRoundTrip_Residence(t *testing.T) {
	in := ReasonFields{
		Origin:        "Nghệ An",
		Justification: "thuê nhà làm việc",
	}
	out := DecodeReason(model.RequestTemporaryResidence, EncodeReason(model.RequestTemporaryResidence, in))
	if out != in {
		t.Errorf("往返失真: 期望 %+v，实际 %+v", in, out)
	}
}

// ── 解码全函数性测试 ──

func TestDecodeReason_NoMarkersFallsBackToJustification(t *testing.T) {
	out := DecodeReason(model.RequestTemporaryAbsence, "về quê ăn Tết")
	if out.Justification != "về quê ăn Tết" {
		t.Errorf("无标记时整串应降级为事由，实际 %+v", out)
	}
	if out.Member != "" || out.Destination != "" {
		t.Errorf("其余子字段应为空，实际 %+v", out)
	}
}

func TestDecodeReason_MissingMarkerYieldsEmptyField(t *testing.T) {
	// 只有目的地标记，事由标记缺失
	out := DecodeReason(model.RequestTemporaryAbsence, "Nơi đến: Huế")
	if out.Destination != "Huế" {
		t.Errorf("期望 Destination=Huế，实际 %q", out.Destination)
	}
	if out.Justification != "" {
		t.Errorf("缺失标记的子字段应为空，实际 %q", out.Justification)
	}
}

func TestDecodeReason_EmptyBlob(t *testing.T) {
	out := DecodeReason(model.RequestTemporaryResidence, "")
	if out != (ReasonFields{}) {
		t.Errorf("空串应解出全空子字段，实际 %+v", out)
	}
}

func TestDecodeReason_HouseholdChange(t *testing.T) {
	out := DecodeReason(model.RequestHouseholdChange, "Chuyển hộ khẩu về quê")
	if out.Justification != "Chuyển hộ khẩu về quê" {
		t.Errorf("期望事由原样返回，实际 %q", out.Justification)
	}
}
