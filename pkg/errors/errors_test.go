package errors

import "testing"

// ── 预订失败分类测试 ──

func TestClassifyBookingError_ConflictByCode(t *testing.T) {
	kind := ClassifyBookingError(400, CodeSlotConflict, "")
	if kind != KindConflict {
		t.Errorf("期望 KindConflict，实际: %s", kind)
	}
}

func TestClassifyBookingError_ConflictByLegacyMessage(t *testing.T) {
	// 遗留服务无结构化错误码，仅凭文案子串
	kind := ClassifyBookingError(400, 0, "Tài sản này đã hết chỗ trong khung giờ này")
	if kind != KindConflict {
		t.Errorf("期望 KindConflict，实际: %s", kind)
	}
}

func TestClassifyBookingError_LegacyHints(t *testing.T) {
	cases := []string{
		"Phòng họp đã được đặt vào khung giờ bạn chọn",
		"Sân cầu lông không còn trống",
	}
	for _, msg := range cases {
		if kind := ClassifyBookingError(400, 0, msg); kind != KindConflict {
			t.Errorf("文案 %q 期望 KindConflict，实际: %s", msg, kind)
		}
	}
}

func TestClassifyBookingError_ValidationFallback(t *testing.T) {
	kind := ClassifyBookingError(400, 30001, "Thiếu thông tin bắt buộc")
	if kind != KindValidation {
		t.Errorf("期望 KindValidation，实际: %s", kind)
	}
}

func TestClassifyBookingError_ServerErrorIsTransient(t *testing.T) {
	kind := ClassifyBookingError(500, 50000, "Lỗi hệ thống, vui lòng thử lại sau")
	if kind != KindTransient {
		t.Errorf("期望 KindTransient，实际: %s", kind)
	}
}

func TestClassifyBookingError_SuccessStatusIsTransient(t *testing.T) {
	// 非错误状态不应被分类为业务失败
	if kind := ClassifyBookingError(200, 0, ""); kind != KindTransient {
		t.Errorf("期望 KindTransient，实际: %s", kind)
	}
}
