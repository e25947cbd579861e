package client

import (
	"encoding/json"
	"strings"
)

// NormalizeCollection đưa mọi kiểu bọc response của backend về một mảng phần tử.
// Backend lúc trả mảng trần, lúc bọc trong "data", lúc bọc "data.data" (phân
// trang). Đây là nơi duy nhất xử lý chuỗi fallback đó: dữ liệu không hợp lệ
// trả về mảng rỗng, không bao giờ lỗi.
func NormalizeCollection(raw []byte) []json.RawMessage {
	if len(raw) == 0 {
		return []json.RawMessage{}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		return items
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return []json.RawMessage{}
	}

	inner, ok := wrapper["data"]
	if !ok {
		return []json.RawMessage{}
	}
	if err := json.Unmarshal(inner, &items); err == nil {
		return items
	}

	// Dạng phân trang: data.data
	var nested map[string]json.RawMessage
	if err := json.Unmarshal(inner, &nested); err != nil {
		return []json.RawMessage{}
	}
	deep, ok := nested["data"]
	if !ok {
		return []json.RawMessage{}
	}
	if err := json.Unmarshal(deep, &items); err == nil {
		return items
	}
	return []json.RawMessage{}
}

// NormalizeStringList chấp nhận cả mảng JSON lẫn chuỗi phân tách bằng dấu phẩy
func NormalizeStringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, s := range list {
			if t := strings.TrimSpace(s); t != "" {
				out = append(out, t)
			}
		}
		return out
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return []string{}
	}
	return SplitCommaList(s)
}

// SplitCommaList tách "Hành động, Tâm lý" thành từng phần đã trim
func SplitCommaList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
