package vcard

import (
	"strings"

	"go.uber.org/zap"
)

// component 一个 BEGIN:VCARD 与 END:VCARD 之间的内容行（不含首尾两行）
type component struct {
	index int
	lines []string
}

// logicalLines 统一换行符并展开折行
func logicalLines(text string) []string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var out []string
	for _, raw := range strings.Split(text, "\n") {
		if raw == "" {
			continue
		}
		if (raw[0] == ' ' || raw[0] == '\t') && len(out) > 0 {
			out[len(out)-1] += raw[1:]
			continue
		}
		out = append(out, raw)
	}
	return out
}

// propertyName 返回大写的属性名（去掉分组前缀）与取值，没有冒号时 ok 为 false
func propertyName(line string) (name, value string, ok bool) {
	colon := colonIndex(line)
	if colon < 0 {
		return "", "", false
	}
	head := line[:colon]
	if i := strings.IndexByte(head, ';'); i >= 0 {
		head = head[:i]
	}
	if i := strings.LastIndexByte(head, '.'); i >= 0 {
		head = head[i+1:]
	}
	return strings.ToUpper(strings.TrimSpace(head)), line[colon+1:], true
}

// colonIndex 第一个不在引号内的冒号
func colonIndex(line string) int {
	quoted := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			quoted = !quoted
		case ':':
			if !quoted {
				return i
			}
		}
	}
	return -1
}

// splitComponents 校验 BEGIN/END 配对，遇到第一个结构错误即停止，
// 已经完整读出的组件与错误一起返回
func splitComponents(text string) ([]component, error) {
	var (
		comps []component
		cur   *component
		begin int
	)
	errAt := func(line int, reason string) error {
		return &MalformedVcardError{Index: len(comps), Line: line, Reason: reason}
	}

	for i, line := range logicalLines(text) {
		lineNo := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, value, ok := propertyName(line)

		if cur == nil {
			if !ok || name != "BEGIN" {
				return comps, errAt(lineNo, "content outside BEGIN:VCARD/END:VCARD")
			}
			if !strings.EqualFold(strings.TrimSpace(value), "VCARD") {
				return comps, errAt(lineNo, "BEGIN value is not VCARD")
			}
			cur = &component{index: len(comps)}
			begin = lineNo
			continue
		}

		switch {
		case !ok:
			zap.L().Debug("vcard line without colon dropped", zap.Int("component", cur.index), zap.Int("line", lineNo))
		case name == "BEGIN":
			return comps, errAt(lineNo, "BEGIN before END:VCARD of the previous component")
		case name == "END":
			if !strings.EqualFold(strings.TrimSpace(value), "VCARD") {
				return comps, errAt(lineNo, "END value is not VCARD")
			}
			comps = append(comps, *cur)
			cur = nil
		default:
			cur.lines = append(cur.lines, normalizeParams(strings.TrimLeft(line, " \t")))
		}
	}

	if cur != nil {
		return comps, errAt(begin, "missing END:VCARD")
	}
	return comps, nil
}

// normalizeParams 把 vCard 2.1 风格的裸参数（TEL;WORK;VOICE:）改写为 TYPE=
func normalizeParams(line string) string {
	colon := colonIndex(line)
	head := line[:colon]
	if !strings.Contains(head, ";") {
		return line
	}
	segs := splitUnquoted(head, ';')
	changed := false
	for i := 1; i < len(segs); i++ {
		if segs[i] != "" && !strings.Contains(segs[i], "=") {
			segs[i] = "TYPE=" + segs[i]
			changed = true
		}
	}
	if !changed {
		return line
	}
	return strings.Join(segs, ";") + line[colon:]
}

// splitUnquoted 按 sep 切分，忽略引号内的分隔符
func splitUnquoted(s string, sep byte) []string {
	var (
		out    []string
		quoted bool
		start  int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			quoted = !quoted
		case sep:
			if !quoted {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return append(out, s[start:])
}
