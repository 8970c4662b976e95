package vcard

import (
	"strings"
	"unicode/utf8"
)

// FormattedName 计算 FN：prefix first middle last 以单个空格连接，suffix 跟在逗号之后。
// 导出下载时的文件名也使用这里的结果。
func FormattedName(r ContactRecord) string {
	var parts []string
	for _, s := range []string{r.Prefix, r.First, r.Middle, r.Last} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	fn := strings.Join(parts, " ")
	if r.Suffix != "" {
		if fn == "" {
			return r.Suffix
		}
		fn += ", " + r.Suffix
	}
	return fn
}

// StructuredName N 属性：固定 5 个分量，分量内的 ; 与 , 会被转义
func StructuredName(r ContactRecord) string {
	return joinComponents(r.Last, r.First, r.Middle, r.Prefix, r.Suffix)
}

var textEscaper = strings.NewReplacer(`\`, `\\`, "\r\n", `\n`, "\n", `\n`, "\r", `\n`)

// escapeText 只转义反斜杠和换行，逗号与分号保持原样
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

var componentEscaper = strings.NewReplacer(`\`, `\\`, "\r\n", `\n`, "\n", `\n`, "\r", `\n`, ";", `\;`, ",", `\,`)

// escapeComponent 结构化取值（N ADR CATEGORIES）里的单个分量
func escapeComponent(s string) string {
	return componentEscaper.Replace(s)
}

func joinComponents(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = escapeComponent(p)
	}
	return strings.Join(escaped, ";")
}

// splitEscaped 按未转义的 sep 拆分，各段仍保留转义
func splitEscaped(s string, sep byte) []string {
	var (
		parts []string
		start int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case sep:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// unescapeText \n 还原为换行，其余 \x 还原为 x
func unescapeText(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		if s[i] == 'n' || s[i] == 'N' {
			b.WriteByte('\n')
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// structuredComponents 拆出 n 个去掉转义和首尾空白的分量，不足补空串，多余的丢弃
func structuredComponents(value string, n int) []string {
	parts := splitEscaped(value, ';')
	out := make([]string, n)
	for i := 0; i < n && i < len(parts); i++ {
		out[i] = strings.TrimSpace(unescapeText(parts[i]))
	}
	return out
}

// paramValue 参数值不能含双引号，改写为单引号；含有 , ; : 时整体加引号
func paramValue(s string) string {
	s = strings.ReplaceAll(s, `"`, "'")
	if strings.ContainsAny(s, ",;:") {
		return `"` + s + `"`
	}
	return s
}

const foldWidth = 75

// foldLine 按 75 个八位字节折行，不拆开 UTF-8 字符，续行以一个空格开头
func foldLine(line string) string {
	if len(line) <= foldWidth {
		return line
	}
	var b strings.Builder
	width := foldWidth
	for len(line) > width {
		cut := width
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString("\n ")
		line = line[cut:]
		// 续行首个空格也计入长度
		width = foldWidth - 1
	}
	b.WriteString(line)
	return b.String()
}
