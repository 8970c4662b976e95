package vcard

import (
	"strconv"
	"strings"
	"time"
)

// OmitYearParam Apple 系客户端用来表示"年份无意义"的参数
const OmitYearParam = "X-APPLE-OMIT-YEAR"

// OmitYearSentinel 年份未知时编码使用的占位年份
const OmitYearSentinel = 1604

// DateParts 日期解析结果，0 表示该分量未知
type DateParts struct {
	Year  int
	Month int
	Day   int
}

// Yearless 返回月日部分，月或日缺失时返回零值
func (p DateParts) Yearless() YearlessDate {
	if p.Month == 0 || p.Day == 0 {
		return YearlessDate{}
	}
	return YearlessDate{Month: time.Month(p.Month), Day: p.Day}
}

// Valid 月日齐全且日期存在；Year 为 0 时二月 29 日合法
func (p DateParts) Valid() bool {
	return p.Month != 0 && p.Day != 0 && validDateParts(p)
}

// ParseDate 解析 BDAY / ANNIVERSARY 的取值，omitYear 为 true 时丢弃年份。
// 无法识别的格式返回全零，不报错。
func ParseDate(raw string, omitYear bool) DateParts {
	return parseDateAt(raw, omitYear, time.Now())
}

// parseDateAt 两位年份按 now 所在世纪开窗
func parseDateAt(raw string, omitYear bool, now time.Time) DateParts {
	p, ok := splitDate(strings.TrimSpace(raw), now)
	if !ok || !validDateParts(p) {
		return DateParts{}
	}
	if omitYear {
		p.Year = 0
	}
	return p
}

func splitDate(s string, now time.Time) (DateParts, bool) {
	delim := ""
	switch {
	case strings.Contains(s, "-"):
		delim = "-"
	case strings.Contains(s, "/"):
		delim = "/"
	}

	if delim == "" {
		if !allDigits(s) {
			return DateParts{}, false
		}
		switch len(s) {
		case 8:
			return DateParts{Year: atoi(s[0:4]), Month: atoi(s[4:6]), Day: atoi(s[6:8])}, true
		case 6:
			return DateParts{Year: windowYear(atoi(s[0:2]), now), Month: atoi(s[2:4]), Day: atoi(s[4:6])}, true
		case 4:
			return DateParts{Year: atoi(s)}, true
		}
		return DateParts{}, false
	}

	parts := strings.Split(s, delim)
	for _, part := range parts {
		if !allDigits(part) && part != "" {
			return DateParts{}, false
		}
	}

	switch strings.Count(s, delim) {
	case 1:
		if len(s) != 7 {
			return DateParts{}, false
		}
		switch strings.Index(s, delim) {
		case 4: // YYYY-MM
			return DateParts{Year: atoi(s[0:4]), Month: atoi(s[5:7])}, true
		case 2: // MM-YYYY
			return DateParts{Year: atoi(s[3:7]), Month: atoi(s[0:2])}, true
		}
	case 2:
		if len(s) == 10 && s[4] == delim[0] && s[7] == delim[0] {
			return DateParts{Year: atoi(s[0:4]), Month: atoi(s[5:7]), Day: atoi(s[8:10])}, true
		}
		// --MMDD
		if len(s) == 6 && s[0] == delim[0] && s[1] == delim[0] && allDigits(s[2:]) {
			return DateParts{Month: atoi(s[2:4]), Day: atoi(s[4:6])}, true
		}
	}
	return DateParts{}, false
}

// windowYear 两位年份不大于当前两位年份时归入本世纪，否则归入上世纪
func windowYear(yy int, now time.Time) int {
	century := now.Year() / 100 * 100
	if yy <= now.Year()%100 {
		return century + yy
	}
	return century - 100 + yy
}

func validDateParts(p DateParts) bool {
	if p.Month == 0 && p.Day != 0 {
		return false
	}
	if p.Month != 0 && (p.Month < 1 || p.Month > 12) {
		return false
	}
	if p.Day != 0 && p.Day > daysIn(time.Month(p.Month), p.Year) {
		return false
	}
	if p.Year == 0 && p.Month == 0 {
		return false
	}
	return true
}

// daysIn 年份未知时二月按 29 天
func daysIn(m time.Month, year int) int {
	if year == 0 {
		year = 2000
	}
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// formatDate 编码为 YYYYMMDD，年份未知时写入占位年份，第二个返回值表示是否需要 omit-year 参数
func formatDate(d YearlessDate, year int) (string, bool) {
	omit := year == 0
	if omit {
		year = OmitYearSentinel
	}
	return leftPad(year, 4) + leftPad(int(d.Month), 2) + leftPad(d.Day, 2), omit
}

func leftPad(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
