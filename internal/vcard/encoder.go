package vcard

import (
	"strings"
	"time"

	govcard "github.com/emersion/go-vcard"
)

// RevisionLayout REV 属性的 UTC 时间格式
const RevisionLayout = "20060102T150405Z"

// Encoder 名片编码器，零值不可用，请使用 NewEncoder
type Encoder struct {
	now  func() time.Time
	fold bool
}

type EncoderOption func(*Encoder)

// WithClock 替换 REV 使用的时钟
func WithClock(now func() time.Time) EncoderOption {
	return func(e *Encoder) { e.now = now }
}

// WithLineFolding 开启 75 字节折行，默认不折行
func WithLineFolding() EncoderOption {
	return func(e *Encoder) { e.fold = true }
}

func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEncoder = NewEncoder()

// Encode 使用默认编码器序列化一条记录
func Encode(r ContactRecord, ch Children) string {
	return defaultEncoder.Encode(r, ch)
}

// EncodeBundle 等价于 Encode(b.Record, b.Children)
func (e *Encoder) EncodeBundle(b Bundle) string {
	return e.Encode(b.Record, b.Children)
}

// lineWriter 收集一张名片的属性行
type lineWriter struct {
	b    strings.Builder
	fold bool
}

func (w *lineWriter) line(name string, params []string, value string) {
	l := name
	for _, p := range params {
		l += ";" + p
	}
	l += ":" + value
	if w.fold {
		l = foldLine(l)
	}
	w.b.WriteString(l)
	w.b.WriteByte('\n')
}

// propertyEmitter 属性名与输出函数的有序对
type propertyEmitter struct {
	name string
	emit func(w *lineWriter, r ContactRecord, ch Children)
}

// encodeOrder 输出顺序固定：KIND FN N NICKNAME BDAY ANNIVERSARY GENDER ADR* TEL* EMAIL* TITLE* ROLE* ORG NOTE CATEGORIES URL*
var encodeOrder = []propertyEmitter{
	{govcard.FieldKind, emitKind},
	{govcard.FieldFormattedName, func(w *lineWriter, r ContactRecord, _ Children) {
		w.line(govcard.FieldFormattedName, nil, escapeText(FormattedName(r)))
	}},
	{govcard.FieldName, func(w *lineWriter, r ContactRecord, _ Children) {
		w.line(govcard.FieldName, nil, StructuredName(r))
	}},
	{govcard.FieldNickname, func(w *lineWriter, r ContactRecord, _ Children) {
		if r.Nickname != "" {
			w.line(govcard.FieldNickname, nil, escapeText(r.Nickname))
		}
	}},
	{govcard.FieldBirthday, func(w *lineWriter, r ContactRecord, _ Children) {
		emitDate(w, govcard.FieldBirthday, r.Birthday, r.BirthdayYear)
	}},
	{govcard.FieldAnniversary, func(w *lineWriter, r ContactRecord, _ Children) {
		emitDate(w, govcard.FieldAnniversary, r.Anniversary, r.AnniversaryYear)
	}},
	{govcard.FieldGender, emitGender},
	{govcard.FieldAddress, emitAddresses},
	{govcard.FieldTelephone, emitPhones},
	{govcard.FieldEmail, emitEmails},
	{govcard.FieldTitle, func(w *lineWriter, _ ContactRecord, ch Children) {
		emitOrgProperties(w, govcard.FieldTitle, ch.OrgPropertiesOf(OrgPropertyTitle))
	}},
	{govcard.FieldRole, func(w *lineWriter, _ ContactRecord, ch Children) {
		emitOrgProperties(w, govcard.FieldRole, ch.OrgPropertiesOf(OrgPropertyRole))
	}},
	{govcard.FieldOrganization, func(w *lineWriter, _ ContactRecord, ch Children) {
		emitOrgProperties(w, govcard.FieldOrganization, ch.OrgPropertiesOf(OrgPropertyOrganization))
	}},
	{govcard.FieldNote, func(w *lineWriter, r ContactRecord, _ Children) {
		if r.Note != "" {
			w.line(govcard.FieldNote, nil, escapeText(r.Note))
		}
	}},
	{govcard.FieldCategories, emitCategories},
	{govcard.FieldURL, emitURLs},
}

// Encode 输出单个 VCARD 组件，以 LF 换行，最后一行属性为 REV
func (e *Encoder) Encode(r ContactRecord, ch Children) string {
	w := &lineWriter{fold: e.fold}
	w.line("BEGIN", nil, "VCARD")
	w.line(govcard.FieldVersion, nil, "4.0")
	for _, p := range encodeOrder {
		p.emit(w, r, ch)
	}
	w.line(govcard.FieldRevision, nil, e.now().UTC().Format(RevisionLayout))
	w.line("END", nil, "VCARD")
	return w.b.String()
}

func emitKind(w *lineWriter, r ContactRecord, _ Children) {
	kind := r.Kind
	if !ValidKind(kind) {
		kind = KindIndividual
	}
	w.line(govcard.FieldKind, nil, string(kind))
}

func emitDate(w *lineWriter, name string, d YearlessDate, year int) {
	if d.IsZero() {
		return
	}
	value, omit := formatDate(d, year)
	var params []string
	if omit {
		params = append(params, OmitYearParam+"="+leftPad(OmitYearSentinel, 4))
	}
	w.line(name, params, value)
}

func emitGender(w *lineWriter, r ContactRecord, _ Children) {
	if r.Sex == SexUnspecified && r.Gender == "" {
		return
	}
	w.line(govcard.FieldGender, nil, string(r.Sex)+";"+escapeText(r.Gender))
}

// typeParam 生成 TYPE=a,b，没有记号时返回 nil
func typeParam(tokens ...string) []string {
	var vals []string
	for _, t := range tokens {
		if t != "" {
			vals = append(vals, t)
		}
	}
	if len(vals) == 0 {
		return nil
	}
	return []string{govcard.ParamType + "=" + strings.Join(vals, ",")}
}

func infoTypeWord(t InfoType) string {
	if t == InfoUnset || t == InfoOther {
		return ""
	}
	return strings.ToUpper(string(t))
}

func emitAddresses(w *lineWriter, _ ContactRecord, ch Children) {
	for _, a := range ch.Addresses {
		street := escapeComponent(a.Street1)
		if a.Street2 != "" {
			street += "," + escapeComponent(a.Street2)
		}
		// 邮政信箱与扩展地址两个分量留空，街道分量的两行以未转义的逗号分隔
		value := strings.Join([]string{
			"", "", street,
			escapeComponent(a.City), escapeComponent(a.State), escapeComponent(a.Zip), escapeComponent(a.Country),
		}, ";")
		w.line(govcard.FieldAddress, typeParam(infoTypeWord(a.Type)), value)
	}
}

func emitPhones(w *lineWriter, _ ContactRecord, ch Children) {
	for _, p := range ch.Phones {
		word := ""
		if p.Type != PhoneUnset && p.Type != PhoneOther {
			word = strings.ToUpper(string(p.Type))
		}
		w.line(govcard.FieldTelephone, typeParam(word), p.Number)
	}
}

func emitEmails(w *lineWriter, _ ContactRecord, ch Children) {
	for _, m := range ch.Emails {
		w.line(govcard.FieldEmail, typeParam("INTERNET", infoTypeWord(m.Type)), m.Address)
	}
}

var orgEscaper = strings.NewReplacer(`\`, `\\`, "\r\n", `\n`, "\n", `\n`, "\r", `\n`, ";", `\;`)

func emitOrgProperties(w *lineWriter, name string, props []OrgProperty) {
	for _, p := range props {
		value := escapeText(p.Value)
		if name == govcard.FieldOrganization {
			// ORG 的 ; 是单位分隔符
			value = orgEscaper.Replace(p.Value)
		}
		w.line(name, nil, value)
	}
}

func emitCategories(w *lineWriter, _ ContactRecord, ch Children) {
	if len(ch.Tags) == 0 {
		return
	}
	labels := make([]string, 0, len(ch.Tags))
	for _, t := range ch.Tags {
		labels = append(labels, escapeComponent(t.Label))
	}
	w.line(govcard.FieldCategories, nil, strings.Join(labels, ","))
}

func emitURLs(w *lineWriter, _ ContactRecord, ch Children) {
	for _, u := range ch.URLs {
		label := ""
		if u.Label != "" && !isURLTypeWord(u.Label) {
			label = paramValue(u.Label)
		}
		w.line(govcard.FieldURL, typeParam(infoTypeWord(u.Type), label), u.URL)
	}
}
