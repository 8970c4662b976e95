package vcard

import (
	"strings"
	"time"

	govcard "github.com/emersion/go-vcard"
	"go.uber.org/zap"
)

// FieldSocialProfile 非标准的社交主页属性，按 URL 规则解析
const FieldSocialProfile = "X-SOCIALPROFILE"

// Decoder 名片解码器
type Decoder struct {
	now func() time.Time
}

type DecoderOption func(*Decoder)

// WithReferenceTime 两位年份开窗使用的参考时间
func WithReferenceTime(now func() time.Time) DecoderOption {
	return func(d *Decoder) { d.now = now }
}

func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDecoder = NewDecoder()

// Decode 使用默认解码器
func Decode(text string) ([]Bundle, error) {
	return defaultDecoder.Decode(text)
}

// Decode 按出现顺序把每个 VCARD 组件解析为一个 Bundle。
// 组件边界错误时返回 *MalformedVcardError，错误之前已完整解析的 Bundle 仍然返回。
func (d *Decoder) Decode(text string) ([]Bundle, error) {
	comps, err := splitComponents(text)
	bundles := make([]Bundle, 0, len(comps))
	for _, c := range comps {
		bundles = append(bundles, d.decodeComponent(c))
	}
	return bundles, err
}

// propertyDecoder 属性名与解析函数的有序对
type propertyDecoder struct {
	name  string
	apply func(d *Decoder, card govcard.Card, b *Bundle)
}

var decodeOrder = []propertyDecoder{
	{govcard.FieldKind, decodeKind},
	{govcard.FieldName, decodeName},
	{govcard.FieldNickname, func(_ *Decoder, card govcard.Card, b *Bundle) {
		b.Record.Nickname = strings.TrimSpace(card.Value(govcard.FieldNickname))
	}},
	{govcard.FieldBirthday, func(d *Decoder, card govcard.Card, b *Bundle) {
		b.Record.Birthday, b.Record.BirthdayYear = d.decodeDate(card.Get(govcard.FieldBirthday))
	}},
	{govcard.FieldAnniversary, func(d *Decoder, card govcard.Card, b *Bundle) {
		b.Record.Anniversary, b.Record.AnniversaryYear = d.decodeDate(card.Get(govcard.FieldAnniversary))
	}},
	{govcard.FieldGender, decodeGender},
	{govcard.FieldAddress, decodeAddresses},
	{govcard.FieldTelephone, decodePhones},
	{govcard.FieldEmail, decodeEmails},
	{govcard.FieldTitle, func(_ *Decoder, card govcard.Card, b *Bundle) {
		for _, f := range card[govcard.FieldTitle] {
			if v := strings.TrimSpace(f.Value); v != "" {
				b.OrgProperties = append(b.OrgProperties, NewTitle(v))
			}
		}
	}},
	{govcard.FieldRole, func(_ *Decoder, card govcard.Card, b *Bundle) {
		for _, f := range card[govcard.FieldRole] {
			if v := strings.TrimSpace(f.Value); v != "" {
				b.OrgProperties = append(b.OrgProperties, NewRole(v))
			}
		}
	}},
	{govcard.FieldOrganization, decodeOrganizations},
	{govcard.FieldNote, decodeNotes},
	{govcard.FieldCategories, decodeCategories},
	{govcard.FieldURL, decodeURLs},
}

func (d *Decoder) decodeComponent(c component) Bundle {
	card := parseCard(c)
	b := Bundle{Record: ContactRecord{Kind: KindIndividual}}
	for _, p := range decodeOrder {
		d.apply(p, card, &b, c.index)
	}
	return b
}

// apply 单个属性出错只跳过该属性
func (d *Decoder) apply(p propertyDecoder, card govcard.Card, b *Bundle, index int) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Debug("vcard property skipped",
				zap.Int("component", index), zap.String("property", p.name), zap.Any("panic", r))
		}
	}()
	p.apply(d, card, b)
}

// structuredFields 这些属性保留转义前的原始值，由各自的解析函数按未转义的分隔符拆分
var structuredFields = map[string]bool{
	govcard.FieldName:         true,
	govcard.FieldAddress:      true,
	govcard.FieldOrganization: true,
	govcard.FieldCategories:   true,
}

// parseCard 逐行交给 go-vcard 解析，丢弃坏行
func parseCard(c component) govcard.Card {
	card := make(govcard.Card)
	for _, l := range c.lines {
		one, err := decodeLines([]string{l})
		if err != nil {
			zap.L().Debug("vcard property line dropped", zap.Int("component", c.index), zap.Error(err))
			continue
		}
		name, raw, _ := propertyName(l)
		for k, fields := range one {
			if k == name && structuredFields[k] {
				for _, f := range fields {
					f.Value = raw
				}
			}
			card[k] = append(card[k], fields...)
		}
	}
	return card
}

func decodeLines(lines []string) (govcard.Card, error) {
	var b strings.Builder
	b.WriteString("BEGIN:VCARD\n")
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString("END:VCARD\n")

	card, err := govcard.NewDecoder(strings.NewReader(b.String())).Decode()
	if err != nil {
		return nil, err
	}
	if card == nil {
		card = make(govcard.Card)
	}
	return card, nil
}

// typeTokens TYPE 参数中的全部记号，保持原有顺序
func typeTokens(f *govcard.Field) []string {
	var tokens []string
	for k, values := range f.Params {
		if !strings.EqualFold(k, govcard.ParamType) {
			continue
		}
		for _, v := range values {
			for _, tok := range strings.Split(v, ",") {
				tok = strings.Trim(strings.TrimSpace(tok), `"`)
				if tok != "" {
					tokens = append(tokens, tok)
				}
			}
		}
	}
	return tokens
}

func hasParam(f *govcard.Field, name string) bool {
	for k := range f.Params {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

func containsFold(tokens []string, s string) bool {
	for _, t := range tokens {
		if strings.EqualFold(t, s) {
			return true
		}
	}
	return false
}

func decodeKind(_ *Decoder, card govcard.Card, b *Bundle) {
	if card.Get(govcard.FieldKind) == nil {
		b.Record.Kind = KindIndividual
		return
	}
	b.Record.Kind = ParseKind(card.Value(govcard.FieldKind))
}

// decodeName 多个 N 时优先 TYPE 含 pref 的那个；没有 N 时整个 FN 作为 Last
func decodeName(_ *Decoder, card govcard.Card, b *Bundle) {
	fields := card[govcard.FieldName]
	if len(fields) == 0 {
		b.Record.Last = strings.TrimSpace(card.Value(govcard.FieldFormattedName))
		return
	}
	chosen := fields[0]
	for _, f := range fields {
		if containsFold(typeTokens(f), "pref") || hasParam(f, govcard.ParamPreferred) {
			chosen = f
			break
		}
	}
	parts := structuredComponents(chosen.Value, 5)
	b.Record.Last = parts[0]
	b.Record.First = parts[1]
	b.Record.Middle = parts[2]
	b.Record.Prefix = parts[3]
	b.Record.Suffix = parts[4]
}

func (d *Decoder) decodeDate(f *govcard.Field) (YearlessDate, int) {
	if f == nil {
		return YearlessDate{}, 0
	}
	p := parseDateAt(f.Value, hasParam(f, OmitYearParam), d.now())
	date := p.Yearless()
	if date.IsZero() {
		// 只有年份或年月时不设置日期
		return YearlessDate{}, 0
	}
	return date, p.Year
}

func decodeGender(_ *Decoder, card govcard.Card, b *Bundle) {
	if card.Get(govcard.FieldGender) == nil {
		return
	}
	sex, identity := card.Gender()
	b.Record.Sex = ParseSex(string(sex))
	b.Record.Gender = strings.TrimSpace(identity)
}

func decodeAddresses(_ *Decoder, card govcard.Card, b *Bundle) {
	for _, f := range card[govcard.FieldAddress] {
		// 邮政信箱;扩展地址;街道;城市;省;邮编;国家
		parts := structuredComponents(f.Value, 7)
		street := parts[2]
		if street == "" {
			street = parts[1]
		}
		addr := Address{
			Type:    matchInfoType(typeTokens(f)),
			Street1: street,
			City:    parts[3],
			State:   parts[4],
			Zip:     parts[5],
			Country: parts[6],
		}
		if addr == (Address{Type: addr.Type}) {
			continue
		}
		b.Addresses = append(b.Addresses, addr)
	}
}

func decodePhones(_ *Decoder, card govcard.Card, b *Bundle) {
	for _, f := range card[govcard.FieldTelephone] {
		number := strings.TrimSpace(f.Value)
		// 4.0 的 VALUE=uri 写法
		if len(number) > 4 && strings.EqualFold(number[:4], "tel:") {
			number = number[4:]
		}
		if number == "" {
			continue
		}
		b.Phones = append(b.Phones, Phone{Type: matchPhoneType(typeTokens(f)), Number: number})
	}
}

func decodeEmails(_ *Decoder, card govcard.Card, b *Bundle) {
	for _, f := range card[govcard.FieldEmail] {
		addr := strings.TrimSpace(f.Value)
		if addr == "" {
			continue
		}
		b.Emails = append(b.Emails, Email{Type: matchInfoType(typeTokens(f)), Address: addr})
	}
}

// decodeOrganizations ORG 的 org;unit;sub-unit 展平为逗号连接
func decodeOrganizations(_ *Decoder, card govcard.Card, b *Bundle) {
	for _, f := range card[govcard.FieldOrganization] {
		var parts []string
		for _, p := range splitEscaped(f.Value, ';') {
			if p = strings.TrimSpace(unescapeText(p)); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) == 0 {
			continue
		}
		b.OrgProperties = append(b.OrgProperties, NewOrg(strings.Join(parts, ", ")))
	}
}

// decodeNotes 多个 NOTE 以换行连接
func decodeNotes(_ *Decoder, card govcard.Card, b *Bundle) {
	var notes []string
	for _, f := range card[govcard.FieldNote] {
		if f.Value != "" {
			notes = append(notes, f.Value)
		}
	}
	b.Record.Note = strings.Join(notes, "\n")
}

func decodeCategories(_ *Decoder, card govcard.Card, b *Bundle) {
	for _, f := range card[govcard.FieldCategories] {
		for _, label := range splitEscaped(f.Value, ',') {
			if label = strings.TrimSpace(unescapeText(label)); label != "" {
				b.Tags = append(b.Tags, Tag{Label: label})
			}
		}
	}
}

// decodeURLs URL 与 X-SOCIALPROFILE 合并为一个列表，第一个无法识别的 TYPE 记号作为 label
func decodeURLs(_ *Decoder, card govcard.Card, b *Bundle) {
	fields := append([]*govcard.Field{}, card[govcard.FieldURL]...)
	fields = append(fields, card[FieldSocialProfile]...)
	for _, f := range fields {
		u := strings.TrimSpace(f.Value)
		if u == "" {
			continue
		}
		tokens := typeTokens(f)
		item := URL{Type: matchInfoType(tokens), URL: u}
		for _, tok := range tokens {
			if !isURLTypeWord(tok) {
				item.Label = tok
				break
			}
		}
		b.URLs = append(b.URLs, item)
	}
}
