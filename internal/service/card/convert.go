package card

import (
	"strings"
	"time"

	"kama_card_server/internal/dto/request"
	"kama_card_server/internal/dto/respond"
	"kama_card_server/internal/model"
	"kama_card_server/internal/vcard"
	"kama_card_server/pkg/errorx"
)

const timeLayout = "2006-01-02 15:04:05"

// BundleFromBody 请求体转为引擎记录，日期不存在时返回参数错误
func BundleFromBody(body request.CardBody) (vcard.Bundle, error) {
	birthday, birthdayYear, err := dateFromRequest("birthday", body.Birthday)
	if err != nil {
		return vcard.Bundle{}, err
	}
	anniversary, anniversaryYear, err := dateFromRequest("anniversary", body.Anniversary)
	if err != nil {
		return vcard.Bundle{}, err
	}

	b := vcard.Bundle{Record: vcard.ContactRecord{
		Kind:            vcard.ParseKind(body.Kind),
		Prefix:          body.Prefix,
		First:           body.First,
		Middle:          body.Middle,
		Last:            body.Last,
		Suffix:          body.Suffix,
		Nickname:        body.Nickname,
		Birthday:        birthday,
		BirthdayYear:    birthdayYear,
		Anniversary:     anniversary,
		AnniversaryYear: anniversaryYear,
		Sex:             vcard.ParseSex(body.Sex),
		Gender:          body.Gender,
		Note:            body.Note,
	}}
	if err := checkName(b.Record); err != nil {
		return vcard.Bundle{}, err
	}

	for _, a := range body.Addresses {
		b.Addresses = append(b.Addresses, vcard.Address{
			Type: vcard.InfoType(a.Type), Street1: a.Street1, Street2: a.Street2,
			City: a.City, State: a.State, Zip: a.Zip, Country: a.Country,
		})
	}
	for _, p := range body.Phones {
		b.Phones = append(b.Phones, vcard.Phone{Type: vcard.PhoneType(p.Type), Number: p.Number})
	}
	for _, e := range body.Emails {
		b.Emails = append(b.Emails, vcard.Email{Type: vcard.InfoType(e.Type), Address: e.Address})
	}
	for _, o := range body.OrgProperties {
		b.OrgProperties = append(b.OrgProperties, vcard.OrgProperty{Kind: vcard.OrgPropertyKind(o.Kind), Value: o.Value})
	}
	for _, t := range body.Tags {
		b.Tags = append(b.Tags, vcard.Tag{Label: t.Label})
	}
	for _, u := range body.Urls {
		b.URLs = append(b.URLs, vcard.URL{Type: vcard.InfoType(u.Type), URL: u.Url, Label: u.Label})
	}
	return b, nil
}

// checkName 非个人名片以 last 作为唯一名称；个人名片的 first 与 last 至少填写一个
func checkName(r vcard.ContactRecord) error {
	if r.Kind != vcard.KindIndividual {
		if r.First != "" || r.Prefix != "" || r.Middle != "" || r.Suffix != "" {
			return errorx.New(errorx.CodeInvalidParam, "非个人名片只能填写 last 作为名称")
		}
		if strings.TrimSpace(r.Last) == "" {
			return errorx.New(errorx.CodeInvalidParam, "非个人名片必须填写 last")
		}
		return nil
	}
	if strings.TrimSpace(r.First) == "" && strings.TrimSpace(r.Last) == "" {
		return errorx.New(errorx.CodeInvalidParam, "first 与 last 至少填写一个")
	}
	return nil
}

func dateFromRequest(field string, d request.DateRequest) (vcard.YearlessDate, int, error) {
	if d.Month == 0 && d.Day == 0 {
		if d.Year != 0 {
			return vcard.YearlessDate{}, 0, errorx.Newf(errorx.CodeInvalidParam, "%s 缺少月日", field)
		}
		return vcard.YearlessDate{}, 0, nil
	}
	parts := vcard.DateParts{Year: d.Year, Month: d.Month, Day: d.Day}
	if !parts.Valid() {
		return vcard.YearlessDate{}, 0, errorx.Newf(errorx.CodeInvalidParam, "%s 日期不存在", field)
	}
	return parts.Yearless(), d.Year, nil
}

// ModelFromBundle 引擎记录转为数据库实体，调用方负责 Uuid、OwnerId 等归属字段
func ModelFromBundle(b vcard.Bundle) (model.ContactCard, model.CardChildren) {
	r := b.Record
	card := model.ContactCard{
		Kind:             string(r.Kind),
		Prefix:           r.Prefix,
		FirstName:        r.First,
		MiddleName:       r.Middle,
		LastName:         r.Last,
		Suffix:           r.Suffix,
		Nickname:         r.Nickname,
		BirthdayMonth:    int8(r.Birthday.Month),
		BirthdayDay:      int8(r.Birthday.Day),
		BirthdayYear:     r.BirthdayYear,
		AnniversaryMonth: int8(r.Anniversary.Month),
		AnniversaryDay:   int8(r.Anniversary.Day),
		AnniversaryYear:  r.AnniversaryYear,
		Sex:              string(r.Sex),
		Gender:           r.Gender,
		Note:             r.Note,
	}
	if card.Kind == "" {
		card.Kind = string(vcard.KindIndividual)
	}
	if r.Birthday.IsZero() {
		card.BirthdayMonth, card.BirthdayDay, card.BirthdayYear = 0, 0, 0
	}
	if r.Anniversary.IsZero() {
		card.AnniversaryMonth, card.AnniversaryDay, card.AnniversaryYear = 0, 0, 0
	}

	var ch model.CardChildren
	for _, a := range b.Addresses {
		ch.Addresses = append(ch.Addresses, model.CardAddress{
			InfoType: string(a.Type), Street1: a.Street1, Street2: a.Street2,
			City: a.City, State: a.State, Zip: a.Zip, Country: a.Country,
		})
	}
	for _, p := range b.Phones {
		ch.Phones = append(ch.Phones, model.CardPhone{PhoneType: string(p.Type), Number: p.Number})
	}
	for _, e := range b.Emails {
		ch.Emails = append(ch.Emails, model.CardEmail{InfoType: string(e.Type), Address: e.Address})
	}
	for _, o := range b.OrgProperties {
		ch.OrgProperties = append(ch.OrgProperties, model.CardOrgProperty{PropertyKind: string(o.Kind), Value: o.Value})
	}
	for _, t := range b.Tags {
		ch.Tags = append(ch.Tags, model.CardTag{Label: t.Label})
	}
	for _, u := range b.URLs {
		ch.Urls = append(ch.Urls, model.CardUrl{InfoType: string(u.Type), Url: u.URL, Label: u.Label})
	}
	return card, ch
}

// BundleFromModel 数据库实体转为引擎记录，子集合保持 id 顺序
func BundleFromModel(card *model.ContactCard, ch *model.CardChildren) vcard.Bundle {
	b := vcard.Bundle{Record: RecordFromModel(card)}
	if ch == nil {
		return b
	}
	for _, a := range ch.Addresses {
		b.Addresses = append(b.Addresses, vcard.Address{
			Type: vcard.InfoType(a.InfoType), Street1: a.Street1, Street2: a.Street2,
			City: a.City, State: a.State, Zip: a.Zip, Country: a.Country,
		})
	}
	for _, p := range ch.Phones {
		b.Phones = append(b.Phones, vcard.Phone{Type: vcard.PhoneType(p.PhoneType), Number: p.Number})
	}
	for _, e := range ch.Emails {
		b.Emails = append(b.Emails, vcard.Email{Type: vcard.InfoType(e.InfoType), Address: e.Address})
	}
	for _, o := range ch.OrgProperties {
		b.OrgProperties = append(b.OrgProperties, vcard.OrgProperty{Kind: vcard.OrgPropertyKind(o.PropertyKind), Value: o.Value})
	}
	for _, t := range ch.Tags {
		b.Tags = append(b.Tags, vcard.Tag{Label: t.Label})
	}
	for _, u := range ch.Urls {
		b.URLs = append(b.URLs, vcard.URL{Type: vcard.InfoType(u.InfoType), URL: u.Url, Label: u.Label})
	}
	return b
}

func RecordFromModel(card *model.ContactCard) vcard.ContactRecord {
	return vcard.ContactRecord{
		Kind:            vcard.ParseKind(card.Kind),
		Prefix:          card.Prefix,
		First:           card.FirstName,
		Middle:          card.MiddleName,
		Last:            card.LastName,
		Suffix:          card.Suffix,
		Nickname:        card.Nickname,
		Birthday:        vcard.YearlessDate{Month: time.Month(card.BirthdayMonth), Day: int(card.BirthdayDay)},
		BirthdayYear:    card.BirthdayYear,
		Anniversary:     vcard.YearlessDate{Month: time.Month(card.AnniversaryMonth), Day: int(card.AnniversaryDay)},
		AnniversaryYear: card.AnniversaryYear,
		Sex:             vcard.ParseSex(card.Sex),
		Gender:          card.Gender,
		Note:            card.Note,
	}
}

// ToCardRespond 组装名片详情
func ToCardRespond(card *model.ContactCard, ch *model.CardChildren) respond.CardRespond {
	rsp := respond.CardRespond{
		CardId:        card.Uuid,
		OwnerId:       card.OwnerId,
		Title:         card.Title,
		FormattedName: vcard.FormattedName(RecordFromModel(card)),
		Kind:          card.Kind,
		Prefix:        card.Prefix,
		First:         card.FirstName,
		Middle:        card.MiddleName,
		Last:          card.LastName,
		Suffix:        card.Suffix,
		Nickname:      card.Nickname,
		Birthday:      dateRespond(card.BirthdayMonth, card.BirthdayDay, card.BirthdayYear),
		Anniversary:   dateRespond(card.AnniversaryMonth, card.AnniversaryDay, card.AnniversaryYear),
		Sex:           card.Sex,
		Gender:        card.Gender,
		Note:          card.Note,
		ImportBatch:   card.ImportBatch,
		CreatedAt:     card.CreatedAt.Format(timeLayout),
		UpdatedAt:     card.UpdatedAt.Format(timeLayout),

		Addresses:     []respond.AddressRespond{},
		Phones:        []respond.PhoneRespond{},
		Emails:        []respond.EmailRespond{},
		OrgProperties: []respond.OrgPropertyRespond{},
		Tags:          []respond.TagRespond{},
		Urls:          []respond.UrlRespond{},
	}
	if ch == nil {
		return rsp
	}
	for i := range ch.Addresses {
		rsp.Addresses = append(rsp.Addresses, AddressRespond(&ch.Addresses[i]))
	}
	for i := range ch.Phones {
		rsp.Phones = append(rsp.Phones, PhoneRespond(&ch.Phones[i]))
	}
	for i := range ch.Emails {
		rsp.Emails = append(rsp.Emails, EmailRespond(&ch.Emails[i]))
	}
	for i := range ch.OrgProperties {
		rsp.OrgProperties = append(rsp.OrgProperties, OrgPropertyRespond(&ch.OrgProperties[i]))
	}
	for i := range ch.Tags {
		rsp.Tags = append(rsp.Tags, TagRespond(&ch.Tags[i]))
	}
	for i := range ch.Urls {
		rsp.Urls = append(rsp.Urls, UrlRespond(&ch.Urls[i]))
	}
	return rsp
}

func dateRespond(month, day int8, year int) *respond.DateRespond {
	if month == 0 || day == 0 {
		return nil
	}
	return &respond.DateRespond{Month: int(month), Day: int(day), Year: year}
}

func AddressRespond(a *model.CardAddress) respond.AddressRespond {
	return respond.AddressRespond{
		Id: a.ID, Type: a.InfoType, Street1: a.Street1, Street2: a.Street2,
		City: a.City, State: a.State, Zip: a.Zip, Country: a.Country,
	}
}

func PhoneRespond(p *model.CardPhone) respond.PhoneRespond {
	return respond.PhoneRespond{Id: p.ID, Type: p.PhoneType, Number: p.Number}
}

func EmailRespond(e *model.CardEmail) respond.EmailRespond {
	return respond.EmailRespond{Id: e.ID, Type: e.InfoType, Address: e.Address}
}

func OrgPropertyRespond(o *model.CardOrgProperty) respond.OrgPropertyRespond {
	return respond.OrgPropertyRespond{Id: o.ID, Kind: o.PropertyKind, Value: o.Value}
}

func TagRespond(t *model.CardTag) respond.TagRespond {
	return respond.TagRespond{Id: t.ID, Label: t.Label}
}

func UrlRespond(u *model.CardUrl) respond.UrlRespond {
	return respond.UrlRespond{Id: u.ID, Type: u.InfoType, Url: u.Url, Label: u.Label}
}
