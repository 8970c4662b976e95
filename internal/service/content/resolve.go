package content

import (
	"kama_card_server/internal/model"
	"kama_card_server/internal/service/card"
)

// itemResolver 在已加载的子集合中查找 id 对应的条目
type itemResolver func(ch *model.CardChildren, id uint) (any, bool)

// resolvers ItemKind → 子集合查找
var resolvers = map[string]itemResolver{
	model.ContentAddress: func(ch *model.CardChildren, id uint) (any, bool) {
		for i := range ch.Addresses {
			if ch.Addresses[i].ID == id {
				return card.AddressRespond(&ch.Addresses[i]), true
			}
		}
		return nil, false
	},
	model.ContentPhone: func(ch *model.CardChildren, id uint) (any, bool) {
		for i := range ch.Phones {
			if ch.Phones[i].ID == id {
				return card.PhoneRespond(&ch.Phones[i]), true
			}
		}
		return nil, false
	},
	model.ContentEmail: func(ch *model.CardChildren, id uint) (any, bool) {
		for i := range ch.Emails {
			if ch.Emails[i].ID == id {
				return card.EmailRespond(&ch.Emails[i]), true
			}
		}
		return nil, false
	},
	model.ContentUrl: func(ch *model.CardChildren, id uint) (any, bool) {
		for i := range ch.Urls {
			if ch.Urls[i].ID == id {
				return card.UrlRespond(&ch.Urls[i]), true
			}
		}
		return nil, false
	},
	model.ContentTag: func(ch *model.CardChildren, id uint) (any, bool) {
		for i := range ch.Tags {
			if ch.Tags[i].ID == id {
				return card.TagRespond(&ch.Tags[i]), true
			}
		}
		return nil, false
	},
	model.ContentOrgProperty: func(ch *model.CardChildren, id uint) (any, bool) {
		for i := range ch.OrgProperties {
			if ch.OrgProperties[i].ID == id {
				return card.OrgPropertyRespond(&ch.OrgProperties[i]), true
			}
		}
		return nil, false
	},
}

func resolve(ch *model.CardChildren, kind string, id uint) (any, bool) {
	r, ok := resolvers[kind]
	if !ok {
		return nil, false
	}
	return r(ch, id)
}
