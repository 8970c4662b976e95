package vcard

import (
	"strings"

	govcard "github.com/emersion/go-vcard"
)

// Kind 名片主体类型，直接复用 go-vcard 的 KIND 取值
type Kind = govcard.Kind

const (
	KindIndividual   = govcard.KindIndividual
	KindGroup        = govcard.KindGroup
	KindOrganization = govcard.KindOrganization
	KindLocation     = govcard.KindLocation
)

// Sex GENDER 属性的性别分量 (M/F/O/N/U)
type Sex = govcard.Sex

const (
	SexUnspecified = govcard.SexUnspecified
	SexMale        = govcard.SexMale
	SexFemale      = govcard.SexFemale
	SexOther       = govcard.SexOther
	SexNone        = govcard.SexNone
	SexUnknown     = govcard.SexUnknown
)

// InfoType 地址/邮箱/链接的类型
type InfoType string

const (
	InfoUnset InfoType = ""
	InfoWork  InfoType = govcard.TypeWork
	InfoHome  InfoType = govcard.TypeHome
	InfoOther InfoType = "other"
)

// PhoneType 电话类型
type PhoneType string

const (
	PhoneUnset PhoneType = ""
	PhoneCell  PhoneType = govcard.TypeCell
	PhoneWork  PhoneType = govcard.TypeWork
	PhoneHome  PhoneType = govcard.TypeHome
	PhoneVoice PhoneType = govcard.TypeVoice
	PhoneText  PhoneType = govcard.TypeText
	PhoneFax   PhoneType = govcard.TypeFax
	PhonePager PhoneType = govcard.TypePager
	PhoneOther PhoneType = "other"
)

// 词表顺序固定，编码与解码共用
var (
	kindVocabulary      = []Kind{KindIndividual, KindGroup, KindOrganization, KindLocation}
	sexVocabulary       = []Sex{SexMale, SexFemale, SexOther, SexNone, SexUnknown}
	infoTypeVocabulary  = []InfoType{InfoWork, InfoHome, InfoOther}
	phoneTypeVocabulary = []PhoneType{PhoneCell, PhoneWork, PhoneHome, PhoneVoice, PhoneText, PhoneFax, PhonePager, PhoneOther}
)

// KindAliases 非标准写法
var kindAliases = map[string]Kind{
	"organization": KindOrganization,
}

// ParseKind 大小写不敏感地识别 KIND，未知取值按 individual 处理
func ParseKind(s string) Kind {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range kindVocabulary {
		if string(k) == s {
			return k
		}
	}
	if k, ok := kindAliases[s]; ok {
		return k
	}
	return KindIndividual
}

// ParseSex 识别 GENDER 的性别分量，无法识别返回 SexUnspecified
func ParseSex(s string) Sex {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, v := range sexVocabulary {
		if string(v) == s {
			return v
		}
	}
	return SexUnspecified
}

// ValidKind 判断是否是词表中的 KIND
func ValidKind(k Kind) bool {
	for _, v := range kindVocabulary {
		if v == k {
			return true
		}
	}
	return false
}

// matchInfoType 返回第一个被识别的 TYPE 记号
func matchInfoType(tokens []string) InfoType {
	for _, tok := range tokens {
		for _, t := range infoTypeVocabulary {
			if strings.EqualFold(tok, string(t)) {
				return t
			}
		}
	}
	return InfoUnset
}

func matchPhoneType(tokens []string) PhoneType {
	for _, tok := range tokens {
		for _, t := range phoneTypeVocabulary {
			if strings.EqualFold(tok, string(t)) {
				return t
			}
		}
	}
	return PhoneUnset
}

// isURLTypeWord URL 的 TYPE 记号中哪些不能当作 label
func isURLTypeWord(tok string) bool {
	if strings.EqualFold(tok, "pref") {
		return true
	}
	for _, t := range infoTypeVocabulary {
		if strings.EqualFold(tok, string(t)) {
			return true
		}
	}
	return false
}
