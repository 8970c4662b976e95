package vcard

import (
	"testing"
	"time"
)

func TestRoundTripFullDates(t *testing.T) {
	days := []time.Time{
		time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC),
		time.Date(1604, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(1, 7, 4, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range days {
		r := ContactRecord{
			Last:            "X",
			Birthday:        YearlessDate{Month: d.Month(), Day: d.Day()},
			BirthdayYear:    d.Year(),
			Anniversary:     YearlessDate{Month: d.Month(), Day: d.Day()},
			AnniversaryYear: d.Year(),
		}
		b := decodeOne(t, Encode(r, Children{}))
		if b.Record.Birthday != r.Birthday || b.Record.BirthdayYear != r.BirthdayYear {
			t.Errorf("%s: birthday round trip = %+v / %d", d.Format("2006-01-02"), b.Record.Birthday, b.Record.BirthdayYear)
		}
		if b.Record.Anniversary != r.Anniversary || b.Record.AnniversaryYear != r.AnniversaryYear {
			t.Errorf("%s: anniversary round trip = %+v / %d", d.Format("2006-01-02"), b.Record.Anniversary, b.Record.AnniversaryYear)
		}
	}
}

func TestRoundTripYearlessDate(t *testing.T) {
	r := ContactRecord{Last: "X", Birthday: YearlessDate{Month: time.February, Day: 29}}
	text := Encode(r, Children{})
	if !containsLine(text, "BDAY;X-APPLE-OMIT-YEAR=1604:16040229") {
		t.Fatalf("missing omit-year sentinel:\n%s", text)
	}
	b := decodeOne(t, text)
	if b.Record.Birthday != r.Birthday {
		t.Fatalf("Birthday = %+v", b.Record.Birthday)
	}
	if b.Record.BirthdayYear != 0 {
		t.Fatalf("BirthdayYear leaked back: %d", b.Record.BirthdayYear)
	}
}

func TestRoundTripCategories(t *testing.T) {
	ch := Children{Tags: []Tag{{Label: "friend"}, {Label: "vip"}, {Label: "alumni"}}}
	text := Encode(ContactRecord{Last: "X"}, ch)
	if !containsLine(text, "CATEGORIES:friend,vip,alumni") {
		t.Fatalf("CATEGORIES line missing:\n%s", text)
	}
	b := decodeOne(t, text)
	if len(b.Tags) != 3 {
		t.Fatalf("tags = %+v", b.Tags)
	}
	for i, want := range ch.Tags {
		if b.Tags[i] != want {
			t.Errorf("tag[%d] = %+v, want %+v", i, b.Tags[i], want)
		}
	}
}

func TestRoundTripBundle(t *testing.T) {
	r, ch := janeDoe()
	b := decodeOne(t, NewEncoder().Encode(r, ch))

	// Street2 合并进 Street1，GENDER 的 Sex 保留
	want := r
	if b.Record != want {
		t.Errorf("record round trip\n got %+v\nwant %+v", b.Record, want)
	}
	if len(b.Phones) != 2 || b.Phones[0] != ch.Phones[0] || b.Phones[1].Type != PhoneUnset {
		t.Errorf("phones = %+v", b.Phones)
	}
	if len(b.Emails) != 2 || b.Emails[0] != ch.Emails[0] || b.Emails[1] != ch.Emails[1] {
		t.Errorf("emails = %+v", b.Emails)
	}
	if len(b.Addresses) != 1 || b.Addresses[0].Street1 != "1 Main St,Suite 200" || b.Addresses[0].Type != InfoWork {
		t.Errorf("addresses = %+v", b.Addresses)
	}
	if len(b.URLs) != 2 || b.URLs[0] != ch.URLs[0] || b.URLs[1] != ch.URLs[1] {
		t.Errorf("urls = %+v", b.URLs)
	}
	if got := len(b.OrgProperties); got != 4 {
		t.Errorf("org properties = %+v", b.OrgProperties)
	}
	if FormattedName(b.Record) != "Dr. Jane Doe, MD" {
		t.Errorf("FN = %q", FormattedName(b.Record))
	}
}

func TestRoundTripEscapedSeparators(t *testing.T) {
	r := ContactRecord{Last: "O;Brien", First: "Jane, Mary", Middle: `back\slash`}
	ch := Children{
		Addresses:     []Address{{Street1: "1 Main St", City: "Springfield; East", State: "IL", Zip: "62701", Country: "USA"}},
		Tags:          []Tag{{Label: "friends, family"}, {Label: "vip"}},
		OrgProperties: []OrgProperty{NewOrg("Acme; Inc")},
	}
	text := Encode(r, ch)
	if !containsLine(text, `N:O\;Brien;Jane\, Mary;back\\slash;;`) {
		t.Fatalf("N line not escaped:\n%s", text)
	}
	if !containsLine(text, `CATEGORIES:friends\, family,vip`) {
		t.Fatalf("CATEGORIES line not escaped:\n%s", text)
	}

	b := decodeOne(t, text)
	if b.Record.Last != r.Last || b.Record.First != r.First || b.Record.Middle != r.Middle || b.Record.Prefix != "" {
		t.Errorf("name = %+v", b.Record)
	}
	if len(b.Addresses) != 1 || b.Addresses[0] != ch.Addresses[0] {
		t.Errorf("addresses = %+v", b.Addresses)
	}
	if len(b.Tags) != 2 || b.Tags[0].Label != "friends, family" || b.Tags[1].Label != "vip" {
		t.Errorf("tags = %+v", b.Tags)
	}
	if len(b.OrgProperties) != 1 || b.OrgProperties[0].Value != "Acme; Inc" {
		t.Errorf("org = %+v", b.OrgProperties)
	}
}

func TestRoundTripQuotedURLLabel(t *testing.T) {
	ch := Children{URLs: []URL{{URL: "https://example.com", Label: `my "blog"`}}}
	text := Encode(ContactRecord{Last: "X"}, ch)
	if !containsLine(text, "URL;TYPE=my 'blog':https://example.com") {
		t.Fatalf("URL line:\n%s", text)
	}
	b := decodeOne(t, text)
	// 双引号不能出现在参数值里，解码得到的是单引号
	if len(b.URLs) != 1 || b.URLs[0].Label != "my 'blog'" {
		t.Fatalf("urls = %+v", b.URLs)
	}
}

func containsLine(text, line string) bool {
	for _, l := range splitLines(text) {
		if l == line {
			return true
		}
	}
	return false
}

func splitLines(text string) []string {
	return logicalLines(text)
}
