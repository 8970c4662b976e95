package repository_test

import (
	"errors"
	"path/filepath"
	"testing"

	"kama_card_server/internal/config"
	dao "kama_card_server/internal/dao/mysql"
	"kama_card_server/internal/dao/mysql/repository"
	"kama_card_server/internal/model"
	"kama_card_server/pkg/errorx"
)

func newRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	db, err := dao.Open(&config.MysqlConfig{Driver: "sqlite", SqlitePath: filepath.Join(t.TempDir(), "repo.db")})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := dao.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewRepositories(db)
}

func TestCardNotFoundMapsToCode(t *testing.T) {
	repos := newRepos(t)
	_, err := repos.Card.FindByUuid("C_missing")
	if !errorx.IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}
	_, err = repos.Card.FindByShareToken("")
	if !errorx.IsNotFound(err) {
		t.Fatalf("empty token should not match unshared cards, got %v", err)
	}
}

func TestCardPagingAndSoftDelete(t *testing.T) {
	repos := newRepos(t)
	for _, id := range []string{"C1", "C2", "C3"} {
		if err := repos.Card.Create(&model.ContactCard{Uuid: id, OwnerId: "U1", LastName: id}); err != nil {
			t.Fatal(err)
		}
	}
	if err := repos.Card.Create(&model.ContactCard{Uuid: "C4", OwnerId: "U2"}); err != nil {
		t.Fatal(err)
	}

	page, total, err := repos.Card.FindPageByOwnerId("U1", 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(page) != 1 || page[0].Uuid != "C2" {
		t.Fatalf("page = %+v total = %d", page, total)
	}

	if err := repos.Card.SoftDeleteByUuid("C2"); err != nil {
		t.Fatal(err)
	}
	if n, _ := repos.Card.CountByOwnerId("U1"); n != 2 {
		t.Fatalf("count after delete = %d", n)
	}
	cards, err := repos.Card.FindByUuids([]string{"C1", "C2", "C4"})
	if err != nil || len(cards) != 2 {
		t.Fatalf("FindByUuids = %+v, %v", cards, err)
	}
}

func TestChildrenKeepInsertOrder(t *testing.T) {
	repos := newRepos(t)
	card := model.ContactCard{Uuid: "C1", OwnerId: "U1"}
	if err := repos.Card.Create(&card); err != nil {
		t.Fatal(err)
	}
	ch := model.CardChildren{
		Phones: []model.CardPhone{{Number: "3"}, {Number: "1"}, {Number: "2"}},
		Tags:   []model.CardTag{{Label: "b"}, {Label: "a"}},
	}
	ch.SetCardId(card.ID)
	if err := repos.CardChild.CreateAll(&ch); err != nil {
		t.Fatal(err)
	}

	got, err := repos.CardChild.FindByCardId(card.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Phones) != 3 || got.Phones[0].Number != "3" || got.Phones[2].Number != "2" {
		t.Fatalf("phones = %+v", got.Phones)
	}
	if len(got.Tags) != 2 || got.Tags[0].Label != "b" || len(got.Emails) != 0 {
		t.Fatalf("children = %+v", got)
	}

	if err := repos.CardChild.DeleteByCardId(card.ID); err != nil {
		t.Fatal(err)
	}
	got, err = repos.CardChild.FindByCardId(card.ID)
	if err != nil || len(got.Phones) != 0 || len(got.Tags) != 0 {
		t.Fatalf("after delete = %+v, %v", got, err)
	}
}

func TestContentSortOrder(t *testing.T) {
	repos := newRepos(t)
	last, err := repos.Content.MaxSortOrder(7)
	if err != nil || last != -1 {
		t.Fatalf("MaxSortOrder on empty card = %d, %v", last, err)
	}
	for i, kind := range []string{model.ContentPhone, model.ContentTag} {
		if err := repos.Content.Create(&model.CardContent{CardId: 7, ItemKind: kind, ItemId: uint(i + 1), SortOrder: i}); err != nil {
			t.Fatal(err)
		}
	}
	if last, _ = repos.Content.MaxSortOrder(7); last != 1 {
		t.Fatalf("MaxSortOrder = %d", last)
	}

	contents, err := repos.Content.FindByCardId(7)
	if err != nil || len(contents) != 2 {
		t.Fatalf("contents = %+v, %v", contents, err)
	}
	if err := repos.Content.UpdateSortOrder(contents[0].ID, 5); err != nil {
		t.Fatal(err)
	}
	contents, _ = repos.Content.FindByCardId(7)
	if contents[0].ItemKind != model.ContentTag || contents[1].SortOrder != 5 {
		t.Fatalf("reordered = %+v", contents)
	}
}

func TestTransactionRollsBack(t *testing.T) {
	repos := newRepos(t)
	boom := errors.New("boom")
	err := repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.User.Create(&model.UserInfo{Uuid: "U1", Nickname: "n"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if _, err := repos.User.FindByUuid("U1"); !errorx.IsNotFound(err) {
		t.Fatalf("user should be rolled back, got %v", err)
	}
}

func TestConnectionLookup(t *testing.T) {
	repos := newRepos(t)
	if err := repos.Connection.Create(&model.Connection{Uuid: "L1", OwnerId: "U1", CardId: "C1"}); err != nil {
		t.Fatal(err)
	}
	conn, err := repos.Connection.FindByOwnerAndCard("U1", "C1")
	if err != nil || conn.Uuid != "L1" {
		t.Fatalf("FindByOwnerAndCard = %+v, %v", conn, err)
	}
	if err := repos.Connection.SoftDeleteByCardId("C1"); err != nil {
		t.Fatal(err)
	}
	if _, err := repos.Connection.FindByUuid("L1"); !errorx.IsNotFound(err) {
		t.Fatalf("deleted connection should not be found, got %v", err)
	}
}
