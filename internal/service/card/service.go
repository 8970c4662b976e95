// Package card 名片的增删改查，以及名片与引擎记录之间的转换
package card

import (
	"context"
	"time"

	"go.uber.org/zap"

	"kama_card_server/internal/dao/mysql/repository"
	myredis "kama_card_server/internal/dao/redis"
	"kama_card_server/internal/dto/request"
	"kama_card_server/internal/dto/respond"
	"kama_card_server/internal/model"
	"kama_card_server/internal/vcard"
	"kama_card_server/pkg/constants"
	"kama_card_server/pkg/errorx"
	"kama_card_server/pkg/util/random"
)

type cardService struct {
	repos *repository.Repositories
	cache myredis.AsyncCacheService
}

// NewCardService cache 可以为 nil，此时不做缓存失效
func NewCardService(repos *repository.Repositories, cache myredis.AsyncCacheService) *cardService {
	return &cardService{repos: repos, cache: cache}
}

// CreateCard 创建名片与全部子集合
func (s *cardService) CreateCard(req request.CreateCardRequest) (*respond.CardRespond, error) {
	if err := s.checkOwner(req.OwnerId); err != nil {
		return nil, err
	}
	b, err := BundleFromBody(req.CardBody)
	if err != nil {
		return nil, err
	}
	cardId, err := s.SaveBundle(req.OwnerId, req.Title, "", b)
	if err != nil {
		return nil, err
	}
	return s.GetCardInfo(cardId)
}

// SaveBundle 在一个事务中写入名片及其子记录，返回名片 uuid
func (s *cardService) SaveBundle(ownerId, title, batchId string, b vcard.Bundle) (string, error) {
	card, children := ModelFromBundle(b)
	card.Uuid = random.NewId(constants.CARD_ID_PREFIX)
	card.OwnerId = ownerId
	card.Title = title
	card.ImportBatch = batchId

	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Card.Create(&card); err != nil {
			return err
		}
		children.SetCardId(card.ID)
		return tx.CardChild.CreateAll(&children)
	})
	if err != nil {
		zap.L().Error("保存名片失败", zap.String("owner_id", ownerId), zap.Error(err))
		return "", err
	}
	return card.Uuid, nil
}

// UpdateCard 替换标量字段与全部子集合，展示内容引用的旧子记录随之清除
func (s *cardService) UpdateCard(req request.UpdateCardRequest) (*respond.CardRespond, error) {
	card, err := s.OwnedCard(req.OwnerId, req.CardId)
	if err != nil {
		return nil, err
	}
	b, err := BundleFromBody(req.CardBody)
	if err != nil {
		return nil, err
	}
	next, children := ModelFromBundle(b)
	next.Model = card.Model
	next.Uuid = card.Uuid
	next.OwnerId = card.OwnerId
	next.Title = req.Title
	next.ShareToken = card.ShareToken
	next.ImportBatch = card.ImportBatch

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Card.Update(&next); err != nil {
			return err
		}
		if err := tx.CardChild.DeleteByCardId(card.ID); err != nil {
			return err
		}
		if err := tx.Content.DeleteByCardId(card.ID); err != nil {
			return err
		}
		children.SetCardId(card.ID)
		return tx.CardChild.CreateAll(&children)
	})
	if err != nil {
		zap.L().Error("更新名片失败", zap.String("card_id", card.Uuid), zap.Error(err))
		return nil, err
	}
	s.invalidate(card)
	return s.GetCardInfo(card.Uuid)
}

func (s *cardService) GetCardInfo(cardId string) (*respond.CardRespond, error) {
	card, children, err := s.LoadCard(cardId)
	if err != nil {
		return nil, err
	}
	rsp := ToCardRespond(card, children)
	return &rsp, nil
}

// LoadCard 名片与子集合
func (s *cardService) LoadCard(cardId string) (*model.ContactCard, *model.CardChildren, error) {
	card, err := s.repos.Card.FindByUuid(cardId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, nil, errorx.New(errorx.CodeNotFound, "名片不存在")
		}
		return nil, nil, err
	}
	children, err := s.repos.CardChild.FindByCardId(card.ID)
	if err != nil {
		return nil, nil, err
	}
	return card, children, nil
}

// LoadBundle 导出与分享使用
func (s *cardService) LoadBundle(cardId string) (*model.ContactCard, vcard.Bundle, error) {
	card, children, err := s.LoadCard(cardId)
	if err != nil {
		return nil, vcard.Bundle{}, err
	}
	return card, BundleFromModel(card, children), nil
}

func (s *cardService) GetCardList(req request.CardListRequest) (*respond.CardListRespond, error) {
	page, size := req.Page, req.PageSize
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = constants.DEFAULT_PAGE_SIZE
	}
	if size > constants.MAX_PAGE_SIZE {
		size = constants.MAX_PAGE_SIZE
	}
	cards, total, err := s.repos.Card.FindPageByOwnerId(req.OwnerId, (page-1)*size, size)
	if err != nil {
		return nil, err
	}
	rsp := &respond.CardListRespond{
		Total:    total,
		Page:     page,
		PageSize: size,
		Cards:    make([]respond.CardBriefRespond, 0, len(cards)),
	}
	for i := range cards {
		rsp.Cards = append(rsp.Cards, respond.CardBriefRespond{
			CardId:        cards[i].Uuid,
			Title:         cards[i].Title,
			FormattedName: vcard.FormattedName(RecordFromModel(&cards[i])),
			Kind:          cards[i].Kind,
		})
	}
	return rsp, nil
}

// DeleteCard 软删除名片及子记录、展示内容和指向它的联系
func (s *cardService) DeleteCard(ownerId, cardId string) error {
	card, err := s.OwnedCard(ownerId, cardId)
	if err != nil {
		return err
	}
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.CardChild.DeleteByCardId(card.ID); err != nil {
			return err
		}
		if err := tx.Content.DeleteByCardId(card.ID); err != nil {
			return err
		}
		if err := tx.Connection.SoftDeleteByCardId(card.Uuid); err != nil {
			return err
		}
		return tx.Card.SoftDeleteByUuid(card.Uuid)
	})
	if err != nil {
		zap.L().Error("删除名片失败", zap.String("card_id", cardId), zap.Error(err))
		return err
	}
	s.invalidate(card)
	return nil
}

// OwnedCard 名片不存在或不属于 ownerId 时统一返回 CodeNotFound
func (s *cardService) OwnedCard(ownerId, cardId string) (*model.ContactCard, error) {
	card, err := s.repos.Card.FindByUuid(cardId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "名片不存在")
		}
		return nil, err
	}
	if card.OwnerId != ownerId {
		return nil, errorx.New(errorx.CodeNotFound, "名片不存在")
	}
	return card, nil
}

func (s *cardService) checkOwner(ownerId string) error {
	if _, err := s.repos.User.FindByUuid(ownerId); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		return err
	}
	return nil
}

// invalidate 异步删除旧版本的导出文本缓存
func (s *cardService) invalidate(card *model.ContactCard) {
	if s.cache == nil {
		return
	}
	s.cache.SubmitTask(func() {
		ctx, cancel := context.WithTimeout(context.Background(), constants.REDIS_TIMEOUT*time.Second)
		defer cancel()
		if err := s.cache.Delete(ctx, myredis.VcardKey(card.Uuid, card.UpdatedAt)); err != nil {
			zap.L().Warn("删除名片缓存失败", zap.String("card_id", card.Uuid), zap.Error(err))
		}
	})
}
