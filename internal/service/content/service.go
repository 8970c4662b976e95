// Package content 名片展示内容：按顺序挑选名片的子记录用于展示
package content

import (
	"go.uber.org/zap"

	"kama_card_server/internal/dao/mysql/repository"
	"kama_card_server/internal/dto/request"
	"kama_card_server/internal/dto/respond"
	"kama_card_server/internal/model"
	"kama_card_server/pkg/errorx"
)

type contentService struct {
	repos *repository.Repositories
}

func NewContentService(repos *repository.Repositories) *contentService {
	return &contentService{repos: repos}
}

// AddContent 条目必须属于该名片，顺序追加到末尾
func (s *contentService) AddContent(req request.AddContentRequest) (*respond.ContentItemRespond, error) {
	c, err := s.ownedCard(req.OwnerId, req.CardId)
	if err != nil {
		return nil, err
	}
	children, err := s.repos.CardChild.FindByCardId(c.ID)
	if err != nil {
		return nil, err
	}
	item, ok := resolve(children, req.ItemKind, req.ItemId)
	if !ok {
		return nil, errorx.Newf(errorx.CodeNotFound, "名片中没有 %s %d", req.ItemKind, req.ItemId)
	}
	last, err := s.repos.Content.MaxSortOrder(c.ID)
	if err != nil {
		return nil, err
	}
	content := model.CardContent{
		CardId:    c.ID,
		ItemKind:  req.ItemKind,
		ItemId:    req.ItemId,
		SortOrder: last + 1,
	}
	if err := s.repos.Content.Create(&content); err != nil {
		zap.L().Error("创建展示内容失败", zap.String("card_id", req.CardId), zap.Error(err))
		return nil, err
	}
	return &respond.ContentItemRespond{
		ContentId: content.ID,
		ItemKind:  content.ItemKind,
		ItemId:    content.ItemId,
		SortOrder: content.SortOrder,
		Item:      item,
	}, nil
}

// GetContentList 按顺序返回，引用已失效的条目跳过
func (s *contentService) GetContentList(cardId string) ([]respond.ContentItemRespond, error) {
	c, err := s.repos.Card.FindByUuid(cardId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "名片不存在")
		}
		return nil, err
	}
	contents, err := s.repos.Content.FindByCardId(c.ID)
	if err != nil {
		return nil, err
	}
	children, err := s.repos.CardChild.FindByCardId(c.ID)
	if err != nil {
		return nil, err
	}
	rsp := make([]respond.ContentItemRespond, 0, len(contents))
	for _, ct := range contents {
		item, ok := resolve(children, ct.ItemKind, ct.ItemId)
		if !ok {
			zap.L().Debug("skip stale card content", zap.Uint("content_id", ct.ID))
			continue
		}
		rsp = append(rsp, respond.ContentItemRespond{
			ContentId: ct.ID,
			ItemKind:  ct.ItemKind,
			ItemId:    ct.ItemId,
			SortOrder: ct.SortOrder,
			Item:      item,
		})
	}
	return rsp, nil
}

// OrderContents ContentIds 必须恰好是该名片的全部展示内容
func (s *contentService) OrderContents(req request.OrderContentRequest) error {
	c, err := s.ownedCard(req.OwnerId, req.CardId)
	if err != nil {
		return err
	}
	contents, err := s.repos.Content.FindByCardId(c.ID)
	if err != nil {
		return err
	}
	if len(contents) != len(req.ContentIds) {
		return errorx.Newf(errorx.CodeInvalidParam, "需要提供全部 %d 条展示内容", len(contents))
	}
	owned := make(map[uint]bool, len(contents))
	for _, ct := range contents {
		owned[ct.ID] = true
	}
	for _, id := range req.ContentIds {
		if !owned[id] {
			return errorx.Newf(errorx.CodeInvalidParam, "展示内容 %d 不属于该名片或重复", id)
		}
		delete(owned, id)
	}

	return s.repos.Transaction(func(tx *repository.Repositories) error {
		for i, id := range req.ContentIds {
			if err := tx.Content.UpdateSortOrder(id, i); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *contentService) DeleteContent(ownerId string, contentId uint) error {
	content, err := s.repos.Content.FindById(contentId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "展示内容不存在")
		}
		return err
	}
	c, err := s.repos.Card.FindById(content.CardId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "展示内容不存在")
		}
		return err
	}
	if c.OwnerId != ownerId {
		return errorx.New(errorx.CodeNotFound, "展示内容不存在")
	}
	return s.repos.Content.Delete(content.ID)
}

func (s *contentService) ownedCard(ownerId, cardId string) (*model.ContactCard, error) {
	c, err := s.repos.Card.FindByUuid(cardId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "名片不存在")
		}
		return nil, err
	}
	if c.OwnerId != ownerId {
		return nil, errorx.New(errorx.CodeNotFound, "名片不存在")
	}
	return c, nil
}
