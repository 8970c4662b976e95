package connection

import (
	"go.uber.org/zap"

	"kama_card_server/internal/dao/mysql/repository"
	"kama_card_server/internal/dto/request"
	"kama_card_server/internal/dto/respond"
	"kama_card_server/internal/infrastructure/mq"
	"kama_card_server/internal/model"
	"kama_card_server/internal/service/card"
	"kama_card_server/internal/vcard"
	"kama_card_server/pkg/constants"
	"kama_card_server/pkg/errorx"
	"kama_card_server/pkg/util/random"
)

const timeLayout = "2006-01-02 15:04:05"

type connectionService struct {
	repos  *repository.Repositories
	broker mq.EventBroker
}

func NewConnectionService(repos *repository.Repositories, broker mq.EventBroker) *connectionService {
	return &connectionService{repos: repos, broker: broker}
}

// Connect 通过分享 token 与对方名片建立联系；已存在时返回该联系与 CodeConnectionExist
func (s *connectionService) Connect(req request.ConnectRequest) (*respond.ConnectionRespond, error) {
	target, err := s.repos.Card.FindByShareToken(req.ShareToken)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeShareNotFound, "分享链接无效")
		}
		return nil, err
	}
	if target.OwnerId == req.OwnerId {
		return nil, errorx.New(errorx.CodeInvalidParam, "不能与自己的名片建立联系")
	}
	if _, err := s.repos.User.FindByUuid(req.OwnerId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		return nil, err
	}

	existing, err := s.repos.Connection.FindByOwnerAndCard(req.OwnerId, target.Uuid)
	if err == nil {
		rsp := connectionRespond(existing, target)
		return &rsp, errorx.New(errorx.CodeConnectionExist, "已经建立过联系")
	}
	if !errorx.IsNotFound(err) {
		return nil, err
	}

	conn := model.Connection{
		Uuid:    random.NewId(constants.CONNECTION_ID_PREFIX),
		OwnerId: req.OwnerId,
		CardId:  target.Uuid,
	}
	if err := s.repos.Connection.Create(&conn); err != nil {
		zap.L().Error("创建联系失败", zap.String("owner_id", req.OwnerId), zap.Error(err))
		return nil, err
	}
	mq.Emit(s.broker, mq.CardEvent{Type: constants.EVENT_CONNECTION_CREATED, OwnerId: req.OwnerId, CardId: target.Uuid})

	rsp := connectionRespond(&conn, target)
	return &rsp, nil
}

// GetConnectionList 对方名片已删除的联系不返回
func (s *connectionService) GetConnectionList(ownerId string) ([]respond.ConnectionRespond, error) {
	conns, err := s.repos.Connection.FindByOwnerId(ownerId)
	if err != nil {
		return nil, err
	}
	cardIds := make([]string, 0, len(conns))
	for _, c := range conns {
		cardIds = append(cardIds, c.CardId)
	}
	cards, err := s.repos.Card.FindByUuids(cardIds)
	if err != nil {
		return nil, err
	}
	byUuid := make(map[string]*model.ContactCard, len(cards))
	for i := range cards {
		byUuid[cards[i].Uuid] = &cards[i]
	}

	rsp := make([]respond.ConnectionRespond, 0, len(conns))
	for i := range conns {
		target, ok := byUuid[conns[i].CardId]
		if !ok {
			continue
		}
		rsp = append(rsp, connectionRespond(&conns[i], target))
	}
	return rsp, nil
}

func (s *connectionService) GetConnectionInfo(ownerId, connectionId string) (*respond.ConnectionInfoRespond, error) {
	conn, err := s.ownedConnection(ownerId, connectionId)
	if err != nil {
		return nil, err
	}
	target, err := s.repos.Card.FindByUuid(conn.CardId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "对方名片已删除")
		}
		return nil, err
	}
	children, err := s.repos.CardChild.FindByCardId(target.ID)
	if err != nil {
		return nil, err
	}
	return &respond.ConnectionInfoRespond{
		ConnectionId: conn.Uuid,
		CreatedAt:    conn.CreatedAt.Format(timeLayout),
		Card:         card.ToCardRespond(target, children),
	}, nil
}

func (s *connectionService) DeleteConnection(ownerId, connectionId string) error {
	conn, err := s.ownedConnection(ownerId, connectionId)
	if err != nil {
		return err
	}
	return s.repos.Connection.SoftDeleteByUuid(conn.Uuid)
}

func (s *connectionService) ownedConnection(ownerId, connectionId string) (*model.Connection, error) {
	conn, err := s.repos.Connection.FindByUuid(connectionId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "联系不存在")
		}
		return nil, err
	}
	if conn.OwnerId != ownerId {
		return nil, errorx.New(errorx.CodeNotFound, "联系不存在")
	}
	return conn, nil
}

func connectionRespond(conn *model.Connection, target *model.ContactCard) respond.ConnectionRespond {
	return respond.ConnectionRespond{
		ConnectionId:  conn.Uuid,
		CardId:        target.Uuid,
		FormattedName: vcard.FormattedName(card.RecordFromModel(target)),
		CreatedAt:     conn.CreatedAt.Format(timeLayout),
	}
}
