package user

import (
	"go.uber.org/zap"

	"kama_card_server/internal/dao/mysql/repository"
	"kama_card_server/internal/dto/request"
	"kama_card_server/internal/dto/respond"
	"kama_card_server/internal/model"
	"kama_card_server/internal/vcard"
	"kama_card_server/pkg/constants"
	"kama_card_server/pkg/errorx"
	"kama_card_server/pkg/util/random"
)

// userInfoService 名片拥有者，通过构造函数注入 Repository
type userInfoService struct {
	repos *repository.Repositories
}

func NewUserService(repos *repository.Repositories) *userInfoService {
	return &userInfoService{repos: repos}
}

// CreateUser 创建用户，同时生成一张以昵称为名的默认名片
func (u *userInfoService) CreateUser(req request.CreateUserRequest) (*respond.UserInfoRespond, error) {
	user := model.UserInfo{
		Uuid:     random.NewId(constants.USER_ID_PREFIX),
		Nickname: req.Nickname,
		Email:    req.Email,
	}
	card := model.ContactCard{
		Uuid:     random.NewId(constants.CARD_ID_PREFIX),
		OwnerId:  user.Uuid,
		Title:    constants.DEFAULT_CARD_TITLE,
		Kind:     string(vcard.KindIndividual),
		LastName: req.Nickname,
	}
	var children model.CardChildren
	if req.Email != "" {
		children.Emails = []model.CardEmail{{Address: req.Email}}
	}

	err := u.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.User.Create(&user); err != nil {
			return err
		}
		if err := tx.Card.Create(&card); err != nil {
			return err
		}
		children.SetCardId(card.ID)
		return tx.CardChild.CreateAll(&children)
	})
	if err != nil {
		zap.L().Error("创建用户失败", zap.String("nickname", req.Nickname), zap.Error(err))
		return nil, err
	}

	return &respond.UserInfoRespond{
		Uuid:          user.Uuid,
		Nickname:      user.Nickname,
		Email:         user.Email,
		CardCount:     1,
		DefaultCardId: card.Uuid,
		CreatedAt:     user.CreatedAt.Format("2006.1.2"),
	}, nil
}

func (u *userInfoService) GetUserInfo(uuid string) (*respond.UserInfoRespond, error) {
	user, err := u.repos.User.FindByUuid(uuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		return nil, err
	}
	count, err := u.repos.Card.CountByOwnerId(uuid)
	if err != nil {
		return nil, err
	}
	return &respond.UserInfoRespond{
		Uuid:      user.Uuid,
		Nickname:  user.Nickname,
		Email:     user.Email,
		CardCount: count,
		CreatedAt: user.CreatedAt.Format("2006.1.2"),
	}, nil
}
