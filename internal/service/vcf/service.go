// Package vcf 名片的 vCard 导入导出、分享链接与二维码
package vcf

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kama_card_server/internal/config"
	"kama_card_server/internal/dao/mysql/repository"
	myredis "kama_card_server/internal/dao/redis"
	"kama_card_server/internal/dto/request"
	"kama_card_server/internal/dto/respond"
	"kama_card_server/internal/infrastructure/mq"
	"kama_card_server/internal/model"
	"kama_card_server/internal/service/card"
	"kama_card_server/internal/vcard"
	"kama_card_server/pkg/constants"
	"kama_card_server/pkg/errorx"
	"kama_card_server/pkg/util/snowflake"
)

// CardStore 由 card 服务实现
type CardStore interface {
	SaveBundle(ownerId, title, batchId string, b vcard.Bundle) (string, error)
	LoadCard(cardId string) (*model.ContactCard, *model.CardChildren, error)
	OwnedCard(ownerId, cardId string) (*model.ContactCard, error)
}

// Options 导入导出行为，来自 vcardConfig / shareConfig / redisConfig
type Options struct {
	FoldLines          bool
	MaxImportBytes     int64
	MaxImportCards     int
	KeepImportedGender bool
	CacheTTL           time.Duration
	BaseURL            string
	QRSize             int
	Now                func() time.Time
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		FoldLines:          cfg.VcardConfig.FoldLines,
		MaxImportBytes:     cfg.VcardConfig.MaxImportBytes,
		MaxImportCards:     cfg.VcardConfig.MaxImportCards,
		KeepImportedGender: cfg.VcardConfig.KeepImportedGender,
		CacheTTL:           time.Duration(cfg.RedisConfig.VcardTTLSeconds) * time.Second,
		BaseURL:            cfg.ShareConfig.BaseURL,
		QRSize:             cfg.ShareConfig.QRSize,
	}
}

type vcfService struct {
	repos   *repository.Repositories
	cards   CardStore
	cache   myredis.AsyncCacheService
	broker  mq.EventBroker
	opts    Options
	encoder *vcard.Encoder
	decoder *vcard.Decoder
}

// NewVcfService cache 与 broker 可以为 nil
func NewVcfService(repos *repository.Repositories, cards CardStore, cache myredis.AsyncCacheService, broker mq.EventBroker, opts Options) *vcfService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.QRSize <= 0 {
		opts.QRSize = vcard.DefaultQRSize
	}
	encOpts := []vcard.EncoderOption{vcard.WithClock(opts.Now)}
	if opts.FoldLines {
		encOpts = append(encOpts, vcard.WithLineFolding())
	}
	return &vcfService{
		repos:   repos,
		cards:   cards,
		cache:   cache,
		broker:  broker,
		opts:    opts,
		encoder: vcard.NewEncoder(encOpts...),
		decoder: vcard.NewDecoder(vcard.WithReferenceTime(opts.Now)),
	}
}

// ImportVcard 逐个组件保存，遇到边界错误时保留之前的结果并返回部分成功
func (s *vcfService) ImportVcard(req request.ImportVcfRequest) (*respond.ImportRespond, error) {
	if s.opts.MaxImportBytes > 0 && int64(len(req.Vcf)) > s.opts.MaxImportBytes {
		return nil, errorx.Newf(errorx.CodeVcardTooLarge, "vcf 超过 %d 字节", s.opts.MaxImportBytes)
	}
	if _, err := s.repos.User.FindByUuid(req.OwnerId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		return nil, err
	}

	bundles, decodeErr := s.decoder.Decode(req.Vcf)
	malformed, isMalformed := vcard.AsMalformed(decodeErr)
	if len(bundles) == 0 && !isMalformed {
		return nil, errorx.Wrap(vcard.ErrEmptyVcard, errorx.CodeVcardMalformed, "vcf 中没有名片")
	}
	if s.opts.MaxImportCards > 0 && len(bundles) > s.opts.MaxImportCards {
		return nil, errorx.Newf(errorx.CodeVcardTooLarge, "单次最多导入 %d 张名片", s.opts.MaxImportCards)
	}

	rsp := &respond.ImportRespond{
		BatchId: snowflake.GenerateIDString(),
		CardIds: make([]string, 0, len(bundles)),
	}
	for _, b := range bundles {
		if !s.opts.KeepImportedGender {
			b.Record.Sex = vcard.SexUnspecified
			b.Record.Gender = ""
		}
		cardId, err := s.cards.SaveBundle(req.OwnerId, "", rsp.BatchId, b)
		if err != nil {
			s.emitImported(req.OwnerId, rsp)
			return rsp, err
		}
		rsp.CardIds = append(rsp.CardIds, cardId)
		rsp.Imported++
	}
	s.emitImported(req.OwnerId, rsp)

	if isMalformed {
		idx := malformed.Index
		rsp.FailedIndex = &idx
		rsp.Message = fmt.Sprintf("could not parse contact %d", idx+1)
		code := errorx.CodeImportPartial
		if rsp.Imported == 0 {
			code = errorx.CodeVcardMalformed
		}
		zap.L().Info("vcf import stopped at malformed component",
			zap.String("owner_id", req.OwnerId), zap.Int("index", idx), zap.Int("line", malformed.Line), zap.String("reason", malformed.Reason))
		return rsp, errorx.Wrap(decodeErr, code, rsp.Message)
	}
	return rsp, nil
}

func (s *vcfService) emitImported(ownerId string, rsp *respond.ImportRespond) {
	if rsp.Imported == 0 {
		return
	}
	mq.Emit(s.broker, mq.CardEvent{
		Type:    constants.EVENT_CARD_IMPORTED,
		OwnerId: ownerId,
		BatchId: rsp.BatchId,
		Count:   rsp.Imported,
	})
}

// ExportVcard 下载名片，文本优先从缓存读取
func (s *vcfService) ExportVcard(cardId string) (*respond.VcfFile, error) {
	c, text, err := s.vcardText(cardId)
	if err != nil {
		return nil, err
	}
	mq.Emit(s.broker, mq.CardEvent{Type: constants.EVENT_CARD_EXPORTED, OwnerId: c.OwnerId, CardId: c.Uuid})
	return &respond.VcfFile{FileName: FileName(card.RecordFromModel(c)), Text: text}, nil
}

// vcardText 缓存未命中时编码并异步回填
func (s *vcfService) vcardText(cardId string) (*model.ContactCard, string, error) {
	c, err := s.repos.Card.FindByUuid(cardId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, "", errorx.New(errorx.CodeNotFound, "名片不存在")
		}
		return nil, "", err
	}
	key := myredis.VcardKey(c.Uuid, c.UpdatedAt)
	if s.cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), constants.REDIS_TIMEOUT*time.Second)
		text, err := s.cache.Get(ctx, key)
		cancel()
		if err != nil {
			zap.L().Warn("读取名片缓存失败", zap.String("card_id", cardId), zap.Error(err))
		} else if text != "" {
			return c, text, nil
		}
	}

	children, err := s.repos.CardChild.FindByCardId(c.ID)
	if err != nil {
		return nil, "", err
	}
	text := s.encoder.EncodeBundle(card.BundleFromModel(c, children))
	if s.cache != nil {
		ttl := s.opts.CacheTTL
		s.cache.SubmitTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), constants.REDIS_TIMEOUT*time.Second)
			defer cancel()
			if err := s.cache.Set(ctx, key, text, ttl); err != nil {
				zap.L().Warn("写入名片缓存失败", zap.String("card_id", cardId), zap.Error(err))
			}
		})
	}
	return c, text, nil
}

// ShareCard 首次分享时生成 token
func (s *vcfService) ShareCard(req request.OwnerCardRequest) (*respond.ShareRespond, error) {
	c, err := s.cards.OwnedCard(req.OwnerId, req.CardId)
	if err != nil {
		return nil, err
	}
	if c.ShareToken == "" {
		c.ShareToken = uuid.NewString()
		if err := s.repos.Card.UpdateShareToken(c.Uuid, c.ShareToken); err != nil {
			return nil, err
		}
		mq.Emit(s.broker, mq.CardEvent{Type: constants.EVENT_CARD_SHARED, OwnerId: c.OwnerId, CardId: c.Uuid})
	}
	base := strings.TrimRight(s.opts.BaseURL, "/") + "/share/" + c.ShareToken
	return &respond.ShareRespond{
		Token:  c.ShareToken,
		Url:    base,
		VcfUrl: base + "/vcf",
		QrUrl:  base + "/qr",
	}, nil
}

// GetSharedCard viewerId 非空且已建立联系时带上联系 id
func (s *vcfService) GetSharedCard(token, viewerId string) (*respond.SharedCardRespond, error) {
	c, err := s.sharedCard(token)
	if err != nil {
		return nil, err
	}
	_, children, err := s.cards.LoadCard(c.Uuid)
	if err != nil {
		return nil, err
	}
	rsp := &respond.SharedCardRespond{Card: card.ToCardRespond(c, children)}
	if viewerId != "" && viewerId != c.OwnerId {
		conn, err := s.repos.Connection.FindByOwnerAndCard(viewerId, c.Uuid)
		switch {
		case err == nil:
			rsp.ConnectionId = conn.Uuid
		case !errorx.IsNotFound(err):
			return nil, err
		}
	}
	return rsp, nil
}

func (s *vcfService) ExportSharedVcard(token string) (*respond.VcfFile, error) {
	c, err := s.sharedCard(token)
	if err != nil {
		return nil, err
	}
	return s.ExportVcard(c.Uuid)
}

// SharedQR 二维码内容为名片的 vCard 文本，size 为 0 时使用默认尺寸
func (s *vcfService) SharedQR(token string, size int) ([]byte, error) {
	c, err := s.sharedCard(token)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		size = s.opts.QRSize
	}
	_, text, err := s.vcardText(c.Uuid)
	if err != nil {
		return nil, err
	}
	png, err := vcard.ToQR(text, size)
	if err != nil {
		if errors.Is(err, vcard.ErrInvalidSize) {
			return nil, errorx.Wrapf(err, errorx.CodeInvalidParam, "二维码尺寸 %d 无效", size)
		}
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "生成二维码失败")
	}
	return png, nil
}

func (s *vcfService) sharedCard(token string) (*model.ContactCard, error) {
	c, err := s.repos.Card.FindByShareToken(token)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeShareNotFound, "分享链接无效")
		}
		return nil, err
	}
	return c, nil
}

// FileName 下载文件名 "{FN}.vcf"，去掉引号与路径分隔符
func FileName(r vcard.ContactRecord) string {
	fn := strings.Map(func(ch rune) rune {
		switch {
		case ch == '"', ch == '/', ch == '\\', ch < 0x20:
			return '_'
		}
		return ch
	}, vcard.FormattedName(r))
	if strings.TrimSpace(fn) == "" {
		fn = "contact"
	}
	return fn + ".vcf"
}
