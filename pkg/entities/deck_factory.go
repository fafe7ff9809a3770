package entities

import (
	"errors"
	"fmt"
	"log"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/config"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/game"
	"github.com/gonewx/cardtable/pkg/types"
	"github.com/gonewx/cardtable/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/exp/slices"
)

// ImageLoader 按资源键加载图片
// game.ResourceManager 实现了该接口；返回的图片对发牌逻辑是不透明句柄
type ImageLoader interface {
	LoadImage(key string) (*ebiten.Image, error)
	Placeholder() *ebiten.Image
}

// DeckOptions 发牌参数
type DeckOptions struct {
	OriginX, OriginY      float64
	CellWidth, CellHeight float64
	CardDepth             float64
	CardWidth, CardHeight float64

	FaceKeyTemplate   string
	BackKey           string
	AllowPlaceholders bool

	Mode            components.DriveMode
	RotationTargets []types.CardID // nil 表示所有牌都参与连续旋转
}

// DefaultDeckOptions 返回默认发牌参数（140x190 网格，连续旋转）
func DefaultDeckOptions() DeckOptions {
	return DeckOptions{
		CellWidth:       config.DefaultCellWidth,
		CellHeight:      config.DefaultCellHeight,
		CardDepth:       config.DefaultCardDepth,
		CardWidth:       config.DefaultCardWidth,
		CardHeight:      config.DefaultCardHeight,
		FaceKeyTemplate: config.DefaultFaceKeyTemplate,
		BackKey:         config.DefaultBackKey,
		Mode:            components.DriveRotation,
	}
}

// DeckOptionsFromConfig 从牌桌配置构造发牌参数
// cfg 应已通过 Validate 校验
func DeckOptionsFromConfig(cfg *config.TableConfig) (DeckOptions, error) {
	mode, err := cfg.DriveMode()
	if err != nil {
		return DeckOptions{}, err
	}
	targets, err := cfg.RotationTargets()
	if err != nil {
		return DeckOptions{}, err
	}
	return DeckOptions{
		OriginX:           cfg.Layout.OriginX,
		OriginY:           cfg.Layout.OriginY,
		CellWidth:         cfg.Layout.CellWidth,
		CellHeight:        cfg.Layout.CellHeight,
		CardDepth:         cfg.Layout.CardDepth,
		CardWidth:         cfg.Layout.CardWidth,
		CardHeight:        cfg.Layout.CardHeight,
		FaceKeyTemplate:   cfg.Assets.FaceKeyTemplate,
		BackKey:           cfg.Assets.BackKey,
		AllowPlaceholders: cfg.Assets.AllowPlaceholders,
		Mode:              mode,
		RotationTargets:   targets,
	}, nil
}

// Grid 返回 rows 行（花色）cols 列（点数）的发牌网格
func (o DeckOptions) Grid(rows, cols int) utils.TableGrid {
	return utils.TableGrid{
		OriginX:    o.OriginX,
		OriginY:    o.OriginY,
		CellWidth:  o.CellWidth,
		CellHeight: o.CellHeight,
		Rows:       rows,
		Columns:    cols,
	}
}

func (o DeckOptions) spins(id types.CardID) bool {
	return o.RotationTargets == nil || slices.Contains(o.RotationTargets, id)
}

// BuildDeck 为 52 张牌创建实体并摆放到网格上
//
// 第 i 个花色是第 i 行，第 j 个点数是第 j 列：
//
//	x = OriginX + j*CellWidth, y = OriginY + i*CellHeight, z = CardDepth
//
// 每张牌先创建背面（隐藏），再创建正面（可见）；正面通过 CardComponent.Back 拥有背面。
// 同样的输入总是产生同样的坐标和同样的实体创建顺序。
//
// 所有图片在创建任何实体之前解析完毕。存在无法解析的资源键时：
//   - AllowPlaceholders 为 false：返回 nil 和包装了 game.ErrAssetMissing 的错误，不创建任何实体
//   - AllowPlaceholders 为 true：缺失的牌面使用占位句柄，返回完整的 Deck 以及同一个错误
func BuildDeck(em *ecs.EntityManager, loader ImageLoader, opts DeckOptions, suits []types.Suit, ranks []types.Rank) (*Deck, error) {
	ids, err := types.Catalog(suits, ranks)
	if err != nil {
		return nil, err
	}

	// 第一遍：解析所有图片，不产生任何实体
	var missing []error
	resolve := func(key string) *ebiten.Image {
		img, err := loader.LoadImage(key)
		if err != nil {
			missing = append(missing, err)
			return loader.Placeholder()
		}
		return img
	}

	backImage := resolve(opts.BackKey)
	faceKeys := make([]string, len(ids))
	faceImages := make([]*ebiten.Image, len(ids))
	for idx, id := range ids {
		faceKeys[idx] = types.FaceImageKey(opts.FaceKeyTemplate, id)
		faceImages[idx] = resolve(faceKeys[idx])
	}

	var loadErr error
	if len(missing) > 0 {
		loadErr = fmt.Errorf("%w: %d of %d card images unresolved: %w",
			game.ErrAssetMissing, len(missing), len(ids)+1, errors.Join(missing...))
		if !opts.AllowPlaceholders {
			log.Printf("[DeckFactory] ERROR: %d card images missing, deck not built", len(missing))
			return nil, loadErr
		}
		log.Printf("[DeckFactory] Warning: %d card images missing, using placeholders", len(missing))
	}

	// 第二遍：按行优先顺序创建实体
	deck := newDeck(len(ids), opts.Grid(len(suits), len(ranks)))
	for idx, id := range ids {
		row, col := idx/len(ranks), idx%len(ranks)
		x, y := deck.grid.CellOrigin(row, col)

		backID := em.CreateEntity()
		ecs.AddComponent(em, backID, &components.PositionComponent{X: x, Y: y, Z: opts.CardDepth - config.BackDepthOffset})
		ecs.AddComponent(em, backID, &components.SpriteComponent{Image: backImage, Key: opts.BackKey})
		ecs.AddComponent(em, backID, &components.VisibilityComponent{Visible: false})
		ecs.AddComponent(em, backID, &components.CardBackComponent{})

		frontID := em.CreateEntity()
		ecs.AddComponent(em, frontID, &components.PositionComponent{X: x, Y: y, Z: opts.CardDepth})
		ecs.AddComponent(em, frontID, &components.SpriteComponent{Image: faceImages[idx], Key: faceKeys[idx]})
		ecs.AddComponent(em, frontID, &components.VisibilityComponent{Visible: true})
		ecs.AddComponent(em, frontID, &components.CardComponent{
			ID:    id,
			Value: id.Rank.Value(),
			Back:  backID,
		})
		ecs.AddComponent(em, frontID, &components.ClickableComponent{
			Width:     opts.CardWidth,
			Height:    opts.CardHeight,
			IsEnabled: true,
		})
		ecs.AddComponent(em, frontID, &components.OrientationComponent{
			Mode:     opts.Mode,
			Spinning: opts.Mode == components.DriveRotation && opts.spins(id),
			Face:     components.FaceFront,
		})

		deck.add(id, frontID, backID, x, y, opts.CardWidth, opts.CardHeight)
	}

	log.Printf("[DeckFactory] Built deck: %d cards, mode=%s", deck.Len(), opts.Mode)
	return deck, loadErr
}
