// check_cards - 检查素材目录是否包含全部牌面图片
// 只检查文件是否存在，不解码；有缺失时退出码为 1
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/cardtable/pkg/config"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/entities"
	"github.com/gonewx/cardtable/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// statLoader 只检查资源键是否存在
type statLoader struct {
	rm *game.ResourceManager
}

func (l statLoader) LoadImage(key string) (*ebiten.Image, error) {
	if !l.rm.Exists(key) {
		return nil, fmt.Errorf("%w: %s", game.ErrAssetMissing, key)
	}
	return nil, nil
}

func (statLoader) Placeholder() *ebiten.Image { return nil }

func main() {
	configPath := flag.String("config", "", "牌桌配置文件路径（为空则使用默认配置）")
	assetsDir := flag.String("assets", "", "素材目录（覆盖配置中的 assets.base_path）")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadTableConfig(*configPath); err != nil {
			log.Fatalf("Error: %v", err)
		}
	}
	if *assetsDir != "" {
		cfg.Assets.BasePath = *assetsDir
	}

	err := checkCards(cfg, game.NewResourceManager(os.DirFS(cfg.Assets.BasePath)))
	switch {
	case err == nil:
		fmt.Printf("✓ all card images present in %s\n", cfg.Assets.BasePath)
	case errors.Is(err, game.ErrAssetMissing):
		fmt.Printf("✗ %v\n", err)
		os.Exit(1)
	default:
		log.Fatalf("Error: %v", err)
	}
}

// checkCards 以严格模式发牌，返回缺失图片的汇总错误
func checkCards(cfg *config.TableConfig, rm *game.ResourceManager) error {
	opts, err := entities.DeckOptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	opts.AllowPlaceholders = false

	suits, err := cfg.Suits()
	if err != nil {
		return err
	}
	ranks, err := cfg.Ranks()
	if err != nil {
		return err
	}

	_, err = entities.BuildDeck(ecs.NewEntityManager(), statLoader{rm: rm}, opts, suits, ranks)
	return err
}
