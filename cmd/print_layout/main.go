// print_layout - 打印牌阵布局
// 不打开窗口、不加载图片，按配置发牌后输出每张牌的位置
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/config"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// nullLoader 所有图片都返回 nil 句柄
type nullLoader struct{}

func (nullLoader) LoadImage(string) (*ebiten.Image, error) { return nil, nil }
func (nullLoader) Placeholder() *ebiten.Image              { return nil }

// layoutRow 一张牌的布局
type layoutRow struct {
	Card  string  `yaml:"card"`
	Front uint64  `yaml:"front"`
	Back  uint64  `yaml:"back"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
}

func main() {
	configPath := flag.String("config", "", "牌桌配置文件路径（为空则使用默认配置）")
	format := flag.String("format", "text", "输出格式: text | yaml")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadTableConfig(*configPath); err != nil {
			log.Fatalf("Error: %v", err)
		}
	}

	rows, err := buildLayout(cfg)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	switch *format {
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			log.Fatalf("Error: %v", err)
		}
		enc.Close()
	case "text":
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CARD\tFRONT\tBACK\tX\tY\tZ")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%d\t%d\t%g\t%g\t%g\n", r.Card, r.Front, r.Back, r.X, r.Y, r.Z)
		}
		w.Flush()
	default:
		log.Fatalf("Error: unknown format %q", *format)
	}
}

func buildLayout(cfg *config.TableConfig) ([]layoutRow, error) {
	opts, err := entities.DeckOptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	suits, err := cfg.Suits()
	if err != nil {
		return nil, err
	}
	ranks, err := cfg.Ranks()
	if err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	deck, err := entities.BuildDeck(em, nullLoader{}, opts, suits, ranks)
	if err != nil {
		return nil, err
	}

	rows := make([]layoutRow, 0, deck.Len())
	for _, front := range deck.Cards() {
		card, _ := ecs.GetComponent[*components.CardComponent](em, front)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, front)
		rows = append(rows, layoutRow{
			Card:  card.ID.String(),
			Front: uint64(front),
			Back:  uint64(card.Back),
			X:     pos.X,
			Y:     pos.Y,
			Z:     pos.Z,
		})
	}
	return rows, nil
}
