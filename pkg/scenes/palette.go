package scenes

import (
	"image/color"

	"github.com/decker502/balloon/pkg/types"
	"golang.org/x/image/colornames"
)

// 没有贴图资源，每种精灵用一个纯色矩形表示
var spriteColors = map[types.SpriteKind]color.RGBA{
	types.SpriteBalloon:         colornames.Crimson,
	types.SpriteBalloonShielded: colornames.Deepskyblue,
	types.SpriteBird:            colornames.Saddlebrown,
	types.SpriteCloud:           colornames.Whitesmoke,
	types.SpriteFuel:            colornames.Orange,
	types.SpriteShield:          colornames.Royalblue,
	types.SpriteSlowdown:        colornames.Mediumpurple,
}

var (
	skyColor         = colornames.Skyblue
	hudTextColor     = colornames.Black
	fuelBarColor     = colornames.Orange
	fuelLowColor     = colornames.Red
	fuelBarBackColor = colornames.Dimgray
	overlayColor     = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	overlayTextColor = colornames.White
	shieldRingColor  = colornames.Gold
)

// lowFuelRatio 以下燃料条变红
const lowFuelRatio = 0.25

// SpriteColor 返回精灵的填充色，未知类型返回洋红色便于发现遗漏
func SpriteColor(kind types.SpriteKind) color.RGBA {
	if c, ok := spriteColors[kind]; ok {
		return c
	}
	return colornames.Magenta
}

// fuelColor 根据剩余燃料比例选择燃料条颜色
func fuelColor(ratio float64) color.RGBA {
	if ratio < lowFuelRatio {
		return fuelLowColor
	}
	return fuelBarColor
}
