package tags

import "github.com/yohamta/donburi"

var (
	Point = donburi.NewTag().SetName("Point")
)
