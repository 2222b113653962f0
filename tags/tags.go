package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
)

// Resolv tags for bodies in the space
const (
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
)
