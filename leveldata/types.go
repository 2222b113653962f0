// Package leveldata parses arena layouts from TMX files.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

import cfg "github.com/automoto/telegraph/config"

// Arena holds everything the simulation needs from a TMX file.
type Arena struct {
	Name        string
	Width       int
	Height      int
	PlayerSpawn Spawn
	Enemies     []EnemySpawn
}

// Spawn is a point in world space.
type Spawn struct {
	X, Y float64
}

// EnemySpawn places one enemy. Overrides hold the float properties set on the
// object; anything missing falls back to the preset named by EnemyType.
type EnemySpawn struct {
	Spawn
	EnemyType  string
	AttackType *cfg.AttackType // nil keeps the preset's type
	Overrides  map[string]float64
}

// Property names recognised on EnemySpawn objects.
const (
	PropEnemyType      = "enemyType"
	PropAttackType     = "attackType"
	PropAttackDuration = "attackDuration"
	PropMinCooldown    = "minCooldown"
	PropMaxCooldown    = "maxCooldown"
	PropAttackDistance = "attackDistance"
	PropMovementSpeed  = "movementSpeed"
	PropAttackRange    = "attackRange"
	PropInnerAngle     = "innerAngle"
	PropOuterAngle     = "outerAngle"
)

var floatProps = []string{
	PropAttackDuration,
	PropMinCooldown,
	PropMaxCooldown,
	PropAttackDistance,
	PropMovementSpeed,
	PropAttackRange,
	PropInnerAngle,
	PropOuterAngle,
}

// Apply overlays the spawn's properties on a preset.
func (s EnemySpawn) Apply(tc cfg.EnemyTypeConfig) cfg.EnemyTypeConfig {
	if s.AttackType != nil {
		tc.AttackType = *s.AttackType
	}
	set := func(name string, dst *float64) {
		if v, ok := s.Overrides[name]; ok {
			*dst = v
		}
	}
	set(PropAttackDuration, &tc.AttackDuration)
	set(PropMinCooldown, &tc.MinCooldown)
	set(PropMaxCooldown, &tc.MaxCooldown)
	set(PropAttackDistance, &tc.AttackDistance)
	set(PropMovementSpeed, &tc.MovementSpeed)
	set(PropAttackRange, &tc.AttackRange)
	set(PropInnerAngle, &tc.InnerAngle)
	set(PropOuterAngle, &tc.OuterAngle)
	return tc
}
