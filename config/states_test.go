package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttackType(t *testing.T) {
	tests := []struct {
		in   string
		want AttackType
	}{
		{"circle", AttackCircle},
		{" Circle ", AttackCircle},
		{"in_front", AttackInFront},
		{"InFront", AttackInFront},
		{"cone", AttackInFront},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAttackType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseAttackType("laser")
	assert.Error(t, err)
}

func TestEnemyPresetsAreValid(t *testing.T) {
	for name, tc := range Enemy.Types {
		assert.Equal(t, name, tc.Name)
		assert.Positive(t, tc.AttackDuration, name)
		assert.LessOrEqual(t, tc.MinCooldown, tc.MaxCooldown, name)
		assert.Less(t, tc.InnerAngle, tc.OuterAngle, name)
	}
	assert.Less(t, Enemy.RecoveryCooldownMin, Enemy.RecoveryCooldownMax)
}
