package combat

// Vitals is the health and shield shared by every combatant.
type Vitals struct {
	Health int
	Shield int
}

// ApplyDamage takes amount of damage. A positive shield absorbs it first and
// is spent entirely, passing any overflow on to health. Health never drops
// below zero.
func (v *Vitals) ApplyDamage(amount int) {
	if v.Shield > 0 {
		v.Shield -= amount
		if v.Shield < 0 {
			v.Health = max(0, v.Health+v.Shield)
		}
		v.Shield = 0
		return
	}
	v.Health = max(0, v.Health-amount)
}

func (v *Vitals) IsDead() bool { return v.Health == 0 }

func (v *Vitals) ResetShield() { v.Shield = 0 }
