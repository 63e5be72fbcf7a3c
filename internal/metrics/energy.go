package metrics

import (
	"math"

	"github.com/san-kum/odelab/internal/ivp"
)

// EnergyDrift tracks the worst relative deviation from the initial energy
// of a Hamiltonian system.
type EnergyDrift struct {
	name          string
	sys           ivp.Hamiltonian
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift(sys ivp.Hamiltonian) *EnergyDrift {
	return &EnergyDrift{
		name: "energy_drift",
		sys:  sys,
	}
}

func (m *EnergyDrift) Name() string { return m.name }

func (m *EnergyDrift) Observe(x ivp.State, t float64) {
	energy := m.sys.Energy(x)

	if m.samples == 0 {
		m.initialEnergy = energy
	}
	m.samples++

	if m.initialEnergy != 0 {
		drift := math.Abs(energy-m.initialEnergy) / math.Abs(m.initialEnergy)
		m.maxDrift = math.Max(m.maxDrift, drift)
	}
}

func (m *EnergyDrift) Value() float64 {
	return m.maxDrift
}

func (m *EnergyDrift) Reset() {
	m.initialEnergy = 0
	m.maxDrift = 0
	m.samples = 0
}
