package config

import "sort"

var Presets = map[string]map[string]*Config{
	"sine_growth": {
		"classic": {
			Problem: "sine_growth", Method: "heun", T0: 0, T1: 10, Samples: 32,
		},
		"fine": {
			Problem: "sine_growth", Method: "heun", T0: 0, T1: 10, Samples: 256,
		},
		"midpoint": {
			Problem: "sine_growth", Method: "midpoint", T0: 0, T1: 10, Samples: 32,
		},
	},
	"decay": {
		"unit": {
			Problem: "decay", Method: "rk4", T0: 0, T1: 5, Samples: 64,
		},
		"stiffish": {
			Problem: "decay", Method: "rk4", T0: 0, T1: 1, Samples: 128,
			Params: map[string]float64{"lambda": 40.0},
		},
	},
	"logistic": {
		"growth": {
			Problem: "logistic", Method: "heun", T0: 0, T1: 10, Samples: 128,
		},
	},
	"oscillator": {
		"slow": {
			Problem: "oscillator", Method: "rk4", T0: 0, T1: 20, Samples: 512,
		},
		"fast": {
			Problem: "oscillator", Method: "rk4", T0: 0, T1: 20, Samples: 512,
			Params: map[string]float64{"omega": 4.0},
		},
	},
}

func GetPreset(problem, name string) *Config {
	group, ok := Presets[problem]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(problem string) []string {
	group, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
