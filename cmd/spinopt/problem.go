package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spinopt/anneal"
	"github.com/katalvlaran/spinopt/poly"
	"github.com/katalvlaran/spinopt/simulate"
)

// TermSpec is one monomial of the model. An empty vars list is the
// constant offset.
type TermSpec struct {
	Vars  []string `yaml:"vars"`
	Coeff float64  `yaml:"coeff"`
}

// StageSpec is one stage of an explicit schedule.
type StageSpec struct {
	T      float64 `yaml:"t"`
	Sweeps int     `yaml:"sweeps"`
}

// TemperatureSpec fixes the hot/cold range of a generated schedule.
type TemperatureSpec struct {
	Hot  float64 `yaml:"hot"`
	Cold float64 `yaml:"cold"`
}

// Problem is the YAML schema of a spinopt problem file.
type Problem struct {
	Domain       string           `yaml:"domain"`
	Terms        []TermSpec       `yaml:"terms"`
	Schedule     []StageSpec      `yaml:"schedule"`
	Temperature  *TemperatureSpec `yaml:"temperature"`
	Kind         string           `yaml:"kind"`
	Order        string           `yaml:"order"`
	InitialState map[string]int   `yaml:"initial_state"`
	InitialList  []int            `yaml:"initial_list"`
	Anneals      int              `yaml:"anneals"`
	Duration     int              `yaml:"duration"`
	Seed         int64            `yaml:"seed"`
	Workers      int              `yaml:"workers"`
}

// LoadProblem loads and parses a problem file
func LoadProblem(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem file %s: %w", path, err)
	}
	p, err := ParseProblemYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse problem file %s: %w", path, err)
	}
	return p, nil
}

// ParseProblemYAML parses and validates problem YAML
func ParseProblemYAML(data []byte) (*Problem, error) {
	var p Problem
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := validateProblem(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// validateProblem performs validation on a parsed problem
func validateProblem(p *Problem) error {
	switch strings.ToLower(p.Domain) {
	case "spin", "boolean":
	default:
		return fmt.Errorf("invalid domain: %q (must be spin or boolean)", p.Domain)
	}

	if len(p.Terms) == 0 {
		return fmt.Errorf("at least one term must be defined")
	}

	switch strings.ToLower(p.Kind) {
	case "", "geometric", "linear":
	default:
		return fmt.Errorf("invalid kind: %q (must be geometric or linear)", p.Kind)
	}

	switch strings.ToLower(p.Order) {
	case "", "inorder", "random":
	default:
		return fmt.Errorf("invalid order: %q (must be inorder or random)", p.Order)
	}

	if p.Temperature != nil && (p.Temperature.Cold < 0 || p.Temperature.Hot < p.Temperature.Cold) {
		return fmt.Errorf("invalid temperature range: hot %v, cold %v", p.Temperature.Hot, p.Temperature.Cold)
	}

	for i, st := range p.Schedule {
		if st.T < 0 {
			return fmt.Errorf("schedule stage %d: temperature cannot be negative", i)
		}
		if st.Sweeps < 0 {
			return fmt.Errorf("schedule stage %d: sweeps cannot be negative", i)
		}
	}

	if p.InitialState != nil && p.InitialList != nil {
		return fmt.Errorf("initial_state and initial_list are mutually exclusive")
	}

	if p.Anneals < 0 {
		return fmt.Errorf("anneals cannot be negative")
	}
	if p.Duration < 0 {
		return fmt.Errorf("duration cannot be negative")
	}
	if p.Workers < 0 {
		return fmt.Errorf("workers cannot be negative")
	}
	return nil
}

// model builds the poly model of the problem.
func (p *Problem) model() poly.Poly {
	terms := make([]poly.Term, len(p.Terms))
	var i int
	for i = range p.Terms {
		terms[i] = poly.Term{Vars: p.Terms[i].Vars, Coeff: p.Terms[i].Coeff}
	}
	if strings.ToLower(p.Domain) == "boolean" {
		return poly.NewBoolean(terms...)
	}
	return poly.NewSpin(terms...)
}

// spin reports whether the problem is in the spin domain.
func (p *Problem) spin() bool {
	return strings.ToLower(p.Domain) == "spin"
}

// initialState resolves the file's starting assignment against model:
// the map form is used verbatim; the positional list form pairs values
// with the model's sorted variable order.
func (p *Problem) initialState(model poly.Poly) (map[string]int, error) {
	if p.InitialState != nil {
		return p.InitialState, nil
	}
	if p.InitialList == nil {
		return nil, nil
	}

	vars := model.Variables()
	if len(p.InitialList) != len(vars) {
		return nil, fmt.Errorf("initial_list has %d values but the model has %d variables",
			len(p.InitialList), len(vars))
	}
	state := make(map[string]int, len(vars))
	var i int
	for i = range vars {
		state[vars[i]] = p.InitialList[i]
	}
	return state, nil
}

// annealOptions translates the file's annealing parameters for model,
// leaving driver defaults in place for anything unset.
func (p *Problem) annealOptions(model poly.Poly) ([]anneal.Option, error) {
	var opts []anneal.Option
	if p.Anneals > 0 {
		opts = append(opts, anneal.WithNumAnneals(p.Anneals))
	}
	if p.Duration > 0 {
		opts = append(opts, anneal.WithDuration(p.Duration))
	}
	if p.Seed != 0 {
		opts = append(opts, anneal.WithSeed(p.Seed))
	}
	if p.Workers > 0 {
		opts = append(opts, anneal.WithWorkers(p.Workers))
	}
	if p.Temperature != nil {
		opts = append(opts, anneal.WithTemperatures(p.Temperature.Hot, p.Temperature.Cold))
	}
	if strings.ToLower(p.Kind) == "linear" {
		opts = append(opts, anneal.WithScheduleKind(anneal.Linear))
	}
	if strings.ToLower(p.Order) == "random" {
		opts = append(opts, anneal.WithOrder(simulate.Random))
	}
	start, err := p.initialState(model)
	if err != nil {
		return nil, err
	}
	if start != nil {
		opts = append(opts, anneal.WithInitialState(start))
	}
	if len(p.Schedule) > 0 {
		schedule := make(simulate.Schedule, len(p.Schedule))
		var i int
		for i = range p.Schedule {
			schedule[i] = simulate.Stage{T: p.Schedule[i].T, Sweeps: p.Schedule[i].Sweeps}
		}
		opts = append(opts, anneal.WithSchedule(schedule))
	}
	return opts, nil
}
