package pipeline

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"tuple-mapper/header"
	"tuple-mapper/internal/common"
	"tuple-mapper/step"
)

// Pipeline is the compiled form of a header. It holds no per-call state.
type Pipeline struct {
	header      *header.Header
	mappers     []step.Mapper
	folders     []step.Folder
	instantiate *step.Instantiator
	children    []child
	log         zerolog.Logger
}

type child struct {
	key      string
	pipeline *Pipeline
}

// Header returns the header the pipeline was compiled from.
func (p *Pipeline) Header() *header.Header {
	return p.header
}

// Steps returns the steps of the top level in execution order. Steps of
// nested headers are reachable through the pipeline's String output only.
func (p *Pipeline) Steps() []step.Step {
	steps := make([]step.Step, 0, len(p.mappers)+len(p.folders)+1)

	for _, m := range p.mappers {
		steps = append(steps, m)
	}

	for _, f := range p.folders {
		steps = append(steps, f)
	}

	if p.instantiate != nil {
		steps = append(steps, p.instantiate)
	}

	return steps
}

// Func returns the pipeline as a plain function, e.g. to nest it in a
// hand-built step.
func (p *Pipeline) Func() step.SeqFunc {
	return p.run
}

// Call runs the pipeline over tuples. The result holds tuples, or model
// instances when the header declares a model. On error no partial result is
// returned.
func (p *Pipeline) Call(tuples []step.Tuple) ([]any, error) {
	out, err := p.run(tuples)
	if err != nil {
		p.log.Debug().Err(err).Int("in", len(tuples)).Msg("pipeline failed")
		return nil, err
	}

	p.log.Debug().Int("in", len(tuples)).Int("out", len(out)).Msg("pipeline executed")

	return out, nil
}

// CallTuples is like Call for pipelines without a top-level model.
func (p *Pipeline) CallTuples(tuples []step.Tuple) ([]step.Tuple, error) {
	if p.instantiate != nil {
		return nil, ErrModelOutput
	}

	out, err := p.Call(tuples)
	if err != nil {
		return nil, err
	}

	res := make([]step.Tuple, len(out))
	for i, v := range out {
		res[i] = v.(step.Tuple)
	}

	return res, nil
}

// Execute runs p over tuples.
func Execute(p *Pipeline, tuples []step.Tuple) ([]any, error) {
	return p.Call(tuples)
}

// CallAs runs p and asserts every output to T.
func CallAs[T any](p *Pipeline, tuples []step.Tuple) ([]T, error) {
	out, err := p.Call(tuples)
	if err != nil {
		return nil, err
	}

	res := make([]T, len(out))

	for i, v := range out {
		t, ok := v.(T)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %T", ErrOutputType, i, v)
		}

		res[i] = t
	}

	return res, nil
}

func (p *Pipeline) run(tuples []step.Tuple) ([]any, error) {
	cur := tuples

	if len(p.mappers) > 0 {
		cur = make([]step.Tuple, len(tuples))

		for i, t := range tuples {
			var err error

			for _, m := range p.mappers {
				t, err = m.Apply(t)
				if err != nil {
					return nil, err
				}
			}

			cur[i] = t
		}
	}

	for _, f := range p.folders {
		var err error

		cur, err = f.Fold(cur)
		if err != nil {
			return nil, err
		}
	}

	out := make([]any, len(cur))

	for i, t := range cur {
		if p.instantiate == nil {
			out[i] = t
			continue
		}

		v, err := p.instantiate.New(t)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

// String renders the step plan, nested headers indented under their key.
func (p *Pipeline) String() string {
	var b strings.Builder

	p.writePlan(&b, "")

	return strings.TrimRight(b.String(), "\n")
}

func (p *Pipeline) writePlan(b *strings.Builder, indent string) {
	steps := p.Steps()
	if common.IsEmpty(steps) {
		b.WriteString(indent + "identity\n")
	}

	for _, s := range steps {
		b.WriteString(indent + s.String() + "\n")
	}

	for _, c := range p.children {
		b.WriteString(indent + c.key + ":\n")
		c.pipeline.writePlan(b, indent+"  ")
	}
}
