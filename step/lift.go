package step

import (
	"fmt"

	"tuple-mapper/internal/common"
)

type lift struct {
	from, to string
	sub      SeqFunc
}

// Lift returns a step that runs sub over the nested tuple stored at from and
// stores the single result at to. A nil nested value stays nil. A nil sub
// leaves the nested value untouched.
func Lift(from, to string, sub SeqFunc) Mapper {
	return &lift{from: from, to: to, sub: sub}
}

func (l *lift) Kind() KindEnum { return KindLift }

func (l *lift) String() string {
	return fmt.Sprintf("lift(%s->%s)", l.from, l.to)
}

func (l *lift) Apply(t Tuple) (Tuple, error) {
	v, ok := t[l.from]
	if !ok {
		return nil, missing(KindLift, l.from)
	}

	out := clone(t)
	delete(out, l.from)

	if v == nil {
		out[l.to] = nil
		return out, nil
	}

	inner, ok := AsTuple(v)
	if !ok {
		return nil, mismatch(KindLift, l.from, v)
	}

	res, err := runOne(l.sub, inner)
	if err != nil {
		return nil, nested(KindLift, l.from, err)
	}

	out[l.to] = res

	return out, nil
}

type liftMany struct {
	from, to string
	sub      SeqFunc
}

// LiftMany returns a step that runs sub over the sequence stored at from and
// stores the resulting sequence at to. A nil sequence stays nil.
func LiftMany(from, to string, sub SeqFunc) Mapper {
	return &liftMany{from: from, to: to, sub: sub}
}

func (l *liftMany) Kind() KindEnum { return KindLiftMany }

func (l *liftMany) String() string {
	return fmt.Sprintf("lift_many(%s->%s)", l.from, l.to)
}

func (l *liftMany) Apply(t Tuple) (Tuple, error) {
	v, ok := t[l.from]
	if !ok {
		return nil, missing(KindLiftMany, l.from)
	}

	out := clone(t)
	delete(out, l.from)

	if v == nil {
		out[l.to] = nil
		return out, nil
	}

	seq, ok := AsSeq(v)
	if !ok {
		return nil, mismatch(KindLiftMany, l.from, v)
	}

	res, err := runSeq(l.sub, seq)
	if err != nil {
		return nil, nested(KindLiftMany, l.from, err)
	}

	out[l.to] = res

	return out, nil
}

// runOne applies sub to a one-tuple sequence and returns the single result.
func runOne(sub SeqFunc, t Tuple) (any, error) {
	if sub == nil {
		return t, nil
	}

	res, err := sub([]Tuple{t})
	if err != nil {
		return nil, err
	}

	first, _ := common.First(res)

	return first, nil
}

// runSeq applies sub to a sequence; a nil sub copies the tuples into []any.
func runSeq(sub SeqFunc, seq []Tuple) ([]any, error) {
	if sub != nil {
		return sub(seq)
	}

	out := make([]any, len(seq))
	for i, t := range seq {
		out[i] = t
	}

	return out, nil
}
