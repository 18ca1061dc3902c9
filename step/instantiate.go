package step

// Constructor builds a domain value from a final tuple.
type Constructor interface {
	Name() string
	New(values map[string]any) (any, error)
}

// Instantiator is the last step of a level that declares a target model.
type Instantiator struct {
	model Constructor
}

// Instantiate returns the instantiation step for m.
func Instantiate(m Constructor) *Instantiator {
	return &Instantiator{model: m}
}

func (i *Instantiator) Kind() KindEnum { return KindInstantiate }

func (i *Instantiator) String() string {
	return "instantiate(" + i.model.Name() + ")"
}

// Model returns the constructor the step delegates to.
func (i *Instantiator) Model() Constructor {
	return i.model
}

// New converts t into a model instance.
func (i *Instantiator) New(t Tuple) (any, error) {
	v, err := i.model.New(t)
	if err != nil {
		return nil, &Error{Kind: KindInstantiate, Key: i.model.Name(), Err: ErrInstantiation, Cause: err}
	}

	return v, nil
}
