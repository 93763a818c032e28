package main

import (
	"fmt"
	"log"

	predictably "github.com/predict-ably/predictably-go"
	"github.com/predict-ably/predictably-go/base"
	"github.com/predict-ably/predictably-go/validate"
)

// Scaler is a small example object using the base parameter interface.
type Scaler struct {
	Center bool    `param:"center"`
	Factor float64 `param:"factor"`

	fitted bool
}

func (s *Scaler) IsFitted() bool { return s.fitted }

func (s *Scaler) Fit() *Scaler {
	s.fitted = true
	return s
}

func main() {
	// Global configuration: read, mutate, reset.
	fmt.Println("defaults:", predictably.GetDefaultConfig())

	if err := predictably.SetConfig(predictably.Settings{"display": "diagram"}); err != nil {
		log.Fatal(err)
	}
	fmt.Println("display:", predictably.GetConfig()["display"])

	// Scoped override: restored after the closure returns, even on error.
	_ = predictably.ConfigContext(predictably.Settings{"math_backend": "numpy"}, func() error {
		fmt.Println("inside context:", predictably.GetConfig()["math_backend"])
		return nil
	})
	fmt.Println("after context:", predictably.GetConfig()["math_backend"])

	predictably.ResetConfig()

	// Validation guards: identity on success, typed error on failure.
	steps := []validate.NamedObject{
		{Name: "scale", Object: &Scaler{Factor: 2}},
		{Name: "fit", Object: &Scaler{Center: true}},
	}
	pairs, err := validate.CheckSequenceNamedObjects(steps, validate.Named("steps"))
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range pairs {
		fmt.Printf("step %s: %s\n", p.Name, base.Repr(p.Object))
	}

	if _, err := validate.CheckSequence([]int{}, validate.AllowEmpty(false), validate.Named("xs")); err != nil {
		fmt.Println("guard failed:", err)
	}

	// Parameter interface.
	s := &Scaler{Factor: 1.5}
	if err := base.SetParams(s, map[string]any{"center": true}); err != nil {
		log.Fatal(err)
	}
	fmt.Println(base.Repr(s.Fit()))

	clone, err := base.Clone(s)
	if err != nil {
		log.Fatal(err)
	}
	// Clones carry parameters but not fitted state.
	fmt.Println("clone fitted:", clone.IsFitted(), "err:", base.CheckIsFitted(clone))
}
