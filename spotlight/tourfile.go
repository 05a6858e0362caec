package spotlight

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// tourFile is the on-disk YAML layout.
type tourFile struct {
	Tours []tourSpec `yaml:"tours"`
}

type tourSpec struct {
	Name        string     `yaml:"name"`
	Cancellable *bool      `yaml:"cancellable"`
	Steps       []stepSpec `yaml:"steps"`
}

type stepSpec struct {
	Key     string  `yaml:"key"`
	Message string  `yaml:"message"`
	Shape   string  `yaml:"shape"`
	Radius  float64 `yaml:"radius"`
	Repeat  int     `yaml:"repeat"`
}

// TourSet is a collection of named tours loaded from a file.
type TourSet struct {
	order []string
	tours map[string]*Tour
}

// LoadTours reads and validates a YAML tour file.
func LoadTours(path string) (*TourSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tour file: %w", err)
	}
	defer f.Close()
	set, err := DecodeTours(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return set, nil
}

// DecodeTours parses and validates a YAML tour document.
//
// Steps with repeat > 0 expand into that many elements; their key and
// message are treated as formats and receive the 1-based index through
// an integer verb such as %d. Other % signs are kept literally.
// Tours default to cancellable.
func DecodeTours(r io.Reader) (*TourSet, error) {
	var doc tourFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &TourSet{tours: map[string]*Tour{}}, nil
		}
		return nil, fmt.Errorf("decode tours: %w", err)
	}

	set := &TourSet{tours: make(map[string]*Tour, len(doc.Tours))}
	var errs []error
	for i, spec := range doc.Tours {
		tour, tourErrs := buildTour(i, spec)
		errs = append(errs, tourErrs...)
		if spec.Name == "" {
			continue
		}
		if _, dup := set.tours[spec.Name]; dup {
			errs = append(errs, &ValidationError{Tour: spec.Name, Field: "name", Reason: "duplicate tour name"})
			continue
		}
		set.order = append(set.order, spec.Name)
		set.tours[spec.Name] = tour
	}
	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}
	return set, nil
}

func buildTour(index int, spec tourSpec) (*Tour, []error) {
	label := spec.Name
	if label == "" {
		label = "#" + strconv.Itoa(index+1)
	}
	var errs []error
	fail := func(step int, field, reason string) {
		errs = append(errs, &ValidationError{Tour: label, Step: step, Field: field, Reason: reason})
	}

	if spec.Name == "" {
		fail(0, "name", "required")
	}

	seen := make(map[string]int)
	var elements []Element
	for i, step := range spec.Steps {
		n := i + 1
		if strings.TrimSpace(step.Key) == "" {
			fail(n, "key", "required")
			continue
		}
		shape, err := parseShape(step.Shape, step.Radius)
		if err != nil {
			fail(n, "shape", err.Error())
			continue
		}
		if step.Repeat < 0 {
			fail(n, "repeat", "must not be negative")
			continue
		}

		expanded := []Element{NewElement(step.Key, step.Message, shape)}
		if step.Repeat > 0 {
			expanded = expanded[:0]
			for idx := 1; idx <= step.Repeat; idx++ {
				expanded = append(expanded, NewElement(
					IndexedKey(step.Key, idx),
					formatIndexed(step.Message, idx),
					shape,
				))
			}
		}
		for _, el := range expanded {
			if prev, dup := seen[el.Key]; dup {
				fail(n, "key", fmt.Sprintf("duplicate key %q (first used in step %d)", el.Key, prev))
				continue
			}
			seen[el.Key] = n
			elements = append(elements, el)
		}
	}

	cancellable := true
	if spec.Cancellable != nil {
		cancellable = *spec.Cancellable
	}
	return NewTour(elements, cancellable).Named(spec.Name), errs
}

func parseShape(name string, radius float64) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "circle":
		return Circle(), nil
	case "rect", "rectangle", "rounded":
		if radius < 0 {
			return Shape{}, errors.New("radius must not be negative")
		}
		return RoundedRect(radius), nil
	default:
		return Shape{}, fmt.Errorf("unknown shape %q", name)
	}
}

func formatIndexed(message string, index int) string {
	out, _ := expandIndex(message, index)
	return out
}

// Find returns the tour named name.
func (s *TourSet) Find(name string) (*Tour, error) {
	if s != nil {
		if t, ok := s.tours[name]; ok {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrTourNotFound, name)
}

// Names returns tour names in file order.
func (s *TourSet) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// Len returns the number of tours.
func (s *TourSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}
