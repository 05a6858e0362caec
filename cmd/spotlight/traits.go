package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/odvcencio/furry-spotlight/geom"
	"github.com/odvcencio/furry-spotlight/spotlight"
)

type rectOutput struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type traitsOutput struct {
	Resolved         bool       `yaml:"resolved"`
	Focus            rectOutput `yaml:"focus"`
	CornerRadius     float64    `yaml:"corner_radius"`
	MessageAlignment string     `yaml:"message_alignment"`
}

func newTraitsCmd() *cobra.Command {
	var (
		container string
		focus     string
		shape     string
		radius    float64
	)
	cmd := &cobra.Command{
		Use:   "traits",
		Short: "Compute the hole for a focus rectangle",
		Long: `Prints the hole frame, corner radius and message alignment computed
for a focus rectangle inside a container. Rectangles are "x,y,width,height".
Without --focus the target is treated as unresolved.`,
		Example: `  spotlight traits --container 0,0,390,844 --focus 25,100,150,220 --shape rect --radius 12`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseRect(container)
			if err != nil {
				return fmt.Errorf("--container: %w", err)
			}
			var f *geom.Rect
			if focus != "" {
				r, err := parseRect(focus)
				if err != nil {
					return fmt.Errorf("--focus: %w", err)
				}
				f = &r
			}
			s, err := parseShape(shape, radius)
			if err != nil {
				return err
			}

			t := spotlight.ComputeTraits(f, c, s)
			out, err := yaml.Marshal(traitsOutput{
				Resolved:         f != nil,
				Focus:            rectOutput{X: t.Focus.X, Y: t.Focus.Y, Width: t.Focus.Width, Height: t.Focus.Height},
				CornerRadius:     t.CornerRadius,
				MessageAlignment: t.MessageAlignment.String(),
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&container, "container", "0,0,390,844", "container rectangle")
	cmd.Flags().StringVar(&focus, "focus", "", "focus rectangle")
	cmd.Flags().StringVar(&shape, "shape", "circle", "circle or rect")
	cmd.Flags().Float64Var(&radius, "radius", 0, "corner radius for rect")
	return cmd
}

func parseRect(s string) (geom.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geom.Rect{}, fmt.Errorf("want x,y,width,height, got %q", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geom.Rect{}, fmt.Errorf("invalid number %q", p)
		}
		v[i] = f
	}
	return geom.R(v[0], v[1], v[2], v[3]).Standardized(), nil
}

func parseShape(name string, radius float64) (spotlight.Shape, error) {
	switch strings.ToLower(name) {
	case "circle":
		return spotlight.Circle(), nil
	case "rect", "rectangle":
		if radius < 0 {
			return spotlight.Shape{}, fmt.Errorf("--radius must not be negative")
		}
		return spotlight.RoundedRect(radius), nil
	}
	return spotlight.Shape{}, fmt.Errorf("--shape: unknown shape %q", name)
}
