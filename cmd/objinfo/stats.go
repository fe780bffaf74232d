package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/scenery/internal/engine/mesh"
	"github.com/Faultbox/scenery/pkg/obj"
)

// report summarises one file.
type report struct {
	File      string     `yaml:"file"`
	Positions int        `yaml:"positions"`
	TexCoords int        `yaml:"texcoords"`
	Normals   int        `yaml:"normals"`
	Faces     int        `yaml:"faces"`
	Lines     int        `yaml:"lines"`
	Ignored   int        `yaml:"ignored"`
	Malformed int        `yaml:"malformed"`
	Truncated int        `yaml:"truncated"`
	Vertices  int        `yaml:"vertices"`
	Triangles int        `yaml:"triangles"`
	Min       [3]float32 `yaml:"min,flow"`
	Max       [3]float32 `yaml:"max,flow"`
}

type statsOptions struct {
	strict bool
	infer  bool
	output string
}

func newStatsCmd() *cobra.Command {
	opts := &statsOptions{}
	cmd := &cobra.Command{
		Use:   "stats <file>...",
		Short: "Print record counts and the flattened size of OBJ files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != "text" && opts.output != "yaml" {
				return fmt.Errorf("unknown output format %q", opts.output)
			}
			reports := make([]report, 0, len(args))
			for _, path := range args {
				r, err := buildReport(path, obj.FlattenOptions{Strict: opts.strict, InferMissing: opts.infer})
				if err != nil {
					return err
				}
				reports = append(reports, r)
			}
			if opts.output == "yaml" {
				return writeYAML(cmd.OutOrStdout(), reports)
			}
			for i, r := range reports {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				writeText(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on face indices that are out of range")
	cmd.Flags().BoolVar(&opts.infer, "infer", false, "reuse the vertex index for absent texture and normal indices")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "output format: text or yaml")
	return cmd
}

func buildReport(path string, opts obj.FlattenOptions) (report, error) {
	doc, err := obj.ParseFile(path)
	if err != nil {
		return report{}, err
	}
	flat, err := obj.Flatten(doc, opts)
	if err != nil {
		return report{}, fmt.Errorf("%s: %w", path, err)
	}
	bounds := mesh.FromOBJ(flat, mesh.Options{}).Bounds

	return report{
		File:      path,
		Positions: len(doc.Positions),
		TexCoords: len(doc.TexCoords),
		Normals:   len(doc.Normals),
		Faces:     len(doc.Faces),
		Lines:     doc.Stats.Lines,
		Ignored:   doc.Stats.Ignored,
		Malformed: doc.Stats.Malformed,
		Truncated: doc.Stats.Truncated,
		Vertices:  flat.VertexCount(),
		Triangles: flat.TriangleCount(),
		Min:       bounds.Min,
		Max:       bounds.Max,
	}, nil
}

func writeYAML(w io.Writer, reports []report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func writeText(w io.Writer, r report) {
	fmt.Fprintf(w, "File: %s\n", r.File)
	fmt.Fprintln(w, "Records:")
	fmt.Fprintf(w, "  Positions: %d\n", r.Positions)
	fmt.Fprintf(w, "  TexCoords: %d\n", r.TexCoords)
	fmt.Fprintf(w, "  Normals:   %d\n", r.Normals)
	fmt.Fprintf(w, "  Faces:     %d\n", r.Faces)
	fmt.Fprintln(w, "Lines:")
	fmt.Fprintf(w, "  Total:     %d\n", r.Lines)
	fmt.Fprintf(w, "  Ignored:   %d\n", r.Ignored)
	fmt.Fprintf(w, "  Malformed: %d\n", r.Malformed)
	fmt.Fprintf(w, "  Truncated: %d\n", r.Truncated)
	fmt.Fprintln(w, "Mesh:")
	fmt.Fprintf(w, "  Vertices:  %d\n", r.Vertices)
	fmt.Fprintf(w, "  Triangles: %d\n", r.Triangles)
	fmt.Fprintf(w, "  Min: (%.4f, %.4f, %.4f)\n", r.Min[0], r.Min[1], r.Min[2])
	fmt.Fprintf(w, "  Max: (%.4f, %.4f, %.4f)\n", r.Max[0], r.Max[1], r.Max[2])
}
