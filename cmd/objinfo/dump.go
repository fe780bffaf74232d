package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/scenery/pkg/obj"
)

func newDumpCmd() *cobra.Command {
	var (
		strict bool
		infer  bool
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the flattened vertices of an OBJ file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := obj.Load(args[0], obj.FlattenOptions{Strict: strict, InferMissing: infer})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "# %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())
			fmt.Fprintln(w, "# index  position  texcoord  normal")
			n := m.VertexCount()
			if limit > 0 && limit < n {
				n = limit
			}
			for i := 0; i < n; i++ {
				p, t, nv := m.Positions[i], m.TexCoords[i], m.Normals[i]
				fmt.Fprintf(w, "%d  %g %g %g  %g %g  %g %g %g\n",
					m.Indices[i], p[0], p[1], p[2], t[0], t[1], nv[0], nv[1], nv[2])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on face indices that are out of range")
	cmd.Flags().BoolVar(&infer, "infer", false, "reuse the vertex index for absent texture and normal indices")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "print at most this many vertices")
	return cmd
}
