// A minimal scene exercising the full pipeline: spatial-hash broad
// phase, GJK narrow phase, EPA push-out, rendered as printed positions
// plus the mgl32 matrices a real renderer would consume.
package main

import (
	"fmt"

	"github.com/akmonengine/quill"
	"github.com/akmonengine/quill/geom"
	"github.com/akmonengine/quill/scalar"
)

type F = scalar.Float

type entity struct {
	shape     geom.Shape[F]
	transform geom.Transform2D[F]
	velocity  geom.Vec2[F]
}

const (
	maskBall = 0b01
	maskWall = 0b10
)

func main() {
	entities := map[int]*entity{
		0: {
			shape:     geom.Circle[F]{Radius: 5},
			transform: geom.NewTranslation2D(geom.Vec2[F]{X: 0, Y: 0}),
			velocity:  geom.Vec2[F]{X: 3, Y: 1},
		},
		1: {
			shape:     geom.Circle[F]{Radius: 5},
			transform: geom.NewTranslation2D(geom.Vec2[F]{X: 40, Y: 2}),
			velocity:  geom.Vec2[F]{X: -2, Y: 0},
		},
		2: {
			shape:     geom.NewRectangle[F](20, 20),
			transform: geom.NewTranslation2D(geom.Vec2[F]{X: 20, Y: 30}),
		},
	}

	hash := quill.NewSpatialHash2D[int, F](16)

	for step := 0; step < 20; step++ {
		hash.Clear()
		for id, e := range entities {
			mask := uint32(maskBall)
			if e.velocity.IsZero() {
				mask = maskWall
			}
			hash.Insert(id, e.shape, e.transform, mask)
		}

		for id, e := range entities {
			if e.velocity.IsZero() {
				continue
			}
			e.transform = geom.NewTransform2D(
				e.transform.Position.Add(e.velocity),
				e.transform.Rotation,
				e.transform.Scale,
			)

			for candidate := range hash.Retrieve(id, e.shape, e.transform, maskBall|maskWall) {
				collision, simplex := quill.FindCollisionSimplex(
					e.shape, e.transform, candidate.Shape, candidate.Transform)
				if !collision {
					continue
				}
				push := quill.Intersect(
					e.shape, e.transform, candidate.Shape, candidate.Transform, simplex)

				// Separate and reflect away from the contact.
				e.transform = geom.NewTransform2D(
					e.transform.Position.Sub(push),
					e.transform.Rotation,
					e.transform.Scale,
				)
				e.velocity = e.velocity.Neg()
				fmt.Printf("step %2d: %d hit %d, pushed back by (%.2f, %.2f)\n",
					step, id, candidate.ID, push.X.Float(), push.Y.Float())
			}
		}
	}

	for id, e := range entities {
		// A renderer would take the model matrix straight from the
		// transform.
		model := geom.MglTransform(e.transform)
		fmt.Printf("entity %d at (%.2f, %.2f), model matrix %v\n",
			id, e.transform.Position.X.Float(), e.transform.Position.Y.Float(), model)
	}
}
