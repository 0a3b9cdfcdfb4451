// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "github.com/galvanized/impulse/math/lin"

// solverIterations is the number of sequential-impulse sweeps run over the
// active contact constraints each step.
const solverIterations = 10

// solve runs sequential impulse over the given contact constraints: each
// iteration resolves every normal constraint first (clamped to >= 0, i.e.
// contacts only push), then every friction constraint clamped to the
// Coulomb pyramid defined by the *current* accumulated normal impulse.
// Velocity updates are applied incrementally as each row is solved so
// later rows in the same iteration see the effect of earlier ones.
func solve(constraints []*contactConstraint) {
	for iter := 0; iter < solverIterations; iter++ {
		for _, c := range constraints {
			resolveNormal(c)
		}
		for _, c := range constraints {
			resolveFriction(c)
		}
	}
}

// resolveNormal applies one sequential-impulse update to a contact's
// normal constraint, clamping the accumulated impulse to be non-negative.
func resolveNormal(c *contactConstraint) {
	if c.effMassN == 0 {
		return
	}
	relVel := jacobianDot(c.normal, c.bodyA, c.bodyB)
	lambda := -c.effMassN * (relVel + c.bias)

	old := c.accumNormal
	c.accumNormal = maxf(0, old+lambda)
	lambda = c.accumNormal - old

	applyImpulse(c.bodyA, c.bodyB, c.normal, lambda)
}

// resolveFriction applies one sequential-impulse update to each of a
// contact's two friction constraints, clamped to [-mu*N, mu*N] using the
// normal impulse accumulated so far this step.
func resolveFriction(c *contactConstraint) {
	limit := c.friction * c.accumNormal

	if c.effMassT1 != 0 {
		relVel := jacobianDot(c.tangent1, c.bodyA, c.bodyB)
		lambda := -c.effMassT1 * relVel
		old := c.accumT1
		c.accumT1 = lin.Clamp(old+lambda, -limit, limit)
		lambda = c.accumT1 - old
		applyImpulse(c.bodyA, c.bodyB, c.tangent1, lambda)
	}

	if c.effMassT2 != 0 {
		relVel := jacobianDot(c.tangent2, c.bodyA, c.bodyB)
		lambda := -c.effMassT2 * relVel
		old := c.accumT2
		c.accumT2 = lin.Clamp(old+lambda, -limit, limit)
		lambda = c.accumT2 - old
		applyImpulse(c.bodyA, c.bodyB, c.tangent2, lambda)
	}
}

// applyImpulse updates both bodies' velocities by lambda * (M^-1 * J^T).
func applyImpulse(a, b *Body, j jacobian, lambda float64) {
	if a.kind == Dynamic {
		a.lvel.X += j.linA.X * a.imass * lambda
		a.lvel.Y += j.linA.Y * a.imass * lambda
		a.lvel.Z += j.linA.Z * a.imass * lambda
		angImp := lin.NewV3().MultMv(&a.iitw, &j.angA)
		a.avel.X += angImp.X * lambda
		a.avel.Y += angImp.Y * lambda
		a.avel.Z += angImp.Z * lambda
	}
	if b.kind == Dynamic {
		b.lvel.X += j.linB.X * b.imass * lambda
		b.lvel.Y += j.linB.Y * b.imass * lambda
		b.lvel.Z += j.linB.Z * b.imass * lambda
		angImp := lin.NewV3().MultMv(&b.iitw, &j.angB)
		b.avel.X += angImp.X * lambda
		b.avel.Y += angImp.Y * lambda
		b.avel.Z += angImp.Z * lambda
	}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
