package gf2_test

import (
	"math/bits"
	"math/rand"
)

// instance is one randomly generated toggle system.
type instance struct {
	lights  int
	buttons [][]int
	target  []bool
}

// bruteForce enumerates all 2^m press sets with plain integers, independent
// of the bitmatrix/gf2 code paths. It returns the minimum weight, the number
// of exact solutions and whether any solution exists.
func bruteForce(in instance) (minWeight, count int, ok bool) {
	var want uint64
	for i, on := range in.target {
		if on {
			want |= 1 << uint(i)
		}
	}
	masks := make([]uint64, len(in.buttons))
	for j, btn := range in.buttons {
		for _, i := range btn {
			masks[j] |= 1 << uint(i)
		}
	}

	minWeight = -1
	for sel := uint64(0); sel < 1<<uint(len(masks)); sel++ {
		var got uint64
		for j := range masks {
			if sel>>uint(j)&1 == 1 {
				got ^= masks[j]
			}
		}
		if got != want {
			continue
		}
		count++
		if w := bits.OnesCount64(sel); minWeight < 0 || w < minWeight {
			minWeight = w
		}
	}

	return minWeight, count, count > 0
}

// randomInstance draws lights in [0,maxLights], buttons in [0,maxButtons].
// Half of the instances get a target that is reachable by construction.
func randomInstance(rng *rand.Rand, maxLights, maxButtons int) instance {
	return randomShape(rng, rng.Intn(maxLights+1), rng.Intn(maxButtons+1))
}

// randomShape draws a system with exactly lights lights and m buttons.
func randomShape(rng *rand.Rand, lights, m int) instance {
	in := instance{lights: lights, buttons: make([][]int, m), target: make([]bool, lights)}
	if lights == 0 {
		for j := range in.buttons {
			in.buttons[j] = []int{}
		}
		return in
	}
	for j := range in.buttons {
		for i := 0; i < lights; i++ {
			if rng.Intn(3) == 0 {
				in.buttons[j] = append(in.buttons[j], i)
			}
		}
	}
	if rng.Intn(2) == 0 {
		for i := range in.target {
			in.target[i] = rng.Intn(2) == 1
		}
		return in
	}
	// Reachable target: XOR of a random subset of buttons.
	for _, btn := range in.buttons {
		if rng.Intn(2) == 0 {
			continue
		}
		for _, i := range btn {
			in.target[i] = !in.target[i]
		}
	}

	return in
}
