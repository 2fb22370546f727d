package tetra

import "math/rand/v2"

// Randomizer picks the kind of each spawned piece.
type Randomizer interface {
	Next() Kind
}

type uniform struct {
	rng *rand.Rand
}

// NewUniform picks every kind independently with equal probability.
func NewUniform(seed uint64) Randomizer {
	return &uniform{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (u *uniform) Next() Kind {
	return Kind(u.rng.IntN(KindCount))
}

type bag struct {
	rng  *rand.Rand
	bag  []Kind
	pool [KindCount]Kind
}

// NewBag deals all seven kinds in a shuffled order before dealing any twice.
func NewBag(seed uint64) Randomizer {
	return &bag{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (b *bag) Next() Kind {
	if len(b.bag) == 0 {
		b.refill()
	}
	k := b.bag[0]
	b.bag = b.bag[1:]
	return k
}

func (b *bag) refill() {
	for i := range b.pool {
		b.pool[i] = Kind(i)
	}
	b.rng.Shuffle(len(b.pool), func(i, j int) {
		b.pool[i], b.pool[j] = b.pool[j], b.pool[i]
	})
	b.bag = b.pool[:]
}

type sequence struct {
	kinds []Kind
	next  int
}

// Sequence cycles through kinds in order. It panics when kinds is empty.
func Sequence(kinds ...Kind) Randomizer {
	if len(kinds) == 0 {
		panic("sequence needs at least one kind")
	}
	return &sequence{kinds: append([]Kind(nil), kinds...)}
}

func (s *sequence) Next() Kind {
	k := s.kinds[s.next]
	s.next = (s.next + 1) % len(s.kinds)
	return k
}
