package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Aashish23092/cash-receipt-generator/dto"
)

var ErrEmptyPool = errors.New("contractor pool is empty")

// DefaultContractors is used for both work types unless configured otherwise.
var DefaultContractors = []string{
	"Tilak G, 7th Cross, Veerasagara, Tumkur",
	"K G Ravi Kaidala Tumkur",
	"Narasimha Murthy, Kittadakuppe, Gubbi",
	"Siddappa, Kaidala, Gulur Hobli, Tumkur",
}

// ContractorPools holds the contractor names available per work type.
type ContractorPools map[dto.WorkType][]string

// DefaultPools returns fresh copies of the default pools.
func DefaultPools() ContractorPools {
	return ContractorPools{
		dto.WorkTypePits:          append([]string(nil), DefaultContractors...),
		dto.WorkTypeOverheadCable: append([]string(nil), DefaultContractors...),
	}
}

// ContractorAssigner rotates contractors so that two consecutive records with
// the same key never get the same name while the pool has two or more entries.
// The key is (date, work type), or the date alone when byDate is set.
// One assigner serves exactly one conversion run and is not safe for
// concurrent use.
type ContractorAssigner struct {
	pools  ContractorPools
	rng    *rand.Rand
	byDate bool
	last   map[string]string
}

func NewContractorAssigner(pools ContractorPools, rng *rand.Rand, byDate bool) *ContractorAssigner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ContractorAssigner{
		pools:  pools,
		rng:    rng,
		byDate: byDate,
		last:   make(map[string]string),
	}
}

// Assign picks the contractor for the next record with the given date and type.
func (a *ContractorAssigner) Assign(date time.Time, workType dto.WorkType) (string, error) {
	pool := a.pools[workType]
	if len(pool) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyPool, workType)
	}

	key := a.key(date, workType)
	candidates := pool
	if prev, seen := a.last[key]; seen {
		available := make([]string, 0, len(pool))
		for _, c := range pool {
			if c != prev {
				available = append(available, c)
			}
		}
		if len(available) > 0 {
			candidates = available
		}
	}

	choice := candidates[a.rng.Intn(len(candidates))]
	a.last[key] = choice
	return choice, nil
}

func (a *ContractorAssigner) key(date time.Time, workType dto.WorkType) string {
	day := date.Format("2006-01-02")
	if a.byDate {
		return day
	}
	return day + "|" + string(workType)
}
