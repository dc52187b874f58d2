package jsonstore

import (
	"context"
	"os"
	"path/filepath"
)

type counterDoc struct {
	VehicleCounter int `json:"vehicle_counter"`
}

// CounterStore persists the display-code sequence in counter.json. The
// sequence only moves forward; deleted records never give their number back.
type CounterStore struct {
	baseStore
	counter counterDoc
}

func NewCounterStore(dataDir string) (*CounterStore, error) {
	s := &CounterStore{baseStore: baseStore{path: filepath.Join(dataDir, "counter.json")}}
	err := readJSON(s.path, &s.counter)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

func (s *CounterStore) NextVehicleNumber(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter.VehicleCounter++
	if err := writeJSON(s.path, &s.counter); err != nil {
		s.counter.VehicleCounter--
		return 0, err
	}
	return s.counter.VehicleCounter, nil
}
